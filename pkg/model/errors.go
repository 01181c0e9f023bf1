package model

import "errors"

// Model operation errors. The mapping engine itself never fails; these
// cover the collaborator boundary only.
var (
	ErrNoClient = errors.New("model has no owning client")
)
