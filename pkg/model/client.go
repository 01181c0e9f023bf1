package model

import "context"

// Client is the owning API client context. Models keep an opaque reference
// to it for URL derivation and for issuing requests on Reload.
type Client interface {
	// BaseURL returns the API root, without a trailing slash.
	BaseURL() string

	// Request performs one API call and returns the decoded JSON object.
	// Failures carry either a structured API error or a transport error.
	Request(ctx context.Context, method, path string) (map[string]any, error)
}

// Persister is an optional capability of a Client: persisting a freshly
// hydrated model into a local store. Reload invokes it when present.
type Persister interface {
	Persist(m *Base) error
}
