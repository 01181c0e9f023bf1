package model

// ResourceNamespace is the path segment namespaces live under.
const ResourceNamespace = "n"

var _ = DeclareMapping(ResourceNamespace, map[string]string{
	"name":         "name",
	"emailAddress": "email_address",
	"provider":     "provider",
	"status":       "status",
	"scope":        "scope",
	"lastSync":     "date:last_sync",
	"object":       "const:object:namespace",
})

// Namespace is an account namespace: the container every other resource
// belongs to.
type Namespace struct {
	Base
}

// NewNamespace constructs a namespace model for the given id. An empty id
// yields an unsynced local namespace.
func NewNamespace(client Client, id string) *Namespace {
	return &Namespace{Base: *New(client, ResourceNamespace, id, nil)}
}

func (n *Namespace) Name() string { return n.GetString("name") }
func (n *Namespace) EmailAddress() string { return n.GetString("emailAddress") }
func (n *Namespace) Provider() string { return n.GetString("provider") }
func (n *Namespace) Status() string { return n.GetString("status") }
