package model

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mdaraban/inbox-go/pkg/mapping"
)

// UnsyncedSuffix marks synthetic ids of models that were created locally
// and never confirmed by the server. A model sheds the suffix only when a
// save operation assigns the real server id via Update.
const UnsyncedSuffix = "-unsynced"

// Base is the entity every API resource embeds. Its mapped state lives in
// an attribute map keyed by property name; identity ("id") and namespace
// association ("namespaceID") are themselves mapped properties, so server
// payloads update them through the same traversal as everything else.
type Base struct {
	client   Client
	resource string
	mapping  *mapping.Mapping
	attrs    map[string]any

	// ns caches a lazily constructed namespace object. Two call paths
	// constructing namespaces independently for the same id can diverge;
	// this is a best-effort cache, not a single-instance registry.
	ns *Namespace
}

// New constructs a model for a resource. An empty id assigns a synthetic
// unsynced id. namespace may be nil, a namespace id, or an already
// constructed *Namespace, which is cached and its id extracted. Resources
// without a declared mapping fall back to the shared base mapping.
func New(client Client, resource, id string, namespace any) *Base {
	m, ok := MappingFor(resource)
	if !ok {
		m = baseMapping
	}
	if id == "" {
		id = uuid.NewString() + UnsyncedSuffix
	}
	b := &Base{
		client:   client,
		resource: resource,
		mapping:  m,
		attrs:    map[string]any{"id": id},
	}
	switch ns := namespace.(type) {
	case string:
		if ns != "" {
			b.attrs["namespaceID"] = ns
		}
	case *Namespace:
		if ns != nil {
			b.ns = ns
			b.attrs["namespaceID"] = ns.ID()
		}
	}
	return b
}

// ID returns the model's id, synthetic or server-assigned.
func (b *Base) ID() string {
	id, _ := b.attrs["id"].(string)
	return id
}

// Resource returns the resource segment the model was declared under.
func (b *Base) Resource() string { return b.resource }

// Mapping returns the compiled mapping driving Update and Raw.
func (b *Base) Mapping() *mapping.Mapping { return b.mapping }

// IsUnsynced reports whether the model has never been saved server-side.
func (b *Base) IsUnsynced() bool {
	return strings.HasSuffix(b.ID(), UnsyncedSuffix)
}

// NamespaceID returns the raw stored namespace id, whether or not a
// namespace object has been resolved.
func (b *Base) NamespaceID() string {
	id, _ := b.attrs["namespaceID"].(string)
	return id
}

// Namespace returns the cached namespace object, lazily constructing one
// through the owning client when only the id is known. Returns nil when the
// model has no namespace association.
func (b *Base) Namespace() *Namespace {
	if b.ns != nil {
		return b.ns
	}
	id := b.NamespaceID()
	if id == "" {
		return nil
	}
	b.ns = NewNamespace(b.client, id)
	return b.ns
}

// BaseURL returns the owning client's API root.
func (b *Base) BaseURL() string {
	if b.client == nil {
		return ""
	}
	return b.client.BaseURL()
}

// NamespaceURL returns the absolute URL of the owning namespace.
func (b *Base) NamespaceURL() string {
	return b.BaseURL() + "/" + path.Join(ResourceNamespace, b.NamespaceID())
}

// ResourcePath returns the request path for this model, relative to the
// client's base URL: "/n/<ns>/<resource>/<id>" for namespaced resources,
// "/<resource>/<id>" otherwise.
func (b *Base) ResourcePath() string {
	segs := make([]string, 0, 4)
	if ns := b.NamespaceID(); ns != "" && b.resource != ResourceNamespace {
		segs = append(segs, ResourceNamespace, ns)
	}
	segs = append(segs, b.resource, b.ID())
	return "/" + path.Join(segs...)
}

// Update hydrates the model from a wire payload, mutating it in place per
// the compiled mapping. Unknown payload keys are ignored.
func (b *Base) Update(payload map[string]any) {
	b.mapping.Apply(b.attrs, payload)
}

// Raw serializes the model's mapped state into a wire-shaped document.
// Container values are copies; mutating the result never touches the model.
func (b *Base) Raw() map[string]any {
	return b.mapping.Extract(b.attrs)
}

// MarshalJSON encodes Raw, for generic JSON call sites.
func (b *Base) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Raw())
}

// Reload refetches the model from the API and rehydrates it. A model that
// was never synced resolves immediately without a request. On success the
// model is persisted through the client when it supports that; on failure
// the error is returned and the model is left unmodified.
func (b *Base) Reload(ctx context.Context) error {
	if b.IsUnsynced() {
		return nil
	}
	if b.client == nil {
		return ErrNoClient
	}
	payload, err := b.client.Request(ctx, http.MethodGet, b.ResourcePath())
	if err != nil {
		return err
	}
	b.Update(payload)
	if p, ok := b.client.(Persister); ok {
		if err := p.Persist(b); err != nil {
			return fmt.Errorf("persisting %s %s: %w", b.resource, b.ID(), err)
		}
	}
	return nil
}

// Get returns a mapped property value and whether it is set.
func (b *Base) Get(name string) (any, bool) {
	v, ok := b.attrs[name]
	return v, ok
}

// Set assigns a mapped property value directly.
func (b *Base) Set(name string, value any) {
	b.attrs[name] = value
}

// Unset removes a property so it is omitted from Raw output.
func (b *Base) Unset(name string) {
	delete(b.attrs, name)
}

// GetString returns a property as a string, empty when unset.
func (b *Base) GetString(name string) string {
	s, _ := b.attrs[name].(string)
	return s
}

// GetInt returns a property as an int64, zero when unset.
func (b *Base) GetInt(name string) int64 {
	n, _ := b.attrs[name].(int64)
	return n
}

// GetBool returns a property as a bool, false when unset.
func (b *Base) GetBool(name string) bool {
	v, _ := b.attrs[name].(bool)
	return v
}

// GetTime returns a property as a time.Time, the zero time when unset.
func (b *Base) GetTime(name string) time.Time {
	t, _ := b.attrs[name].(time.Time)
	return t
}

// GetSlice returns a property as a sequence, nil when unset.
func (b *Base) GetSlice(name string) []any {
	s, _ := b.attrs[name].([]any)
	return s
}
