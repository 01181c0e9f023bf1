package model

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeClient records requests and replies with a fixed payload or error.
type fakeClient struct {
	baseURL   string
	payload   map[string]any
	err       error
	requests  []string
	persisted []string
}

func (f *fakeClient) BaseURL() string { return f.baseURL }

func (f *fakeClient) Request(_ context.Context, method, path string) (map[string]any, error) {
	f.requests = append(f.requests, method+" "+path)
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

// persistingClient additionally records Persist calls.
type persistingClient struct {
	fakeClient
	persistErr error
}

func (p *persistingClient) Persist(m *Base) error {
	p.persisted = append(p.persisted, m.ID())
	return p.persistErr
}

func TestNewAssignsSentinelID(t *testing.T) {
	b := New(nil, ResourceMessage, "", "ns-1")
	if !b.IsUnsynced() {
		t.Error("IsUnsynced() = false for a model constructed without id")
	}
	if b.ID() == "" {
		t.Error("ID() empty, want synthetic sentinel id")
	}

	synced := New(nil, ResourceMessage, "msg-1", "ns-1")
	if synced.IsUnsynced() {
		t.Error("IsUnsynced() = true for a model with a server id")
	}
}

func TestUpdateAssignsServerID(t *testing.T) {
	b := New(nil, ResourceMessage, "", "ns-1")
	b.Update(map[string]any{"id": "msg-9", "subject": "hi"})

	if b.ID() != "msg-9" {
		t.Errorf("ID() = %q, want msg-9", b.ID())
	}
	if b.IsUnsynced() {
		t.Error("IsUnsynced() = true after server id assigned")
	}
	if b.GetString("subject") != "hi" {
		t.Errorf("subject = %q, want hi", b.GetString("subject"))
	}
}

func TestUpdateIgnoresUnknownKeys(t *testing.T) {
	b := New(nil, ResourceTag, "tag-1", "ns-1")
	b.Update(map[string]any{"name": "inbox", "foo": float64(1)})

	if b.GetString("name") != "inbox" {
		t.Errorf("name = %q, want inbox", b.GetString("name"))
	}
	if _, ok := b.Get("foo"); ok {
		t.Error("unknown payload key created a property")
	}
}

func TestRawEmitsConstants(t *testing.T) {
	b := New(nil, ResourceMessage, "msg-1", "ns-1")
	raw := b.Raw()

	if raw["object"] != "message" {
		t.Errorf("raw object = %v, want message", raw["object"])
	}
	if raw["id"] != "msg-1" {
		t.Errorf("raw id = %v, want msg-1", raw["id"])
	}
	if _, ok := raw["subject"]; ok {
		t.Error("unset subject emitted, want sparse output")
	}
}

func TestNamespaceLazyCache(t *testing.T) {
	c := &fakeClient{baseURL: "https://api.example.com"}
	b := New(c, ResourceThread, "t-1", "ns-7")

	if b.NamespaceID() != "ns-7" {
		t.Fatalf("NamespaceID() = %q, want ns-7", b.NamespaceID())
	}
	first := b.Namespace()
	if first == nil || first.ID() != "ns-7" {
		t.Fatalf("Namespace() = %v, want namespace ns-7", first)
	}
	if b.Namespace() != first {
		t.Error("second Namespace() call returned a different instance")
	}
}

func TestNamespaceObjectConstruction(t *testing.T) {
	ns := NewNamespace(nil, "ns-3")
	b := New(nil, ResourceMessage, "m-1", ns)

	if b.NamespaceID() != "ns-3" {
		t.Errorf("NamespaceID() = %q, want ns-3", b.NamespaceID())
	}
	if b.Namespace() != ns {
		t.Error("namespace object passed at construction was not cached")
	}
}

func TestNoNamespace(t *testing.T) {
	b := New(nil, ResourceNamespace, "ns-1", nil)
	if got := b.Namespace(); got != nil {
		t.Errorf("Namespace() = %v for a model without association, want nil", got)
	}
}

func TestResourcePath(t *testing.T) {
	tests := []struct {
		name string
		b    *Base
		want string
	}{
		{"namespaced resource", New(nil, ResourceMessage, "m-1", "ns-1"), "/n/ns-1/messages/m-1"},
		{"namespace itself", New(nil, ResourceNamespace, "ns-1", nil), "/n/ns-1"},
		{"no namespace", New(nil, ResourceTag, "t-1", nil), "/tags/t-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.ResourcePath(); got != tt.want {
				t.Errorf("ResourcePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNamespaceURL(t *testing.T) {
	c := &fakeClient{baseURL: "https://api.example.com"}
	b := New(c, ResourceMessage, "m-1", "ns-1")
	if got := b.NamespaceURL(); got != "https://api.example.com/n/ns-1" {
		t.Errorf("NamespaceURL() = %q", got)
	}
}

func TestReloadUnsyncedSkipsTransport(t *testing.T) {
	c := &fakeClient{baseURL: "https://api.example.com"}
	b := New(c, ResourceMessage, "", "ns-1")

	if err := b.Reload(context.Background()); err != nil {
		t.Fatalf("Reload on unsynced model: %v", err)
	}
	if len(c.requests) != 0 {
		t.Errorf("Reload issued %d requests for an unsynced model, want 0", len(c.requests))
	}
}

func TestReloadHydratesAndPersists(t *testing.T) {
	c := &persistingClient{fakeClient: fakeClient{
		baseURL: "https://api.example.com",
		payload: map[string]any{"id": "m-1", "subject": "fetched", "unread": float64(1)},
	}}
	b := New(c, ResourceMessage, "m-1", "ns-1")

	if err := b.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if len(c.requests) != 1 || c.requests[0] != "GET /n/ns-1/messages/m-1" {
		t.Errorf("requests = %v", c.requests)
	}
	if b.GetString("subject") != "fetched" {
		t.Errorf("subject = %q, want fetched", b.GetString("subject"))
	}
	if !b.GetBool("unread") {
		t.Error("unread = false, want true after hydration")
	}
	if len(c.persisted) != 1 || c.persisted[0] != "m-1" {
		t.Errorf("persisted = %v, want [m-1]", c.persisted)
	}
}

func TestReloadFailureLeavesModelUnmodified(t *testing.T) {
	transportErr := errors.New("connection refused")
	c := &fakeClient{baseURL: "https://api.example.com", err: transportErr}
	b := New(c, ResourceMessage, "m-1", "ns-1")
	b.Set("subject", "before")

	err := b.Reload(context.Background())
	if !errors.Is(err, transportErr) {
		t.Fatalf("Reload error = %v, want transport error", err)
	}
	if b.GetString("subject") != "before" {
		t.Errorf("subject = %q after failed reload, want before", b.GetString("subject"))
	}
}

func TestReloadWithoutClient(t *testing.T) {
	b := New(nil, ResourceMessage, "m-1", "ns-1")
	if err := b.Reload(context.Background()); !errors.Is(err, ErrNoClient) {
		t.Errorf("Reload error = %v, want ErrNoClient", err)
	}
}

func TestMarshalJSON(t *testing.T) {
	b := New(nil, ResourceTag, "t-1", nil)
	b.Update(map[string]any{"name": "inbox"})

	data, err := b.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"name":"inbox"`, `"object":"tag"`, `"id":"t-1"`} {
		if !strings.Contains(s, want) {
			t.Errorf("MarshalJSON output %s missing %s", s, want)
		}
	}
}
