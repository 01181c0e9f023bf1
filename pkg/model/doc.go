// Package model defines the base entity shared by every API resource: its
// identity and namespace association, sync state, URL derivation, and the
// schema-driven Update/Raw operations backed by package mapping. It also
// holds the per-resource mapping registry and a small catalog of concrete
// resource types (Namespace, Tag, Thread, Message).
//
// A model instance is owned by a single call stack; nothing here guards
// concurrent mutation of one instance, and callers sharing an instance
// across goroutines must serialize access themselves.
package model
