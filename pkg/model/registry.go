package model

import (
	"sort"
	"sync"

	"github.com/mdaraban/inbox-go/pkg/mapping"
)

// baseMapping holds the properties shared by every resource. Concrete
// schemas are layered on top of it unless declared with a nil base.
var baseMapping = mapping.Compile(map[string]string{
	"id":          "id",
	"object":      "object",
	"namespaceID": "namespace_id",
	"createdAt":   "date:created_at",
	"updatedAt":   "date:updated_at",
}, nil)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*mapping.Mapping)
)

// BaseMapping returns the mapping shared by every model resource. The
// result is a clone; extending it never affects other resources.
func BaseMapping() *mapping.Mapping {
	return baseMapping.Clone()
}

// DeclareMapping compiles schema on top of the shared base mapping and
// registers it for the resource. This is the single integration point a new
// resource type must call, typically from a package-level declaration.
// Redeclaring a resource replaces its mapping.
func DeclareMapping(resource string, schema map[string]string) *mapping.Mapping {
	return DeclareMappingWithBase(resource, schema, baseMapping)
}

// DeclareMappingWithBase is DeclareMapping with an explicit base. A nil
// base registers exactly the declared fields, with nothing inherited.
func DeclareMappingWithBase(resource string, schema map[string]string, base *mapping.Mapping) *mapping.Mapping {
	m := mapping.Compile(schema, base)
	registryMu.Lock()
	registry[resource] = m
	registryMu.Unlock()
	return m
}

// MappingFor returns the registered mapping for a resource.
func MappingFor(resource string) (*mapping.Mapping, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	m, ok := registry[resource]
	return m, ok
}

// Resources returns the declared resource names, sorted.
func Resources() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
