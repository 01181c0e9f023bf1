package mapping

import "sort"

// Mapping is the compiled schema for one resource: an ordered table of field
// descriptors, indexed by property name, plus a reverse index from JSON key
// to property name.
type Mapping struct {
	fields   []*Field
	byName   map[string]int
	jsonKeys map[string]string
}

// New returns an empty mapping.
func New() *Mapping {
	return &Mapping{
		byName:   make(map[string]int),
		jsonKeys: make(map[string]string),
	}
}

// Compile builds a mapping from per-property spec strings, layered on top of
// base. All of base's descriptors are copied forward first; the schema's own
// declarations then overwrite by property name. A nil base means the mapping
// has exactly the declared fields.
//
// Properties are compiled in lexical order so table order is deterministic.
func Compile(schema map[string]string, base *Mapping) *Mapping {
	m := New()
	if base != nil {
		m = base.Clone()
	}
	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		m.Add(ParseSpec(name, schema[name]))
	}
	return m
}

// Clone returns an independent copy. Field descriptors are shared; the
// table and indexes are not, so extending a clone never mutates the base.
func (m *Mapping) Clone() *Mapping {
	c := New()
	c.fields = make([]*Field, len(m.fields))
	copy(c.fields, m.fields)
	for name, i := range m.byName {
		c.byName[name] = i
	}
	for key, name := range m.jsonKeys {
		c.jsonKeys[key] = name
	}
	return c
}

// Add inserts a field descriptor. Redeclaring a property name replaces the
// descriptor in place, keeping its original table position.
func (m *Mapping) Add(f *Field) {
	if i, ok := m.byName[f.Name]; ok {
		delete(m.jsonKeys, m.fields[i].JSONKey)
		m.fields[i] = f
	} else {
		m.byName[f.Name] = len(m.fields)
		m.fields = append(m.fields, f)
	}
	m.jsonKeys[f.JSONKey] = f.Name
}

// Field returns the descriptor for a property name.
func (m *Mapping) Field(name string) (*Field, bool) {
	i, ok := m.byName[name]
	if !ok {
		return nil, false
	}
	return m.fields[i], true
}

// PropertyOf traces a payload key back to its property name.
func (m *Mapping) PropertyOf(jsonKey string) (string, bool) {
	name, ok := m.jsonKeys[jsonKey]
	return name, ok
}

// Fields returns the descriptors in table order. The slice is a copy.
func (m *Mapping) Fields() []*Field {
	out := make([]*Field, len(m.fields))
	copy(out, m.fields)
	return out
}

// Len returns the number of mapped properties.
func (m *Mapping) Len() int { return len(m.fields) }

// Apply hydrates attrs from a wire payload. Constant fields always take
// their fixed value. For other fields, a key present in the payload is cast
// and assigned; a cast that comes back undefined unsets the property; a key
// absent from the payload leaves the property untouched. When the descriptor
// has a merge hook and both the current value and the cast result are
// objects, the incoming object is merged into the current one in place.
// Payload keys with no descriptor are ignored.
func (m *Mapping) Apply(attrs, payload map[string]any) {
	for _, f := range m.fields {
		if f.Const {
			attrs[f.Name] = f.Constant
			continue
		}
		v, ok := payload[f.JSONKey]
		if !ok {
			continue
		}
		value, defined := f.Caster.To(v, f)
		if !defined {
			delete(attrs, f.Name)
			continue
		}
		if f.Merge != nil {
			if existing, ok := attrs[f.Name].(map[string]any); ok {
				if incoming, ok := value.(map[string]any); ok {
					f.Merge(existing, incoming)
					continue
				}
			}
		}
		attrs[f.Name] = value
	}
}

// Extract serializes attrs into a wire-shaped document. Constant fields are
// always emitted. Unset properties are omitted, so the output is sparse.
// Object- and sequence-valued results are shallow copies, never the live
// values held in attrs.
func (m *Mapping) Extract(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(m.fields))
	for _, f := range m.fields {
		if f.Const {
			out[f.JSONKey] = f.Constant
			continue
		}
		v, ok := attrs[f.Name]
		if !ok {
			continue
		}
		value, defined := f.Caster.From(v, f)
		if !defined {
			continue
		}
		out[f.JSONKey] = shallowCopy(value)
	}
	return out
}

func shallowCopy(v any) any {
	switch x := v.(type) {
	case []any:
		out := make([]any, len(x))
		copy(out, x)
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = e
		}
		return out
	default:
		return v
	}
}
