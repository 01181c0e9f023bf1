package mapping

import "strings"

// MergeFunc merges an incoming object value into the existing one in place.
// It is consulted by Apply only when both the current property value and the
// cast result are object-typed.
type MergeFunc func(existing, incoming map[string]any)

// Field describes one mapped property: its client-facing name, the JSON key
// it corresponds to on the wire, the caster that converts it in both
// directions, and an optional constant binding.
type Field struct {
	Name     string
	JSONKey  string
	Type     string
	Caster   Caster
	Merge    MergeFunc
	Const    bool
	Constant any
}

// ParseSpec compiles a compact spec string into a field descriptor.
//
// The spec is "[type:]jsonKey". Without a colon the type defaults to string
// and the whole spec is the JSON key. An unrecognized type is not an error:
// the whole original spec becomes the JSON key of a string field. For
// "const" the remainder is either "jsonKey:value" or just "value", in which
// case the JSON key defaults to the property name.
func ParseSpec(name, spec string) *Field {
	typ, rest, found := strings.Cut(spec, ":")
	if !found {
		return stringField(name, spec)
	}
	caster, ok := casters[typ]
	if !ok {
		// Silent fallback: the colon belonged to the key, not a type.
		return stringField(name, spec)
	}
	if typ == TypeConst {
		key, value, found := strings.Cut(rest, ":")
		if !found {
			key, value = name, rest
		}
		return &Field{
			Name:     name,
			JSONKey:  key,
			Type:     TypeConst,
			Caster:   caster,
			Const:    true,
			Constant: value,
		}
	}
	return &Field{Name: name, JSONKey: rest, Type: typ, Caster: caster}
}

func stringField(name, key string) *Field {
	return &Field{Name: name, JSONKey: key, Type: TypeString, Caster: casters[TypeString]}
}
