// Package mapping implements the declarative schema layer that converts
// between wire JSON documents and model attribute maps. A resource declares
// each mapped property once, as a compact "[type:]jsonKey" spec string; the
// compiled Mapping then drives both directions of conversion: Apply hydrates
// an attribute map from a JSON payload, Extract serializes it back.
//
// The cast registry is fixed (string, int, bool, array, date, const) and
// never fails: malformed values degrade to zero values or to an undefined
// result rather than returning errors. Malformed spec strings degrade to a
// plain string field whose JSON key is the whole spec.
package mapping
