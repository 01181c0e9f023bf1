package mapping

import (
	"math"
	"time"

	"github.com/spf13/cast"
)

// Cast type names recognized by the registry.
const (
	TypeString = "string"
	TypeInt    = "int"
	TypeBool   = "bool"
	TypeArray  = "array"
	TypeDate   = "date"
	TypeConst  = "const"
)

// CastFunc converts a single value in one direction. The boolean result
// reports whether the conversion produced a defined value; false means the
// property should be treated as unset rather than stored.
type CastFunc func(v any, f *Field) (any, bool)

// Caster is a bidirectional converter: To runs on hydration (JSON to model
// value), From on serialization (model value to JSON).
type Caster struct {
	To   CastFunc
	From CastFunc
}

// casters is the fixed registry. Entries are pure; only "const" consults the
// field descriptor, for its stored constant.
var casters = map[string]Caster{
	TypeString: {To: stringTo, From: identity},
	TypeInt:    {To: intCast, From: intCast},
	TypeBool:   {To: boolCast, From: boolCast},
	TypeArray:  {To: arrayTo, From: identity},
	TypeDate:   {To: dateTo, From: dateFrom},
	TypeConst:  {To: constCast, From: constCast},
}

// LookupCaster returns the registered caster for a type name.
func LookupCaster(typ string) (Caster, bool) {
	c, ok := casters[typ]
	return c, ok
}

func identity(v any, _ *Field) (any, bool) { return v, true }

func constCast(_ any, f *Field) (any, bool) { return f.Constant, true }

// stringTo keeps JSON null as nil and coerces everything else to text.
func stringTo(v any, _ *Field) (any, bool) {
	if v == nil {
		return nil, true
	}
	return cast.ToString(v), true
}

// intCast coerces numerically and clamps to the unsigned 32-bit range.
// Non-numeric input becomes 0. The same coercion runs in both directions.
func intCast(v any, _ *Field) (any, bool) {
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) {
		return int64(0), true
	}
	if f < 0 {
		return int64(0), true
	}
	if f > math.MaxUint32 {
		return int64(math.MaxUint32), true
	}
	return int64(f), true
}

// boolCast applies truthiness in both directions: nil, false, zero and NaN
// numbers, and the empty string are false; everything else is true.
func boolCast(v any, _ *Field) (any, bool) {
	return truthy(v), true
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	default:
		return true
	}
}

// arrayTo passes ordered sequences through and converts array-like maps
// (a numeric "length" plus "0".."n-1" index keys) into a true sequence.
// Anything else degrades to an empty sequence.
func arrayTo(v any, _ *Field) (any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out, true
	case map[string]any:
		length, err := cast.ToIntE(x["length"])
		if err != nil || length < 0 {
			return []any{}, true
		}
		out := make([]any, length)
		for i := 0; i < length; i++ {
			out[i] = x[cast.ToString(i)]
		}
		return out, true
	default:
		return []any{}, true
	}
}

// epochTimer is satisfied by values that can report an absolute time, the
// analog of a toDate capability on the wire value.
type epochTimer interface {
	Time() time.Time
}

// dateTo interprets numbers as epoch seconds, parses strings as timestamps,
// and passes absolute-time values through. Unsupported input is undefined.
func dateTo(v any, _ *Field) (any, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case float64:
		return epochToTime(x), true
	case float32:
		return epochToTime(float64(x)), true
	case int:
		return time.Unix(int64(x), 0).UTC(), true
	case int32:
		return time.Unix(int64(x), 0).UTC(), true
	case int64:
		return time.Unix(x, 0).UTC(), true
	case string:
		t, err := cast.ToTimeE(x)
		if err != nil {
			return nil, false
		}
		return t, true
	default:
		if et, ok := v.(epochTimer); ok {
			return et.Time(), true
		}
		return nil, false
	}
}

// dateFrom emits epoch seconds. Numbers pass through unchanged, strings are
// parsed then converted, absolute-time values are floored to whole seconds.
func dateFrom(v any, _ *Field) (any, bool) {
	switch x := v.(type) {
	case time.Time:
		return x.Unix(), true
	case float64, float32, int, int32, int64, uint, uint32, uint64:
		return x, true
	case string:
		t, err := cast.ToTimeE(x)
		if err != nil {
			return nil, false
		}
		return t.Unix(), true
	default:
		if et, ok := v.(epochTimer); ok {
			return et.Time().Unix(), true
		}
		return nil, false
	}
}

func epochToTime(sec float64) time.Time {
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*float64(time.Second))).UTC()
}
