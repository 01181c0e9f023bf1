package mapping

import "testing"

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name     string
		property string
		spec     string
		wantKey  string
		wantType string
		wantConst bool
		wantValue any
	}{
		{"bare key defaults to string", "subject", "subject", "subject", TypeString, false, nil},
		{"typed key", "unread", "bool:unread", "unread", TypeBool, false, nil},
		{"date key", "createdAt", "date:created_at", "created_at", TypeDate, false, nil},
		{"array key", "tags", "array:tags", "tags", TypeArray, false, nil},
		{"unrecognized type falls back", "link", "href:self", "href:self", TypeString, false, nil},
		{"const with key and value", "object", "const:object:message", "object", TypeConst, true, "message"},
		{"const with value only", "object", "const:draft", "object", TypeConst, true, "draft"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ParseSpec(tt.property, tt.spec)
			if f.Name != tt.property {
				t.Errorf("Name = %q, want %q", f.Name, tt.property)
			}
			if f.JSONKey != tt.wantKey {
				t.Errorf("JSONKey = %q, want %q", f.JSONKey, tt.wantKey)
			}
			if f.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", f.Type, tt.wantType)
			}
			if f.Const != tt.wantConst {
				t.Errorf("Const = %v, want %v", f.Const, tt.wantConst)
			}
			if tt.wantConst && f.Constant != tt.wantValue {
				t.Errorf("Constant = %v, want %v", f.Constant, tt.wantValue)
			}
		})
	}
}

func TestParseSpecFallbackStillCasts(t *testing.T) {
	// A fallback field must behave exactly like a declared string field.
	f := ParseSpec("weird", "maybe:a:key")
	v, defined := f.Caster.To(float64(3), f)
	if !defined || v != "3" {
		t.Errorf("fallback caster To(3) = (%v, %v), want (\"3\", true)", v, defined)
	}
}
