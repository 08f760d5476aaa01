package assembly

import (
	"reflect"
	"testing"
)

func TestIdentityString_Canonical(t *testing.T) {
	yes := true
	no := false

	tests := []struct {
		name string
		id   Identity
		want string
	}{
		{
			name: "Name only",
			id:   Identity{Name: "MyLib"},
			want: "MyLib",
		},
		{
			name: "Fully specified",
			id: Identity{
				Name:           "MyLib",
				Version:        strPtr("1.2.3.4"),
				Culture:        strPtr("neutral"),
				PublicKeyToken: strPtr("b77a5c561934e089"),
			},
			want: "MyLib, Version=1.2.3.4, Culture=neutral, PublicKeyToken=b77a5c561934e089",
		},
		{
			name: "Null token renders literally",
			id:   Identity{Name: "MyLib", PublicKeyToken: strPtr("null")},
			want: "MyLib, PublicKeyToken=null",
		},
		{
			name: "Explicitly empty culture is quoted",
			id:   Identity{Name: "MyLib", Culture: strPtr("")},
			want: `MyLib, Culture=""`,
		},
		{
			name: "Name containing a delimiter is quoted",
			id:   Identity{Name: "My, Lib"},
			want: `"My, Lib"`,
		},
		{
			name: "Name containing a quote is escaped",
			id:   Identity{Name: `My"Lib`},
			want: `"My\"Lib"`,
		},
		{
			name: "Value with surrounding whitespace is quoted",
			id:   Identity{Name: "MyLib", Culture: strPtr(" en-US ")},
			want: `MyLib, Culture=" en-US "`,
		},
		{
			name: "Retargetable yes",
			id:   Identity{Name: "MyLib", Retargetable: &yes},
			want: "MyLib, Retargetable=Yes",
		},
		{
			name: "Retargetable no",
			id:   Identity{Name: "MyLib", Retargetable: &no},
			want: "MyLib, Retargetable=No",
		},
		{
			name: "Architecture and content type",
			id: Identity{
				Name:                  "MyLib",
				ProcessorArchitecture: ProcessorArchitectureAmd64,
				WindowsRuntime:        true,
			},
			want: "MyLib, ProcessorArchitecture=Amd64, ContentType=WindowsRuntime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Formatting must be the inverse of parsing: rendering an identity and
// parsing the result reproduces the record, quoting edge cases included.
func TestIdentityString_RoundTrip(t *testing.T) {
	yes := true

	identities := []Identity{
		{Name: "MyLib"},
		{
			Name:           "MyLib",
			Version:        strPtr("1.2.3.4"),
			Culture:        strPtr("neutral"),
			PublicKeyToken: strPtr("b77a5c561934e089"),
		},
		{Name: "My, Lib", Culture: strPtr("en-US")},
		{Name: `My"Lib`},
		{Name: "My'Lib"},
		{Name: "My=Lib"},
		{Name: "MyLib", Culture: strPtr("")},
		{Name: "MyLib", PublicKeyToken: strPtr("null"), Retargetable: &yes},
		{
			Name:                  "MyLib",
			Version:               strPtr("1.0.0.0"),
			ProcessorArchitecture: ProcessorArchitectureArm,
			WindowsRuntime:        true,
		},
	}

	for _, id := range identities {
		t.Run(id.Name, func(t *testing.T) {
			rendered := id.String()
			parsed, err := ParseName(rendered)
			if err != nil {
				t.Fatalf("ParseName(%q) failed: %v", rendered, err)
			}
			if !reflect.DeepEqual(parsed, id) {
				t.Errorf("round trip through %q:\n got %#v\nwant %#v", rendered, parsed, id)
			}
		})
	}
}

func TestIdentityIsStrongNamed(t *testing.T) {
	if (Identity{Name: "MyLib"}).IsStrongNamed() {
		t.Error("absent token must not be strong-named")
	}
	if (Identity{Name: "MyLib", PublicKeyToken: strPtr("null")}).IsStrongNamed() {
		t.Error("literal null token must not be strong-named")
	}
	if !(Identity{Name: "MyLib", PublicKeyToken: strPtr("b77a5c561934e089")}).IsStrongNamed() {
		t.Error("real token must be strong-named")
	}
}

func TestProcessorArchitecture(t *testing.T) {
	for a := ProcessorArchitectureNone; a <= ProcessorArchitectureArm; a++ {
		if !a.IsValid() {
			t.Errorf("%v should be valid", a)
		}
		parsed, ok := parseProcessorArchitecture(a.String())
		if !ok || parsed != a {
			t.Errorf("parseProcessorArchitecture(%q) = (%v, %t)", a.String(), parsed, ok)
		}
	}

	if ProcessorArchitecture(99).IsValid() {
		t.Error("out-of-range architecture should be invalid")
	}
	if _, ok := parseProcessorArchitecture("sparc"); ok {
		t.Error("unknown architecture must not parse")
	}
}
