package assembly

import (
	"errors"
	"fmt"
	"testing"
)

var allOutcomes = []ComparisonOutcome{
	Unknown,
	EquivalentFullMatch,
	EquivalentWeakNamed,
	EquivalentFXUnified,
	EquivalentUnified,
	NonEquivalentVersion,
	NonEquivalent,
	EquivalentPartialMatch,
	EquivalentPartialWeakNamed,
	EquivalentPartialFXUnified,
	EquivalentPartialUnified,
	NonEquivalentPartialVersion,
}

func TestComparisonOutcome_Equivalent(t *testing.T) {
	equivalent := map[ComparisonOutcome]bool{
		EquivalentFullMatch:        true,
		EquivalentWeakNamed:        true,
		EquivalentFXUnified:        true,
		EquivalentUnified:          true,
		EquivalentPartialMatch:     true,
		EquivalentPartialWeakNamed: true,
		EquivalentPartialFXUnified: true,
		EquivalentPartialUnified:   true,
	}
	for _, o := range allOutcomes {
		if o.Equivalent() != equivalent[o] {
			t.Errorf("%v.Equivalent() = %t, want %t", o, o.Equivalent(), equivalent[o])
		}
	}
}

func TestComparisonOutcome_Partial(t *testing.T) {
	partial := map[ComparisonOutcome]bool{
		EquivalentPartialMatch:      true,
		EquivalentPartialWeakNamed:  true,
		EquivalentPartialFXUnified:  true,
		EquivalentPartialUnified:    true,
		NonEquivalentPartialVersion: true,
	}
	for _, o := range allOutcomes {
		if o.Partial() != partial[o] {
			t.Errorf("%v.Partial() = %t, want %t", o, o.Partial(), partial[o])
		}
	}
}

func TestComparisonOutcome_String(t *testing.T) {
	seen := make(map[string]bool)
	for _, o := range allOutcomes {
		if !o.IsValid() {
			t.Errorf("%v should be valid", o)
		}
		name := o.String()
		if name == "" || seen[name] {
			t.Errorf("outcome %d has empty or duplicate name %q", int(o), name)
		}
		seen[name] = true
	}

	bogus := ComparisonOutcome(99)
	if bogus.IsValid() {
		t.Error("out-of-range outcome should be invalid")
	}
	if bogus.String() != "ComparisonOutcome(99)" {
		t.Errorf("bogus String() = %q", bogus.String())
	}
}

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Nil", nil, ExitSuccess},
		{"Syntax", ErrSyntax, ExitSyntaxError},
		{"Wrapped syntax", fmt.Errorf("parse %q: %w", "x", ErrSyntax), ExitSyntaxError},
		{"Duplicate attribute", fmt.Errorf("%w: Version", ErrDuplicateAttribute), ExitDuplicateAttribute},
		{"Incomparable", fmt.Errorf("%w: partial", ErrIncomparable), ExitIncomparable},
		{"Unclassified", errors.New("boom"), ExitGeneralError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError = %d, want %d", got, tt.want)
			}
		})
	}
}
