package assembly

import "fmt"

// ComparisonOutcome is the fine-grained result of comparing two assembly
// identities. The "Partial" variants mirror their full counterparts and are
// produced when the first identity is partial (missing its version, culture,
// or public-key token).
type ComparisonOutcome int

const (
	// Unknown means policy cannot determine compatibility. Callers must
	// treat it as "cannot assert equivalence", not as an error.
	Unknown ComparisonOutcome = iota

	// EquivalentFullMatch means the identities match on every field.
	EquivalentFullMatch

	// EquivalentWeakNamed means two weakly named identities matched on name
	// and culture; versions are not considered for weak names.
	EquivalentWeakNamed

	// EquivalentFXUnified means the identities matched after framework
	// version unification suppressed a major-version difference.
	EquivalentFXUnified

	// EquivalentUnified means a version difference was bridged because the
	// newer side was already unified by a prior resolution step.
	EquivalentUnified

	// NonEquivalentVersion means the identities differ only by version.
	NonEquivalentVersion

	// NonEquivalent means the identities name different components.
	NonEquivalent

	EquivalentPartialMatch
	EquivalentPartialWeakNamed
	EquivalentPartialFXUnified
	EquivalentPartialUnified
	NonEquivalentPartialVersion
)

// Equivalent reports whether the outcome counts the identities as
// equivalent.
func (o ComparisonOutcome) Equivalent() bool {
	switch o {
	case EquivalentFullMatch, EquivalentWeakNamed, EquivalentFXUnified,
		EquivalentUnified, EquivalentPartialMatch, EquivalentPartialWeakNamed,
		EquivalentPartialFXUnified, EquivalentPartialUnified:
		return true
	}
	return false
}

// Partial reports whether the outcome is one of the partial-identity
// variants.
func (o ComparisonOutcome) Partial() bool {
	switch o {
	case EquivalentPartialMatch, EquivalentPartialWeakNamed,
		EquivalentPartialFXUnified, EquivalentPartialUnified,
		NonEquivalentPartialVersion:
		return true
	}
	return false
}

// IsValid returns true if the outcome is a defined value.
func (o ComparisonOutcome) IsValid() bool {
	return o >= Unknown && o <= NonEquivalentPartialVersion
}

// String returns the canonical name of the outcome.
func (o ComparisonOutcome) String() string {
	switch o {
	case Unknown:
		return "Unknown"
	case EquivalentFullMatch:
		return "EquivalentFullMatch"
	case EquivalentWeakNamed:
		return "EquivalentWeakNamed"
	case EquivalentFXUnified:
		return "EquivalentFXUnified"
	case EquivalentUnified:
		return "EquivalentUnified"
	case NonEquivalentVersion:
		return "NonEquivalentVersion"
	case NonEquivalent:
		return "NonEquivalent"
	case EquivalentPartialMatch:
		return "EquivalentPartialMatch"
	case EquivalentPartialWeakNamed:
		return "EquivalentPartialWeakNamed"
	case EquivalentPartialFXUnified:
		return "EquivalentPartialFXUnified"
	case EquivalentPartialUnified:
		return "EquivalentPartialUnified"
	case NonEquivalentPartialVersion:
		return "NonEquivalentPartialVersion"
	default:
		return fmt.Sprintf("ComparisonOutcome(%d)", int(o))
	}
}
