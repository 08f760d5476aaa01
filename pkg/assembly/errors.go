package assembly

import "errors"

// Sentinel errors for the failure kinds this package reports.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := assembly.ParseName(text)
//	if errors.Is(err, assembly.ErrDuplicateAttribute) {
//	    // Handle a repeated attribute key
//	}
var (
	// ErrSyntax indicates a malformed display name: an unterminated quote,
	// a bad escape, a trailing separator, or an invalid attribute value.
	ErrSyntax = errors.New("invalid display name syntax")

	// ErrDuplicateAttribute indicates the same attribute key, recognized or
	// not, was supplied more than once.
	ErrDuplicateAttribute = errors.New("duplicate attribute")

	// ErrIncomparable indicates a comparison precondition was violated: a
	// version missing its revision, an invalid pre-unified identity, or an
	// invalid retargetable/partial combination.
	ErrIncomparable = errors.New("incomparable identities")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrDuplicateAttribute):
		return ExitDuplicateAttribute
	case errors.Is(err, ErrSyntax):
		return ExitSyntaxError
	case errors.Is(err, ErrIncomparable):
		return ExitIncomparable
	}

	return ExitGeneralError
}
