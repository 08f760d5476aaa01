package assembly

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess            = 0  // Operation completed successfully
	ExitGeneralError       = 1  // Unknown or unclassified error
	ExitUsageError         = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic              = 3  // Internal panic (unexpected crash)
	ExitSyntaxError        = 10 // Malformed display name
	ExitDuplicateAttribute = 11 // Attribute key supplied twice
	ExitIncomparable       = 12 // Comparison precondition violated
	ExitNonEquivalent      = 20 // Comparison completed, identities not equivalent
)
