// Package assembly parses, formats, and compares assembly identities.
//
// An assembly identity is the tuple (simple name, version, culture,
// public-key token, retargetable flag, processor architecture) that names a
// versioned component. Identities travel as display names, a comma-separated
// key/value text form:
//
//	MyLib, Version=1.2.0.0, Culture=neutral, PublicKeyToken=b77a5c561934e089
//
// ParseName decodes a display name into an Identity; Identity.String renders
// the canonical form back. CompareIdentity runs the unification engine: a
// deterministic policy decision over two identities that accounts for
// retargetable references, framework-assembly version unification, and
// historical public-key-token remaps, producing one ComparisonOutcome from a
// closed set plus an equivalence summary.
//
// # Purity
//
// Every entry point is a pure function over its inputs. The package holds no
// mutable state; the framework catalog and remap tables are immutable
// package-level data, so all functions are safe for concurrent use without
// synchronization.
//
// # Errors
//
// Failures are reported through three sentinel errors matched with
// errors.Is: ErrSyntax for malformed display names, ErrDuplicateAttribute
// for a repeated attribute key, and ErrIncomparable for identities that
// violate a comparison precondition. Ordinary non-equivalence is never an
// error; it is a ComparisonOutcome.
package assembly
