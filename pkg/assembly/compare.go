package assembly

import (
	"fmt"
	"strings"
)

// runtimeLibraryName is the simple name of the base runtime library, which
// binds by name alone (step 1 of the decision sequence).
const runtimeLibraryName = "mscorlib"

// CompareIdentity decides whether two display names refer to compatible
// assemblies under side-by-side versioning policy. unified1 and unified2
// mark a side as already unified by a prior resolution step; a pre-unified
// side must carry a fully specified version, a culture, and a public-key
// token, and it licenses the engine to bridge version gaps toward that
// side.
//
// The boolean summarizes the outcome; the outcome itself is always one of
// the ComparisonOutcome values. Errors are ErrSyntax or
// ErrDuplicateAttribute for unparsable input and ErrIncomparable for
// identities the policy cannot compare; ordinary non-equivalence is never
// an error.
func CompareIdentity(name1 string, unified1 bool, name2 string, unified2 bool) (bool, ComparisonOutcome, error) {
	id1, err := ParseName(name1)
	if err != nil {
		return false, Unknown, err
	}
	id2, err := ParseName(name2)
	if err != nil {
		return false, Unknown, err
	}
	return CompareParsedIdentity(id1, unified1, id2, unified2)
}

// CompareParsedIdentity is CompareIdentity over already-parsed records, for
// collaborators that hold Identity values.
func CompareParsedIdentity(id1 Identity, unified1 bool, id2 Identity, unified2 bool) (bool, ComparisonOutcome, error) {
	s1, err := newCompareSide(id1, unified1)
	if err != nil {
		return false, Unknown, err
	}
	s2, err := newCompareSide(id2, unified2)
	if err != nil {
		return false, Unknown, err
	}

	c := comparison{s1: s1, s2: s2}
	outcome, err := c.run()
	if err != nil {
		return false, Unknown, err
	}
	return outcome.Equivalent(), outcome, nil
}

// compareSide is one identity prepared for comparison: the parsed record,
// its resolved version, and the flags the decision sequence evolves.
type compareSide struct {
	id         Identity
	version    Version
	hasVersion bool
	unified    bool
	partial    bool
	remapped   bool
}

func (s compareSide) retargetable() bool {
	return s.id.Retargetable != nil && *s.id.Retargetable
}

func (s compareSide) hasToken() bool {
	return s.id.PublicKeyToken != nil
}

func (s compareSide) strongNamed() bool {
	return s.id.IsStrongNamed()
}

// newCompareSide resolves the raw version and enforces the entry
// preconditions: a side the caller marked pre-unified must already carry a
// fully specified version (explicit revision), a culture, and a public-key
// token of at least two characters.
func newCompareSide(id Identity, unified bool) (compareSide, error) {
	s := compareSide{id: id, unified: unified}
	if id.Version != nil {
		v, present, err := ParseVersion(*id.Version)
		if err != nil {
			return compareSide{}, err
		}
		s.version = v
		s.hasVersion = present
	}
	if unified {
		if !s.hasVersion || !s.version.HasRevision() ||
			id.Culture == nil ||
			id.PublicKeyToken == nil || len(*id.PublicKeyToken) < 2 {
			return compareSide{}, fmt.Errorf(
				"%w: pre-unified identity %q must carry a full version, culture, and public key token",
				ErrIncomparable, id.Name)
		}
	}
	s.partial = !s.hasVersion || id.Culture == nil || id.PublicKeyToken == nil
	return s, nil
}

// comparison is the evolving state of one identity comparison. Each step of
// the decision sequence either advances the state or concludes with an
// outcome; remaps and normalizations replace whole side values, so the
// caller's records are never touched.
type comparison struct {
	s1, s2    compareSide
	fxUnified bool
}

// run executes the decision sequence in order, short-circuiting on the
// first step that concludes.
func (c *comparison) run() (ComparisonOutcome, error) {
	if outcome, done := c.runtimeLibraryShortCircuit(); done {
		return outcome, nil
	}
	if outcome, done := c.requireNameMatch(); done {
		return outcome, nil
	}
	if err := c.validatePartials(); err != nil {
		return Unknown, err
	}
	if outcome, done := c.requireCultureMatch(); done {
		return outcome, nil
	}
	if outcome, done := c.requireRetargetableCompatibility(); done {
		return outcome, nil
	}
	c.applyRetargetableException()
	c.applyRemaps()
	if outcome, done := c.checkRemapParity(); done {
		return outcome, nil
	}
	c.normalizeFrameworkVersions()
	return c.resolveStrongNames()
}

// runtimeLibraryShortCircuit handles references to the base runtime
// library: when the second identity names it, only the names are consulted.
// This mirrors the platform's documented binding behavior, asymmetries
// included.
func (c *comparison) runtimeLibraryShortCircuit() (ComparisonOutcome, bool) {
	if !strings.EqualFold(c.s2.id.Name, runtimeLibraryName) {
		return Unknown, false
	}
	if strings.EqualFold(c.s1.id.Name, c.s2.id.Name) {
		return EquivalentFullMatch, true
	}
	return NonEquivalent, true
}

// requireNameMatch concludes NonEquivalent unless the simple names match
// case-insensitively.
func (c *comparison) requireNameMatch() (ComparisonOutcome, bool) {
	if strings.EqualFold(c.s1.id.Name, c.s2.id.Name) {
		return Unknown, false
	}
	return NonEquivalent, true
}

// validatePartials rejects the partial-identity combinations the policy
// cannot compare. A pre-unified side can never be partial; newCompareSide
// already enforced that.
func (c *comparison) validatePartials() error {
	if c.s1.partial && c.s1.id.Retargetable != nil {
		return fmt.Errorf("%w: partial identity %q carries a Retargetable flag",
			ErrIncomparable, c.s1.id.Name)
	}
	if c.s2.partial {
		return fmt.Errorf("%w: identity %q is partial", ErrIncomparable, c.s2.id.Name)
	}
	return nil
}

// requireCultureMatch concludes NonEquivalent on a culture mismatch. A
// partial first identity with no culture acts as a wildcard.
func (c *comparison) requireCultureMatch() (ComparisonOutcome, bool) {
	if c.s1.partial && c.s1.id.Culture == nil {
		return Unknown, false
	}
	if strings.EqualFold(*c.s1.id.Culture, *c.s2.id.Culture) {
		return Unknown, false
	}
	return NonEquivalent, true
}

// requireRetargetableCompatibility concludes NonEquivalent when a
// non-retargetable reference meets a retargetable definition.
func (c *comparison) requireRetargetableCompatibility() (ComparisonOutcome, bool) {
	if !c.s1.retargetable() && c.s2.retargetable() {
		return NonEquivalent, true
	}
	return Unknown, false
}

// applyRetargetableException clears the first side's retargetable flag for
// the narrow historical case of a retargetable reference meeting a
// non-retargetable definition with the same token, for a name the remap
// tables know.
func (c *comparison) applyRetargetableException() {
	if !c.s1.retargetable() || c.s2.retargetable() {
		return
	}
	if !c.s1.hasToken() || !c.s2.hasToken() ||
		*c.s1.id.PublicKeyToken != *c.s2.id.PublicKeyToken {
		return
	}
	if hasKnownRemap(c.s1.id.Name) {
		c.s1.id.Retargetable = boolPtr(false)
	}
}

// applyRemaps applies the token remap policy independently to each side.
func (c *comparison) applyRemaps() {
	c.s1 = applyTokenRemap(c.s1)
	c.s2 = applyTokenRemap(c.s2)
}

// checkRemapParity enforces the remap agreement rules between retargetable
// sides: two retargetable identities must remap together or not at all,
// and a retargetable reference against a non-retargetable definition is
// decidable only when the reference remapped and the definition did not.
func (c *comparison) checkRemapParity() (ComparisonOutcome, bool) {
	r1, r2 := c.s1.retargetable(), c.s2.retargetable()
	switch {
	case r1 && r2:
		if c.s1.remapped != c.s2.remapped {
			return NonEquivalent, true
		}
	case r1:
		if !c.s1.remapped || c.s2.remapped {
			return Unknown, true
		}
	}
	return Unknown, false
}

// normalizeFrameworkVersions pins each framework-classified side to the
// framework baseline version. The fxUnified flag records that pinning
// suppressed a major-version difference between the sides; only majors are
// consulted for the trigger, so minor-level differences normalize silently.
func (c *comparison) normalizeFrameworkVersions() {
	fx1 := c.s1.hasVersion && IsFrameworkAssembly(c.s1.id)
	fx2 := c.s2.hasVersion && IsFrameworkAssembly(c.s2.id)
	if !fx1 && !fx2 {
		return
	}

	majorsDiffered := c.s1.hasVersion && c.s2.hasVersion &&
		c.s1.version.Major != c.s2.version.Major

	if fx1 {
		c.s1.version = frameworkBaseVersion
	}
	if fx2 {
		c.s2.version = frameworkBaseVersion
	}

	if majorsDiffered && c.s1.hasVersion && c.s2.hasVersion &&
		c.s1.version.Major == c.s2.version.Major {
		c.fxUnified = true
	}
}

// resolveStrongNames is the terminal step: token agreement, then version
// ordering gated on the pre-unified flags, then the weak-name rules.
// Partial-variant selection follows the first side's partial flag.
func (c *comparison) resolveStrongNames() (ComparisonOutcome, error) {
	partial := c.s1.partial

	switch {
	case c.s2.strongNamed():
		if c.s1.hasToken() && *c.s1.id.PublicKeyToken != *c.s2.id.PublicKeyToken {
			return NonEquivalent, nil
		}
		if !c.s1.hasVersion {
			return EquivalentPartialMatch, nil
		}
		if !c.s1.version.HasRevision() {
			return Unknown, fmt.Errorf("%w: version %s of %q is missing components",
				ErrIncomparable, c.s1.version, c.s1.id.Name)
		}
		if !c.s2.version.HasRevision() {
			return Unknown, fmt.Errorf("%w: version %s of %q is missing components",
				ErrIncomparable, c.s2.version, c.s2.id.Name)
		}

		switch c.s1.version.Compare(c.s2.version) {
		case -1:
			if c.s2.unified {
				return variant(partial, EquivalentPartialUnified, EquivalentUnified), nil
			}
			return variant(partial, NonEquivalentPartialVersion, NonEquivalentVersion), nil
		case 1:
			if c.s1.unified {
				return variant(partial, EquivalentPartialUnified, EquivalentUnified), nil
			}
			return variant(partial, NonEquivalentPartialVersion, NonEquivalentVersion), nil
		default:
			if c.fxUnified {
				return variant(partial, EquivalentPartialFXUnified, EquivalentFXUnified), nil
			}
			return variant(partial, EquivalentPartialMatch, EquivalentFullMatch), nil
		}

	case c.s1.strongNamed():
		return NonEquivalent, nil

	default:
		return variant(partial, EquivalentPartialWeakNamed, EquivalentWeakNamed), nil
	}
}

func variant(partial bool, partialOutcome, fullOutcome ComparisonOutcome) ComparisonOutcome {
	if partial {
		return partialOutcome
	}
	return fullOutcome
}
