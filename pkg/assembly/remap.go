package assembly

// Version pins and gates for the historical token remaps. A remap is "pin
// to this exact version", never "round up": the remapped side's effective
// version becomes frameworkBaseVersion regardless of what it was.
var (
	// frameworkBaseVersion is the version every remapped or
	// framework-unified side is pinned to.
	frameworkBaseVersion = Version{Major: 4, Parts: 4}

	// remapVersionFloor is the minimum version at which a retargetable
	// identity may be remapped at all.
	remapVersionFloor = Version{Major: 2, Parts: 4}

	// remapVersionCeiling closes the portable-generation remap window.
	remapVersionCeiling = Version{Major: 5, Minor: 9, Parts: 4}
)

// The one unconditional remap: the SQL Server Compact Edition provider
// changed signing keys between releases and unifies regardless of version.
const (
	sqlServerCeName     = "System.Data.SqlServerCe"
	sqlServerCeOldToken = "3be235df1c8d2ad3"
	sqlServerCeNewToken = "89845dcd8080cc91"
)

type remapEntry struct {
	token string

	// retargetableOnly gates the remap on the identity carrying
	// Retargetable=Yes.
	retargetableOnly bool
}

// portableCoreRemaps unifies assemblies signed with the portable platform
// token to their desktop counterparts, within the remap window.
var portableCoreRemaps = map[string]remapEntry{
	"Microsoft.VisualBasic":        {token: PublicKeyTokenMicrosoft},
	"System":                       {token: PublicKeyTokenECMA},
	"System.Core":                  {token: PublicKeyTokenECMA},
	"System.Net":                   {token: PublicKeyTokenMicrosoft},
	"System.Runtime.Serialization": {token: PublicKeyTokenECMA},
	"System.ServiceModel":          {token: PublicKeyTokenECMA},
	"System.Xml":                   {token: PublicKeyTokenECMA},
}

// portableSDKRemaps unifies the portable SDK libraries, which were signed
// with the WinFX token, to the tokens their desktop counterparts carry.
var portableSDKRemaps = map[string]remapEntry{
	"Microsoft.CSharp":                  {token: PublicKeyTokenMicrosoft},
	"System.ComponentModel.Composition": {token: PublicKeyTokenECMA},
	"System.Numerics":                   {token: PublicKeyTokenECMA},
	"System.Xml.Linq":                   {token: PublicKeyTokenECMA, retargetableOnly: true},
	"System.Xml.Serialization":          {token: PublicKeyTokenECMA, retargetableOnly: true},
}

// hasKnownRemap reports whether any remap row exists for the name,
// whichever token it would apply to.
func hasKnownRemap(name string) bool {
	if name == sqlServerCeName {
		return true
	}
	_, core := portableCoreRemaps[name]
	_, sdk := portableSDKRemaps[name]
	return core || sdk
}

// applyTokenRemap returns the side with the historical token remap applied,
// when policy has one for it. The input side is never modified; a remap
// produces a new side with the replacement token, the pinned version, and
// the remapped flag set.
//
// A retargetable identity below the version floor is never remapped. The
// unconditional exception ignores the version entirely; the
// portable-generation rows require a version inside the remap window.
func applyTokenRemap(s compareSide) compareSide {
	if s.id.PublicKeyToken == nil {
		return s
	}
	retargetable := s.retargetable()
	if retargetable && (!s.hasVersion || s.version.Compare(remapVersionFloor) < 0) {
		return s
	}

	token := *s.id.PublicKeyToken
	if s.id.Name == sqlServerCeName && token == sqlServerCeOldToken {
		return remapSide(s, sqlServerCeNewToken)
	}

	if !s.hasVersion ||
		s.version.Compare(remapVersionFloor) < 0 ||
		s.version.Compare(remapVersionCeiling) > 0 {
		return s
	}

	var entry remapEntry
	var ok bool
	switch token {
	case PublicKeyTokenPortable:
		entry, ok = portableCoreRemaps[s.id.Name]
	case PublicKeyTokenWinFX:
		entry, ok = portableSDKRemaps[s.id.Name]
	}
	if !ok || (entry.retargetableOnly && !retargetable) {
		return s
	}
	return remapSide(s, entry.token)
}

func remapSide(s compareSide, token string) compareSide {
	s.id.PublicKeyToken = &token
	s.version = frameworkBaseVersion
	s.hasVersion = true
	s.remapped = true
	return s
}
