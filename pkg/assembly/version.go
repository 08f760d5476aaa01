package assembly

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a resolved assembly version of two to four dotted components,
// each in [0, 65535]. Build and Revision may be absent, which is distinct
// from zero; Parts records how many components were present.
type Version struct {
	Major    uint16
	Minor    uint16
	Build    uint16
	Revision uint16

	// Parts is the number of components that were present (2 to 4).
	Parts int
}

// HasBuild reports whether the build component was present.
func (v Version) HasBuild() bool {
	return v.Parts >= 3
}

// HasRevision reports whether the revision component was present.
func (v Version) HasRevision() bool {
	return v.Parts == 4
}

// Compare orders two versions numerically by component: -1 if v is lower
// than o, 0 if equal, 1 if higher. Absent components compare as zero.
func (v Version) Compare(o Version) int {
	a := [4]uint16{v.Major, v.Minor, v.Build, v.Revision}
	b := [4]uint16{o.Major, o.Minor, o.Build, o.Revision}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// String renders the present components in dotted form.
func (v Version) String() string {
	switch v.Parts {
	case 3:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
	case 4:
		return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Revision)
	default:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
}

// ParseVersion resolves the raw text of a Version attribute. A present=false
// result with a nil error means the text is tolerated as "no version": a
// bare integer in [0, 65535], or a dotted form with an empty leading or
// trailing component. These are compatibility concessions for names emitted
// by older tools, not general laxity; every other malformed text is an
// ErrSyntax.
func ParseVersion(text string) (Version, bool, error) {
	parts := strings.Split(text, ".")
	switch {
	case len(parts) == 1:
		if _, err := strconv.ParseUint(parts[0], 10, 16); err != nil {
			return Version{}, false, fmt.Errorf("%w: invalid version %q", ErrSyntax, text)
		}
		return Version{}, false, nil
	case len(parts) > 4:
		return Version{}, false, fmt.Errorf("%w: invalid version %q", ErrSyntax, text)
	}

	if parts[0] == "" || parts[len(parts)-1] == "" {
		return Version{}, false, nil
	}

	var nums [4]uint16
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 16)
		if err != nil {
			return Version{}, false, fmt.Errorf("%w: invalid version %q", ErrSyntax, text)
		}
		nums[i] = uint16(n)
	}

	v := Version{Major: nums[0], Minor: nums[1], Parts: len(parts)}
	if v.Parts >= 3 {
		v.Build = nums[2]
	}
	if v.Parts == 4 {
		v.Revision = nums[3]
	}
	return v, true, nil
}
