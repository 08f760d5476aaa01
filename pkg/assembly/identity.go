package assembly

import (
	"fmt"
	"strings"
)

// ProcessorArchitecture identifies the target processor of an assembly.
type ProcessorArchitecture int

const (
	ProcessorArchitectureNone ProcessorArchitecture = iota
	ProcessorArchitectureMSIL
	ProcessorArchitectureX86
	ProcessorArchitectureIA64
	ProcessorArchitectureAmd64
	ProcessorArchitectureArm
)

// String returns the canonical display-name spelling of the architecture.
func (a ProcessorArchitecture) String() string {
	switch a {
	case ProcessorArchitectureNone:
		return "None"
	case ProcessorArchitectureMSIL:
		return "MSIL"
	case ProcessorArchitectureX86:
		return "X86"
	case ProcessorArchitectureIA64:
		return "IA64"
	case ProcessorArchitectureAmd64:
		return "Amd64"
	case ProcessorArchitectureArm:
		return "Arm"
	default:
		return fmt.Sprintf("ProcessorArchitecture(%d)", int(a))
	}
}

// IsValid returns true if the architecture is a defined value.
func (a ProcessorArchitecture) IsValid() bool {
	return a >= ProcessorArchitectureNone && a <= ProcessorArchitectureArm
}

// parseProcessorArchitecture matches an attribute value case-insensitively
// against the defined architectures.
func parseProcessorArchitecture(text string) (ProcessorArchitecture, bool) {
	for a := ProcessorArchitectureNone; a <= ProcessorArchitectureArm; a++ {
		if strings.EqualFold(text, a.String()) {
			return a, true
		}
	}
	return ProcessorArchitectureNone, false
}

// Identity is the parsed form of a display name. Optional fields are
// pointers; nil means the attribute was not supplied, which the comparison
// engine treats differently from an explicit value.
type Identity struct {
	// Name is the simple name. Required, non-empty, quote/escape-decoded.
	Name string

	// Version is the raw dotted text of the Version attribute. It is not
	// range-validated at parse time; ParseVersion resolves it.
	Version *string

	// Culture is stored verbatim. An explicitly empty culture (Culture="")
	// is a valid neutral value distinct from an unsupplied one.
	Culture *string

	// PublicKeyToken is the lower-cased hex token, or the literal "null"
	// for a weakly named identity. When the display name supplied a
	// PublicKey attribute instead, this holds the derived token.
	PublicKeyToken *string

	// HasPublicKey records that the identity was specified via an explicit
	// public-key blob rather than a token.
	HasPublicKey bool

	// Retargetable is the parsed Retargetable flag, when supplied.
	Retargetable *bool

	// ProcessorArchitecture is the parsed architecture, defaulting to None.
	ProcessorArchitecture ProcessorArchitecture

	// WindowsRuntime records a ContentType=WindowsRuntime attribute.
	WindowsRuntime bool
}

// IsStrongNamed reports whether the identity carries a real public-key
// token. A nil token and the literal "null" both mean weakly named.
func (id Identity) IsStrongNamed() bool {
	return id.PublicKeyToken != nil && *id.PublicKeyToken != "null"
}

// String renders the canonical display name. Only supplied attributes are
// emitted; fields containing delimiters, quotes, or surrounding whitespace
// are quoted and escaped so the result parses back to the same identity.
// A derived token is emitted as PublicKeyToken (the raw key is not
// retained).
func (id Identity) String() string {
	var b strings.Builder
	writeField(&b, id.Name)
	if id.Version != nil {
		b.WriteString(", Version=")
		writeField(&b, *id.Version)
	}
	if id.Culture != nil {
		b.WriteString(", Culture=")
		writeField(&b, *id.Culture)
	}
	if id.PublicKeyToken != nil {
		b.WriteString(", PublicKeyToken=")
		writeField(&b, *id.PublicKeyToken)
	}
	if id.Retargetable != nil {
		if *id.Retargetable {
			b.WriteString(", Retargetable=Yes")
		} else {
			b.WriteString(", Retargetable=No")
		}
	}
	if id.ProcessorArchitecture != ProcessorArchitectureNone {
		b.WriteString(", ProcessorArchitecture=")
		b.WriteString(id.ProcessorArchitecture.String())
	}
	if id.WindowsRuntime {
		b.WriteString(", ContentType=WindowsRuntime")
	}
	return b.String()
}

// writeField emits one display-name field, quoting when the value would
// otherwise be misread: empty values, surrounding whitespace, or any
// delimiter or quote character. Double quotes inside a quoted field are
// escaped with a backslash.
func writeField(b *strings.Builder, value string) {
	if !needsQuoting(value) {
		b.WriteString(value)
		return
	}
	b.WriteByte('"')
	for i := 0; i < len(value); i++ {
		if value[i] == '"' {
			b.WriteByte('\\')
		}
		b.WriteByte(value[i])
	}
	b.WriteByte('"')
}

func needsQuoting(value string) bool {
	if value == "" {
		return true
	}
	if value != strings.TrimSpace(value) {
		return true
	}
	return strings.ContainsAny(value, `,="'`)
}
