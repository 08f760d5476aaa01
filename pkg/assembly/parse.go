package assembly

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/borgdylan/Managed.Reflection/internal/strongname"
)

// TokenDeriver reduces a public-key blob to its 8-byte hex token form. The
// derivation must be deterministic so that equal keys always produce equal
// tokens; the package default is the strong-name scheme implemented by
// internal/strongname.
type TokenDeriver interface {
	DeriveToken(publicKey []byte) string
}

// Attribute keys recognized in a display name, in case-folded form.
// Unrecognized keys still participate in duplicate detection.
const (
	keyVersion               = "version"
	keyCulture               = "culture"
	keyPublicKeyToken        = "publickeytoken"
	keyPublicKey             = "publickey"
	keyRetargetable          = "retargetable"
	keyProcessorArchitecture = "processorarchitecture"
	keyContentType           = "contenttype"
)

// ParseName parses a display name of the form
//
//	SimpleName[, Key=Value]*
//
// into an Identity. Keys are case-insensitive; values may be quoted with
// double or single quotes and backslash-escaped. Errors are ErrSyntax for
// malformed input and ErrDuplicateAttribute for a repeated key.
func ParseName(text string) (Identity, error) {
	return ParseNameWith(text, strongname.New())
}

// ParseNameWith is ParseName with an explicit token deriver, for callers
// that supply their own public-key-to-token capability.
func ParseNameWith(text string, deriver TokenDeriver) (Identity, error) {
	name, pos, err := ParseSimpleName(text)
	if err != nil {
		return Identity{}, err
	}

	id := Identity{Name: name}
	seen := make(map[string]bool)

	// Tokens arriving via PublicKeyToken and via PublicKey derivation are
	// collected separately; when both appear they must agree.
	var suppliedToken, derivedToken *string

	for pos < len(text) {
		if text[pos] != ',' {
			return Identity{}, fmt.Errorf("%w: unexpected %q after field", ErrSyntax, text[pos])
		}
		pos++
		if isBlank(text[pos:]) {
			return Identity{}, fmt.Errorf("%w: trailing comma", ErrSyntax)
		}

		keyField, err := readField(text, pos)
		if err != nil {
			return Identity{}, err
		}
		pos = keyField.pos
		if pos >= len(text) || text[pos] != '=' {
			return Identity{}, fmt.Errorf("%w: expected '=' after attribute key", ErrSyntax)
		}
		if keyField.value == "" {
			return Identity{}, fmt.Errorf("%w: empty attribute key", ErrSyntax)
		}
		pos++

		valueField, err := readField(text, pos)
		if err != nil {
			return Identity{}, err
		}
		pos = valueField.pos
		if pos < len(text) && text[pos] == '=' {
			return Identity{}, fmt.Errorf("%w: unexpected '=' after attribute value", ErrSyntax)
		}
		if valueField.value == "" && !valueField.quoted {
			return Identity{}, fmt.Errorf("%w: empty value for attribute %q", ErrSyntax, keyField.value)
		}

		key := strings.ToLower(keyField.value)
		if seen[key] {
			return Identity{}, fmt.Errorf("%w: %s", ErrDuplicateAttribute, keyField.value)
		}
		seen[key] = true

		value := valueField.value
		switch key {
		case keyVersion:
			id.Version = &value
		case keyCulture:
			id.Culture = &value
		case keyPublicKeyToken:
			token := strings.ToLower(value)
			suppliedToken = &token
		case keyPublicKey:
			token, err := deriveTokenText(value, deriver)
			if err != nil {
				return Identity{}, err
			}
			derivedToken = &token
			id.HasPublicKey = token != "null"
		case keyRetargetable:
			switch strings.ToLower(value) {
			case "yes":
				id.Retargetable = boolPtr(true)
			case "no":
				id.Retargetable = boolPtr(false)
			default:
				return Identity{}, fmt.Errorf("%w: invalid Retargetable value %q", ErrSyntax, value)
			}
		case keyProcessorArchitecture:
			arch, ok := parseProcessorArchitecture(value)
			if !ok {
				return Identity{}, fmt.Errorf("%w: invalid ProcessorArchitecture value %q", ErrSyntax, value)
			}
			id.ProcessorArchitecture = arch
		case keyContentType:
			if !strings.EqualFold(value, "WindowsRuntime") {
				return Identity{}, fmt.Errorf("%w: invalid ContentType value %q", ErrSyntax, value)
			}
			id.WindowsRuntime = true
		default:
			// Unrecognized keys are retained for duplicate detection only.
		}
	}

	switch {
	case suppliedToken != nil && derivedToken != nil:
		if *suppliedToken != *derivedToken {
			return Identity{}, fmt.Errorf("%w: PublicKeyToken does not match the supplied PublicKey", ErrSyntax)
		}
		id.PublicKeyToken = derivedToken
	case derivedToken != nil:
		id.PublicKeyToken = derivedToken
	case suppliedToken != nil:
		id.PublicKeyToken = suppliedToken
	}

	return id, nil
}

// ParseSimpleName reads the leading simple-name field of a display name,
// returning the decoded name and the number of input bytes consumed. The
// consumed count lets callers that embed display names in larger grammars
// continue scanning after the name.
func ParseSimpleName(text string) (string, int, error) {
	field, err := readField(text, 0)
	if err != nil {
		return "", 0, err
	}
	if field.value == "" {
		return "", 0, fmt.Errorf("%w: missing assembly name", ErrSyntax)
	}
	return field.value, field.pos, nil
}

// deriveTokenText reduces the text of a PublicKey attribute to token form.
// The literal null denotes a weakly named identity, same as a null token.
func deriveTokenText(text string, deriver TokenDeriver) (string, error) {
	if strings.EqualFold(text, "null") {
		return "null", nil
	}
	blob, err := hex.DecodeString(strings.ToLower(text))
	if err != nil {
		return "", fmt.Errorf("%w: PublicKey is not a hex blob", ErrSyntax)
	}
	return deriver.DeriveToken(blob), nil
}

// fieldResult is one decoded field plus the scan position after it, which
// sits on a delimiter (',' or '=') or at end of input.
type fieldResult struct {
	value  string
	quoted bool
	pos    int
}

// readField reads one field of a display name starting at pos. A field
// opening with a double or single quote runs to the matching unescaped
// quote and must be followed (after whitespace) by a delimiter or the end
// of input; an unquoted field runs to the next delimiter, in which a raw
// quote character is invalid. In both forms a backslash escapes exactly
// one following character, and a doubled backslash is not part of the
// grammar. The decoded value is whitespace-trimmed.
func readField(text string, pos int) (fieldResult, error) {
	for pos < len(text) && isSpace(text[pos]) {
		pos++
	}

	var b strings.Builder

	if pos < len(text) && isQuote(text[pos]) {
		quote := text[pos]
		pos++
		closed := false
		for pos < len(text) {
			ch := text[pos]
			switch {
			case ch == '\\':
				esc, size := escapedChar(text, pos)
				if size == 0 {
					return fieldResult{}, fmt.Errorf("%w: invalid escape in quoted field", ErrSyntax)
				}
				b.WriteString(esc)
				pos += size
			case ch == quote:
				pos++
				closed = true
			default:
				b.WriteByte(ch)
				pos++
			}
			if closed {
				break
			}
		}
		if !closed {
			return fieldResult{}, fmt.Errorf("%w: unterminated quoted field", ErrSyntax)
		}
		for pos < len(text) && isSpace(text[pos]) {
			pos++
		}
		if pos < len(text) && text[pos] != ',' && text[pos] != '=' {
			return fieldResult{}, fmt.Errorf("%w: unexpected %q after quoted field", ErrSyntax, text[pos])
		}
		return fieldResult{value: trimSpace(b.String()), quoted: true, pos: pos}, nil
	}

	for pos < len(text) {
		ch := text[pos]
		if ch == ',' || ch == '=' {
			break
		}
		switch {
		case ch == '\\':
			esc, size := escapedChar(text, pos)
			if size == 0 {
				return fieldResult{}, fmt.Errorf("%w: invalid escape", ErrSyntax)
			}
			b.WriteString(esc)
			pos += size
		case isQuote(ch):
			return fieldResult{}, fmt.Errorf("%w: quote inside unquoted field", ErrSyntax)
		default:
			b.WriteByte(ch)
			pos++
		}
	}
	return fieldResult{value: trimSpace(b.String()), pos: pos}, nil
}

// escapedChar decodes the escape sequence at text[pos] (a backslash). It
// returns the escaped character and the total bytes consumed, or size 0
// when the escape is invalid (a trailing or doubled backslash).
func escapedChar(text string, pos int) (string, int) {
	if pos+1 >= len(text) {
		return "", 0
	}
	r, size := utf8.DecodeRuneInString(text[pos+1:])
	if r == '\\' {
		return "", 0
	}
	return text[pos+1 : pos+1+size], size + 1
}

func isQuote(ch byte) bool {
	return ch == '"' || ch == '\''
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func isBlank(text string) bool {
	for i := 0; i < len(text); i++ {
		if !isSpace(text[i]) {
			return false
		}
	}
	return true
}

func trimSpace(s string) string {
	return strings.Trim(s, " \t\r\n")
}

func boolPtr(v bool) *bool {
	return &v
}
