package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/borgdylan/Managed.Reflection/internal/ui"
	"github.com/borgdylan/Managed.Reflection/pkg/assembly"
)

// styler renders labeled output, applying lipgloss styles only when the
// resolved settings allow color.
type styler struct {
	enabled bool
}

func (s styler) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

func (s styler) label(text string) string {
	return s.render(ui.LabelStyle, text)
}

func (s styler) outcome(o assembly.ComparisonOutcome) string {
	switch {
	case o.Equivalent():
		return s.render(ui.EquivalentStyle, ui.SymbolEquivalent+" "+o.String())
	case o == assembly.Unknown:
		return s.render(ui.UnknownStyle, ui.SymbolUnknown+" "+o.String())
	default:
		return s.render(ui.NonEquivalentStyle, ui.SymbolNonEquivalent+" "+o.String())
	}
}

// outcomeString styles an already-rendered outcome name, for batch reports
// that carry the name rather than the value.
func (s styler) outcomeString(name string, equivalent bool) string {
	switch {
	case equivalent:
		return s.render(ui.EquivalentStyle, ui.SymbolEquivalent+" "+name)
	case name == assembly.Unknown.String():
		return s.render(ui.UnknownStyle, ui.SymbolUnknown+" "+name)
	default:
		return s.render(ui.NonEquivalentStyle, ui.SymbolNonEquivalent+" "+name)
	}
}

// identityReport is the JSON shape of a parsed identity. Optional fields
// are omitted when unsupplied, mirroring the tri-state record.
type identityReport struct {
	Name                  string  `json:"name"`
	Version               *string `json:"version,omitempty"`
	Culture               *string `json:"culture,omitempty"`
	PublicKeyToken        *string `json:"publicKeyToken,omitempty"`
	HasPublicKey          bool    `json:"hasPublicKey,omitempty"`
	Retargetable          *bool   `json:"retargetable,omitempty"`
	ProcessorArchitecture string  `json:"processorArchitecture,omitempty"`
	WindowsRuntime        bool    `json:"windowsRuntime,omitempty"`
	Canonical             string  `json:"canonical"`
}

func newIdentityReport(id assembly.Identity) identityReport {
	r := identityReport{
		Name:           id.Name,
		Version:        id.Version,
		Culture:        id.Culture,
		PublicKeyToken: id.PublicKeyToken,
		HasPublicKey:   id.HasPublicKey,
		Retargetable:   id.Retargetable,
		WindowsRuntime: id.WindowsRuntime,
		Canonical:      id.String(),
	}
	if id.ProcessorArchitecture != assembly.ProcessorArchitectureNone {
		r.ProcessorArchitecture = id.ProcessorArchitecture.String()
	}
	return r
}

// writeIdentity prints the parsed record field by field, then the
// canonical form. Unsupplied fields print as (unspecified) so partial
// identities are visibly partial.
func writeIdentity(w io.Writer, st styler, id assembly.Identity) {
	opt := func(v *string) string {
		if v == nil {
			return st.render(ui.MutedStyle, "(unspecified)")
		}
		return *v
	}

	fmt.Fprintf(w, "%s %s\n", st.label("Name:"), id.Name)
	fmt.Fprintf(w, "%s %s\n", st.label("Version:"), opt(id.Version))
	fmt.Fprintf(w, "%s %s\n", st.label("Culture:"), opt(id.Culture))
	fmt.Fprintf(w, "%s %s\n", st.label("PublicKeyToken:"), opt(id.PublicKeyToken))
	if id.HasPublicKey {
		fmt.Fprintf(w, "%s %s\n", st.label("PublicKey:"), "supplied (token derived)")
	}
	if id.Retargetable != nil {
		fmt.Fprintf(w, "%s %t\n", st.label("Retargetable:"), *id.Retargetable)
	}
	if id.ProcessorArchitecture != assembly.ProcessorArchitectureNone {
		fmt.Fprintf(w, "%s %s\n", st.label("ProcessorArchitecture:"), id.ProcessorArchitecture)
	}
	if id.WindowsRuntime {
		fmt.Fprintf(w, "%s WindowsRuntime\n", st.label("ContentType:"))
	}
	fmt.Fprintf(w, "%s %s\n", st.label("Canonical:"), id.String())
}
