package ui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for asmid output.
type Mode int

const (
	// ModeNonInteractive is used for CI/CD pipelines, scripts, and piped
	// output: plain text, no styling.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// DetectMode determines whether asmid should style its output.
//
// Returns ModeNonInteractive if:
//   - ASMID_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - stdout is not a terminal (piped output)
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv("ASMID_NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// UseColor resolves a color mode string ("auto", "always", "never") against
// the detected interaction mode.
func UseColor(colorMode string) bool {
	switch colorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		return DetectMode() == ModeInteractive
	}
}
