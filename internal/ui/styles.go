package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Styles for command output.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// LabelStyle dims field labels so values stand out.
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// EquivalentStyle marks comparison outcomes that count as equivalent.
	EquivalentStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// NonEquivalentStyle marks outcomes that do not.
	NonEquivalentStyle = lipgloss.NewStyle().
				Foreground(ColorError)

	// UnknownStyle marks the Unknown outcome, where policy cannot decide.
	UnknownStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Symbols for visual feedback.
const (
	SymbolEquivalent    = "✓"
	SymbolNonEquivalent = "✗"
	SymbolUnknown       = "?"
	SymbolBullet        = "•"
)
