package ui

import (
	"testing"
)

func TestDetectMode_ASMID_NON_INTERACTIVE(t *testing.T) {
	t.Setenv("ASMID_NON_INTERACTIVE", "1")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")

	if got := DetectMode(); got != ModeNonInteractive {
		t.Errorf("DetectMode() = %d, want ModeNonInteractive", got)
	}
}

func TestDetectMode_CI(t *testing.T) {
	t.Setenv("ASMID_NON_INTERACTIVE", "")
	t.Setenv("CI", "true")
	t.Setenv("NO_COLOR", "")

	if got := DetectMode(); got != ModeNonInteractive {
		t.Errorf("DetectMode() = %d, want ModeNonInteractive", got)
	}
}

func TestDetectMode_NO_COLOR(t *testing.T) {
	t.Setenv("ASMID_NON_INTERACTIVE", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "1")

	if got := DetectMode(); got != ModeNonInteractive {
		t.Errorf("DetectMode() = %d, want ModeNonInteractive", got)
	}
}

func TestDetectMode_NoTerminal(t *testing.T) {
	// In test context, stdout is not a terminal
	t.Setenv("ASMID_NON_INTERACTIVE", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")

	if got := DetectMode(); got != ModeNonInteractive {
		t.Errorf("DetectMode() = %d, want ModeNonInteractive (no terminal in test)", got)
	}
}

func TestUseColor_Always(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if !UseColor("always") {
		t.Error("UseColor(always) = false, want true even under NO_COLOR")
	}
}

func TestUseColor_Never(t *testing.T) {
	t.Setenv("ASMID_NON_INTERACTIVE", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")

	if UseColor("never") {
		t.Error("UseColor(never) = true, want false")
	}
}

func TestUseColor_AutoFollowsDetection(t *testing.T) {
	t.Setenv("ASMID_NON_INTERACTIVE", "1")

	if UseColor("auto") {
		t.Error("UseColor(auto) = true under ASMID_NON_INTERACTIVE, want false")
	}
}
