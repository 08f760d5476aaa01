package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/borgdylan/Managed.Reflection/pkg/assembly"
)

func resetCompareFlags() {
	compareFlags.unified1 = false
	compareFlags.unified2 = false
	compareFlags.json = false
	compareFlags.batch = ""
}

// captureOutput runs fn with the command's output redirected to a buffer.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	t.Setenv("ASMID_NON_INTERACTIVE", "1")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	defer rootCmd.SetOut(nil)
	for _, c := range rootCmd.Commands() {
		c.SetOut(&buf)
		defer c.SetOut(nil)
	}
	err := fn()
	return buf.String(), err
}

func TestParseCmd_ArgsValidation(t *testing.T) {
	err := parseCmd.Args(parseCmd, []string{})
	if err == nil {
		t.Fatal("Expected error for missing args")
	}
	err = parseCmd.Args(parseCmd, []string{"a", "b"})
	if err == nil {
		t.Fatal("Expected error for too many args")
	}
}

func TestParseCmd_Text(t *testing.T) {
	parseJSON = false
	out, err := captureOutput(t, func() error {
		return runParse(parseCmd, []string{"MyLib, Version=1.0.0.0, Culture=neutral, PublicKeyToken=abcdef1234567890"})
	})
	if err != nil {
		t.Fatalf("runParse failed: %v", err)
	}
	for _, want := range []string{"MyLib", "1.0.0.0", "neutral", "abcdef1234567890", "Canonical:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestParseCmd_JSON(t *testing.T) {
	parseJSON = true
	defer func() { parseJSON = false }()

	out, err := captureOutput(t, func() error {
		return runParse(parseCmd, []string{"MyLib, Version=1.0.0.0"})
	})
	if err != nil {
		t.Fatalf("runParse failed: %v", err)
	}

	var report identityReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if report.Name != "MyLib" {
		t.Errorf("name = %q, want MyLib", report.Name)
	}
	if report.Version == nil || *report.Version != "1.0.0.0" {
		t.Errorf("version = %v, want 1.0.0.0", report.Version)
	}
	if report.Culture != nil {
		t.Errorf("culture should be omitted when unsupplied, got %v", *report.Culture)
	}
	if report.Canonical != "MyLib, Version=1.0.0.0" {
		t.Errorf("canonical = %q", report.Canonical)
	}
}

func TestParseCmd_SyntaxErrorExitCode(t *testing.T) {
	_, err := captureOutput(t, func() error {
		return runParse(parseCmd, []string{`MyLib, Culture="neutral`})
	})
	if err == nil {
		t.Fatal("Expected error for unterminated quote")
	}
	if got := assembly.ExitCodeForError(err); got != assembly.ExitSyntaxError {
		t.Errorf("exit code = %d, want %d", got, assembly.ExitSyntaxError)
	}
}

func TestParseCmd_DuplicateAttributeExitCode(t *testing.T) {
	_, err := captureOutput(t, func() error {
		return runParse(parseCmd, []string{"MyLib, Version=1.0.0.0, Version=2.0.0.0"})
	})
	if !errors.Is(err, assembly.ErrDuplicateAttribute) {
		t.Fatalf("Expected ErrDuplicateAttribute, got: %v", err)
	}
	if got := assembly.ExitCodeForError(err); got != assembly.ExitDuplicateAttribute {
		t.Errorf("exit code = %d, want %d", got, assembly.ExitDuplicateAttribute)
	}
}

func TestCompareCmd_Equivalent(t *testing.T) {
	resetCompareFlags()
	name := "MyLib, Version=1.0.0.0, Culture=neutral, PublicKeyToken=abcdef1234567890"

	out, err := captureOutput(t, func() error {
		return runCompare(compareCmd, []string{name, name})
	})
	if err != nil {
		t.Fatalf("runCompare failed: %v", err)
	}
	if !strings.Contains(out, "EquivalentFullMatch") {
		t.Errorf("output missing outcome:\n%s", out)
	}
}

func TestCompareCmd_NonEquivalentError(t *testing.T) {
	resetCompareFlags()
	_, err := captureOutput(t, func() error {
		return runCompare(compareCmd, []string{
			"LibA, Version=1.0.0.0, Culture=neutral, PublicKeyToken=abcdef1234567890",
			"LibB, Version=1.0.0.0, Culture=neutral, PublicKeyToken=abcdef1234567890",
		})
	})
	if !errors.Is(err, ErrNonEquivalent) {
		t.Fatalf("Expected ErrNonEquivalent, got: %v", err)
	}
}

func TestCompareCmd_WrongArgCount(t *testing.T) {
	resetCompareFlags()
	_, err := captureOutput(t, func() error {
		return runCompare(compareCmd, []string{"OnlyOne"})
	})
	if err == nil {
		t.Fatal("Expected error for single argument")
	}
}

func TestCompareCmd_Unified2BridgesVersions(t *testing.T) {
	resetCompareFlags()
	compareFlags.unified2 = true
	compareFlags.json = true

	out, err := captureOutput(t, func() error {
		return runCompare(compareCmd, []string{
			"MyLib, Version=1.0.0.0, Culture=neutral, PublicKeyToken=abcdef1234567890",
			"MyLib, Version=2.0.0.0, Culture=neutral, PublicKeyToken=abcdef1234567890",
		})
	})
	if err != nil {
		t.Fatalf("runCompare failed: %v", err)
	}

	var report compareReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if !report.Equivalent || report.Outcome != "EquivalentUnified" {
		t.Errorf("got equivalent=%t outcome=%s, want EquivalentUnified", report.Equivalent, report.Outcome)
	}
}

func TestCompareCmd_Batch(t *testing.T) {
	resetCompareFlags()
	dir := t.TempDir()
	batch := filepath.Join(dir, "cases.yaml")
	content := `- name1: "MyLib, Version=1.0.0.0, Culture=neutral, PublicKeyToken=abcdef1234567890"
  name2: "MyLib, Version=1.0.0.0, Culture=neutral, PublicKeyToken=abcdef1234567890"
- name1: "MyLib"
  name2: "OtherLib"
`
	if err := os.WriteFile(batch, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	compareFlags.batch = batch

	out, err := captureOutput(t, func() error {
		return runCompare(compareCmd, nil)
	})
	if err != nil {
		t.Fatalf("runCompare --batch failed: %v", err)
	}
	if !strings.Contains(out, "1/2 equivalent") {
		t.Errorf("output missing summary:\n%s", out)
	}
}

func TestCompareCmd_BatchWithUnreadableCase(t *testing.T) {
	resetCompareFlags()
	dir := t.TempDir()
	batch := filepath.Join(dir, "cases.yaml")
	content := `- name1: "MyLib, Version=1.0.0.0, Version=2.0.0.0"
  name2: "MyLib"
`
	if err := os.WriteFile(batch, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	compareFlags.batch = batch

	out, err := captureOutput(t, func() error {
		return runCompare(compareCmd, nil)
	})
	if err == nil {
		t.Fatal("Expected error when a batch case fails")
	}
	if !strings.Contains(out, "error:") {
		t.Errorf("output missing per-case error:\n%s", out)
	}
}

func TestCompareCmd_BatchMissingFile(t *testing.T) {
	resetCompareFlags()
	compareFlags.batch = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := captureOutput(t, func() error {
		return runCompare(compareCmd, nil)
	})
	if err == nil {
		t.Fatal("Expected error for missing batch file")
	}
}

func TestClassifyCmd_FrameworkAssembly(t *testing.T) {
	classifyJSON = true
	defer func() { classifyJSON = false }()

	out, err := captureOutput(t, func() error {
		return runClassify(classifyCmd, []string{"System.Xml, PublicKeyToken=b77a5c561934e089"})
	})
	if err != nil {
		t.Fatalf("runClassify failed: %v", err)
	}

	var report classifyReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if !report.InCatalog || !report.FrameworkAssembly {
		t.Errorf("System.Xml with ECMA token should classify: %+v", report)
	}
	if report.Era != "runtime core" {
		t.Errorf("era = %q, want runtime core", report.Era)
	}
}

func TestClassifyCmd_WrongTokenDoesNotClassify(t *testing.T) {
	classifyJSON = true
	defer func() { classifyJSON = false }()

	out, err := captureOutput(t, func() error {
		return runClassify(classifyCmd, []string{"System.Xml, PublicKeyToken=1234567812345678"})
	})
	if err != nil {
		t.Fatalf("runClassify failed: %v", err)
	}

	var report classifyReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if !report.InCatalog {
		t.Error("System.Xml should be in the catalog")
	}
	if report.FrameworkAssembly {
		t.Error("wrong token must not classify as a framework assembly")
	}
}

func TestClassifyCmd_NotInCatalog(t *testing.T) {
	out, err := captureOutput(t, func() error {
		return runClassify(classifyCmd, []string{"MyCompany.MyLib"})
	})
	if err != nil {
		t.Fatalf("runClassify failed: %v", err)
	}
	if !strings.Contains(out, "not in the framework catalog") {
		t.Errorf("output missing catalog miss:\n%s", out)
	}
}
