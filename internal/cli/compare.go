package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/borgdylan/Managed.Reflection/pkg/assembly"
)

var compareCmd = &cobra.Command{
	Use:   "compare <display_name1> <display_name2>",
	Short: "Compare two assembly identities under unification policy",
	Long: `Run the unification engine over two assembly identities.

The engine decides whether the identities refer to compatible components
under side-by-side versioning policy and reports one fine-grained outcome
plus an equivalence summary. Mark a side as pre-unified when a prior
resolution step already unified it; a pre-unified side must carry a full
version, a culture, and a public-key token.

Exits 0 when the identities are equivalent and 20 when the comparison
completed but they are not.

Examples:
  # Exact strong-name match
  asmid compare \
    "MyLib, Version=1.0.0.0, Culture=neutral, PublicKeyToken=b77a5c561934e089" \
    "MyLib, Version=1.0.0.0, Culture=neutral, PublicKeyToken=b77a5c561934e089"

  # Allow the second side to bridge a version gap
  asmid compare "MyLib, Version=1.0.0.0, Culture=neutral, PublicKeyToken=abcdef1234567890" \
    "MyLib, Version=2.0.0.0, Culture=neutral, PublicKeyToken=abcdef1234567890" --unified2

  # Run a YAML batch of comparisons
  asmid compare --batch cases.yaml`,
	RunE: runCompare,
}

var compareFlags struct {
	unified1 bool
	unified2 bool
	json     bool
	batch    string
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().BoolVar(&compareFlags.unified1, "unified1", false, "First identity was already unified by a prior resolution step")
	compareCmd.Flags().BoolVar(&compareFlags.unified2, "unified2", false, "Second identity was already unified by a prior resolution step")
	compareCmd.Flags().BoolVar(&compareFlags.json, "json", false, "Output as JSON")
	compareCmd.Flags().StringVar(&compareFlags.batch, "batch", "", "YAML file with a list of comparison cases")
}

// compareReport is the JSON shape of one comparison result.
type compareReport struct {
	Name1      string `json:"name1" yaml:"name1"`
	Unified1   bool   `json:"unified1,omitempty" yaml:"unified1,omitempty"`
	Name2      string `json:"name2" yaml:"name2"`
	Unified2   bool   `json:"unified2,omitempty" yaml:"unified2,omitempty"`
	Equivalent bool   `json:"equivalent" yaml:"equivalent"`
	Outcome    string `json:"outcome" yaml:"outcome"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

func runCompare(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd, compareFlags.json)
	if err != nil {
		return err
	}

	if compareFlags.batch != "" {
		if len(args) != 0 {
			return fmt.Errorf("--batch takes no positional arguments, received %d", len(args))
		}
		return runCompareBatch(cmd, s)
	}

	if len(args) != 2 {
		return fmt.Errorf(`requires exactly 2 display names, received %d

Usage: %s

Use --batch FILE to compare many pairs at once.`, len(args), cmd.UseLine())
	}

	s.logger.Verbose("comparing %q (unified=%t) against %q (unified=%t)",
		args[0], compareFlags.unified1, args[1], compareFlags.unified2)

	equivalent, outcome, err := assembly.CompareIdentity(
		args[0], compareFlags.unified1, args[1], compareFlags.unified2)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if s.jsonOutput {
		report := compareReport{
			Name1:      args[0],
			Unified1:   compareFlags.unified1,
			Name2:      args[1],
			Unified2:   compareFlags.unified2,
			Equivalent: equivalent,
			Outcome:    outcome.String(),
		}
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	} else {
		st := styler{enabled: s.color}
		fmt.Fprintf(out, "%s %s\n", st.label("Outcome:"), st.outcome(outcome))
		fmt.Fprintf(out, "%s %t\n", st.label("Equivalent:"), equivalent)
	}

	if !equivalent {
		return ErrNonEquivalent
	}
	return nil
}

// batchCase is one comparison in a --batch file.
type batchCase struct {
	Name1    string `yaml:"name1"`
	Unified1 bool   `yaml:"unified1"`
	Name2    string `yaml:"name2"`
	Unified2 bool   `yaml:"unified2"`
}

func runCompareBatch(cmd *cobra.Command, s *settings) error {
	data, err := os.ReadFile(compareFlags.batch)
	if err != nil {
		return fmt.Errorf("reading batch file: %w", err)
	}

	var cases []batchCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return fmt.Errorf("invalid batch file %s: %w", compareFlags.batch, err)
	}
	if len(cases) == 0 {
		return fmt.Errorf("batch file %s contains no cases", compareFlags.batch)
	}

	s.logger.Verbose("running %d comparison cases from %s", len(cases), compareFlags.batch)

	reports := make([]compareReport, 0, len(cases))
	var failed int
	for _, c := range cases {
		report := compareReport{
			Name1:    c.Name1,
			Unified1: c.Unified1,
			Name2:    c.Name2,
			Unified2: c.Unified2,
		}
		equivalent, outcome, err := assembly.CompareIdentity(c.Name1, c.Unified1, c.Name2, c.Unified2)
		if err != nil {
			report.Error = err.Error()
			failed++
		} else {
			report.Equivalent = equivalent
			report.Outcome = outcome.String()
		}
		reports = append(reports, report)
	}

	out := cmd.OutOrStdout()
	if s.jsonOutput {
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	} else {
		writeBatchText(out, styler{enabled: s.color}, reports)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(cases))
	}
	return nil
}

func writeBatchText(w io.Writer, st styler, reports []compareReport) {
	var equivalent int
	for i, r := range reports {
		fmt.Fprintf(w, "%s %q vs %q\n", st.label(fmt.Sprintf("[%d]", i+1)), r.Name1, r.Name2)
		if r.Error != "" {
			fmt.Fprintf(w, "    error: %s\n", r.Error)
			continue
		}
		fmt.Fprintf(w, "    %s\n", st.outcomeString(r.Outcome, r.Equivalent))
		if r.Equivalent {
			equivalent++
		}
	}
	fmt.Fprintf(w, "%s %d/%d equivalent\n", st.label("Summary:"), equivalent, len(reports))
}
