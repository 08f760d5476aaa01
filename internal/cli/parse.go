package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/borgdylan/Managed.Reflection/pkg/assembly"
)

var parseCmd = &cobra.Command{
	Use:   "parse <display_name>",
	Short: "Parse an assembly display name",
	Long: `Parse an assembly display name and print the decoded identity record.

The display name follows the grammar SimpleName[, Key=Value]* with keys
Version, Culture, PublicKeyToken, PublicKey, Retargetable,
ProcessorArchitecture, and ContentType. Values may be quoted with double or
single quotes and backslash-escaped.

Examples:
  # Parse a strong-named identity
  asmid parse "MyLib, Version=1.0.0.0, Culture=neutral, PublicKeyToken=b77a5c561934e089"

  # Quoted values keep delimiters literal
  asmid parse "'My, Lib', Culture=neutral"

  # Machine-readable output
  asmid parse "MyLib, Version=1.0.0.0" --json`,
	Args: requireDisplayName,
	RunE: runParse,
}

var parseJSON bool

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Output as JSON")
}

func runParse(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd, parseJSON)
	if err != nil {
		return err
	}

	s.logger.Verbose("parsing display name: %s", args[0])
	id, err := assembly.ParseName(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if s.jsonOutput {
		data, err := json.MarshalIndent(newIdentityReport(id), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	writeIdentity(out, styler{enabled: s.color}, id)
	return nil
}
