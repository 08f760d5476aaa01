package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/borgdylan/Managed.Reflection/internal/config"
	"github.com/borgdylan/Managed.Reflection/internal/logging"
	"github.com/borgdylan/Managed.Reflection/internal/ui"
)

const asciiLogo = `                    _     _
  __ _ ___ _ __ ___ (_) __| |
 / _` + "`" + ` / __| '_ ` + "`" + ` _ \| |/ _` + "`" + ` |
| (_| \__ \ | | | | | | (_| |
 \__,_|___/_| |_| |_|_|\__,_|`

var rootCmd = &cobra.Command{
	Use:   "asmid",
	Short: "Assembly identity inspection tool",
	Long: asciiLogo + `

asmid parses, formats, classifies, and compares assembly identities in the
display-name grammar:

  MyLib, Version=1.2.0.0, Culture=neutral, PublicKeyToken=b77a5c561934e089

The compare command runs the full unification engine: retargetable
references, framework-assembly version unification, and historical
public-key-token remaps all participate in the decision.

Exit Codes:
  0  - Success (compare: identities are equivalent)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Malformed display name
  11 - Duplicate attribute key
  12 - Identities violate a comparison precondition
  20 - Comparison completed, identities not equivalent`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for asmid")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable styled output")
}

// settings is the effective tool configuration for one command run,
// resolved from asmid.yaml, the environment, and flags, in ascending
// precedence.
type settings struct {
	jsonOutput bool
	color      bool
	verbose    bool
	logger     logging.Logger
}

// resolveSettings merges the configuration sources for a command. jsonFlag
// carries the command's --json flag value when the command has one.
func resolveSettings(cmd *cobra.Command, jsonFlag bool) (*settings, error) {
	cfg, err := config.Resolve()
	if err != nil {
		return nil, err
	}

	s := &settings{
		jsonOutput: cfg.Output == config.OutputJSON || jsonFlag,
		color:      ui.UseColor(cfg.Color),
		verbose:    cfg.Verbose || getVerboseFlag(cmd),
	}
	if noColor, err := cmd.Root().PersistentFlags().GetBool("no-color"); err == nil && noColor {
		s.color = false
	}
	s.logger = logging.NewConsoleLogger(s.verbose)
	return s, nil
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// requireDisplayName validates that exactly one display_name argument is
// provided, with a helpful message when it is missing.
func requireDisplayName(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <display_name>

Usage: %s

Example:
  %s "MyLib, Version=1.0.0.0, Culture=neutral, PublicKeyToken=b77a5c561934e089"`,
			cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// ErrNonEquivalent is returned by the compare command when the comparison
// completed and the identities are not equivalent. The binary maps it to
// its own exit code, distinct from the error ladder.
var ErrNonEquivalent = errors.New("identities are not equivalent")
