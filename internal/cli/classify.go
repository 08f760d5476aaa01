package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/borgdylan/Managed.Reflection/pkg/assembly"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <display_name>",
	Short: "Classify an identity against the framework-assembly catalog",
	Long: `Check whether an identity names a framework assembly.

A name classifies only when it appears in the catalog for its public-key
token generation AND presents the token mandated for that generation. A
catalog name carrying a different token is deliberately not a framework
assembly, so third-party assemblies that reuse a well-known simple name
keep their own versioning.

Examples:
  asmid classify "System.Xml, PublicKeyToken=b77a5c561934e089"
  asmid classify "System.Xml, PublicKeyToken=1234567812345678"
  asmid classify netstandard`,
	Args: requireDisplayName,
	RunE: runClassify,
}

var classifyJSON bool

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Output as JSON")
}

// eraName labels the catalog generation a mandated token belongs to.
func eraName(token string) string {
	switch token {
	case assembly.PublicKeyTokenECMA:
		return "runtime core"
	case assembly.PublicKeyTokenMicrosoft:
		return "classic desktop"
	case assembly.PublicKeyTokenWinFX:
		return "presentation/workflow"
	case assembly.PublicKeyTokenNetStandard:
		return "cross-platform facade"
	default:
		return "unknown"
	}
}

type classifyReport struct {
	Name              string `json:"name"`
	InCatalog         bool   `json:"inCatalog"`
	Era               string `json:"era,omitempty"`
	MandatedToken     string `json:"mandatedToken,omitempty"`
	PresentedToken    string `json:"presentedToken,omitempty"`
	FrameworkAssembly bool   `json:"frameworkAssembly"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd, classifyJSON)
	if err != nil {
		return err
	}

	id, err := assembly.ParseName(args[0])
	if err != nil {
		return err
	}

	report := classifyReport{
		Name:              id.Name,
		FrameworkAssembly: assembly.IsFrameworkAssembly(id),
	}
	if token, ok := assembly.FrameworkToken(id.Name); ok {
		report.InCatalog = true
		report.MandatedToken = token
		report.Era = eraName(token)
	}
	if id.PublicKeyToken != nil {
		report.PresentedToken = *id.PublicKeyToken
	}

	out := cmd.OutOrStdout()
	if s.jsonOutput {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	st := styler{enabled: s.color}
	fmt.Fprintf(out, "%s %s\n", st.label("Name:"), report.Name)
	if !report.InCatalog {
		fmt.Fprintf(out, "%s not in the framework catalog\n", st.label("Catalog:"))
		return nil
	}
	fmt.Fprintf(out, "%s %s era\n", st.label("Catalog:"), report.Era)
	fmt.Fprintf(out, "%s %s\n", st.label("Mandated token:"), report.MandatedToken)
	if report.PresentedToken == "" {
		fmt.Fprintf(out, "%s (none)\n", st.label("Presented token:"))
	} else {
		fmt.Fprintf(out, "%s %s\n", st.label("Presented token:"), report.PresentedToken)
	}
	fmt.Fprintf(out, "%s %t\n", st.label("Framework assembly:"), report.FrameworkAssembly)
	return nil
}
