package assembly

// Well-known public-key tokens, one per framework generation.
const (
	// PublicKeyTokenECMA signs the base runtime library and the
	// runtime-adjacent core assemblies.
	PublicKeyTokenECMA = "b77a5c561934e089"

	// PublicKeyTokenMicrosoft signs the classic desktop assemblies
	// (compilers, configuration, drawing, web).
	PublicKeyTokenMicrosoft = "b03f5f7f11d50a3a"

	// PublicKeyTokenWinFX signs the presentation and workflow assemblies.
	PublicKeyTokenWinFX = "31bf3856ad364e35"

	// PublicKeyTokenNetStandard signs the netstandard facade.
	PublicKeyTokenNetStandard = "cc7b13ffcd2ddd51"

	// PublicKeyTokenPortable signs the portable platform core assemblies
	// that unify to desktop tokens under the remap policy.
	PublicKeyTokenPortable = "7cec85d7bea7798e"
)

// frameworkCatalog maps each framework assembly name to the token mandated
// for its generation. Membership alone never classifies: an identity
// presenting a different token is deliberately not a framework assembly, so
// a third-party assembly that reuses a well-known simple name keeps its own
// versioning instead of being unified. Name lookup is exact; the grammar's
// case-insensitive name comparison does not extend to the catalog.
//
// New platform releases are accommodated by touching this table only.
var frameworkCatalog = map[string]string{
	// Runtime-adjacent core assemblies.
	"mscorlib":                        PublicKeyTokenECMA,
	"System":                          PublicKeyTokenECMA,
	"System.Core":                     PublicKeyTokenECMA,
	"System.Data":                     PublicKeyTokenECMA,
	"System.Data.DataSetExtensions":   PublicKeyTokenECMA,
	"System.Data.Linq":                PublicKeyTokenECMA,
	"System.Data.OracleClient":        PublicKeyTokenECMA,
	"System.Data.Services":            PublicKeyTokenECMA,
	"System.Data.Services.Client":     PublicKeyTokenECMA,
	"System.IdentityModel":            PublicKeyTokenECMA,
	"System.IdentityModel.Selectors":  PublicKeyTokenECMA,
	"System.IO.Compression":           PublicKeyTokenECMA,
	"System.IO.Compression.FileSystem": PublicKeyTokenECMA,
	"System.Numerics":                 PublicKeyTokenECMA,
	"System.Runtime.Remoting":         PublicKeyTokenECMA,
	"System.Runtime.Serialization":    PublicKeyTokenECMA,
	"System.Security":                 PublicKeyTokenECMA,
	"System.ServiceModel":             PublicKeyTokenECMA,
	"System.Transactions":             PublicKeyTokenECMA,
	"System.Windows.Forms":            PublicKeyTokenECMA,
	"System.Xml":                      PublicKeyTokenECMA,
	"System.Xml.Linq":                 PublicKeyTokenECMA,

	// Classic desktop assemblies.
	"Accessibility":                          PublicKeyTokenMicrosoft,
	"Microsoft.CSharp":                       PublicKeyTokenMicrosoft,
	"Microsoft.JScript":                      PublicKeyTokenMicrosoft,
	"Microsoft.VisualBasic":                  PublicKeyTokenMicrosoft,
	"Microsoft.VisualC":                      PublicKeyTokenMicrosoft,
	"System.ComponentModel.Composition":      PublicKeyTokenMicrosoft,
	"System.ComponentModel.DataAnnotations":  PublicKeyTokenMicrosoft,
	"System.Configuration":                   PublicKeyTokenMicrosoft,
	"System.Configuration.Install":           PublicKeyTokenMicrosoft,
	"System.Design":                          PublicKeyTokenMicrosoft,
	"System.DirectoryServices":               PublicKeyTokenMicrosoft,
	"System.DirectoryServices.Protocols":     PublicKeyTokenMicrosoft,
	"System.Drawing":                         PublicKeyTokenMicrosoft,
	"System.Drawing.Design":                  PublicKeyTokenMicrosoft,
	"System.EnterpriseServices":              PublicKeyTokenMicrosoft,
	"System.Management":                      PublicKeyTokenMicrosoft,
	"System.Messaging":                       PublicKeyTokenMicrosoft,
	"System.Net":                             PublicKeyTokenMicrosoft,
	"System.Net.Http":                        PublicKeyTokenMicrosoft,
	"System.Runtime.Serialization.Formatters.Soap": PublicKeyTokenMicrosoft,
	"System.ServiceProcess":                  PublicKeyTokenMicrosoft,
	"System.Web":                             PublicKeyTokenMicrosoft,
	"System.Web.Abstractions":                PublicKeyTokenMicrosoft,
	"System.Web.ApplicationServices":         PublicKeyTokenMicrosoft,
	"System.Web.DynamicData":                 PublicKeyTokenMicrosoft,
	"System.Web.Extensions":                  PublicKeyTokenMicrosoft,
	"System.Web.Mobile":                      PublicKeyTokenMicrosoft,
	"System.Web.RegularExpressions":          PublicKeyTokenMicrosoft,
	"System.Web.Routing":                     PublicKeyTokenMicrosoft,
	"System.Web.Services":                    PublicKeyTokenMicrosoft,
	"System.Windows.Forms.DataVisualization": PublicKeyTokenMicrosoft,
	"System.Xaml":                            PublicKeyTokenMicrosoft,

	// Presentation and workflow assemblies.
	"PresentationCore":                PublicKeyTokenWinFX,
	"PresentationFramework":           PublicKeyTokenWinFX,
	"PresentationFramework.Aero":      PublicKeyTokenWinFX,
	"PresentationFramework.Classic":   PublicKeyTokenWinFX,
	"PresentationFramework.Luna":      PublicKeyTokenWinFX,
	"PresentationFramework.Royale":    PublicKeyTokenWinFX,
	"PresentationUI":                  PublicKeyTokenWinFX,
	"ReachFramework":                  PublicKeyTokenWinFX,
	"System.Printing":                 PublicKeyTokenWinFX,
	"System.ServiceModel.Web":         PublicKeyTokenWinFX,
	"System.Speech":                   PublicKeyTokenWinFX,
	"System.Windows.Presentation":     PublicKeyTokenWinFX,
	"System.Workflow.Activities":      PublicKeyTokenWinFX,
	"System.Workflow.ComponentModel":  PublicKeyTokenWinFX,
	"System.Workflow.Runtime":         PublicKeyTokenWinFX,
	"System.WorkflowServices":         PublicKeyTokenWinFX,
	"System.Xaml.Hosting":             PublicKeyTokenWinFX,
	"UIAutomationClient":              PublicKeyTokenWinFX,
	"UIAutomationClientsideProviders": PublicKeyTokenWinFX,
	"UIAutomationProvider":            PublicKeyTokenWinFX,
	"UIAutomationTypes":               PublicKeyTokenWinFX,
	"WindowsBase":                     PublicKeyTokenWinFX,
	"WindowsFormsIntegration":         PublicKeyTokenWinFX,

	// Cross-platform facade.
	"netstandard": PublicKeyTokenNetStandard,
}

// IsFrameworkAssembly reports whether the identity names a framework
// assembly and presents the public-key token mandated for its generation.
func IsFrameworkAssembly(id Identity) bool {
	if id.PublicKeyToken == nil {
		return false
	}
	token, ok := frameworkCatalog[id.Name]
	return ok && token == *id.PublicKeyToken
}

// FrameworkToken returns the token mandated for a framework assembly name,
// with ok=false for names outside the catalog. Lookup is exact.
func FrameworkToken(name string) (string, bool) {
	token, ok := frameworkCatalog[name]
	return token, ok
}
