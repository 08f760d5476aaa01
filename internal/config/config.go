package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Output and color mode values accepted in the config file and environment.
const (
	OutputText = "text"
	OutputJSON = "json"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Environment variables recognized by Resolve. They override the config
// file and are overridden by explicit flags.
const (
	EnvOutput  = "ASMID_OUTPUT"
	EnvColor   = "ASMID_COLOR"
	EnvVerbose = "ASMID_VERBOSE"
)

const ConfigFileName = "asmid.yaml"

// ToolConfig is the optional asmid.yaml configuration. All fields have
// working defaults; the file only narrows them.
type ToolConfig struct {
	Output  string `yaml:"output"`
	Color   string `yaml:"color"`
	Verbose bool   `yaml:"verbose"`
}

// Default returns the configuration used when no file is present.
func Default() *ToolConfig {
	return &ToolConfig{Output: OutputText, Color: ColorAuto}
}

// Load reads asmid.yaml from dir. A missing file is ErrConfigNotFound;
// callers normally fall back to Default on it.
func Load(dir string) (*ToolConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigFileName, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigFileName, err)
	}
	return cfg, nil
}

// Resolve produces the effective configuration for the current working
// directory: defaults, then asmid.yaml, then a .env file, then process
// environment variables. Flags are applied on top by the CLI layer.
// Invalid environment values are reported, not silently ignored.
func Resolve() (*ToolConfig, error) {
	cfg, err := Load(".")
	if errors.Is(err, ErrConfigNotFound) {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}

	// .env values only fill unset process environment, matching godotenv's
	// non-overload behavior.
	_ = godotenv.Load()

	if v := os.Getenv(EnvOutput); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv(EnvColor); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q", EnvVerbose, v)
		}
		cfg.Verbose = verbose
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *ToolConfig) validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, c.Output)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be %q, %q, or %q, got %q",
			ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	return nil
}
