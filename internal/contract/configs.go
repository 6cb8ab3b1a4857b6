package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/huangsam/pipelog/schema"
)

// Default values for tunable settings.
const (
	// DefaultResultLimit is the default number of rows shown in tables.
	DefaultResultLimit = 10

	// DefaultPrecision is the default decimal precision for numeric columns.
	DefaultPrecision = 2
)

// Config holds the validated runtime configuration for a command invocation.
type Config struct {
	LogPath    string            // Path to the log file under analysis
	Query      string            // Search term for the search mode
	Output     schema.OutputMode // Output format
	OutputFile string            // Optional path to write output to; "" means stdout
	Limit      int               // Number of rows to display in tables
	Precision  int               // Decimal precision for numeric columns
	Width      int               // Terminal width override; 0 means auto-detect
	Color      bool              // Whether to colorize table labels
}

// Clone returns a shallow copy so per-request overrides (e.g. from MCP tool
// calls) never mutate the base configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct; positional arguments
// are filled in by the command layer.
type ConfigRawInput struct {
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Limit      int    `mapstructure:"limit"`
	Precision  int    `mapstructure:"precision"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`

	// Positional arguments, never sourced from Viper.
	LogPathStr string `mapstructure:"-"`
	QueryStr   string `mapstructure:"-"`
}

// ProcessAndValidate turns raw input into a validated Config. It fails fast
// on any value the rest of the program cannot work with.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	output := schema.OutputMode(input.Output)
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode: %s (expected text, csv, json or parquet)", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	if input.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d", input.Limit)
	}
	cfg.Limit = input.Limit

	if input.Precision < 0 {
		return fmt.Errorf("precision cannot be negative, got %d", input.Precision)
	}
	cfg.Precision = input.Precision

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative, got %d", input.Width)
	}
	cfg.Width = input.Width

	useColor, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.Color = useColor
	color.NoColor = !useColor

	if input.LogPathStr != "" {
		info, err := os.Stat(input.LogPathStr)
		if err != nil {
			return fmt.Errorf("log file does not exist: %s", input.LogPathStr)
		}
		if info.IsDir() {
			return fmt.Errorf("log path is a directory, not a file: %s", input.LogPathStr)
		}
	}
	cfg.LogPath = input.LogPathStr
	cfg.Query = input.QueryStr

	return nil
}
