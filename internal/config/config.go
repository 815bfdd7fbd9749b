package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig locates the tabular source file
type InputConfig struct {
	Path string `yaml:"path" envconfig:"PATH" validate:"required"`
}

// OutputConfig names the artifacts written by a successful run
type OutputConfig struct {
	Dir         string `yaml:"dir" envconfig:"DIR" validate:"required"`
	CleanedFile string `yaml:"cleaned_file" envconfig:"CLEANED_FILE" validate:"required"`
	ReportFile  string `yaml:"report_file" envconfig:"REPORT_FILE" validate:"required"`
	SummaryJSON string `yaml:"summary_json" envconfig:"SUMMARY_JSON"`
	ExcelBOM    bool   `yaml:"excel_bom" envconfig:"EXCEL_BOM"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Default returns the configuration used when neither file nor environment
// overrides a value.
func Default() Config {
	return Config{
		Input: InputConfig{
			Path: "students.csv",
		},
		Output: OutputConfig{
			Dir:         ".",
			CleanedFile: "students_cleaned.csv",
			ReportFile:  "summary.txt",
			SummaryJSON: "summary.json",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "console",
			FilePath: filepath.Join("logs", "explorer.log"),
		},
	}
}

// Load builds the configuration by layering, lowest precedence first:
// defaults, the optional YAML file, then SDE_-prefixed environment
// variables. An empty configFile skips the file layer.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if err := loadFromFile(configFile, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process("SDE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays configuration from a YAML file
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate checks the configuration against its struct tags
func (c *Config) validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}
	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		return fmt.Errorf("logging.file_path required when logging.output is %q", c.Logging.Output)
	}
	return nil
}

// CleanedPath returns the full path of the cleaned dataset artifact
func (c *Config) CleanedPath() string {
	return filepath.Join(c.Output.Dir, c.Output.CleanedFile)
}

// ReportPath returns the full path of the text report artifact
func (c *Config) ReportPath() string {
	return filepath.Join(c.Output.Dir, c.Output.ReportFile)
}

// SummaryJSONPath returns the full path of the JSON summary artifact
func (c *Config) SummaryJSONPath() string {
	return filepath.Join(c.Output.Dir, c.Output.SummaryJSON)
}
