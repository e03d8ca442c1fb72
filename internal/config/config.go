package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Input    InputConfig    `yaml:"input" envconfig:"INPUT"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
}

// InputConfig describes the source facilities table
type InputConfig struct {
	File  string `yaml:"file" envconfig:"FILE" validate:"required,datafile"`
	Sheet string `yaml:"sheet" envconfig:"SHEET"`
}

// AnalysisConfig contains tunables for the analysis stages
type AnalysisConfig struct {
	TopFacilityTypes int `yaml:"top_facility_types" envconfig:"TOP_FACILITY_TYPES" validate:"min=1"`
	TopParks         int `yaml:"top_parks" envconfig:"TOP_PARKS" validate:"min=1"`
	PreviewRows      int `yaml:"preview_rows" envconfig:"PREVIEW_ROWS" validate:"min=1"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required"`
}

// PathsConfig contains file system paths configuration.
// BaseDir empty means the current working directory; chart images always
// land directly in the base directory under their fixed names.
type PathsConfig struct {
	BaseDir    string `yaml:"base_dir" envconfig:"BASE_DIR"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

// Load loads configuration from environment variables and config file.
// Environment variables take precedence over the config file; unset fields
// fall back to defaults, so a bare run needs no configuration at all.
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("PARKS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	configFile := getConfigFilePath()
	if configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	// Validate configuration (fills defaults for unset fields)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Input.File == "" {
		envConfig.Input.File = fileConfig.Input.File
	}
	if envConfig.Input.Sheet == "" {
		envConfig.Input.Sheet = fileConfig.Input.Sheet
	}
	if envConfig.Analysis.TopFacilityTypes == 0 {
		envConfig.Analysis.TopFacilityTypes = fileConfig.Analysis.TopFacilityTypes
	}
	if envConfig.Analysis.TopParks == 0 {
		envConfig.Analysis.TopParks = fileConfig.Analysis.TopParks
	}
	if envConfig.Analysis.PreviewRows == 0 {
		envConfig.Analysis.PreviewRows = fileConfig.Analysis.PreviewRows
	}
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Format == "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if envConfig.Logging.Output == "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if envConfig.Paths.BaseDir == "" {
		envConfig.Paths.BaseDir = fileConfig.Paths.BaseDir
	}
	if envConfig.Paths.ReportsDir == "" {
		envConfig.Paths.ReportsDir = fileConfig.Paths.ReportsDir
	}
	if envConfig.Paths.LogsDir == "" {
		envConfig.Paths.LogsDir = fileConfig.Paths.LogsDir
	}

	return envConfig
}

// validate fills defaults for unset fields and validates the result
func (c *Config) validate() error {
	if c.Input.File == "" {
		c.Input.File = DefaultInputFile
	}
	if c.Analysis.TopFacilityTypes == 0 {
		c.Analysis.TopFacilityTypes = 10
	}
	if c.Analysis.TopParks == 0 {
		c.Analysis.TopParks = 15
	}
	if c.Analysis.PreviewRows == 0 {
		c.Analysis.PreviewRows = 5
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		// Keep stdout free for the pipeline's textual diagnostics
		c.Logging.Output = "file"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/park_analysis.log"
	}
	if c.Paths.ReportsDir == "" {
		c.Paths.ReportsDir = "reports"
	}
	if c.Paths.LogsDir == "" {
		c.Paths.LogsDir = "logs"
	}

	v := newValidator()
	if err := v.Struct(c); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		fields := make([]string, 0, len(errs))
		for _, fe := range errs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("invalid fields: %s", strings.Join(fields, ", "))
	}

	return nil
}

// newValidator builds the struct validator with custom rules registered
func newValidator() *validator.Validate {
	v := validator.New()

	// datafile accepts the table formats the loader understands
	v.RegisterValidation("datafile", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(filepath.Ext(fl.Field().String())) {
		case ".csv", ".tsv", ".txt", ".xlsx":
			return true
		}
		return false
	})

	return v
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	// Check for config file in common locations
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Input: InputConfig{
			File: DefaultInputFile,
		},
		Analysis: AnalysisConfig{
			TopFacilityTypes: 10,
			TopParks:         15,
			PreviewRows:      5,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "file",
			FilePath: "logs/park_analysis.log",
		},
		Paths: PathsConfig{
			ReportsDir: "reports",
			LogsDir:    "logs",
		},
	}
}
