package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests the Load function with various scenarios
func TestLoad(t *testing.T) {
	// Save original environment to restore later
	originalEnv := make(map[string]string)
	envVars := []string{
		"PARKS_INPUT_FILE", "PARKS_INPUT_SHEET",
		"PARKS_ANALYSIS_TOP_FACILITY_TYPES", "PARKS_ANALYSIS_TOP_PARKS",
		"PARKS_ANALYSIS_PREVIEW_ROWS",
		"PARKS_LOGGING_LEVEL", "PARKS_LOGGING_FORMAT", "PARKS_LOGGING_OUTPUT",
		"PARKS_LOGGING_FILE_PATH",
		"PARKS_PATHS_BASE_DIR", "PARKS_PATHS_REPORTS_DIR", "PARKS_PATHS_LOGS_DIR",
	}

	// Save original values
	for _, envVar := range envVars {
		originalEnv[envVar] = os.Getenv(envVar)
	}

	// Clean up environment variables
	defer func() {
		for _, envVar := range envVars {
			if val, exists := originalEnv[envVar]; exists && val != "" {
				os.Setenv(envVar, val)
			} else {
				os.Unsetenv(envVar)
			}
		}
	}()

	clearEnv := func() {
		for _, envVar := range envVars {
			os.Unsetenv(envVar)
		}
	}

	// Run from a directory without a config.yaml so only env vars apply
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(originalDir) })

	tests := []struct {
		name        string
		setupEnv    func()
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name:     "default configuration with no env vars",
			setupEnv: clearEnv,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultInputFile, cfg.Input.File)
				assert.Empty(t, cfg.Input.Sheet)

				assert.Equal(t, 10, cfg.Analysis.TopFacilityTypes)
				assert.Equal(t, 15, cfg.Analysis.TopParks)
				assert.Equal(t, 5, cfg.Analysis.PreviewRows)

				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, "file", cfg.Logging.Output)
				assert.Equal(t, "logs/park_analysis.log", cfg.Logging.FilePath)

				assert.Empty(t, cfg.Paths.BaseDir)
				assert.Equal(t, "reports", cfg.Paths.ReportsDir)
				assert.Equal(t, "logs", cfg.Paths.LogsDir)
			},
		},
		{
			name: "custom environment variables",
			setupEnv: func() {
				clearEnv()
				os.Setenv("PARKS_INPUT_FILE", "facilities.tsv")
				os.Setenv("PARKS_ANALYSIS_TOP_FACILITY_TYPES", "5")
				os.Setenv("PARKS_LOGGING_LEVEL", "debug")
				os.Setenv("PARKS_LOGGING_OUTPUT", "both")
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "facilities.tsv", cfg.Input.File)
				assert.Equal(t, 5, cfg.Analysis.TopFacilityTypes)
				assert.Equal(t, 15, cfg.Analysis.TopParks)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "both", cfg.Logging.Output)
			},
		},
		{
			name: "unsupported input extension",
			setupEnv: func() {
				clearEnv()
				os.Setenv("PARKS_INPUT_FILE", "facilities.parquet")
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			setupEnv: func() {
				clearEnv()
				os.Setenv("PARKS_LOGGING_LEVEL", "verbose")
			},
			wantErr: true,
		},
		{
			name: "negative top facility types",
			setupEnv: func() {
				clearEnv()
				os.Setenv("PARKS_ANALYSIS_TOP_FACILITY_TYPES", "-1")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupEnv()

			cfg, err := Load()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.validateCfg != nil {
				tt.validateCfg(t, cfg)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "valid YAML config",
			fileContent: `
input:
  file: parks.csv
analysis:
  top_facility_types: 20
  top_parks: 25
logging:
  level: debug
  output: both
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "parks.csv", cfg.Input.File)
				assert.Equal(t, 20, cfg.Analysis.TopFacilityTypes)
				assert.Equal(t, 25, cfg.Analysis.TopParks)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "both", cfg.Logging.Output)
			},
		},
		{
			name:        "invalid YAML syntax",
			fileContent: "invalid: yaml: content: [unclosed",
			wantErr:     true,
		},
		{
			name: "partial config",
			fileContent: `
input:
  file: downtown.xlsx
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "downtown.xlsx", cfg.Input.File)
				// Other fields should be zero values
				assert.Zero(t, cfg.Analysis.TopFacilityTypes)
				assert.Empty(t, cfg.Logging.Level)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			configFile := filepath.Join(tempDir, "config.yaml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.fileContent), 0644))

			cfg, err := loadFromFile(configFile)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.validateCfg != nil {
				tt.validateCfg(t, cfg)
			}
		})
	}

	t.Run("non-existent file", func(t *testing.T) {
		_, err := loadFromFile("/non/existent/file.yaml")
		assert.Error(t, err)
	})
}

// TestMergeConfigs tests the mergeConfigs function
func TestMergeConfigs(t *testing.T) {
	t.Run("env values win over file values", func(t *testing.T) {
		fileConfig := Config{
			Input:    InputConfig{File: "file.csv", Sheet: "Sheet2"},
			Analysis: AnalysisConfig{TopFacilityTypes: 3, TopParks: 4, PreviewRows: 2},
			Logging:  LoggingConfig{Level: "warn", Output: "stdout"},
			Paths:    PathsConfig{ReportsDir: "out"},
		}
		envConfig := Config{
			Input:   InputConfig{File: "env.csv"},
			Logging: LoggingConfig{Level: "debug"},
		}

		merged := mergeConfigs(fileConfig, envConfig)

		assert.Equal(t, "env.csv", merged.Input.File)
		assert.Equal(t, "debug", merged.Logging.Level)
	})

	t.Run("file values fill unset env fields", func(t *testing.T) {
		fileConfig := Config{
			Input:    InputConfig{File: "file.csv", Sheet: "Facilities"},
			Analysis: AnalysisConfig{TopFacilityTypes: 3, TopParks: 4, PreviewRows: 2},
			Logging:  LoggingConfig{Level: "warn", Output: "stdout", FilePath: "x.log"},
			Paths:    PathsConfig{BaseDir: "/srv", ReportsDir: "out", LogsDir: "lg"},
		}
		var envConfig Config

		merged := mergeConfigs(fileConfig, envConfig)

		assert.Equal(t, "file.csv", merged.Input.File)
		assert.Equal(t, "Facilities", merged.Input.Sheet)
		assert.Equal(t, 3, merged.Analysis.TopFacilityTypes)
		assert.Equal(t, 4, merged.Analysis.TopParks)
		assert.Equal(t, 2, merged.Analysis.PreviewRows)
		assert.Equal(t, "warn", merged.Logging.Level)
		assert.Equal(t, "stdout", merged.Logging.Output)
		assert.Equal(t, "x.log", merged.Logging.FilePath)
		assert.Equal(t, "/srv", merged.Paths.BaseDir)
		assert.Equal(t, "out", merged.Paths.ReportsDir)
		assert.Equal(t, "lg", merged.Paths.LogsDir)
	})
}

// TestValidate tests default filling and validation rules
func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantErr  bool
		validate func(*testing.T, *Config)
	}{
		{
			name:   "empty config gets defaults",
			mutate: func(cfg *Config) { *cfg = Config{} },
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultInputFile, cfg.Input.File)
				assert.Equal(t, 10, cfg.Analysis.TopFacilityTypes)
				assert.Equal(t, 15, cfg.Analysis.TopParks)
				assert.Equal(t, "file", cfg.Logging.Output)
			},
		},
		{
			name:   "tsv input accepted",
			mutate: func(cfg *Config) { cfg.Input.File = "data/facilities.tsv" },
		},
		{
			name:   "xlsx input accepted",
			mutate: func(cfg *Config) { cfg.Input.File = "facilities.xlsx" },
		},
		{
			name:    "unsupported extension rejected",
			mutate:  func(cfg *Config) { cfg.Input.File = "facilities.json" },
			wantErr: true,
		},
		{
			name:    "bad logging output rejected",
			mutate:  func(cfg *Config) { cfg.Logging.Output = "syslog" },
			wantErr: true,
		},
		{
			name:    "non-json format rejected",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "text" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.validate()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg)
	assert.Equal(t, DefaultInputFile, cfg.Input.File)
	assert.Equal(t, 10, cfg.Analysis.TopFacilityTypes)
	assert.Equal(t, 15, cfg.Analysis.TopParks)
	assert.Equal(t, 5, cfg.Analysis.PreviewRows)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "file", cfg.Logging.Output)
	assert.Equal(t, "reports", cfg.Paths.ReportsDir)
	assert.Equal(t, "logs", cfg.Paths.LogsDir)

	// Defaults must pass their own validation
	assert.NoError(t, cfg.validate())
}

func TestGetConfigFilePath(t *testing.T) {
	originalDir, err := os.Getwd()
	require.NoError(t, err)

	t.Run("no config file present", func(t *testing.T) {
		tempDir := t.TempDir()
		defer os.Chdir(originalDir)
		os.Chdir(tempDir)

		assert.Empty(t, getConfigFilePath())
	})

	t.Run("config.yaml in working directory", func(t *testing.T) {
		tempDir := t.TempDir()
		defer os.Chdir(originalDir)
		os.Chdir(tempDir)

		require.NoError(t, os.WriteFile("config.yaml", []byte("input:\n  file: parks.csv\n"), 0644))

		assert.Equal(t, "config.yaml", getConfigFilePath())
	})

	t.Run("configs subdirectory", func(t *testing.T) {
		tempDir := t.TempDir()
		defer os.Chdir(originalDir)
		os.Chdir(tempDir)

		require.NoError(t, os.MkdirAll("configs", 0755))
		require.NoError(t, os.WriteFile(filepath.Join("configs", "config.yaml"), []byte("{}"), 0644))

		assert.Equal(t, filepath.Join("configs", "config.yaml"), getConfigFilePath())
	})
}

func TestLoadWithConfigFile(t *testing.T) {
	originalDir, err := os.Getwd()
	require.NoError(t, err)

	tempDir := t.TempDir()
	defer os.Chdir(originalDir)
	require.NoError(t, os.Chdir(tempDir))

	os.Unsetenv("PARKS_INPUT_FILE")
	os.Unsetenv("PARKS_ANALYSIS_TOP_PARKS")

	content := `
input:
  file: stanley.csv
analysis:
  top_parks: 30
`
	require.NoError(t, os.WriteFile("config.yaml", []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "stanley.csv", cfg.Input.File)
	assert.Equal(t, 30, cfg.Analysis.TopParks)
	// Unset fields still fall back to defaults
	assert.Equal(t, 10, cfg.Analysis.TopFacilityTypes)
	assert.Equal(t, "info", cfg.Logging.Level)
}
