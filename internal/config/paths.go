package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Well-known input and artifact names. The chart images keep fixed names in
// the base directory so repeated runs overwrite the previous artifacts.
const (
	DefaultInputFile = "Park_Facilities_Cleaned.csv"

	DistributionChartFile = "facility_distribution.png"
	DiversityChartFile    = "park_diversity.png"
	CorrelationChartFile  = "facility_correlation.png"

	DistributionCSVFile = "facility_distribution.csv"
	DiversityCSVFile    = "park_diversity.csv"
	CorrelationCSVFile  = "facility_correlation.csv"
	AnalysisWorkbook    = "park_analysis.xlsx"
	SummaryJSONFile     = "analysis_summary.json"
)

// Paths contains all the application paths.
// This is the single source of truth for every file the pipeline writes.
type Paths struct {
	BaseDir    string
	ReportsDir string
	LogsDir    string

	// Well-known artifact files
	DistributionChart string
	DiversityChart    string
	CorrelationChart  string
	DistributionCSV   string
	DiversityCSV      string
	CorrelationCSV    string
	Workbook          string
	SummaryJSON       string
}

// GetPaths returns the application paths anchored at the current working
// directory, which is where the chart artifacts are expected to appear.
func GetPaths() (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %v", err)
	}
	return GetPathsFrom(wd, "reports", "logs"), nil
}

// GetPathsFrom builds the path set from an explicit base directory.
// reportsDir and logsDir are joined to the base when relative.
func GetPathsFrom(baseDir, reportsDir, logsDir string) *Paths {
	if reportsDir == "" {
		reportsDir = "reports"
	}
	if logsDir == "" {
		logsDir = "logs"
	}
	if !filepath.IsAbs(reportsDir) {
		reportsDir = filepath.Join(baseDir, reportsDir)
	}
	if !filepath.IsAbs(logsDir) {
		logsDir = filepath.Join(baseDir, logsDir)
	}

	return &Paths{
		BaseDir:    baseDir,
		ReportsDir: reportsDir,
		LogsDir:    logsDir,

		// Chart images go directly to the base directory under fixed names
		DistributionChart: filepath.Join(baseDir, DistributionChartFile),
		DiversityChart:    filepath.Join(baseDir, DiversityChartFile),
		CorrelationChart:  filepath.Join(baseDir, CorrelationChartFile),

		// Tabular artifacts go to the reports directory
		DistributionCSV: filepath.Join(reportsDir, DistributionCSVFile),
		DiversityCSV:    filepath.Join(reportsDir, DiversityCSVFile),
		CorrelationCSV:  filepath.Join(reportsDir, CorrelationCSVFile),
		Workbook:        filepath.Join(reportsDir, AnalysisWorkbook),
		SummaryJSON:     filepath.Join(reportsDir, SummaryJSONFile),
	}
}

// ResolvePaths builds the path set described by the configuration.
// An empty BaseDir means the current working directory.
func (c *Config) ResolvePaths() (*Paths, error) {
	base := c.Paths.BaseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %v", err)
		}
		base = wd
	}
	return GetPathsFrom(base, c.Paths.ReportsDir, c.Paths.LogsDir), nil
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.BaseDir,
		p.ReportsDir,
		p.LogsDir,
	}

	logger := slog.Default()

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}

		if logger != nil {
			logger.Debug("Ensured directory exists",
				slog.String("directory", dir))
		}
	}

	return nil
}

// GetReportPath returns the path for a report file
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetLogPath returns the path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// GetChartPath returns the path for a chart image
func (p *Paths) GetChartPath(filename string) string {
	return filepath.Join(p.BaseDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// LogPathResolution logs the resolved path set for debugging
func (p *Paths) LogPathResolution() {
	logger := slog.Default()
	if logger == nil {
		return
	}

	logger.Info("Path resolution summary",
		slog.Group("directories",
			slog.String("base", p.BaseDir),
			slog.String("reports", p.ReportsDir),
			slog.String("logs", p.LogsDir),
		),
		slog.Group("artifacts",
			slog.String("distribution_chart", p.DistributionChart),
			slog.String("diversity_chart", p.DiversityChart),
			slog.String("correlation_chart", p.CorrelationChart),
			slog.String("workbook", p.Workbook),
			slog.String("summary_json", p.SummaryJSON),
		))
}
