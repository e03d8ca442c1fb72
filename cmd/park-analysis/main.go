package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"parkscli/internal/analysis"
	"parkscli/internal/config"
	"parkscli/internal/dataprocessing"
	"parkscli/internal/exporter"
	"parkscli/internal/infrastructure"
	"parkscli/pkg/contracts"
)

func main() {
	input := flag.String("input", "", "facilities file to analyze (defaults to the configured input file)")
	sheet := flag.String("sheet", "", "worksheet to read when the input is an xlsx workbook (defaults to the first sheet)")
	baseDir := flag.String("dir", "", "directory to write artifacts to (defaults to the current working directory)")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	// Flags take precedence over configuration
	if *input != "" {
		cfg.Input.File = *input
	}
	if *sheet != "" {
		cfg.Input.Sheet = *sheet
	}
	if *baseDir != "" {
		cfg.Paths.BaseDir = *baseDir
	}

	paths, err := cfg.ResolvePaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	// Keep relative log files under the resolved logs directory
	if !filepath.IsAbs(cfg.Logging.FilePath) {
		cfg.Logging.FilePath = paths.GetLogPath(filepath.Base(cfg.Logging.FilePath))
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	paths.LogPathResolution()

	if err := run(context.Background(), logger, cfg, paths, os.Stdout); err != nil {
		logger.Error("Analysis failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the whole pipeline: load and clean the facilities table,
// print the exploration tables, then write every chart and report artifact.
func run(ctx context.Context, logger *slog.Logger, cfg *config.Config, paths *config.Paths, out io.Writer) error {
	ctx = infrastructure.EnsureRunID(ctx)

	logger.InfoContext(ctx, "Starting park facility analysis",
		slog.String("input", cfg.Input.File),
		slog.String("base_dir", paths.BaseDir))

	cleaner := dataprocessing.NewCleaner(logger, dataprocessing.CleanerConfig{
		Out:   out,
		Sheet: cfg.Input.Sheet,
	})
	records, report, err := cleaner.Load(ctx, cfg.Input.File)
	if err != nil {
		return err
	}

	// Basic data exploration, pandas style
	fmt.Fprintln(out, "\nData Overview:")
	dataprocessing.WritePreview(out, records, cfg.Analysis.PreviewRows)
	fmt.Fprintln(out, "\nData Summary:")
	dataprocessing.WriteSummary(out, dataprocessing.Describe(records))

	stats := dataprocessing.SummarizeByType(records)
	fmt.Fprintln(out, "\nSummary Statistics by Facility Type:")
	dataprocessing.WriteTypeStatistics(out, stats)

	charts := exporter.NewChartWriter(paths, cfg.Analysis)
	csvWriter := exporter.NewCSVWriter(paths)

	dist := analysis.AnalyzeDistribution(records)
	fmt.Fprintf(out, "Top %d Facility Types by Count:\n", cfg.Analysis.TopFacilityTypes)
	analysis.WriteDistribution(out, dist, cfg.Analysis.TopFacilityTypes)
	if err := charts.WriteDistributionChart(dist); err != nil {
		return err
	}
	if err := csvWriter.WriteDistribution(dist); err != nil {
		return err
	}

	div := analysis.AnalyzeDiversity(records)
	fmt.Fprintln(out, "\nTop 10 Parks by Facility Diversity:")
	analysis.WriteDiversity(out, div, 10)
	if err := charts.WriteDiversityChart(div); err != nil {
		return err
	}
	if err := csvWriter.WriteDiversity(div); err != nil {
		return err
	}

	matrix := analysis.Correlate(analysis.BuildPivot(records))
	if err := charts.WriteCorrelationChart(matrix); err != nil {
		return err
	}
	if err := csvWriter.WriteCorrelation(matrix); err != nil {
		return err
	}

	if err := exporter.NewExcelWriter(paths).WriteWorkbook(dist, div, stats); err != nil {
		return err
	}

	summary := exporter.Summary{
		Source:       cfg.Input.File,
		Report:       report,
		Distribution: dist,
		Diversity:    div,
		Statistics:   stats,
		Correlation:  matrix,
	}
	if err := exporter.NewSummaryWriter(logger, paths).WriteSummary(ctx, summary); err != nil {
		return err
	}

	analysis.WriteMapNotice(out)

	fmt.Fprintln(out, "\nAnalysis complete! Visualizations saved to the current directory.")

	logger.InfoContext(ctx, "Analysis completed",
		slog.Int("records", len(records)),
		slog.Int("facility_types", len(dist.Entries)),
		slog.Int("parks", len(div.Entries)))

	return nil
}
