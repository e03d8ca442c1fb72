package exporter

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"parkscli/internal/config"
	"parkscli/internal/dataprocessing"
	"parkscli/internal/errors"
	"parkscli/pkg/contracts"
	"parkscli/pkg/contracts/domain"
)

// Summary bundles everything one analysis run produces, for the JSON
// artifact that web and scripting consumers read instead of the charts.
type Summary struct {
	Source       string
	Report       *dataprocessing.CleaningReport
	Distribution domain.FacilityDistribution
	Diversity    domain.ParkDiversity
	Statistics   []domain.TypeStatistics
	Correlation  domain.CorrelationMatrix
}

// SummaryWriter writes the machine-readable run summary.
type SummaryWriter struct {
	logger *slog.Logger
	paths  *config.Paths
}

// NewSummaryWriter creates a new summary writer instance. A nil logger
// falls back to slog.Default().
func NewSummaryWriter(logger *slog.Logger, paths *config.Paths) *SummaryWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryWriter{logger: logger, paths: paths}
}

// WriteSummary writes the run summary to the summary JSON file with
// metadata. Correlation entries that are NaN are encoded as null.
func (w *SummaryWriter) WriteSummary(ctx context.Context, summary Summary) error {
	path := w.paths.SummaryJSON

	w.logger.InfoContext(ctx, "writing analysis summary to JSON",
		slog.String("path", path),
		slog.Int("facility_types", len(summary.Distribution.Entries)),
		slog.Int("parks", len(summary.Diversity.Entries)))

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for JSON output", err)
	}

	jsonData := map[string]interface{}{
		"generated_at":    time.Now().Format(time.RFC3339),
		"format":          "park_analysis_" + contracts.DataFormatVersion,
		"source":          summary.Source,
		"distribution":    summary.Distribution.Entries,
		"diversity":       summary.Diversity.Entries,
		"type_statistics": summary.Statistics,
		"correlation":     &summary.Correlation,
	}
	if summary.Report != nil {
		jsonData["cleaning"] = map[string]interface{}{
			"rows_loaded":        summary.Report.RowsLoaded,
			"rows_clean":         summary.Report.RowsClean,
			"duplicates_removed": summary.Report.DuplicatesRemoved,
			"imputed_counts":     summary.Report.ImputedCounts,
			"negative_counts":    summary.Report.NegativeCounts,
			"missing_before":     summary.Report.MissingBefore,
			"missing_after":      summary.Report.MissingAfter,
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create JSON summary file", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(jsonData); err != nil {
		return errors.NewStorageError("failed to encode analysis summary to JSON", err)
	}

	w.logger.InfoContext(ctx, "successfully wrote analysis summary",
		slog.String("path", path))

	return nil
}
