package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"parkscli/internal/config"
	"parkscli/internal/errors"
	"parkscli/pkg/contracts/domain"
)

// ExcelWriter exports the analysis results as a multi-sheet workbook for
// readers who want the full tables rather than the top-N charts.
type ExcelWriter struct {
	paths *config.Paths
}

// NewExcelWriter creates a new Excel writer instance
func NewExcelWriter(paths *config.Paths) *ExcelWriter {
	return &ExcelWriter{paths: paths}
}

// WriteWorkbook writes the facility distribution, park diversity, and
// per-type statistics to the analysis workbook, one sheet each.
func (w *ExcelWriter) WriteWorkbook(dist domain.FacilityDistribution, div domain.ParkDiversity, stats []domain.TypeStatistics) error {
	const (
		distributionSheet = "Distribution"
		diversitySheet    = "Diversity"
		statisticsSheet   = "Type Statistics"
	)

	slog.Info("Writing analysis workbook",
		slog.String("path", w.paths.Workbook),
		slog.Int("facility_types", len(dist.Entries)),
		slog.Int("parks", len(div.Entries)))

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", distributionSheet)
	writeSheetHeader(f, distributionSheet, []string{"Facility Type", "Total Count"}, 24)
	for i, e := range dist.Entries {
		row := i + 2
		f.SetCellValue(distributionSheet, fmt.Sprintf("A%d", row), e.FacilityType)
		f.SetCellValue(distributionSheet, fmt.Sprintf("B%d", row), e.TotalCount)
	}

	f.NewSheet(diversitySheet)
	writeSheetHeader(f, diversitySheet, []string{"Park Name", "Distinct Facility Types"}, 28)
	for i, e := range div.Entries {
		row := i + 2
		f.SetCellValue(diversitySheet, fmt.Sprintf("A%d", row), e.Name)
		f.SetCellValue(diversitySheet, fmt.Sprintf("B%d", row), e.DistinctTypes)
	}

	f.NewSheet(statisticsSheet)
	writeSheetHeader(f, statisticsSheet, []string{"Facility Type", "Count", "Sum", "Mean", "Median", "Max"}, 16)
	for i, s := range stats {
		row := i + 2
		f.SetCellValue(statisticsSheet, fmt.Sprintf("A%d", row), s.FacilityType)
		f.SetCellValue(statisticsSheet, fmt.Sprintf("B%d", row), s.Count)
		f.SetCellValue(statisticsSheet, fmt.Sprintf("C%d", row), s.Sum)
		f.SetCellValue(statisticsSheet, fmt.Sprintf("D%d", row), s.Mean)
		f.SetCellValue(statisticsSheet, fmt.Sprintf("E%d", row), s.Median)
		f.SetCellValue(statisticsSheet, fmt.Sprintf("F%d", row), s.Max)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(w.paths.Workbook), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for workbook", err)
	}
	if err := f.SaveAs(w.paths.Workbook); err != nil {
		return errors.NewStorageError("failed to save analysis workbook", err)
	}
	return nil
}

// writeSheetHeader writes the header row and sets a uniform column width.
func writeSheetHeader(f *excelize.File, sheet string, headers []string, width float64) {
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, cell, header)
		f.SetColWidth(sheet, col, col, width)
	}
}
