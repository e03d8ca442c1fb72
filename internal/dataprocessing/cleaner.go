package dataprocessing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"parkscli/internal/errors"
	"parkscli/pkg/contracts/domain"
)

// Cleaner loads a raw facilities file and produces analysis-ready records.
// It consolidates the cleaning steps that every downstream analysis depends
// on: missing value accounting, count imputation, type coercion, and exact
// duplicate removal.
type Cleaner struct {
	logger *slog.Logger
	out    io.Writer
	sheet  string
}

// CleanerConfig holds configuration options for the Cleaner.
type CleanerConfig struct {
	Out   io.Writer // destination for cleaning diagnostics, defaults to os.Stdout
	Sheet string    // sheet override for workbook input, defaults to the first sheet
}

// NewCleaner creates a new facilities cleaner with the given configuration.
func NewCleaner(logger *slog.Logger, config CleanerConfig) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	if config.Out == nil {
		config.Out = os.Stdout
	}

	return &Cleaner{
		logger: logger,
		out:    config.Out,
		sheet:  config.Sheet,
	}
}

// LoadFacilities loads and cleans the facilities file at path using a default
// Cleaner. Callers that need a custom diagnostics writer or a workbook sheet
// override should construct a Cleaner directly.
func LoadFacilities(ctx context.Context, path string) ([]domain.FacilityRecord, *CleaningReport, error) {
	return NewCleaner(nil, CleanerConfig{}).Load(ctx, path)
}

// Load reads the facilities file at path and returns cleaned records together
// with a report of what the cleaning changed. Diagnostics are written to the
// configured output in load order: missing counts before cleaning, the number
// of duplicate rows dropped, missing counts after cleaning, and the final
// data shape.
//
// Cleaning is fatal on the first unreadable cell: a ParkID or FacilityCount
// that is neither an integer nor a finite decimal fails the whole load.
func (c *Cleaner) Load(ctx context.Context, path string) ([]domain.FacilityRecord, *CleaningReport, error) {
	c.logger.InfoContext(ctx, "loading facilities file",
		slog.String("path", path))

	rows, err := readRawRows(path, c.sheet)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, errors.NewSchemaError(fmt.Sprintf("facilities file %s has no header row", path))
	}

	cols := findColumnIndices(rows[0])
	if missing := cols.missing(); len(missing) > 0 {
		return nil, nil, errors.NewSchemaError(
			fmt.Sprintf("required columns not found: %v, header: %v", missing, rows[0]))
	}

	raw := collectRawRows(rows, cols)
	report := NewCleaningReport()
	report.RowsLoaded = len(raw)

	// Missing value accounting happens on the raw cells, before any
	// imputation, so the report reflects the file as delivered.
	for _, rr := range raw {
		for i, col := range domain.RequiredColumns() {
			if rr.cells[i] == "" {
				report.MissingBefore[col]++
			}
		}
	}

	fmt.Fprintln(c.out, "Missing values before cleaning:")
	writeMissingCounts(c.out, report.MissingBefore)

	// Absent facility counts default to zero
	for i := range raw {
		if raw[i].cells[3] == "" {
			raw[i].cells[3] = "0"
			report.ImputedCounts++
		}
	}

	records := make([]domain.FacilityRecord, 0, len(raw))
	for _, rr := range raw {
		record, err := buildRecord(rr)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, record)
	}

	// Drop exact duplicates, keeping the first occurrence
	seen := make(map[string]bool, len(records))
	cleaned := make([]domain.FacilityRecord, 0, len(records))
	for _, record := range records {
		key := record.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, record)
	}
	report.DuplicatesRemoved = len(records) - len(cleaned)
	report.RowsClean = len(cleaned)

	fmt.Fprintf(c.out, "Number of duplicate rows: %d\n", report.DuplicatesRemoved)

	for _, record := range cleaned {
		if !record.HasName() {
			report.MissingAfter[domain.ColName]++
		}
		if !record.HasFacilityType() {
			report.MissingAfter[domain.ColFacilityType]++
		}
		if !record.IsValid() {
			report.NegativeCounts++
			c.logger.WarnContext(ctx, "negative facility count retained",
				slog.Int("park_id", record.ParkID),
				slog.String("name", record.Name),
				slog.String("facility_type", record.FacilityType),
				slog.Int("facility_count", record.FacilityCount))
		}
	}

	fmt.Fprintln(c.out, "Missing values after cleaning:")
	writeMissingCounts(c.out, report.MissingAfter)
	fmt.Fprintf(c.out, "Data shape: (%d, %d)\n", report.RowsClean, len(domain.RequiredColumns()))

	c.logger.InfoContext(ctx, "facilities file cleaned",
		slog.Int("rows_loaded", report.RowsLoaded),
		slog.Int("rows_clean", report.RowsClean),
		slog.Int("duplicates_removed", report.DuplicatesRemoved),
		slog.Int("counts_imputed", report.ImputedCounts))

	return cleaned, report, nil
}

// buildRecord coerces one raw row into a FacilityRecord. Name and
// FacilityType stay as delivered; empty values are legal and simply excluded
// from grouping later.
func buildRecord(rr rawRow) (domain.FacilityRecord, error) {
	parkID, err := parseIntCell(rr.cells[0], domain.ColParkID, rr.line)
	if err != nil {
		return domain.FacilityRecord{}, err
	}

	count, err := parseIntCell(rr.cells[3], domain.ColFacilityCount, rr.line)
	if err != nil {
		return domain.FacilityRecord{}, err
	}

	return domain.FacilityRecord{
		ParkID:        parkID,
		Name:          rr.cells[1],
		FacilityType:  rr.cells[2],
		FacilityCount: count,
	}, nil
}

// parseIntCell parses an integer cell value. Decimal values are accepted and
// truncated toward zero, matching how upstream exports write whole counts
// with a trailing ".0".
func parseIntCell(value, column string, line int) (int, error) {
	if value == "" {
		return 0, errors.NewParsingError(fmt.Sprintf("empty %s (line %d)", column, line), nil)
	}

	if v, err := strconv.Atoi(value); err == nil {
		return v, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.NewParsingError(
			fmt.Sprintf("parse %s (line %d): %q is not numeric", column, line, value), err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.NewParsingError(
			fmt.Sprintf("parse %s (line %d): non-finite value %q", column, line, value), nil)
	}
	return int(math.Trunc(f)), nil
}

// writeMissingCounts prints per-column missing counts in schema order.
func writeMissingCounts(w io.Writer, counts map[string]int) {
	for _, col := range domain.RequiredColumns() {
		fmt.Fprintf(w, "%-14s %d\n", col, counts[col])
	}
}
