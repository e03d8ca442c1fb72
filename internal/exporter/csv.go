package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"parkscli/internal/config"
	"parkscli/internal/errors"
	"parkscli/pkg/contracts/domain"
)

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	paths *config.Paths
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(paths *config.Paths) *CSVWriter {
	return &CSVWriter{paths: paths}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	Append    bool
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file with the given options
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	// Resolve the full path based on the file location
	fullPath := w.resolvePath(filePath)

	slog.Info("Writing CSV file",
		slog.String("file_path", filePath),
		slog.String("full_path", fullPath),
		slog.Int("record_count", len(options.Records)))

	// Ensure directory exists
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Open file with appropriate flags
	flags := os.O_CREATE | os.O_WRONLY
	if options.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(fullPath, flags, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Write BOM if requested (helps Excel recognize UTF-8)
	if options.BOMPrefix && !options.Append {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write headers if not appending
	if !options.Append && len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	// Write records
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return writer.Error()
}

// WriteSimpleCSV writes a simple CSV file with headers and records
func (w *CSVWriter) WriteSimpleCSV(filePath string, headers []string, records [][]string) error {
	return w.WriteCSV(filePath, WriteOptions{
		Headers:   headers,
		Records:   records,
		Append:    false,
		BOMPrefix: true,
	})
}

// WriteDistribution writes the full facility distribution, one facility
// type per row ordered as analyzed.
func (w *CSVWriter) WriteDistribution(dist domain.FacilityDistribution) error {
	records := make([][]string, 0, len(dist.Entries))
	for _, e := range dist.Entries {
		records = append(records, []string{e.FacilityType, formatInt(e.TotalCount)})
	}

	headers := []string{domain.ColFacilityType, "TotalCount"}
	if err := w.WriteSimpleCSV(config.DistributionCSVFile, headers, records); err != nil {
		return errors.NewStorageError("failed to write facility distribution CSV", err)
	}
	return nil
}

// WriteDiversity writes the full park diversity ranking, one park per row
// ordered as analyzed.
func (w *CSVWriter) WriteDiversity(div domain.ParkDiversity) error {
	records := make([][]string, 0, len(div.Entries))
	for _, e := range div.Entries {
		records = append(records, []string{e.Name, formatInt(e.DistinctTypes)})
	}

	headers := []string{domain.ColName, "DistinctTypes"}
	if err := w.WriteSimpleCSV(config.DiversityCSVFile, headers, records); err != nil {
		return errors.NewStorageError("failed to write park diversity CSV", err)
	}
	return nil
}

// WriteCorrelation writes the correlation matrix with facility types as both
// the header row and the first column. NaN entries are written literally so
// zero-variance types stay distinguishable from zero correlation.
func (w *CSVWriter) WriteCorrelation(m domain.CorrelationMatrix) error {
	headers := append([]string{domain.ColFacilityType}, m.Types...)

	records := make([][]string, 0, m.Size())
	for i, t := range m.Types {
		row := make([]string, 0, m.Size()+1)
		row = append(row, t)
		for j := range m.Types {
			row = append(row, formatCorrelation(m.At(i, j)))
		}
		records = append(records, row)
	}

	if err := w.WriteSimpleCSV(config.CorrelationCSVFile, headers, records); err != nil {
		return errors.NewStorageError("failed to write facility correlation CSV", err)
	}
	return nil
}

// resolvePath resolves a path to the appropriate directory
func (w *CSVWriter) resolvePath(filePath string) string {
	// If the path is already absolute, return it as-is
	if filepath.IsAbs(filePath) {
		return filePath
	}

	// CSV artifacts are reports
	return w.paths.GetReportPath(filePath)
}
