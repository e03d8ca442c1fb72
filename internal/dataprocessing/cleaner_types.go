package dataprocessing

import (
	"parkscli/pkg/contracts/domain"
)

// rawRow holds the required cells of one data row in schema order, plus the
// file line it came from for parse error reporting.
type rawRow struct {
	line  int
	cells [4]string
}

// CleaningReport summarizes what the cleaner did to a facilities file.
type CleaningReport struct {
	// MissingBefore counts empty cells per column before imputation
	MissingBefore map[string]int

	// MissingAfter counts empty cells per column in the cleaned records
	MissingAfter map[string]int

	// ImputedCounts is the number of FacilityCount cells defaulted to zero
	ImputedCounts int

	// DuplicatesRemoved is the number of exact duplicate rows dropped
	DuplicatesRemoved int

	// RowsLoaded is the number of non-blank data rows read from the file
	RowsLoaded int

	// RowsClean is the number of records remaining after deduplication
	RowsClean int

	// NegativeCounts is the number of cleaned records carrying a negative
	// facility count; such rows are retained but logged
	NegativeCounts int
}

// NewCleaningReport creates a report with zeroed counters for every
// required column.
func NewCleaningReport() *CleaningReport {
	report := &CleaningReport{
		MissingBefore: make(map[string]int),
		MissingAfter:  make(map[string]int),
	}
	for _, col := range domain.RequiredColumns() {
		report.MissingBefore[col] = 0
		report.MissingAfter[col] = 0
	}
	return report
}
