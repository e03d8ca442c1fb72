// Package dataprocessing provides loading and cleaning capabilities for park
// facility datasets. It consolidates file parsing, cleaning, and descriptive
// statistics into a cohesive package that handles the data lifecycle from raw
// file ingestion to analysis-ready records.
//
// # Architecture
//
// The package is organized into three main components:
//
// 1. Parser: Reads delimited files and workbooks and extracts raw cell rows
// 2. Cleaner: Counts missing values, imputes facility counts, coerces types, and drops duplicates
// 3. Describe: Generates previews, numeric summaries, and per-type statistics
//
// # Usage
//
// Basic loading example:
//
//	cleaner := dataprocessing.NewCleaner(logger, dataprocessing.CleanerConfig{})
//	records, report, err := cleaner.Load(ctx, "Park_Facilities_Cleaned.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Descriptive statistics:
//
//	dataprocessing.WritePreview(os.Stdout, records, 5)
//	dataprocessing.WriteSummary(os.Stdout, dataprocessing.Describe(records))
//
// # Data Flow
//
// The typical data flow through this package:
//
//	Facilities File → Parser → Raw Rows → Cleaner → FacilityRecords → Describe → Diagnostics
//
// # Error Handling
//
// All functions return detailed errors that include context about what failed:
//
//	- Missing files surface as not-found errors
//	- Missing required columns surface as schema errors
//	- Non-numeric ParkID or FacilityCount cells surface as parsing errors with line numbers
//
// # Testing
//
// The package includes comprehensive tests for all components.
// Use table-driven tests when adding new functionality.
package dataprocessing
