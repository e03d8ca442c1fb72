// Package exporter writes the analysis artifacts: chart images, CSV
// reports, the Excel workbook, and the JSON run summary.
//
// This package contains four main components:
//
// CSVWriter: Core CSV writing functionality with support for headers,
// appending, and UTF-8 BOM for Excel compatibility, plus writers for the
// facility distribution, park diversity, and correlation matrix reports.
//
// ChartWriter: Renders the distribution bar chart, the diversity
// horizontal bar chart, and the correlation heatmap as PNG images via
// gonum/plot.
//
// ExcelWriter: Builds the multi-sheet analysis workbook.
//
// SummaryWriter: Writes the machine-readable JSON run summary with
// generation metadata.
//
// Example usage:
//
//	paths := config.GetPathsFrom(".", "reports", "logs")
//
//	csvWriter := exporter.NewCSVWriter(paths)
//	err := csvWriter.WriteDistribution(dist)
//
//	charts := exporter.NewChartWriter(paths, cfg.Analysis)
//	err = charts.WriteDistributionChart(dist)
//
// Chart images land in the base directory under their fixed names; the
// tabular artifacts land in the reports directory.
package exporter
