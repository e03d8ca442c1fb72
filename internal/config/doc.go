// Package config provides centralized configuration management for the
// park facilities analysis tool. It handles loading configuration from
// multiple sources, validation, and path resolution for every artifact the
// pipeline writes.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Optional YAML configuration file
//	3. Default values (lowest priority)
//
// A bare run needs no configuration at all: the defaults read
// Park_Facilities_Cleaned.csv from the working directory and write every
// artifact next to it.
//
// # Environment Variables
//
// All environment variables follow the pattern PARKS_* for namespacing:
//
//	PARKS_INPUT_FILE=data/facilities.csv
//	PARKS_INPUT_SHEET=Facilities
//	PARKS_LOGGING_LEVEL=debug
//	PARKS_LOGGING_OUTPUT=both
//	PARKS_PATHS_BASE_DIR=/var/lib/parks
//
// # Configuration File
//
// An optional config.yaml (searched for in the working directory, then
// configs/) fills any field the environment leaves unset:
//
//	input:
//	  file: Park_Facilities_Cleaned.csv
//	analysis:
//	  top_facility_types: 10
//	  top_parks: 15
//	logging:
//	  level: info
//	  output: file
//
// # Path Management
//
// The package provides centralized path management through the Paths type.
// Chart images are anchored at the base directory (the working directory by
// default, matching where the published figures are expected); tabular
// artifacts live under the reports directory:
//
//	paths, err := config.GetPaths()
//	chartPath := paths.DistributionChart
//	reportPath := paths.GetReportPath("facility_distribution.csv")
//
// # Validation
//
// All configuration is validated at load time to ensure:
//
//	- The input file carries a readable extension (.csv, .tsv, .txt, .xlsx)
//	- Log level, format, and output name supported values
//	- Analysis limits are positive
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    cfg = config.Default()
//	}
//	paths, err := cfg.ResolvePaths()
package config
