package dataprocessing

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"parkscli/internal/errors"
	"parkscli/pkg/contracts/domain"
)

// readRawRows reads every cell row from a facilities file, header included.
// The input format is selected by extension: .xlsx opens a workbook, .tsv
// reads tab-delimited text, and everything else is treated as comma-delimited.
func readRawRows(path, sheet string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("facilities file %s", path))
		}
		return nil, errors.NewStorageError(fmt.Sprintf("failed to stat facilities file %s", path), err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readWorkbookRows(path, sheet)
	case ".tsv":
		return readDelimitedRows(path, '\t')
	default:
		return readDelimitedRows(path, ',')
	}
}

// readDelimitedRows reads a delimited text file into raw cell rows.
func readDelimitedRows(path string, comma rune) ([][]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("failed to read facilities file %s", path), err)
	}

	// Remove UTF-8 BOM if present so header matching sees the real first column
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		content = content[3:]
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.Comma = comma
	// Short rows become missing cells rather than read failures
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to parse facilities file %s", path), err)
	}
	return rows, nil
}

// readWorkbookRows reads a spreadsheet sheet into raw cell rows. An empty
// sheet name selects the first sheet in the workbook.
func readWorkbookRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("failed to open workbook %s", path), err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.NewSchemaError(fmt.Sprintf("workbook %s contains no sheets", path))
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read sheet %q from workbook %s", sheet, path), err)
	}
	return rows, nil
}

// columnIndices holds the indices of required columns
type columnIndices struct {
	parkID        int
	name          int
	facilityType  int
	facilityCount int
}

// findColumnIndices finds the indices of required columns in the header
func findColumnIndices(header []string) columnIndices {
	indices := columnIndices{
		parkID:        -1,
		name:          -1,
		facilityType:  -1,
		facilityCount: -1,
	}

	for i, col := range header {
		cleanCol := cleanHeaderCell(col)
		lowerCol := strings.ToLower(cleanCol)

		// Match against the actual column name (case-sensitive first, then lowercase)
		switch cleanCol {
		case domain.ColParkID:
			indices.parkID = i
		case domain.ColName:
			indices.name = i
		case domain.ColFacilityType:
			indices.facilityType = i
		case domain.ColFacilityCount:
			indices.facilityCount = i
		default:
			// Fallback to lowercase matching
			switch lowerCol {
			case "parkid", "park_id":
				indices.parkID = i
			case "name", "parkname", "park_name":
				indices.name = i
			case "facilitytype", "facility_type":
				indices.facilityType = i
			case "facilitycount", "facility_count":
				indices.facilityCount = i
			}
		}
	}

	return indices
}

// cleanHeaderCell strips the BOM and zero-width characters that spreadsheet
// exports occasionally leave in the first header cell.
func cleanHeaderCell(col string) string {
	cleanCol := strings.TrimSpace(col)
	cleanCol = strings.TrimPrefix(cleanCol, "﻿")
	cleanCol = strings.TrimLeft(cleanCol, "​‌‍⁠﻿")
	return strings.TrimSpace(cleanCol)
}

// missing reports the required column names absent from the header.
func (ci columnIndices) missing() []string {
	var missing []string
	if ci.parkID == -1 {
		missing = append(missing, domain.ColParkID)
	}
	if ci.name == -1 {
		missing = append(missing, domain.ColName)
	}
	if ci.facilityType == -1 {
		missing = append(missing, domain.ColFacilityType)
	}
	if ci.facilityCount == -1 {
		missing = append(missing, domain.ColFacilityCount)
	}
	return missing
}

// collectRawRows extracts the required cells from every data row, tracking
// the original file line for parse error reporting. Blank rows are skipped.
func collectRawRows(rows [][]string, cols columnIndices) []rawRow {
	raw := make([]rawRow, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		raw = append(raw, rawRow{
			line: i + 2,
			cells: [4]string{
				cellAt(row, cols.parkID),
				cellAt(row, cols.name),
				cellAt(row, cols.facilityType),
				cellAt(row, cols.facilityCount),
			},
		})
	}
	return raw
}

// cellAt returns the trimmed cell at idx, or an empty string when the row is
// too short to contain it.
func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
