package exporter

import (
	"fmt"
	"math"
	"strconv"
)

// formatCorrelation formats a correlation value for CSV output with six
// decimal places. NaN is written literally rather than as an empty cell.
func formatCorrelation(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// formatInt formats an int value for CSV output
func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
