package dataprocessing

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"parkscli/pkg/contracts/domain"
)

// ColumnSummary holds descriptive statistics for one numeric column.
type ColumnSummary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe computes descriptive statistics for the numeric columns of the
// cleaned records. Std is the sample standard deviation and is NaN when
// fewer than two records exist.
func Describe(records []domain.FacilityRecord) []ColumnSummary {
	parkIDs := make([]float64, 0, len(records))
	counts := make([]float64, 0, len(records))
	for _, r := range records {
		parkIDs = append(parkIDs, float64(r.ParkID))
		counts = append(counts, float64(r.FacilityCount))
	}

	return []ColumnSummary{
		summarizeColumn(domain.ColParkID, parkIDs),
		summarizeColumn(domain.ColFacilityCount, counts),
	}
}

func summarizeColumn(name string, values []float64) ColumnSummary {
	if len(values) == 0 {
		nan := math.NaN()
		return ColumnSummary{
			Column: name,
			Mean:   nan,
			Std:    nan,
			Min:    nan,
			Q25:    nan,
			Median: nan,
			Q75:    nan,
			Max:    nan,
		}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return ColumnSummary{
		Column: name,
		Count:  len(values),
		Mean:   stat.Mean(values, nil),
		Std:    stat.StdDev(values, nil),
		Min:    floats.Min(sorted),
		Q25:    percentile(sorted, 0.25),
		Median: percentile(sorted, 0.5),
		Q75:    percentile(sorted, 0.75),
		Max:    floats.Max(sorted),
	}
}

// SummarizeByType aggregates facility counts per facility type, sorted
// alphabetically. Records without a facility type are excluded.
func SummarizeByType(records []domain.FacilityRecord) []domain.TypeStatistics {
	groups := make(map[string][]float64)
	for _, r := range records {
		if !r.HasFacilityType() {
			continue
		}
		groups[r.FacilityType] = append(groups[r.FacilityType], float64(r.FacilityCount))
	}

	types := make([]string, 0, len(groups))
	for t := range groups {
		types = append(types, t)
	}
	sort.Strings(types)

	stats := make([]domain.TypeStatistics, 0, len(types))
	for _, t := range types {
		values := groups[t]
		sorted := make([]float64, len(values))
		copy(sorted, values)
		sort.Float64s(sorted)

		stats = append(stats, domain.TypeStatistics{
			FacilityType: t,
			Count:        len(values),
			Sum:          int(floats.Sum(values)),
			Mean:         stat.Mean(values, nil),
			Median:       percentile(sorted, 0.5),
			Max:          int(floats.Max(values)),
		})
	}
	return stats
}

// percentile returns the p-quantile of sorted values using linear
// interpolation between closest ranks.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	h := p * float64(len(sorted)-1)
	i := int(math.Floor(h))
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-float64(i))*(sorted[i+1]-sorted[i])
}

// WritePreview prints the first n records as an aligned table.
func WritePreview(w io.Writer, records []domain.FacilityRecord, n int) {
	if n > len(records) {
		n = len(records)
	}
	head := records[:n]

	nameWidth := len(domain.ColName)
	typeWidth := len(domain.ColFacilityType)
	for _, r := range head {
		if len(r.Name) > nameWidth {
			nameWidth = len(r.Name)
		}
		if len(r.FacilityType) > typeWidth {
			typeWidth = len(r.FacilityType)
		}
	}

	fmt.Fprintf(w, "%6s  %-*s  %-*s  %s\n",
		domain.ColParkID, nameWidth, domain.ColName, typeWidth, domain.ColFacilityType, domain.ColFacilityCount)
	for _, r := range head {
		fmt.Fprintf(w, "%6d  %-*s  %-*s  %13d\n",
			r.ParkID, nameWidth, r.Name, typeWidth, r.FacilityType, r.FacilityCount)
	}
}

// WriteSummary prints descriptive statistics with one column per numeric
// field, statistics as rows.
func WriteSummary(w io.Writer, summaries []ColumnSummary) {
	fmt.Fprintf(w, "%-5s", "")
	for _, s := range summaries {
		fmt.Fprintf(w, "  %14s", s.Column)
	}
	fmt.Fprintln(w)

	rows := []struct {
		label string
		value func(ColumnSummary) float64
	}{
		{"count", func(s ColumnSummary) float64 { return float64(s.Count) }},
		{"mean", func(s ColumnSummary) float64 { return s.Mean }},
		{"std", func(s ColumnSummary) float64 { return s.Std }},
		{"min", func(s ColumnSummary) float64 { return s.Min }},
		{"25%", func(s ColumnSummary) float64 { return s.Q25 }},
		{"50%", func(s ColumnSummary) float64 { return s.Median }},
		{"75%", func(s ColumnSummary) float64 { return s.Q75 }},
		{"max", func(s ColumnSummary) float64 { return s.Max }},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%-5s", row.label)
		for _, s := range summaries {
			fmt.Fprintf(w, "  %14s", formatStat(row.value(s)))
		}
		fmt.Fprintln(w)
	}
}

// WriteTypeStatistics prints per-type aggregate statistics as an aligned
// table, one facility type per row.
func WriteTypeStatistics(w io.Writer, stats []domain.TypeStatistics) {
	typeWidth := len(domain.ColFacilityType)
	for _, s := range stats {
		if len(s.FacilityType) > typeWidth {
			typeWidth = len(s.FacilityType)
		}
	}

	fmt.Fprintf(w, "%-*s  %5s  %6s  %10s  %8s  %5s\n",
		typeWidth, domain.ColFacilityType, "count", "sum", "mean", "median", "max")
	for _, s := range stats {
		fmt.Fprintf(w, "%-*s  %5d  %6d  %10s  %8s  %5d\n",
			typeWidth, s.FacilityType, s.Count, s.Sum,
			strconv.FormatFloat(s.Mean, 'f', 6, 64),
			strconv.FormatFloat(s.Median, 'f', 1, 64),
			s.Max)
	}
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
