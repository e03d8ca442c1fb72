package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"parkscli/pkg/contracts/domain"
)

// Pivot holds summed facility counts with one row per park and one column
// per facility type. Parks and types are sorted alphabetically; combinations
// absent from the records hold zero.
type Pivot struct {
	Parks  []string
	Types  []string
	Counts *mat.Dense
}

// BuildPivot aggregates records into a park by facility type matrix of
// summed counts. Records without a park name or facility type are excluded.
// Counts is nil when no record carries both.
func BuildPivot(records []domain.FacilityRecord) *Pivot {
	sums := make(map[string]map[string]float64)
	typeSet := make(map[string]bool)
	for _, r := range records {
		if !r.HasName() || !r.HasFacilityType() {
			continue
		}
		if sums[r.Name] == nil {
			sums[r.Name] = make(map[string]float64)
		}
		sums[r.Name][r.FacilityType] += float64(r.FacilityCount)
		typeSet[r.FacilityType] = true
	}

	parks := make([]string, 0, len(sums))
	for park := range sums {
		parks = append(parks, park)
	}
	sort.Strings(parks)

	types := make([]string, 0, len(typeSet))
	for t := range typeSet {
		types = append(types, t)
	}
	sort.Strings(types)

	pivot := &Pivot{Parks: parks, Types: types}
	if len(parks) == 0 || len(types) == 0 {
		return pivot
	}

	pivot.Counts = mat.NewDense(len(parks), len(types), nil)
	for i, park := range parks {
		for j, t := range types {
			pivot.Counts.Set(i, j, sums[park][t])
		}
	}
	return pivot
}

// Correlate computes the Pearson correlation between the facility type
// columns of the pivot. A column with zero variance correlates as NaN with
// every column including itself; every other diagonal entry is exactly 1.
// The result is symmetric by construction and entries are clamped to
// [-1, 1].
func Correlate(pivot *Pivot) domain.CorrelationMatrix {
	n := len(pivot.Types)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
	}
	matrix := domain.CorrelationMatrix{Types: pivot.Types, Values: values}
	if n == 0 || pivot.Counts == nil {
		return matrix
	}

	cols := make([][]float64, n)
	constant := make([]bool, n)
	for j := 0; j < n; j++ {
		cols[j] = mat.Col(nil, j, pivot.Counts)
		// A single observation also counts as zero variance
		v := stat.Variance(cols[j], nil)
		constant[j] = v == 0 || math.IsNaN(v)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var v float64
			switch {
			case constant[i] || constant[j]:
				v = math.NaN()
			case i == j:
				v = 1
			default:
				v = clamp(stat.Correlation(cols[i], cols[j], nil))
			}
			values[i][j] = v
			values[j][i] = v
		}
	}

	return matrix
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
