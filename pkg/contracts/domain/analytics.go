package domain

import (
	"encoding/json"
	"math"
)

// TypeCount is one entry of the facility distribution: a facility type and
// the total number of facilities of that type across all parks.
type TypeCount struct {
	FacilityType string `json:"facility_type" csv:"FacilityType"`
	TotalCount   int    `json:"total_count" csv:"TotalCount"`
}

// FacilityDistribution holds the per-type facility totals ordered by
// descending total count. Ties keep the order in which the types first
// appear in the cleaned table.
type FacilityDistribution struct {
	Entries []TypeCount `json:"entries"`
}

// TopN returns the first n entries, or all of them when fewer exist.
func (d *FacilityDistribution) TopN(n int) []TypeCount {
	if n > len(d.Entries) {
		n = len(d.Entries)
	}
	return d.Entries[:n]
}

// Total returns the grand total facility count across all types.
func (d *FacilityDistribution) Total() int {
	total := 0
	for _, e := range d.Entries {
		total += e.TotalCount
	}
	return total
}

// ParkTypeCount is one entry of the park diversity ranking: a park name
// and the number of distinct facility types found in that park.
type ParkTypeCount struct {
	Name          string `json:"name" csv:"Name"`
	DistinctTypes int    `json:"distinct_types" csv:"DistinctTypes"`
}

// ParkDiversity holds the per-park distinct-type counts ordered by
// descending diversity, ties by first appearance in the cleaned table.
type ParkDiversity struct {
	Entries []ParkTypeCount `json:"entries"`
}

// TopN returns the first n entries, or all of them when fewer exist.
func (d *ParkDiversity) TopN(n int) []ParkTypeCount {
	if n > len(d.Entries) {
		n = len(d.Entries)
	}
	return d.Entries[:n]
}

// TypeStatistics holds aggregate facility count statistics for one
// facility type.
type TypeStatistics struct {
	FacilityType string  `json:"facility_type"`
	Count        int     `json:"count"`
	Sum          int     `json:"sum"`
	Mean         float64 `json:"mean"`
	Median       float64 `json:"median"`
	Max          int     `json:"max"`
}

// CorrelationMatrix is the pairwise Pearson correlation between facility
// types over the park-by-type pivot of summed counts. The matrix is square
// and symmetric, indexed by Types in both dimensions.
//
// Entries involving a zero-variance type (a type whose summed count is the
// same in every park) are NaN, that type's diagonal included. Types with
// non-zero variance have exactly 1.0 on the diagonal.
type CorrelationMatrix struct {
	Types  []string
	Values [][]float64
}

// Size returns the number of facility types in the matrix.
func (m *CorrelationMatrix) Size() int {
	return len(m.Types)
}

// At returns the correlation between the i-th and j-th facility types.
func (m *CorrelationMatrix) At(i, j int) float64 {
	return m.Values[i][j]
}

// ValueFor returns the correlation between two facility types by name.
// The second result is false when either type is not in the matrix.
func (m *CorrelationMatrix) ValueFor(typeA, typeB string) (float64, bool) {
	ia, ib := -1, -1
	for i, t := range m.Types {
		if t == typeA {
			ia = i
		}
		if t == typeB {
			ib = i
		}
	}
	if ia < 0 || ib < 0 {
		return 0, false
	}
	return m.Values[ia][ib], true
}

// MarshalJSON encodes the matrix with NaN entries rendered as null, since
// JSON has no NaN literal.
func (m *CorrelationMatrix) MarshalJSON() ([]byte, error) {
	values := make([][]*float64, len(m.Values))
	for i, row := range m.Values {
		values[i] = make([]*float64, len(row))
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			value := v
			values[i][j] = &value
		}
	}

	return json.Marshal(struct {
		Types  []string     `json:"types"`
		Values [][]*float64 `json:"values"`
	}{Types: m.Types, Values: values})
}
