// Package analysis implements the facility analyses that run over cleaned
// park records: distribution of counts by type, park diversity, and the
// correlation between facility types.
package analysis

import (
	"fmt"
	"io"
	"sort"

	"parkscli/pkg/contracts/domain"
)

// AnalyzeDistribution sums facility counts per facility type, ordered by
// total descending. Ties keep the order in which the types first appear in
// the records. Records without a facility type are excluded.
func AnalyzeDistribution(records []domain.FacilityRecord) domain.FacilityDistribution {
	totals := make(map[string]int)
	var order []string
	for _, r := range records {
		if !r.HasFacilityType() {
			continue
		}
		if _, ok := totals[r.FacilityType]; !ok {
			order = append(order, r.FacilityType)
		}
		totals[r.FacilityType] += r.FacilityCount
	}

	entries := make([]domain.TypeCount, 0, len(order))
	for _, t := range order {
		entries = append(entries, domain.TypeCount{FacilityType: t, TotalCount: totals[t]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalCount > entries[j].TotalCount
	})

	return domain.FacilityDistribution{Entries: entries}
}

// WriteDistribution prints the top n facility types with their totals, one
// per line.
func WriteDistribution(w io.Writer, dist domain.FacilityDistribution, n int) {
	entries := dist.TopN(n)

	width := 0
	for _, e := range entries {
		if len(e.FacilityType) > width {
			width = len(e.FacilityType)
		}
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%-*s  %6d\n", width, e.FacilityType, e.TotalCount)
	}
}
