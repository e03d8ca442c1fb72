package analysis

import (
	"fmt"
	"io"
	"sort"

	"parkscli/pkg/contracts/domain"
)

// AnalyzeDiversity counts the distinct facility types offered by each park,
// ordered by count descending. Ties keep the order in which the parks first
// appear in the records. Records without a park name are excluded; a park
// whose records all lack a facility type still appears with zero types.
func AnalyzeDiversity(records []domain.FacilityRecord) domain.ParkDiversity {
	types := make(map[string]map[string]bool)
	var order []string
	for _, r := range records {
		if !r.HasName() {
			continue
		}
		if types[r.Name] == nil {
			types[r.Name] = make(map[string]bool)
			order = append(order, r.Name)
		}
		if r.HasFacilityType() {
			types[r.Name][r.FacilityType] = true
		}
	}

	entries := make([]domain.ParkTypeCount, 0, len(order))
	for _, name := range order {
		entries = append(entries, domain.ParkTypeCount{Name: name, DistinctTypes: len(types[name])})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DistinctTypes > entries[j].DistinctTypes
	})

	return domain.ParkDiversity{Entries: entries}
}

// WriteDiversity prints the top n parks with their distinct type counts,
// one per line.
func WriteDiversity(w io.Writer, div domain.ParkDiversity, n int) {
	entries := div.TopN(n)

	width := 0
	for _, e := range entries {
		if len(e.Name) > width {
			width = len(e.Name)
		}
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%-*s  %6d\n", width, e.Name, e.DistinctTypes)
	}
}
