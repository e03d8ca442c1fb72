package analysis

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkscli/pkg/contracts/domain"
)

func TestAnalyzeDistribution(t *testing.T) {
	records := []domain.FacilityRecord{
		{ParkID: 1, Name: "Stanley Park", FacilityType: "Playground", FacilityCount: 5},
		{ParkID: 2, Name: "Queen Elizabeth Park", FacilityType: "Garden", FacilityCount: 2},
		{ParkID: 3, Name: "Hastings Park", FacilityType: "Pool", FacilityCount: 4},
		{ParkID: 4, Name: "Kitsilano Beach Park", FacilityType: "Playground", FacilityCount: 3},
		{ParkID: 5, Name: "David Lam Park", FacilityType: "Garden", FacilityCount: 2},
		{ParkID: 6, Name: "Oppenheimer Park", FacilityType: "", FacilityCount: 9},
	}

	dist := AnalyzeDistribution(records)
	require.Len(t, dist.Entries, 3)

	// Descending by total; Garden and Pool tie at 4 and keep first-appearance order
	assert.Equal(t, domain.TypeCount{FacilityType: "Playground", TotalCount: 8}, dist.Entries[0])
	assert.Equal(t, domain.TypeCount{FacilityType: "Garden", TotalCount: 4}, dist.Entries[1])
	assert.Equal(t, domain.TypeCount{FacilityType: "Pool", TotalCount: 4}, dist.Entries[2])

	// Untyped records are excluded from the grand total
	assert.Equal(t, 16, dist.Total())
}

func TestAnalyzeDistribution_SumsRoundTrip(t *testing.T) {
	records := []domain.FacilityRecord{
		{ParkID: 1, Name: "Stanley Park", FacilityType: "Playground", FacilityCount: 5},
		{ParkID: 2, Name: "Queen Elizabeth Park", FacilityType: "Playground", FacilityCount: 3},
		{ParkID: 3, Name: "Hastings Park", FacilityType: "Garden", FacilityCount: 2},
	}

	dist := AnalyzeDistribution(records)

	total := 0
	for _, r := range records {
		total += r.FacilityCount
	}
	assert.Equal(t, total, dist.Total())
}

func TestAnalyzeDistribution_ImputedZeroContributesNothing(t *testing.T) {
	records := []domain.FacilityRecord{
		{ParkID: 1, Name: "Stanley Park", FacilityType: "Playground", FacilityCount: 0},
		{ParkID: 2, Name: "Queen Elizabeth Park", FacilityType: "Playground", FacilityCount: 3},
	}

	dist := AnalyzeDistribution(records)
	require.Len(t, dist.Entries, 1)
	assert.Equal(t, 3, dist.Entries[0].TotalCount)
}

func TestAnalyzeDistribution_StableTies(t *testing.T) {
	records := []domain.FacilityRecord{
		{ParkID: 1, Name: "A", FacilityType: "Tennis Court", FacilityCount: 2},
		{ParkID: 2, Name: "B", FacilityType: "Beach", FacilityCount: 2},
		{ParkID: 3, Name: "C", FacilityType: "Marina", FacilityCount: 2},
	}

	dist := AnalyzeDistribution(records)
	require.Len(t, dist.Entries, 3)
	assert.Equal(t, "Tennis Court", dist.Entries[0].FacilityType)
	assert.Equal(t, "Beach", dist.Entries[1].FacilityType)
	assert.Equal(t, "Marina", dist.Entries[2].FacilityType)
}

func TestAnalyzeDistribution_TopN(t *testing.T) {
	records := []domain.FacilityRecord{
		{ParkID: 1, Name: "A", FacilityType: "Playground", FacilityCount: 9},
		{ParkID: 2, Name: "B", FacilityType: "Garden", FacilityCount: 5},
		{ParkID: 3, Name: "C", FacilityType: "Pool", FacilityCount: 1},
	}

	dist := AnalyzeDistribution(records)

	top := dist.TopN(2)
	require.Len(t, top, 2)
	assert.Equal(t, "Playground", top[0].FacilityType)
	assert.Equal(t, "Garden", top[1].FacilityType)

	// Asking for more than exists returns everything
	assert.Len(t, dist.TopN(10), 3)
}

func TestAnalyzeDistribution_Empty(t *testing.T) {
	dist := AnalyzeDistribution(nil)
	assert.Empty(t, dist.Entries)
	assert.Equal(t, 0, dist.Total())
}

func TestWriteDistribution(t *testing.T) {
	dist := domain.FacilityDistribution{Entries: []domain.TypeCount{
		{FacilityType: "Playground", TotalCount: 12},
		{FacilityType: "Garden", TotalCount: 5},
		{FacilityType: "Pool", TotalCount: 1},
	}}

	var buf bytes.Buffer
	WriteDistribution(&buf, dist, 2)

	out := buf.String()
	assert.Contains(t, out, "Playground")
	assert.Contains(t, out, "Garden")
	assert.NotContains(t, out, "Pool")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Playground"))
}
