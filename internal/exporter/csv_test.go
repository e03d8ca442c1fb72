package exporter

import (
	"bytes"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkscli/internal/config"
	"parkscli/pkg/contracts/domain"
)

func newTestPaths(t *testing.T) *config.Paths {
	t.Helper()
	return config.GetPathsFrom(t.TempDir(), "", "")
}

// readCSVFile reads a CSV artifact back, reporting whether it carried a
// UTF-8 BOM.
func readCSVFile(t *testing.T, path string) ([][]string, bool) {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	hasBOM := bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows, hasBOM
}

func TestWriteCSV(t *testing.T) {
	writer := NewCSVWriter(newTestPaths(t))

	err := writer.WriteCSV("out.csv", WriteOptions{
		Headers: []string{"A", "B"},
		Records: [][]string{{"1", "2"}, {"3", "4"}},
	})
	require.NoError(t, err)

	rows, hasBOM := readCSVFile(t, writer.paths.GetReportPath("out.csv"))
	assert.False(t, hasBOM)
	assert.Equal(t, [][]string{{"A", "B"}, {"1", "2"}, {"3", "4"}}, rows)
}

func TestWriteCSV_Append(t *testing.T) {
	writer := NewCSVWriter(newTestPaths(t))

	require.NoError(t, writer.WriteCSV("out.csv", WriteOptions{
		Headers: []string{"A", "B"},
		Records: [][]string{{"1", "2"}},
	}))
	require.NoError(t, writer.WriteCSV("out.csv", WriteOptions{
		Headers: []string{"A", "B"},
		Records: [][]string{{"3", "4"}},
		Append:  true,
	}))

	rows, _ := readCSVFile(t, writer.paths.GetReportPath("out.csv"))

	// Appending must not repeat the header row.
	assert.Equal(t, [][]string{{"A", "B"}, {"1", "2"}, {"3", "4"}}, rows)
}

func TestWriteSimpleCSV_BOMPrefix(t *testing.T) {
	writer := NewCSVWriter(newTestPaths(t))

	require.NoError(t, writer.WriteSimpleCSV("out.csv", []string{"A"}, [][]string{{"1"}}))

	_, hasBOM := readCSVFile(t, writer.paths.GetReportPath("out.csv"))
	assert.True(t, hasBOM)
}

func TestWriteDistribution(t *testing.T) {
	writer := NewCSVWriter(newTestPaths(t))

	dist := domain.FacilityDistribution{Entries: []domain.TypeCount{
		{FacilityType: "Playground", TotalCount: 12},
		{FacilityType: "Garden", TotalCount: 5},
	}}

	require.NoError(t, writer.WriteDistribution(dist))

	rows, hasBOM := readCSVFile(t, writer.paths.DistributionCSV)
	assert.True(t, hasBOM)
	assert.Equal(t, [][]string{
		{"FacilityType", "TotalCount"},
		{"Playground", "12"},
		{"Garden", "5"},
	}, rows)
}

func TestWriteDiversity(t *testing.T) {
	writer := NewCSVWriter(newTestPaths(t))

	div := domain.ParkDiversity{Entries: []domain.ParkTypeCount{
		{Name: "Stanley Park", DistinctTypes: 7},
		{Name: "Hastings Park", DistinctTypes: 3},
	}}

	require.NoError(t, writer.WriteDiversity(div))

	rows, _ := readCSVFile(t, writer.paths.DiversityCSV)
	assert.Equal(t, [][]string{
		{"Name", "DistinctTypes"},
		{"Stanley Park", "7"},
		{"Hastings Park", "3"},
	}, rows)
}

func TestWriteCorrelation(t *testing.T) {
	writer := NewCSVWriter(newTestPaths(t))

	m := domain.CorrelationMatrix{
		Types: []string{"Garden", "Playground"},
		Values: [][]float64{
			{1, 0.5},
			{0.5, 1},
		},
	}

	require.NoError(t, writer.WriteCorrelation(m))

	rows, _ := readCSVFile(t, writer.paths.CorrelationCSV)
	assert.Equal(t, [][]string{
		{"FacilityType", "Garden", "Playground"},
		{"Garden", "1.000000", "0.500000"},
		{"Playground", "0.500000", "1.000000"},
	}, rows)
}

func TestWriteCorrelation_NaNCells(t *testing.T) {
	writer := NewCSVWriter(newTestPaths(t))

	nan := math.NaN()
	m := domain.CorrelationMatrix{
		Types: []string{"Bench", "Pool"},
		Values: [][]float64{
			{nan, nan},
			{nan, 1},
		},
	}

	require.NoError(t, writer.WriteCorrelation(m))

	rows, _ := readCSVFile(t, writer.paths.CorrelationCSV)
	assert.Equal(t, []string{"Bench", "NaN", "NaN"}, rows[1])
	assert.Equal(t, []string{"Pool", "NaN", "1.000000"}, rows[2])
}

func TestResolvePath(t *testing.T) {
	writer := NewCSVWriter(newTestPaths(t))

	abs := filepath.Join(t.TempDir(), "direct.csv")
	assert.Equal(t, abs, writer.resolvePath(abs))

	resolved := writer.resolvePath("relative.csv")
	assert.Equal(t, writer.paths.GetReportPath("relative.csv"), resolved)
	assert.True(t, strings.HasSuffix(resolved, filepath.Join("reports", "relative.csv")))
}
