package exporter

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"parkscli/internal/config"
	"parkscli/internal/errors"
	"parkscli/pkg/contracts/domain"
)

// ChartWriter renders the analysis chart artifacts as PNG images under the
// base directory.
type ChartWriter struct {
	paths    *config.Paths
	analysis config.AnalysisConfig
}

// NewChartWriter creates a new chart writer instance. Unset analysis
// limits fall back to the configuration defaults.
func NewChartWriter(paths *config.Paths, analysis config.AnalysisConfig) *ChartWriter {
	if analysis.TopFacilityTypes <= 0 {
		analysis.TopFacilityTypes = 10
	}
	if analysis.TopParks <= 0 {
		analysis.TopParks = 15
	}
	return &ChartWriter{paths: paths, analysis: analysis}
}

var (
	skyBlue    = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	lightGreen = color.RGBA{R: 144, G: 238, B: 144, A: 255}
)

// WriteDistributionChart renders the top ten facility types as a vertical
// bar chart.
func (w *ChartWriter) WriteDistributionChart(dist domain.FacilityDistribution) error {
	entries := dist.TopN(w.analysis.TopFacilityTypes)

	slog.Info("Rendering facility distribution chart",
		slog.String("path", w.paths.DistributionChart),
		slog.Int("bars", len(entries)))

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Top %d Facility Types in Vancouver Parks", w.analysis.TopFacilityTypes)
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Facility Type"
	p.Y.Label.Text = "Total Count"

	values := make(plotter.Values, len(entries))
	labels := make([]string, len(entries))
	for i, e := range entries {
		values[i] = float64(e.TotalCount)
		labels[i] = e.FacilityType
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return errors.NewStorageError("failed to build facility distribution bar chart", err)
	}
	bars.Color = skyBlue
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	if err := p.Save(12*vg.Inch, 6*vg.Inch, w.paths.DistributionChart); err != nil {
		return errors.NewStorageError("failed to render facility distribution chart", err)
	}
	return nil
}

// WriteDiversityChart renders the top fifteen parks by facility diversity
// as a horizontal bar chart.
func (w *ChartWriter) WriteDiversityChart(div domain.ParkDiversity) error {
	entries := div.TopN(w.analysis.TopParks)

	slog.Info("Rendering park diversity chart",
		slog.String("path", w.paths.DiversityChart),
		slog.Int("bars", len(entries)))

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Top %d Vancouver Parks by Facility Diversity", w.analysis.TopParks)
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Number of Different Facility Types"
	p.Y.Label.Text = "Park Name"

	values := make(plotter.Values, len(entries))
	labels := make([]string, len(entries))
	for i, e := range entries {
		values[i] = float64(e.DistinctTypes)
		labels[i] = e.Name
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return errors.NewStorageError("failed to build park diversity bar chart", err)
	}
	bars.Horizontal = true
	bars.Color = lightGreen
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalY(labels...)

	if err := p.Save(12*vg.Inch, 8*vg.Inch, w.paths.DiversityChart); err != nil {
		return errors.NewStorageError("failed to render park diversity chart", err)
	}
	return nil
}

// WriteCorrelationChart renders the facility type correlation matrix as a
// heatmap on a diverging blue to red palette spanning [-1, 1]. NaN entries
// are left blank.
func (w *ChartWriter) WriteCorrelationChart(m domain.CorrelationMatrix) error {
	slog.Info("Rendering facility correlation heatmap",
		slog.String("path", w.paths.CorrelationChart),
		slog.Int("types", m.Size()))

	p := plot.New()
	p.Title.Text = "Correlation Between Facility Types"
	p.Title.TextStyle.Font.Size = vg.Points(16)

	pal := moreland.SmoothBlueRed().Palette(255)
	hm := plotter.NewHeatMap(correlationGrid{matrix: m}, pal)
	hm.Min = -1
	hm.Max = 1

	p.Add(hm)
	p.NominalX(m.Types...)
	p.NominalY(m.Types...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	if err := p.Save(14*vg.Inch, 12*vg.Inch, w.paths.CorrelationChart); err != nil {
		return errors.NewStorageError("failed to render facility correlation heatmap", err)
	}
	return nil
}

// correlationGrid adapts a CorrelationMatrix to the heatmap grid interface,
// with facility types indexed identically along both axes.
type correlationGrid struct {
	matrix domain.CorrelationMatrix
}

func (g correlationGrid) Dims() (c, r int) {
	n := g.matrix.Size()
	return n, n
}

func (g correlationGrid) Z(c, r int) float64 {
	return g.matrix.At(r, c)
}

func (g correlationGrid) X(c int) float64 {
	return float64(c)
}

func (g correlationGrid) Y(r int) float64 {
	return float64(r)
}
