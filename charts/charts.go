// Package charts renders the derived dashboard tables as PNG bar charts.
// Charts are rendered to memory and served over HTTP; nothing is written to
// disk.
package charts

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"tourism-dashboard/models"
)

var (
	teal  = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	green = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	blue  = color.RGBA{R: 65, G: 105, B: 225, A: 255}
)

// CategoryBar renders a (value, count) table as a bar chart.
func CategoryBar(title, yLabel string, counts []models.CategoryCount) ([]byte, error) {
	values := make(plotter.Values, len(counts))
	labels := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Count)
		labels[i] = c.Value
	}
	return renderBars(title, yLabel, values, labels, teal)
}

// DestinationBar renders the rural-positive destination ranking.
func DestinationBar(title string, ranks []models.DestinationRank) ([]byte, error) {
	values := make(plotter.Values, len(ranks))
	labels := make([]string, len(ranks))
	for i, r := range ranks {
		values[i] = float64(r.PositiveCount)
		labels[i] = r.Destination
	}
	return renderBars(title, "Positive Review Count", values, labels, green)
}

// DistrictBar renders the district-by-average-sentiment table. The y axis
// is pinned to the score domain [0, 2].
func DistrictBar(title string, scores []models.DistrictScore) ([]byte, error) {
	values := make(plotter.Values, len(scores))
	labels := make([]string, len(scores))
	for i, s := range scores {
		values[i] = s.AverageScore
		labels[i] = fmt.Sprintf("%s (%d)", s.District, s.ReviewCount)
	}

	p, err := barPlot(title, "Average Sentiment Score (0=Neg, 2=Pos)", values, labels, blue)
	if err != nil {
		return nil, err
	}
	p.Y.Min = 0
	p.Y.Max = 2
	return encodePNG(p)
}

func renderBars(title, yLabel string, values plotter.Values, labels []string, fill color.Color) ([]byte, error) {
	p, err := barPlot(title, yLabel, values, labels, fill)
	if err != nil {
		return nil, err
	}
	return encodePNG(p)
}

func barPlot(title, yLabel string, values plotter.Values, labels []string, fill color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = yLabel

	// NewBarChart rejects an empty value set, so an empty table is drawn
	// as a blank plot with pinned axes instead.
	if len(values) == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1
		return p, nil
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return nil, fmt.Errorf("charts: bar chart: %w", err)
	}
	bars.Color = fill
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight
	p.Y.Min = 0

	return p, nil
}

func encodePNG(p *plot.Plot) ([]byte, error) {
	wt, err := p.WriterTo(8*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("charts: render: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("charts: encode: %w", err)
	}
	return buf.Bytes(), nil
}
