package chartgen

import (
	"bytes"
	"fmt"
	"image/color"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/wealthviz/investment-service/internal/domain"
)

// Renderer draws projection series as PNG line charts, one line per rate
// label, with milestone-year value callouts.
type Renderer struct {
	width  int
	height int
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

func (r *Renderer) Render(spec domain.ChartSpec) ([]byte, error) {
	labels := spec.Series.RateLabels()
	if len(labels) == 0 {
		return nil, fmt.Errorf("chart %q: empty series", spec.Title)
	}
	// Every label must be covered before any drawing happens.
	for _, label := range labels {
		if _, ok := spec.Colors[label]; !ok {
			return nil, fmt.Errorf("chart %q: unmapped rate label %q", spec.Title, label)
		}
	}

	milestones := make(map[int]bool, len(spec.MilestoneYears))
	for _, y := range spec.MilestoneYears {
		milestones[y] = true
	}

	series := make([]chart.Series, 0, len(labels)+1)
	var callouts []chart.Value2
	for _, label := range labels {
		points := spec.Series.ByLabel(label)
		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i] = float64(p.Year)
			ys[i] = p.Amount
			if milestones[p.Year] {
				callouts = append(callouts, chart.Value2{
					XValue: float64(p.Year),
					YValue: p.Amount,
					Label:  Abbreviate(p.Amount),
				})
			}
		}
		col := toDrawing(spec.Colors[label])
		series = append(series, chart.ContinuousSeries{
			Name:    label,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				DotColor:    col,
				DotWidth:    5,
			},
		})
	}
	if len(callouts) > 0 {
		series = append(series, chart.AnnotationSeries{Annotations: callouts})
	}

	ch := chart.Chart{
		Title:  spec.Title,
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 40},
		},
		XAxis: chart.XAxis{Name: "Year"},
		YAxis: chart.YAxis{
			Name: "Investment Amount",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return Abbreviate(f)
				}
				return ""
			},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart %q: render: %w", spec.Title, err)
	}
	return buf.Bytes(), nil
}

// Abbreviate formats a dollar amount for axis ticks and milestone callouts:
// $2.5M above a million, $1.5k above a thousand, $500 below.
func Abbreviate(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("$%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("$%.1fk", v/1_000)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

func toDrawing(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
