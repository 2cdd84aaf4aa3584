package domain

import "image/color"

// ProjectionPoint is one projected value: the amount an investment grows to
// after Year years at the given annual Rate. Label is the legend key for the
// rate (e.g. "10%").
type ProjectionPoint struct {
	Year   int     `json:"year"`
	Rate   float64 `json:"rate"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// ProjectionSeries is an ordered list of projection points, grouped by rate
// label (rate outer loop, year inner loop).
type ProjectionSeries []ProjectionPoint

func (s ProjectionSeries) Empty() bool { return len(s) == 0 }

// RateLabels returns the distinct rate labels in insertion order.
func (s ProjectionSeries) RateLabels() []string {
	seen := make(map[string]bool, 4)
	var labels []string
	for _, p := range s {
		if !seen[p.Label] {
			seen[p.Label] = true
			labels = append(labels, p.Label)
		}
	}
	return labels
}

// ByLabel returns the points carrying the given rate label, in year order.
func (s ProjectionSeries) ByLabel(label string) ProjectionSeries {
	var out ProjectionSeries
	for _, p := range s {
		if p.Label == label {
			out = append(out, p)
		}
	}
	return out
}

// YearRange is an inclusive range of projection years.
type YearRange struct {
	First int
	Last  int
}

// ChartSpec describes one chart render: the series to plot, a color per rate
// label, and the years that get a value annotation. Colors must cover every
// label present in Series; the renderer rejects unmapped labels.
type ChartSpec struct {
	Title          string
	Series         ProjectionSeries
	Colors         map[string]color.RGBA
	MilestoneYears []int
}

// InvestmentCharts holds the rendered charts as data URIs. An empty string
// means the corresponding amount was zero and no chart was generated.
type InvestmentCharts struct {
	LumpSum string
	Monthly string
}
