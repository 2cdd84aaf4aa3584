package growth

import (
	"fmt"
	"math"

	"github.com/wealthviz/investment-service/internal/domain"
)

type Builder struct{}

func NewBuilder() *Builder { return &Builder{} }

// LumpSumSeries expands LumpSumValue across every (rate, year) pair.
func (b *Builder) LumpSumSeries(principal float64, rates []float64, years domain.YearRange) domain.ProjectionSeries {
	return build(principal, rates, years, LumpSumValue)
}

// RecurringSeries expands RecurringMonthlyValue across every (rate, year) pair.
func (b *Builder) RecurringSeries(monthly float64, rates []float64, years domain.YearRange) domain.ProjectionSeries {
	return build(monthly, rates, years, RecurringMonthlyValue)
}

// build walks rates in the outer loop and years in the inner loop so points
// stay grouped by rate label. A non-positive amount returns an empty series;
// callers skip chart generation entirely in that case.
func build(amount float64, rates []float64, years domain.YearRange, value func(float64, float64, int) float64) domain.ProjectionSeries {
	if amount <= 0 {
		return nil
	}
	var series domain.ProjectionSeries
	for _, rate := range rates {
		label := RateLabel(rate)
		for year := years.First; year <= years.Last; year++ {
			series = append(series, domain.ProjectionPoint{
				Year:   year,
				Rate:   rate,
				Label:  label,
				Amount: value(amount, rate, year),
			})
		}
	}
	return series
}

// RateLabel formats a fractional rate as an integer percentage legend key,
// e.g. 0.10 -> "10%". Rounding keeps the fixed rate set exact despite
// float64 representation (0.15*100 is not exactly 15).
func RateLabel(rate float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(rate*100)))
}
