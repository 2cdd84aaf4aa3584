package ports

import "github.com/wealthviz/investment-service/internal/domain"

type ProjectionPort interface {
	// LumpSumSeries projects a single upfront principal across every
	// (rate, year) pair. A non-positive principal yields an empty series.
	LumpSumSeries(principal float64, rates []float64, years domain.YearRange) domain.ProjectionSeries

	// RecurringSeries projects a fixed monthly contribution (annuity-due)
	// across every (rate, year) pair. A non-positive contribution yields an
	// empty series.
	RecurringSeries(monthly float64, rates []float64, years domain.YearRange) domain.ProjectionSeries
}
