package ports

import "github.com/wealthviz/investment-service/internal/domain"

type ChartPort interface {
	// Render draws the spec as a PNG and returns the encoded bytes.
	Render(spec domain.ChartSpec) ([]byte, error)
}
