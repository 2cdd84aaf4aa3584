package usecase

import (
	"context"
	"encoding/base64"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/wealthviz/investment-service/internal/domain"
	"github.com/wealthviz/investment-service/internal/ports"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Candidate rates are fixed; colors are a separate mapping that must cover
// every rate in use (the renderer validates coverage at call time).
var (
	defaultRates      = []float64{0.10, 0.12, 0.15}
	defaultYears      = domain.YearRange{First: 1, Last: 25}
	defaultMilestones = []int{20, 25}

	defaultColors = map[string]color.RGBA{
		"10%": {R: 0x00, G: 0x74, B: 0xd9, A: 0xff},
		"12%": {R: 0xd9, G: 0xd2, B: 0x00, A: 0xff},
		"15%": {R: 0xd9, G: 0x00, B: 0x1c, A: 0xff},
	}
)

const (
	lumpSumTitle   = "Lump Sum Investment Growth Over 25 Years"
	recurringTitle = "SIP Investment Growth Over 25 Years"
)

// ValidationError marks a failure the caller can fix; the REST adapter maps
// it to a 400 instead of a 500.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }

type InvestmentService struct {
	projections ports.ProjectionPort
	charts      ports.ChartPort
	markup      ports.MarkupPort
}

func NewInvestmentService(projections ports.ProjectionPort, charts ports.ChartPort, markup ports.MarkupPort) *InvestmentService {
	return &InvestmentService{
		projections: projections,
		charts:      charts,
		markup:      markup,
	}
}

func (s *InvestmentService) Check(ctx context.Context, name string) (bool, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "investment-service"
	}
	return true, "OK: " + name
}

// ProjectInvestments renders growth charts for a lump sum and a monthly SIP
// contribution. A zero amount on either side skips that chart; both zero is
// a validation error.
func (s *InvestmentService) ProjectInvestments(ctx context.Context, lump, monthly float64) (*domain.InvestmentCharts, error) {
	// NaN compares false against every bound, so finiteness is checked
	// explicitly before the range checks.
	if !isFinite(lump) || !isFinite(monthly) {
		return nil, &ValidationError{Detail: "investment amounts must be finite numbers"}
	}
	if lump < 0 || monthly < 0 {
		return nil, &ValidationError{Detail: "investment amounts must be greater than or equal to 0"}
	}
	if lump == 0 && monthly == 0 {
		return nil, &ValidationError{Detail: "at least one of lump sum or monthly investment must be greater than 0"}
	}

	out := &domain.InvestmentCharts{}

	if lump > 0 {
		series := s.projections.LumpSumSeries(lump, defaultRates, defaultYears)
		uri, err := s.renderDataURI(lumpSumTitle, series)
		if err != nil {
			return nil, err
		}
		out.LumpSum = uri
	}

	if monthly > 0 {
		series := s.projections.RecurringSeries(monthly, defaultRates, defaultYears)
		uri, err := s.renderDataURI(recurringTitle, series)
		if err != nil {
			return nil, err
		}
		out.Monthly = uri
	}

	if out.LumpSum != "" || out.Monthly != "" {
		logger.Info().
			Float64("lump", lump).
			Float64("monthly", monthly).
			Msg("investment projection rendered")
	}

	return out, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (s *InvestmentService) renderDataURI(title string, series domain.ProjectionSeries) (string, error) {
	if series.Empty() {
		return "", nil
	}
	png, err := s.charts.Render(domain.ChartSpec{
		Title:          title,
		Series:         series,
		Colors:         defaultColors,
		MilestoneYears: defaultMilestones,
	})
	if err != nil {
		// The renderer already names the chart in its errors.
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// RestyleDocument rewrites inline HTML styling from the static tag table.
func (s *InvestmentService) RestyleDocument(doc string) (string, error) {
	if strings.TrimSpace(doc) == "" {
		return "", &ValidationError{Detail: "document is empty"}
	}
	out, err := s.markup.Restyle(doc)
	if err != nil {
		logger.Error().Err(err).Msg("restyle failed")
		return "", err
	}
	return out, nil
}
