package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wealthviz/investment-service/internal/domain"
	"github.com/wealthviz/investment-service/internal/ports"
	"github.com/wealthviz/investment-service/internal/usecase"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// maxDocumentBytes caps the restyle request body.
const maxDocumentBytes = 1 << 20

// InvestmentAPI is the application surface the HTTP layer exposes.
type InvestmentAPI interface {
	ports.HealthPort

	ProjectInvestments(ctx context.Context, lump, monthly float64) (*domain.InvestmentCharts, error)
	RestyleDocument(doc string) (string, error)
}

type Handler struct {
	api InvestmentAPI
}

// NewHandler builds the HTTP handler for the investment service.
func NewHandler(api InvestmentAPI) http.Handler {
	h := &Handler{api: api}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /investments", h.investments)
	mux.HandleFunc("POST /restyle", h.restyle)
	mux.HandleFunc("GET /healthz", h.healthz)
	return withRequestLog(mux)
}

// investmentsResponse carries one data URI per requested chart; a null side
// means that amount was zero and no chart was generated.
type investmentsResponse struct {
	Lump    *string `json:"lump"`
	Monthly *string `json:"monthly"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (h *Handler) investments(w http.ResponseWriter, r *http.Request) {
	lump, err := queryFloat(r, "lump")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	monthly, err := queryFloat(r, "monthly")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	charts, err := h.api.ProjectInvestments(r.Context(), lump, monthly)
	if err != nil {
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Detail)
			return
		}
		logger.Error().Err(err).Msg("investment projection failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, investmentsResponse{
		Lump:    nullable(charts.LumpSum),
		Monthly: nullable(charts.Monthly),
	})
}

func (h *Handler) restyle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read request body")
		return
	}

	out, err := h.api.RestyleDocument(string(body))
	if err != nil {
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Detail)
			return
		}
		logger.Error().Err(err).Msg("restyle failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, out)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	healthy, msg := h.api.Check(r.Context(), r.URL.Query().Get("name"))
	writeJSON(w, http.StatusOK, map[string]any{
		"healthy": healthy,
		"message": msg,
	})
}

// withRequestLog tags every request with an id and logs method, path,
// and duration.
func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		next.ServeHTTP(w, r)
		logger.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}

func queryFloat(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, errors.New("query parameter " + name + " is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New("query parameter " + name + " must be a number")
	}
	return v, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
