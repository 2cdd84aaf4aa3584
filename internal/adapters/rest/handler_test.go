package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wealthviz/investment-service/internal/adapters/chartgen"
	"github.com/wealthviz/investment-service/internal/adapters/growth"
	"github.com/wealthviz/investment-service/internal/adapters/markup"
	"github.com/wealthviz/investment-service/internal/usecase"
)

func newTestHandler() http.Handler {
	svc := usecase.NewInvestmentService(
		growth.NewBuilder(),
		chartgen.NewRenderer(640, 480),
		markup.NewRestyler(),
	)
	return NewHandler(svc)
}

func TestInvestmentsValidation(t *testing.T) {
	handler := newTestHandler()

	tests := []struct {
		name   string
		target string
	}{
		{"missing params", "/investments"},
		{"missing monthly", "/investments?lump=100"},
		{"non numeric", "/investments?lump=abc&monthly=0"},
		{"both zero", "/investments?lump=0&monthly=0"},
		{"negative lump", "/investments?lump=-10&monthly=0"},
		{"nan amounts", "/investments?lump=NaN&monthly=NaN"},
		{"infinite lump", "/investments?lump=%2BInf&monthly=0"},
		{"negative infinite monthly", "/investments?lump=100&monthly=-Inf"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
			}

			var body struct {
				Detail string `json:"detail"`
			}
			if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body.Detail == "" {
				t.Error("expected a detail message in the error body")
			}
		})
	}
}

func TestInvestmentsLumpOnly(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/investments?lump=10000&monthly=0", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}

	var body investmentsResponse
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Lump == nil || !strings.HasPrefix(*body.Lump, "data:image/png;base64,") {
		t.Error("expected lump chart as a PNG data URI")
	}
	if body.Monthly != nil {
		t.Errorf("expected null monthly chart, got %q", *body.Monthly)
	}
}

func TestInvestmentsBothCharts(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/investments?lump=10000&monthly=500", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
	if recorder.Header().Get("X-Request-Id") == "" {
		t.Error("expected a request id header")
	}

	var body investmentsResponse
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Lump == nil || body.Monthly == nil {
		t.Error("expected both charts in the response")
	}
}

func TestRestyleEndpoint(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/restyle",
		strings.NewReader(`<h1 class="hero">Title</h1><p>Body</p>`))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
	body := recorder.Body.String()
	if !strings.Contains(body, `<h1 style="`) {
		t.Errorf("expected restyled heading, got %q", body)
	}
	if strings.Contains(body, `class="hero"`) {
		t.Errorf("expected class attribute to be stripped, got %q", body)
	}
}

func TestRestyleEmptyBody(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/restyle", strings.NewReader(""))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestHealthz(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	var body struct {
		Healthy bool   `json:"healthy"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Healthy || !strings.HasPrefix(body.Message, "OK:") {
		t.Errorf("unexpected health body: %+v", body)
	}
}
