package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stockboard/internal/market"
	"stockboard/internal/portfolio"
	"stockboard/internal/quote"
)

// stubService is a hand-rolled Service double with per-method behavior.
type stubService struct {
	viewQuotes   []quote.Quote
	viewRange    quote.Range
	viewErr      error
	growthQuotes []quote.Quote
	growthErr    error
	addQuote     *quote.Quote
	addErr       error
	removeErr    error
	searchRes    market.SearchResult
	searchErr    error
}

func (s *stubService) View(_ context.Context, r quote.Range) ([]quote.Quote, error) {
	s.viewRange = r
	return s.viewQuotes, s.viewErr
}

func (s *stubService) GrowthView(context.Context) ([]quote.Quote, error) {
	return s.growthQuotes, s.growthErr
}

func (s *stubService) Add(context.Context, string) (*quote.Quote, error) {
	return s.addQuote, s.addErr
}

func (s *stubService) Remove(context.Context, string) error { return s.removeErr }

func (s *stubService) Search(context.Context, string) (market.SearchResult, error) {
	return s.searchRes, s.searchErr
}

type okPinger struct{ err error }

func (p okPinger) Ping(context.Context) error { return p.err }

func setupRouter(svc Service, pinger Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(NewHandler(svc, pinger), "")
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetPortfolio(t *testing.T) {
	svc := &stubService{viewQuotes: []quote.Quote{
		{ID: "AAPL", Name: "Apple Inc.", Price: 15, Change: 5, ChangePercent: 33.33, History: []float64{10, 12, 15}, Range: quote.Range1mo},
	}}
	r := setupRouter(svc, okPinger{})

	w := perform(r, http.MethodGet, "/api/portfolio?range=1mo", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, quote.Range1mo, svc.viewRange)
	assert.Contains(t, w.Body.String(), `"id":"AAPL"`)
	assert.Contains(t, w.Body.String(), `"changePercent":33.33`)
}

func TestGetPortfolio_DefaultRange(t *testing.T) {
	svc := &stubService{}
	r := setupRouter(svc, okPinger{})

	w := perform(r, http.MethodGet, "/api/portfolio", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, quote.Range1d, svc.viewRange)
}

func TestGetPortfolio_StoreFailure(t *testing.T) {
	svc := &stubService{viewErr: errors.New("store unavailable")}
	r := setupRouter(svc, okPinger{})

	w := perform(r, http.MethodGet, "/api/portfolio", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestAddStock(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		addQuote       *quote.Quote
		addErr         error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success returns the new quote",
			body:           `{"symbol":"nvda"}`,
			addQuote:       &quote.Quote{ID: "NVDA", Name: "NVIDIA Corp.", Price: 100},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"NVDA"`,
		},
		{
			name:           "missing symbol field",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Symbol is required",
		},
		{
			name:           "malformed body",
			body:           `{"symbol":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid request body",
		},
		{
			name:           "unfetchable symbol",
			body:           `{"symbol":"BOGUS"}`,
			addErr:         portfolio.ErrInvalidSymbol,
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Invalid stock symbol",
		},
		{
			name:           "store failure",
			body:           `{"symbol":"NVDA"}`,
			addErr:         errors.New("disk full"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "error",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubService{addQuote: tc.addQuote, addErr: tc.addErr}
			r := setupRouter(svc, okPinger{})

			w := perform(r, http.MethodPost, "/api/portfolio", tc.body)
			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestRemoveStock(t *testing.T) {
	r := setupRouter(&stubService{}, okPinger{})

	w := perform(r, http.MethodDelete, "/api/portfolio/AAPL", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestRemoveStock_StoreFailure(t *testing.T) {
	r := setupRouter(&stubService{removeErr: errors.New("store unavailable")}, okPinger{})

	w := perform(r, http.MethodDelete, "/api/portfolio/AAPL", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetGrowth(t *testing.T) {
	svc := &stubService{growthQuotes: []quote.Quote{
		{ID: "NVDA", Name: "NVIDIA Corp.", Price: 100, Potential: "High", Range: quote.Range1d},
	}}
	r := setupRouter(svc, okPinger{})

	w := perform(r, http.MethodGet, "/api/growth", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"potential":"High"`)
}

func TestSearch(t *testing.T) {
	testCases := []struct {
		name           string
		path           string
		searchRes      market.SearchResult
		searchErr      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "match found",
			path:           "/api/search?q=apple",
			searchRes:      market.SearchResult{Symbol: "AAPL", Name: "Apple Inc."},
			expectedStatus: http.StatusOK,
			expectedBody:   `"symbol":"AAPL"`,
		},
		{
			name:           "missing query",
			path:           "/api/search",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Query required",
		},
		{
			name:           "no results",
			path:           "/api/search?q=xyzzy",
			searchErr:      market.ErrNoMatch,
			expectedStatus: http.StatusNotFound,
			expectedBody:   "No results found",
		},
		{
			name:           "upstream failure",
			path:           "/api/search?q=apple",
			searchErr:      market.ErrUpstreamUnavailable,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Search failed",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubService{searchRes: tc.searchRes, searchErr: tc.searchErr}
			r := setupRouter(svc, okPinger{})

			w := perform(r, http.MethodGet, tc.path, "")
			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestHealth(t *testing.T) {
	r := setupRouter(&stubService{}, okPinger{})
	w := perform(r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestHealth_Degraded(t *testing.T) {
	r := setupRouter(&stubService{}, okPinger{err: errors.New("db closed")})
	w := perform(r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
