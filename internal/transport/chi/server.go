// Package chi exposes the HTTP API: search, autocomplete, analytics,
// currency and the dashboard aggregate.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/deskhub-cloud/deskhub/internal/domain"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/filter"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/request"
	"github.com/deskhub-cloud/deskhub/internal/metrics"
	analyticsuc "github.com/deskhub-cloud/deskhub/internal/usecase/analytics"
	currencyuc "github.com/deskhub-cloud/deskhub/internal/usecase/currency"
	dashboarduc "github.com/deskhub-cloud/deskhub/internal/usecase/dashboard"
	healthuc "github.com/deskhub-cloud/deskhub/internal/usecase/health"
	searchuc "github.com/deskhub-cloud/deskhub/internal/usecase/search"
	suggestuc "github.com/deskhub-cloud/deskhub/internal/usecase/suggest"
)

// Error response codes.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeInvalidPeriod    = "invalid_period"
	codeNotFound         = "not_found"
	codeInternalError    = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the HTTP handlers for the deskhub API.
type Server struct {
	search        *searchuc.Service
	suggest       *suggestuc.Service
	analytics     *analyticsuc.Service
	currency      *currencyuc.Service
	dashboard     *dashboarduc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	now           func() time.Time
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	suggest *suggestuc.Service,
	analytics *analyticsuc.Service,
	currency *currencyuc.Service,
	dashboard *dashboarduc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:    search,
		suggest:   suggest,
		analytics: analytics,
		currency:  currency,
		dashboard: dashboard,
		health:    health,
		logger:    logger,
		now:       time.Now,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidPeriod, http.StatusBadRequest, codeInvalidPeriod),
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
	}
	return s
}

// WithClock returns a copy using the given clock. For tests.
func (s *Server) WithClock(now func() time.Time) *Server {
	c := *s
	c.now = now
	return &c
}

// Routes registers all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/search", s.Search)
		r.Get("/suggest", s.Suggest)
		r.Get("/analytics", s.Analytics)
		r.Get("/rates", s.Rates)
		r.Post("/convert", s.Convert)
		r.Get("/dashboard", s.Dashboard)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Search handles GET /api/v1/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters, err := filter.New(
		filter.ContentType(q.Get("type")),
		filter.Period(q.Get("period")),
		q.Get("author"),
		q.Get("analysis") == "true",
		q.Get("rating") == "true",
	)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	page, err := queryInt(q.Get("page"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "page must be an integer")
		return
	}
	pageSize, err := queryInt(q.Get("page_size"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "page_size must be an integer")
		return
	}

	req, err := request.New(q.Get("q"), filters, page, pageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	result, err := s.search.Search(r.Context(), &req)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		s.handleDomainError(w, err)
		return
	}

	metrics.SearchesTotal.WithLabelValues("ok").Inc()
	metrics.SearchResultsReturned.Observe(float64(result.Total()))

	writeJSON(w, http.StatusOK, pageToResponse(&result, req.Page(), req.PageSize(), s.now()))
}

// Suggest handles GET /api/v1/suggest.
func (s *Server) Suggest(w http.ResponseWriter, r *http.Request) {
	phrases, err := s.suggest.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, suggestResponse{Suggestions: phrases})
}

// Analytics handles GET /api/v1/analytics.
func (s *Server) Analytics(w http.ResponseWriter, r *http.Request) {
	days := 7
	if raw := r.URL.Query().Get("period"); raw != "" {
		var err error
		days, err = strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidPeriod, "period must be an integer day count")
			return
		}
	}

	ds, err := s.analytics.Generate(r.Context(), days)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, datasetToResponse(&ds, days))
}

// Rates handles GET /api/v1/rates.
func (s *Server) Rates(w http.ResponseWriter, r *http.Request) {
	table, err := s.currency.Rates(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tableToResponse(&table))
}

// Convert handles POST /api/v1/convert.
func (s *Server) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.From == "" || req.To == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "from and to currencies are required")
		return
	}

	conv, err := s.currency.Convert(r.Context(), req.Amount, req.From, req.To)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	metrics.ConversionsTotal.WithLabelValues(req.From, req.To).Inc()

	resp := convertResponse{Available: conv.Available()}
	if conv.Available() {
		result := conv.Result()
		cross := conv.CrossRate()
		resp.Result = &result
		resp.CrossRate = &cross
	}
	writeJSON(w, http.StatusOK, resp)
}

// Dashboard handles GET /api/v1/dashboard.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	sum, err := s.dashboard.Summary(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summaryToResponse(&sum, s.now()))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, reportToResponse(report))
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func queryInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrInvalidRequest,
		domain.ErrInvalidPeriod,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
