package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"

	"adbooks/internal/core/domain"
	"adbooks/internal/core/port"
)

// Metrics
var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "accounting_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "endpoint", "status"})

	creditDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "accounting_credit_decisions_total",
		Help: "Credit check outcomes",
	}, []string{"decision"})
)

// Requester headers set by the platform's auth middleware upstream.
const (
	headerOrgID = "X-Org-Id"
	headerScope = "X-Org-Scope"
)

// Handler is the inbound HTTP adapter. It holds the two top-level read
// services and a logger; routes are registered on a chi.Router. The
// middleware chain supplies a per-request id used as correlation id when
// logging upstream failures.
type Handler struct {
	stats  port.BalanceStats
	credit port.CreditCheck
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(stats port.BalanceStats, credit port.CreditCheck, logger *slog.Logger) *Handler {
	h := &Handler{stats: stats, credit: credit, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/accounting", func(r chi.Router) {
		r.Get("/balance", h.handleBalance)
		r.Get("/balances", h.handleBalances)
		r.Post("/credit-check", h.handleCreditCheck)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// requesterFrom builds the requester identity from the pre-authenticated
// headers. Anything but an explicit "all" scope narrows to "own".
func requesterFrom(r *http.Request) domain.Requester {
	scope := r.Header.Get(headerScope)
	if scope != domain.ScopeAll {
		scope = domain.ScopeOwn
	}
	return domain.Requester{OrgID: r.Header.Get(headerOrgID), Scope: scope}
}

// writeJSON encodes v with the given status and counts the request.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, endpoint string, status int, v any) {
	httpRequestsTotal.WithLabelValues(r.Method, endpoint, strconv.Itoa(status)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the error taxonomy to HTTP statuses. Validation and
// not-found conditions carry their message; anything else is an upstream
// failure surfaced as a generic 500 while the cause is logged with the
// request id.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, endpoint string, err error) {
	var status int
	var msg string
	switch {
	case errors.Is(err, port.ErrValidation):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, port.ErrOrgNotFound):
		status, msg = http.StatusNotFound, "org not found"
	default:
		status, msg = http.StatusInternalServerError, "internal error"
		h.logger.Error("accounting error",
			slog.String("endpoint", endpoint),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
	}
	httpRequestsTotal.WithLabelValues(r.Method, endpoint, strconv.Itoa(status)).Inc()
	http.Error(w, msg, status)
}
