package handler

import (
	"net/http"
	"time"

	"github.com/boddenberg/desking-go/internal/compose"
	"github.com/boddenberg/desking-go/internal/infra/observability"
	"github.com/boddenberg/desking-go/internal/port"
	"github.com/boddenberg/desking-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// NewRouter creates the HTTP router with all routes and middleware.
// Routes follow the API contract used by the desking frontend.
func NewRouter(quoteSvc *service.QuoteService, docSvc *service.DocumentService, dealers *compose.Directory, templates port.TemplateStore, metrics *observability.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler(templates, logger))
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {

		// =============================================
		// 1. Quotes
		// POST /v1/quotes
		// =============================================
		r.Post("/quotes", deskHandler(quoteSvc, logger))

		// =============================================
		// 2. Documents
		// POST /v1/documents/{kind}
		// GET  /v1/documents/kinds
		// =============================================
		r.Post("/documents/{kind}", documentHandler(docSvc, logger))
		r.Get("/documents/kinds", documentKindsHandler())

		// =============================================
		// 3. Dealers
		// GET /v1/dealers
		// =============================================
		r.Get("/dealers", listDealersHandler(dealers, logger))

		// =============================================
		// 4. Metrics
		// GET /v1/metrics/desk
		// =============================================
		r.Get("/metrics/desk", deskMetricsHandler(metrics, logger))
	})

	return r
}

// ============================================================
// Operational endpoints
// ============================================================

type serviceHealth struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	LatencyMs   int64  `json:"latency_ms"`
	LastChecked string `json:"last_checked"`
}

type healthResponse struct {
	Status   string          `json:"status"`
	Services []serviceHealth `json:"services"`
}

// healthzHandler reports overall health. The template store is probed with a
// real lookup so a missing or unreadable template directory shows up here
// instead of on the first document request.
func healthzHandler(templates port.TemplateStore, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().Format(time.RFC3339)

		services := []serviceHealth{
			{Name: "desking-api", Status: "healthy", LatencyMs: 0, LastChecked: now},
		}

		if templates != nil {
			start := time.Now()
			_, err := templates.Get("bill_of_sale")
			latency := time.Since(start).Milliseconds()
			status := "healthy"
			if err != nil {
				status = "degraded"
				logger.Warn("healthz: template store probe failed", zap.Error(err))
			}
			services = append(services, serviceHealth{
				Name: "templates", Status: status, LatencyMs: latency, LastChecked: now,
			})
		}

		overall := "healthy"
		for _, s := range services {
			if s.Status != "healthy" {
				overall = "degraded"
				break
			}
		}

		writeJSON(w, http.StatusOK, healthResponse{Status: overall, Services: services})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// ============================================================
// 4. Metrics — GET /v1/metrics/desk
// ============================================================

func deskMetricsHandler(metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "GET /v1/metrics/desk")
		defer span.End()

		snapshot := metrics.GetDeskSnapshot()
		writeJSON(w, http.StatusOK, snapshot)
	}
}

// ============================================================
// 3. Dealers — GET /v1/dealers
// ============================================================

func listDealersHandler(dealers *compose.Directory, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "GET /v1/dealers")
		defer span.End()

		writeJSON(w, http.StatusOK, map[string]any{"dealers": dealers.List()})
	}
}
