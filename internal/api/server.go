package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/avelar/pixelmint/internal/api/handler"
	"github.com/avelar/pixelmint/internal/api/middleware"
	"github.com/avelar/pixelmint/internal/cache"
	"github.com/avelar/pixelmint/internal/config"
	"github.com/avelar/pixelmint/internal/service"
)

// Services bundles all service dependencies for the router.
type Services struct {
	Points      *service.PointsService
	Sessions    *service.SessionService
	Generations *service.GenerationService
	Billing     *service.BillingService // nil if Stripe not configured
	Cache       cache.Store
}

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(cfg *config.Config, svcs *Services, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security(cfg.BaseURL))
	r.Use(middleware.TraceLog(logger))
	r.Use(middleware.RateLimit(50, 100))

	if cfg.FrontendURL != "" {
		r.Use(middleware.CORS(cfg.FrontendURL))
	}

	// Health check (no auth)
	r.Get("/healthz", handler.Health())
	r.Handle("/metrics", promhttp.Handler())

	// Billing webhook (no session resolution, verified by provider signature)
	var bh *handler.BillingHandler
	if svcs.Billing != nil {
		bh = handler.NewBillingHandler(svcs.Billing, logger)
		r.Post("/billing/webhook", bh.Webhook)
		r.Get("/billing/packs", bh.Packs)
	}

	// Identity lifecycle webhook (signature-verified)
	idh := handler.NewIdentityHandler(svcs.Sessions, svcs.Cache, cfg.IdentityWebhookSecret, logger)
	r.Post("/identity/webhook", idh.Webhook)

	// Worker completion callback (internal network)
	wh := handler.NewWorkerHandler(svcs.Generations, logger)
	r.Post("/api/worker/callback", wh.Callback)

	// Identity-resolved routes: JWT user or durable anonymous session.
	resolver := middleware.NewResolver(
		cfg.JWTSecret, svcs.Sessions, svcs.Cache,
		strings.HasPrefix(cfg.BaseURL, "https"), logger,
	)
	r.Group(func(r chi.Router) {
		r.Use(resolver.Handler)

		gh := handler.NewGenerationHandler(svcs.Generations)
		r.Route("/api/generations", func(r chi.Router) {
			r.Post("/", gh.Submit)
			r.Get("/", gh.List)
			r.Get("/{id}/status", gh.Status)
			r.Patch("/{id}", gh.Update)
		})

		ph := handler.NewPointsHandler(svcs.Points, logger)
		r.Get("/api/points", ph.Get)
		r.Get("/api/points/stream", ph.Stream)

		if bh != nil {
			r.Post("/billing/checkout", bh.CreateCheckout)
			r.Get("/billing/portal", bh.Portal)
		}
	})

	return otelhttp.NewHandler(r, "pixelmint")
}
