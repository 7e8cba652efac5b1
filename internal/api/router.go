// Package api provides the HTTP API for Reiseplaner.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/reiseplaner/reiseplaner/internal/api/handler"
	"github.com/reiseplaner/reiseplaner/internal/api/middleware"
	"github.com/reiseplaner/reiseplaner/internal/api/response"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version     string
	BuildTime   string
	Logger      zerolog.Logger
	ServiceName string
	Metrics     *middleware.Metrics
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "reiseplaner-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime)
	planHandler := handler.NewPlanHandler()

	// Rate limit the planning endpoint per client IP
	planRateLimit := middleware.RateLimitByIP(middleware.PlanRateLimit) // 60 req/min

	// Liveness and readiness (public, unlimited)
	r.Get("/health", opsHandler.HealthCheck)
	r.Get("/ready", opsHandler.ReadinessCheck)
	r.Get("/version", opsHandler.Version)

	// Trip planning
	r.With(planRateLimit, middleware.RequireJSON).Post("/plan_trip", planHandler.PlanTrip)

	// Unknown routes get the same problem+json shape as every other error
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, req, "The requested resource does not exist")
	})

	return r
}
