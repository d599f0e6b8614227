package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RouterConfig holds the knobs the router needs beyond its handlers.
type RouterConfig struct {
	JWTSecret         []byte
	RequestsPerMinute int
}

// NewRouter builds the HTTP routing table. Redirects, health and metrics
// are public; the link management API sits behind auth and rate limiting.
func NewRouter(h *Handler, logger *zap.Logger, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware())

	r.Get("/r/{shortCode}", h.Redirect)
	r.Get("/healthz", h.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/links", func(r chi.Router) {
		rl := NewRateLimiter(cfg.RequestsPerMinute)
		r.Use(rl.Middleware)
		r.Use(AuthMiddleware(cfg.JWTSecret))

		r.Post("/", h.CreateCampaign)
		r.Get("/", h.ListLinks)
		r.Get("/{linkID}", h.GetLink)
		r.Delete("/{linkID}", h.DeleteLink)
		r.Get("/{linkID}/stats", h.LinkStats)
		r.Get("/{linkID}/qr", h.LinkQR)
	})

	return r
}
