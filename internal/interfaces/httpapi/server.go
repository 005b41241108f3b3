package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/riskibarqy/fantasy-dashboard/internal/platform/logging"
)

type RouterOptions struct {
	CORSAllowedOrigins []string
	RateLimitEnabled   bool
	RateLimitRPS       float64
	RateLimitBurst     int
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	r := chi.NewRouter()
	r.Use(RequestLogging(logger))
	r.Use(CORS(opts.CORSAllowedOrigins))
	if opts.RateLimitEnabled {
		r.Use(RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
	}
	r.Use(recoverPanic(logger))

	registerSystemRoutes(r, handler)
	registerDashboardRoutes(r, handler)

	return RequestTracing(r)
}
