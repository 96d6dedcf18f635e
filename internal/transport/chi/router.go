package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/taskmatch/internal/metrics"
)

// RouterConfig holds the cross-cutting settings of the HTTP router.
type RouterConfig struct {
	APIKeys []string
	CORS    CORSConfig
}

// NewRouter mounts the server's handlers behind the middleware chain:
// recovery, request id, request logging, CORS, auth, metrics.
func NewRouter(s *Server, cfg RouterConfig, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(requestLogMiddleware(logger))
	r.Use(CORSMiddleware(cfg.CORS))
	r.Use(BearerAuthMiddleware(cfg.APIKeys, PublicPaths...))
	r.Use(metrics.Middleware())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorCodeBadRequest, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorCodeBadRequest, "method not allowed")
	})

	r.Get("/", s.Home)
	r.Get("/test", s.Test)
	r.Post("/recommend", s.Recommend)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	return r
}
