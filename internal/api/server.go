// internal/api/server.go
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"college-comparator/internal/cache"
	"college-comparator/internal/catalog"
	"college-comparator/internal/common/config"
	"college-comparator/internal/common/errors"
	"college-comparator/internal/common/logger"
	"college-comparator/internal/common/metrics"
	"college-comparator/internal/comparator"
	"college-comparator/internal/models"
)

// Loader produces a fresh ordered record set; the server swaps it into
// the store on startup and on explicit reload.
type Loader interface {
	Load(ctx context.Context) ([]models.College, error)
}

// Server owns the HTTP surface. The comparison cache is optional; a nil
// cache means every request recomputes.
type Server struct {
	service *comparator.Service
	store   *catalog.Store
	loader  Loader
	cache   *cache.ComparisonCache
	errs    *errors.HTTPHandler
	logger  logger.Logger
	router  chi.Router
}

func NewServer(
	cfg config.ServerConfig,
	service *comparator.Service,
	store *catalog.Store,
	loader Loader,
	comparisonCache *cache.ComparisonCache,
	log logger.Logger,
) *Server {
	s := &Server{
		service: service,
		store:   store,
		loader:  loader,
		cache:   comparisonCache,
		errs:    errors.NewHTTPHandler(log),
		logger:  log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware(cfg.AllowedOrigins))

	r.Get("/", s.instrument("root", s.handleRoot))
	r.Get("/health", s.instrument("health", s.handleHealth))
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Post("/colleges/compare", s.instrument("compare", s.handleCompare))
		r.Get("/colleges/autocomplete", s.instrument("autocomplete", s.handleAutocomplete))
		r.Post("/colleges/search", s.instrument("search", s.handleSearch))
		r.Get("/colleges/list", s.instrument("list", s.handleList))
		r.Post("/reload-model", s.instrument("reload", s.handleReload))
	})

	s.router = r
	return s
}

// Router returns the configured handler tree.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		metrics.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
}

// corsMiddleware answers preflight requests and stamps the allow headers
// for configured origins. An empty origin list allows everything, which
// suits local development.
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (len(allowed) == 0 || allowed[origin] || allowed["*"]) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
