// Package web provides the HTTP server and REST handlers for the
// record manager. Every API handler is stateless: parse the body,
// validate, make one repository call, wrap the result in a JSON
// envelope.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/cadastroapp/cadastro/internal/config"
	"github.com/cadastroapp/cadastro/internal/repository"
	webmw "github.com/cadastroapp/cadastro/internal/web/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server is the HTTP server for the record manager API and the bundled
// frontend.
type Server struct {
	repo    *repository.Repository
	cfg     *config.Config
	devMode bool
	router  *chi.Mux
	server  *http.Server
}

// NewServer creates a new Server instance. devMode is reported by the
// health endpoint so clients can tell simulated data from the real
// spreadsheet.
func NewServer(repo *repository.Repository, cfg *config.Config, devMode bool) *Server {
	s := &Server{
		repo:    repo,
		cfg:     cfg,
		devMode: devMode,
		router:  chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(webmw.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	s.router.Use(securityHeaders)

	// The frontend is served from the same origin, but the desktop
	// shell loads it from a webview whose origin varies by platform.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if s.cfg.Rate.Enabled {
		limiter := newRateLimiter(s.cfg.Rate.RequestsPerMinute, time.Minute)
		s.router.Use(limiter.middleware)
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/users", s.handleListUsers)
		r.Post("/users", s.handleCreateUser)
		r.Put("/users/{rowIndex}", s.handleUpdateUser)
		r.Delete("/users/{rowIndex}", s.handleDeleteUser)

		r.Get("/products", s.handleListProducts)
		r.Post("/products", s.handleCreateProduct)
		r.Put("/products/{rowIndex}", s.handleUpdateProduct)
		r.Delete("/products/{rowIndex}", s.handleDeleteProduct)
	})

	// Everything else is the frontend bundle, with unknown paths
	// falling back to the entry document for client-side routing.
	s.router.NotFound(s.handleFrontend)
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
