package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/omdiag/internal/logger"
)

// Default configuration values.
const (
	DefaultAddr        = ":8080"
	DefaultExportRate  = 2.0
	DefaultExportBurst = 5

	maxBodyBytes = 64 << 10
)

// Config holds server settings.
type Config struct {
	// Addr is the listen address.
	Addr string

	// ExportRate limits report renders per second across all clients.
	ExportRate float64

	// ExportBurst is the number of renders allowed at once.
	ExportBurst int

	// AllowedOrigins lists CORS origins. Empty allows any origin.
	AllowedOrigins []string
}

// Server is the HTTP API server.
type Server struct {
	ports   *Ports
	cfg     Config
	limiter *rate.Limiter
	router  chi.Router
}

// NewServer creates a new HTTP server with the given ports.
func NewServer(ports *Ports, cfg Config) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.ExportRate <= 0 {
		cfg.ExportRate = DefaultExportRate
	}
	if cfg.ExportBurst < 1 {
		cfg.ExportBurst = DefaultExportBurst
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	s := &Server{
		ports:   ports,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.ExportRate), cfg.ExportBurst),
	}
	s.router = s.routes()
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.cfg.Addr
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition", headerWarning},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/dimensions", s.handleDimensions)
		r.Post("/score", s.handleScore)
		r.With(s.throttle).Post("/report", s.handleReport)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleStartSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetSession)
				r.Delete("/", s.handleDiscardSession)
				r.Put("/answers/{dimension}", s.handleAnswer)
				r.Get("/summary", s.handleSessionSummary)
				r.With(s.throttle).Get("/report", s.handleSessionReport)
			})
		})
	})

	return r
}

// Run serves HTTP until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("HTTP API listening on %s", s.cfg.Addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// throttle rejects report requests above the configured export rate.
func (s *Server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			writeJSON(w, http.StatusTooManyRequests, errorResponse{
				Error:     "too many report requests",
				Retryable: true,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs each request at debug level.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Debug("%s %s -> %d (%s)", r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Millisecond))
	})
}
