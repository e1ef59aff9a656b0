// Package web runs the HTTP API for the address resolver.
package web

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/addresspin/internal/gazetteer"
	"github.com/addresspin/internal/geo"
	"github.com/addresspin/internal/metrics"
	"github.com/addresspin/internal/pipeline"
	"github.com/addresspin/internal/web/handlers"
	"github.com/addresspin/internal/web/middleware"
)

// Server represents the web server
type Server struct {
	config     *Config
	log        *zap.Logger
	metrics    *metrics.Metrics
	httpServer *http.Server
	router     *mux.Router
	handler    http.Handler
}

// Deps are the resolver components the server exposes.
type Deps struct {
	Pipeline *pipeline.Pipeline
	Store    *gazetteer.Store
	Density  *geo.DensityIndex
	Metrics  *metrics.Metrics
	Log      *zap.Logger
}

// NewServer creates a new web server instance
func NewServer(config *Config, deps Deps) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}

	server := &Server{
		config:  config,
		log:     deps.Log,
		metrics: deps.Metrics,
	}
	server.setupRoutes(deps)

	server.httpServer = &http.Server{
		Addr:         config.Addr,
		Handler:      server.handler,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return server
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(deps Deps) {
	s.router = mux.NewRouter()

	apiHandler := &handlers.APIHandler{
		Pipeline: deps.Pipeline,
		Metrics:  deps.Metrics,
		Log:      deps.Log,
	}
	gazetteerHandler := &handlers.GazetteerHandler{
		Store:   deps.Store,
		Density: deps.Density,
		Metrics: deps.Metrics,
		Log:     deps.Log,
		Started: time.Now(),
	}

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/analyze", apiHandler.Analyze).Methods("POST")
	api.HandleFunc("/analyze/batch", apiHandler.AnalyzeBatch).Methods("POST")
	api.HandleFunc("/landmarks", gazetteerHandler.ListLandmarks).Methods("GET")
	api.HandleFunc("/cities", gazetteerHandler.ListCities).Methods("GET")
	api.HandleFunc("/landmarks/reload", gazetteerHandler.Reload).Methods("POST")
	api.HandleFunc("/stats", gazetteerHandler.GetStats).Methods("GET")

	s.router.HandleFunc("/health", handlers.Health).Methods("GET")
	if deps.Metrics != nil {
		s.router.Handle("/metrics", promhttp.HandlerFor(
			deps.Metrics.Registry, promhttp.HandlerOpts{}))
	}

	s.router.Use(middleware.RequestLogging(deps.Log))
	if deps.Metrics != nil {
		s.router.Use(middleware.Instrument(deps.Metrics))
	}

	// CORS wraps the router itself so preflight OPTIONS requests are
	// answered even when no route matches the method.
	s.handler = s.router
	if s.config.CORSEnabled {
		s.handler = middleware.CORS()(s.router)
	}
}

// Handler exposes the configured handler chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start runs the server until SIGINT or SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	s.log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.log.Error("server shutdown error", zap.Error(err))
		return err
	}

	s.log.Info("server stopped")
	return nil
}
