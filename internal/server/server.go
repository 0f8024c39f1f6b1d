package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"InvestSmart/internal/advisor"
	"InvestSmart/internal/metrics"
	"InvestSmart/internal/news"
)

// Config holds server configuration
type Config struct {
	Port           int
	AllowedOrigins []string
	Log            zerolog.Logger
	Advisor        *advisor.Service
	News           *news.Agent
}

// Server represents the HTTP server
type Server struct {
	router  *chi.Mux
	server  *http.Server
	log     zerolog.Logger
	advisor *advisor.Service
	news    *news.Agent
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		log:     cfg.Log.With().Str("component", "server").Logger(),
		advisor: cfg.Advisor,
		news:    cfg.News,
	}

	s.setupMiddleware(cfg.AllowedOrigins)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(origins []string) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(metrics.Middleware)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Handle("/metrics", metrics.Handler())

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/news", s.handleNews)
		r.Get("/analyze", s.handleAnalyze)
		r.Get("/strategy", s.handleStrategy)
		r.Get("/prices", s.handlePrices)
		r.Post("/simulate", s.handleSimulate)

		r.Get("/fundamentals", s.handleFundamentals)
		r.Get("/suggestions", s.handleSuggestions)
		r.Get("/screener", s.handleScreener)
		r.Get("/market-overview", s.handleMarketOverview)
		r.Get("/market-movers", s.handleMarketMovers)
		r.Get("/current-price", s.handleCurrentPrice)
		r.Get("/sector-analysis", s.handleSectorAnalysis)
		r.Get("/ai-insights", s.handleInsights)
		r.Get("/market-sentiment", s.handleMarketSentiment)
		r.Get("/economic-indicators", s.handleEconomicIndicators)
		r.Get("/educational-content", s.handleEducationalContent)
		r.Get("/compare-stocks", s.handleCompareStocks)

		r.Post("/portfolio-analysis", s.handlePortfolioAnalysis)
		r.Post("/risk-assessment", s.handleRiskAssessment)

		r.Get("/watchlist", s.handleGetWatchlist)
		r.Post("/watchlist", s.handleUpdateWatchlist)
	})

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, http.StatusNotFound, "Endpoint not found")
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}
