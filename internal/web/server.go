package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/edvart/padel-americano/internal/tournament"
)

// Server holds the HTTP server and its dependencies.
type Server struct {
	router     *chi.Mux
	tournament *tournament.Tournament
	log        *logrus.Logger
}

// Config holds server configuration.
type Config struct {
	CORSOrigins []string
}

// NewServer creates a new HTTP server around the tournament actor.
func NewServer(tour *tournament.Tournament, log *logrus.Logger, cfg Config) *Server {
	s := &Server{
		router:     chi.NewRouter(),
		tournament: tour,
		log:        log,
	}

	s.setupRoutes(cfg)
	return s
}

func (s *Server) setupRoutes(cfg Config) {
	r := s.router

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleGetState)

		r.Post("/players", s.handleAddPlayer)
		r.Patch("/players/{playerID}", s.handleRenamePlayer)
		r.Delete("/players/{playerID}", s.handleRemovePlayer)

		r.Put("/courts", s.handleSetCourts)

		r.Post("/rounds/generate", s.handleGenerateRound)
		r.Post("/rounds", s.handleSaveRound)
		r.Delete("/rounds/last", s.handleDeleteLastRound)
		r.Get("/rounds", s.handleListRounds)

		r.Get("/coverage", s.handleCoverage)
		r.Get("/recommendation", s.handleRecommendation)
		r.Get("/standings", s.handleStandings)
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
