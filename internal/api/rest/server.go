package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/gridirondash/gridiron/internal/service"
)

// Server represents the REST API server
type Server struct {
	port   string
	server *http.Server
}

// NewServer creates a new REST API server
func NewServer(port string, scoreboard *service.Scoreboard, games *service.Games, cfb *service.CFB, corsOrigins []string, logger *logrus.Logger) *Server {
	handler := NewHandler(scoreboard, games, cfb, logger)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware(logger))
	router.Use(RequestIDMiddleware)
	router.Use(LoggingMiddleware(logger))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Health checks
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")
	router.HandleFunc("/healthz", handler.Healthz).Methods("GET")

	// Dashboard convenience endpoints
	router.HandleFunc("/games/today", handler.GetTodaysGames).Methods("GET")
	router.HandleFunc("/games/{gameID}/live", handler.GetGameLive).Methods("GET")

	// Unified API routes
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/scoreboard/{sport}", handler.GetScoreboard).Methods("GET")
	api.HandleFunc("/game/{sport}/{eventID}", handler.GetGameDetails).Methods("GET")
	api.HandleFunc("/nfl/weeks", handler.GetNFLWeeks).Methods("GET")
	api.HandleFunc("/nfl/current-week", handler.GetCurrentNFLWeek).Methods("GET")
	api.HandleFunc("/cfb/weeks", handler.GetCFBWeeks).Methods("GET")
	api.HandleFunc("/cfb/conferences", handler.GetCFBConferences).Methods("GET")

	// Dedicated college scoreboard
	router.HandleFunc("/cfb/scoreboard", handler.GetCFBScoreboard).Methods("GET")

	return &Server{
		port: port,
		server: &http.Server{
			Addr:         fmt.Sprintf(":%s", port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
