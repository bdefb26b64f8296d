package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/nmorales-dev/portfolio-backend/config"
	"github.com/nmorales-dev/portfolio-backend/database"
)

type Server struct {
	*http.Server
}

func NewServer(db database.Database, props config.Properties) (Server, error) {
	address := fmt.Sprintf("0.0.0.0:%s", props.Port) // Bind to 0.0.0.0 for external access

	router := newRouter(db, props)

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  props.ReadTimeout,
		WriteTimeout: props.WriteTimeout,
		IdleTimeout:  props.IdleTimeout,
	}

	return Server{server}, nil
}

func newRouter(db database.Database, props config.Properties) *chi.Mux {
	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	// Only allow-listed origins receive credentialed responses.
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   props.AcceptedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	handlers := initializeHandlers(db)
	setupRoutes(chiRouter, handlers, db)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
