package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// setupRoutes registers the read-only content routes. The static facet
// routes share the /projects subtree with the id route; chi matches static
// segments before parameters.
func setupRoutes(r chi.Router, handlers *routeHandlers, store pinger) {
	r.Group(func(r chi.Router) {
		r.Use(RequestLoggingMiddleware)

		r.Get("/", rootHandler())
		r.Get("/health", healthHandler(store))

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", handlers.projectHandler.listProjects())
			r.Get("/technologies", handlers.projectHandler.listTechnologiesInUse())
			r.Get("/categories", handlers.projectHandler.listCategoriesInUse())
			r.Get("/years", handlers.projectHandler.listYears())
			r.Get("/{projectID}", handlers.projectHandler.getProject())
		})

		r.Get("/technologies", handlers.technologyHandler.getAllTechnologies())
	})
}

func rootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("portfolio backend running"))
	}
}

func healthHandler(store pinger) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "healthHandler").Logger())
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			responder.WriteError(w, wrapDatabaseError("ping", "database", err))
			return
		}
		responder.WriteJSON(w, map[string]string{"status": "ok"})
	}
}
