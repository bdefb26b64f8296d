package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmorales-dev/portfolio-backend/models"
)

type technologyHandler struct {
	responder    Responder
	logger       zerolog.Logger
	technologies technologyStore
	categories   categoryStore
}

func newTechnologyHandler(technologies technologyStore, categories categoryStore) technologyHandler {
	logger := log.With().Str("handlerName", "technologyHandler").Logger()

	return technologyHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		technologies: technologies,
		categories:   categories,
	}
}

// technologyWithCategory is a Technology with its category dereferenced.
type technologyWithCategory struct {
	models.Technology
	Category *models.Category `json:"category,omitempty"`
}

// getAllTechnologies returns every technology with its category embedded,
// alphabetical by name.
func (h technologyHandler) getAllTechnologies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		technologies, err := h.technologies.FindAll(ctx)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "technologies", err))
			return
		}

		categoryIDs := make([]primitive.ObjectID, 0, len(technologies))
		seen := make(map[primitive.ObjectID]struct{}, len(technologies))
		for _, technology := range technologies {
			if _, ok := seen[technology.Category]; ok {
				continue
			}
			seen[technology.Category] = struct{}{}
			categoryIDs = append(categoryIDs, technology.Category)
		}

		categories, err := h.categories.FindByIDs(ctx, categoryIDs)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "categories", err))
			return
		}
		categoryByID := make(map[primitive.ObjectID]models.Category, len(categories))
		for _, category := range categories {
			categoryByID[category.ID] = category
		}

		response := make([]technologyWithCategory, 0, len(technologies))
		for _, technology := range technologies {
			entry := technologyWithCategory{Technology: technology}
			if category, ok := categoryByID[technology.Category]; ok {
				entry.Category = &category
			}
			response = append(response, entry)
		}

		h.responder.WriteJSON(w, response)
	}
}
