package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/nmorales-dev/portfolio-backend/database"
	"github.com/nmorales-dev/portfolio-backend/errs"
	"github.com/nmorales-dev/portfolio-backend/models"
)

// Store contracts the handlers depend on. The database package's repos
// satisfy them; tests substitute fakes.

type projectStore interface {
	Count(ctx context.Context, filter bson.M) (int64, error)
	Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Project, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	TechnologyIDsInUse(ctx context.Context) ([]primitive.ObjectID, error)
	CategoryIDsInUse(ctx context.Context) ([]primitive.ObjectID, error)
	Years(ctx context.Context) ([]int, error)
}

type technologyStore interface {
	FindAll(ctx context.Context) ([]models.Technology, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Technology, error)
	FindByNames(ctx context.Context, names []string) ([]models.Technology, error)
}

type categoryStore interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
}

type projectPopulator interface {
	PopulateOne(ctx context.Context, project models.Project) (*database.PopulatedProject, error)
	PopulateMany(ctx context.Context, projects []models.Project) ([]database.PopulatedProject, error)
}

type projectHandler struct {
	responder    Responder
	logger       zerolog.Logger
	projects     projectStore
	technologies technologyStore
	categories   categoryStore
	populator    projectPopulator
}

func newProjectHandler(projects projectStore, technologies technologyStore, categories categoryStore, populator projectPopulator) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		projects:     projects,
		technologies: technologies,
		categories:   categories,
		populator:    populator,
	}
}

// projectPage is the paged listing envelope.
type projectPage struct {
	Data  []database.PopulatedProject `json:"data"`
	Total int64                       `json:"total"`
	Page  int                         `json:"page"`
	Pages int                         `json:"pages"`
}

// listProjects retrieves one page of projects matching the query parameters,
// with relations dereferenced.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		params := r.URL.Query()

		pagination := database.NewPagination(
			intParam(params, "page", database.DefaultPage),
			intParam(params, "limit", database.DefaultLimit),
		)

		query, satisfiable, err := h.resolveQuery(ctx, params)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if !satisfiable {
			// A filter naming a nonexistent technology can match nothing;
			// that is an empty page, not a client error.
			h.responder.WriteJSON(w, projectPage{
				Data: []database.PopulatedProject{},
				Page: pagination.Page,
			})
			return
		}

		filter := query.BuildFilter()
		sortSpec := database.ResolveSort(sortParam(params), params.Get("lang"))

		// The count and the page fetch are independent reads over the same
		// filter, so they run concurrently.
		var (
			total    int64
			projects []models.Project
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			total, err = h.projects.Count(gctx, filter)
			return err
		})
		g.Go(func() error {
			var err error
			projects, err = h.projects.Find(gctx, filter, sortSpec, pagination.Skip(), int64(pagination.Limit))
			return err
		})
		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "projects", err))
			return
		}

		populated, err := h.populator.PopulateMany(ctx, projects)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("populate", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projectPage{
			Data:  populated,
			Total: total,
			Page:  pagination.Page,
			Pages: pagination.Pages(total),
		})
	}
}

// resolveQuery normalizes the raw filter parameters into a ProjectQuery,
// resolving category and technology names to ids. The second return value is
// false when the filter cannot match anything (a requested technology does
// not exist).
func (h projectHandler) resolveQuery(ctx context.Context, params url.Values) (database.ProjectQuery, bool, error) {
	var query database.ProjectQuery

	// Category tokens may be ids or names; normalize everything to ids.
	for _, token := range csvValues(params, "category") {
		if id, err := primitive.ObjectIDFromHex(token); err == nil {
			query.CategoryIDs = append(query.CategoryIDs, id)
			continue
		}
		category, err := h.categories.FindByName(ctx, token)
		if err != nil {
			return query, false, wrapDatabaseError("resolve", "category", err)
		}
		if category == nil {
			return query, false, errs.NewBadRequestError(fmt.Sprintf("unknown category %q", token))
		}
		query.CategoryIDs = append(query.CategoryIDs, category.ID)
	}

	// Technology tokens are names. A name that resolves to nothing makes the
	// all-of conjunction unsatisfiable. The lookup returns each matching
	// document once, so the comparison runs over distinct names.
	names := uniqueStrings(csvValues(params, "technology"))
	if len(names) > 0 {
		technologies, err := h.technologies.FindByNames(ctx, names)
		if err != nil {
			return query, false, wrapDatabaseError("resolve", "technologies", err)
		}
		if len(technologies) < len(names) {
			return query, false, nil
		}
		for _, technology := range technologies {
			query.TechnologyIDs = append(query.TechnologyIDs, technology.ID)
		}
	}

	query.Years = yearParams(params)
	query.Featured = featuredParam(params)
	return query, true, nil
}

// getProject retrieves a single project by id with relations dereferenced.
// The id's shape is validated before any store call.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		projectIDStr := chi.URLParam(r, "projectID")
		if projectIDStr == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		projectID, err := primitive.ObjectIDFromHex(projectIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projects.FindByID(ctx, projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		populated, err := h.populator.PopulateOne(ctx, *project)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("populate", "project", err))
			return
		}

		h.responder.WriteJSON(w, populated)
	}
}

// listTechnologiesInUse returns the technologies referenced by at least one
// project, alphabetical by name.
func (h projectHandler) listTechnologiesInUse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ids, err := h.projects.TechnologyIDsInUse(ctx)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "technologies in use", err))
			return
		}

		technologies, err := h.technologies.FindByIDs(ctx, ids)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "technologies", err))
			return
		}
		if technologies == nil {
			technologies = []models.Technology{}
		}

		h.responder.WriteJSON(w, technologies)
	}
}

// listCategoriesInUse returns the categories referenced by at least one
// project, alphabetical by name.
func (h projectHandler) listCategoriesInUse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ids, err := h.projects.CategoryIDsInUse(ctx)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "categories in use", err))
			return
		}

		categories, err := h.categories.FindByIDs(ctx, ids)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "categories", err))
			return
		}
		if categories == nil {
			categories = []models.Category{}
		}

		h.responder.WriteJSON(w, categories)
	}
}

// listYears returns the distinct project creation years, newest first, as
// strings.
func (h projectHandler) listYears() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		years, err := h.projects.Years(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "years", err))
			return
		}

		out := make([]string, 0, len(years))
		for _, year := range years {
			out = append(out, strconv.Itoa(year))
		}

		h.responder.WriteJSON(w, out)
	}
}
