package api

import (
	"github.com/nmorales-dev/portfolio-backend/database"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler    projectHandler
	technologyHandler technologyHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database) *routeHandlers {
	populator := db.Populator()

	return &routeHandlers{
		projectHandler:    newProjectHandler(db.ProjectRepo(), db.TechnologyRepo(), db.CategoryRepo(), populator),
		technologyHandler: newTechnologyHandler(db.TechnologyRepo(), db.CategoryRepo()),
	}
}
