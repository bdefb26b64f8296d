package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names follow the Mongoose pluralization the catalog was
// created with.
const (
	projectsCollection     = "projects"
	technologiesCollection = "technologies"
	categoriesCollection   = "categories"
	imagesCollection       = "images"
)

type Database struct {
	db             *mongo.Database
	projectRepo    *ProjectRepo
	technologyRepo *TechnologyRepo
	categoryRepo   *CategoryRepo
	imageRepo      *ImageRepo
}

// New initializes a new Database struct with each repository using a shared Mongo database handle
func New(db *mongo.Database) Database {
	technologyRepo := NewTechnologyRepo(db)
	categoryRepo := NewCategoryRepo(db)
	imageRepo := NewImageRepo(db)

	return Database{
		db:             db,
		projectRepo:    NewProjectRepo(db),
		technologyRepo: technologyRepo,
		categoryRepo:   categoryRepo,
		imageRepo:      imageRepo,
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TechnologyRepo() *TechnologyRepo {
	return d.technologyRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) ImageRepo() *ImageRepo {
	return d.imageRepo
}

// Populator returns a resolver that dereferences relation ids into
// embedded objects.
func (d Database) Populator() *Populator {
	return NewPopulator(d.technologyRepo, d.categoryRepo, d.imageRepo)
}

// Ping verifies connectivity against the primary.
func (d Database) Ping(ctx context.Context) error {
	return d.db.Client().Ping(ctx, readpref.Primary())
}
