package database

import (
	"context"
	"errors"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nmorales-dev/portfolio-backend/models"
)

type ProjectRepo struct {
	col *mongo.Collection
}

func NewProjectRepo(db *mongo.Database) *ProjectRepo {
	return &ProjectRepo{col: db.Collection(projectsCollection)}
}

// Count returns the number of projects matching the filter.
func (r *ProjectRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.col.CountDocuments(ctx, filter)
}

// Find returns one page of projects matching the filter, in the given order.
func (r *ProjectRepo) Find(ctx context.Context, filter bson.M, sortSpec bson.D, skip, limit int64) ([]models.Project, error) {
	opts := options.Find().SetSort(sortSpec).SetSkip(skip).SetLimit(limit)
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByID returns a project by its id, or nil when no such project exists.
func (r *ProjectRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// TechnologyIDsInUse returns the distinct technology ids referenced by at
// least one project.
func (r *ProjectRepo) TechnologyIDsInUse(ctx context.Context) ([]primitive.ObjectID, error) {
	values, err := r.col.Distinct(ctx, "technologies", bson.M{})
	if err != nil {
		return nil, err
	}
	return objectIDsFromValues(values), nil
}

// CategoryIDsInUse returns the distinct category ids referenced by at least
// one project.
func (r *ProjectRepo) CategoryIDsInUse(ctx context.Context) ([]primitive.ObjectID, error) {
	values, err := r.col.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	return objectIDsFromValues(values), nil
}

// Years returns the distinct UTC calendar years projects were created in,
// newest first.
func (r *ProjectRepo) Years(ctx context.Context) ([]int, error) {
	values, err := r.col.Distinct(ctx, "createdAt", bson.M{})
	if err != nil {
		return nil, err
	}
	return yearsFromValues(values), nil
}

func objectIDsFromValues(values []interface{}) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		if id, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// yearsFromValues extracts the distinct UTC years from raw createdAt values
// and sorts them descending.
func yearsFromValues(values []interface{}) []int {
	seen := make(map[int]struct{}, len(values))
	for _, v := range values {
		dt, ok := v.(primitive.DateTime)
		if !ok {
			continue
		}
		seen[dt.Time().UTC().Year()] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
