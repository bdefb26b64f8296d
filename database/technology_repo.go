package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nmorales-dev/portfolio-backend/models"
)

type TechnologyRepo struct {
	col *mongo.Collection
}

func NewTechnologyRepo(db *mongo.Database) *TechnologyRepo {
	return &TechnologyRepo{col: db.Collection(technologiesCollection)}
}

// FindAll returns every technology, alphabetical by name.
func (r *TechnologyRepo) FindAll(ctx context.Context) ([]models.Technology, error) {
	return r.find(ctx, bson.M{})
}

// FindByIDs returns the technologies with the given ids, alphabetical by name.
func (r *TechnologyRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Technology, error) {
	if len(ids) == 0 {
		return []models.Technology{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// FindByNames returns the technologies with the given exact names. Names that
// do not resolve are simply absent from the result; callers decide what a
// partial resolution means.
func (r *TechnologyRepo) FindByNames(ctx context.Context, names []string) ([]models.Technology, error) {
	if len(names) == 0 {
		return []models.Technology{}, nil
	}
	return r.find(ctx, bson.M{"name": bson.M{"$in": names}})
}

// Count returns the number of technology documents.
func (r *TechnologyRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// Add inserts a new technology.
func (r *TechnologyRepo) Add(ctx context.Context, technology *models.Technology) error {
	if technology.ID.IsZero() {
		technology.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, technology)
	return err
}

func (r *TechnologyRepo) find(ctx context.Context, filter bson.M) ([]models.Technology, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	technologies := []models.Technology{}
	if err := cursor.All(ctx, &technologies); err != nil {
		return nil, err
	}
	return technologies, nil
}
