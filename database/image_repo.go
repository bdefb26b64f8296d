package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nmorales-dev/portfolio-backend/models"
)

type ImageRepo struct {
	col *mongo.Collection
}

func NewImageRepo(db *mongo.Database) *ImageRepo {
	return &ImageRepo{col: db.Collection(imagesCollection)}
}

// FindByIDs returns the images with the given ids.
func (r *ImageRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Image, error) {
	if len(ids) == 0 {
		return []models.Image{}, nil
	}
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	images := []models.Image{}
	if err := cursor.All(ctx, &images); err != nil {
		return nil, err
	}
	return images, nil
}
