package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image is a catalog entry for a project screenshot or illustration.
type Image struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	URL       string             `json:"url" bson:"url"`
	Alt       string             `json:"alt,omitempty" bson:"alt,omitempty"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
