package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Technology represents a tool or framework projects are built with.
// Category must reference an existing Category document.
type Technology struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	IconURL   string             `json:"iconUrl,omitempty" bson:"iconUrl,omitempty"`
	Category  primitive.ObjectID `json:"category" bson:"category"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
