package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category groups technologies and projects (Frontend, Backend, ...)
type Category struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
}
