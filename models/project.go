package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is a project's lifecycle state.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
	StatusArchived   Status = "archived"
)

// Project is the central catalog entity. Text fields are bilingual;
// technologies, category and images hold references that the API
// dereferences before responding. CreatedAt's UTC calendar year doubles
// as the year facet.
type Project struct {
	ID               primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Title            Localized            `json:"title" bson:"title"`
	Description      Localized            `json:"description" bson:"description"`
	ShortDescription Localized            `json:"shortDescription,omitempty" bson:"shortDescription,omitempty"`
	Role             Localized            `json:"role,omitempty" bson:"role,omitempty"`
	Duration         Localized            `json:"duration,omitempty" bson:"duration,omitempty"`
	Features         LocalizedList        `json:"features,omitempty" bson:"features,omitempty"`
	Challenges       LocalizedList        `json:"challenges,omitempty" bson:"challenges,omitempty"`
	Learnings        LocalizedList        `json:"learnings,omitempty" bson:"learnings,omitempty"`
	Technologies     []primitive.ObjectID `json:"technologies" bson:"technologies"`
	Category         primitive.ObjectID   `json:"category" bson:"category"`
	Images           []primitive.ObjectID `json:"images,omitempty" bson:"images,omitempty"`
	Featured         bool                 `json:"featured" bson:"featured"`
	Status           Status               `json:"status" bson:"status"`
	TeamSize         int                  `json:"teamSize,omitempty" bson:"teamSize,omitempty"`
	CreatedAt        time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt" bson:"updatedAt"`
}
