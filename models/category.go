package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultCategories always exist; the category list endpoint recreates any
// that are missing before returning.
var DefaultCategories = []string{"Residential", "Commercial"}

type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}
