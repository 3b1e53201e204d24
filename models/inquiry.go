package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Inquiry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FullName   string             `bson:"fullName" json:"fullName" validate:"required"`
	Email      string             `bson:"email" json:"email" validate:"required,email"`
	Phone      string             `bson:"phone" json:"phone"`
	Interest   string             `bson:"interest" json:"interest"`
	PropertyID string             `bson:"propertyId" json:"propertyId"`
	Agree      bool               `bson:"agree" json:"agree"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
