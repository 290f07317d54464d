package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Country is a supported player locale/region.
type Country struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Code      string             `bson:"code" json:"code" validate:"required,min=2,max=3"`
	Status    int                `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// CreateCountryRequest is the payload for creating a country.
type CreateCountryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Code string `json:"code" validate:"required,min=2,max=3"`
}

// UpdateCountryRequest is the payload for updating a country.
type UpdateCountryRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Code   *string `json:"code,omitempty" validate:"omitempty,min=2,max=3"`
	Status *int    `json:"status,omitempty" validate:"omitempty,oneof=0 1"`
}
