package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Player is an end user of the quiz platform. Players are soft-deleted only.
type Player struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FirstName string             `bson:"first_name" json:"first_name" validate:"required,min=2,max=50"`
	LastName  string             `bson:"last_name" json:"last_name" validate:"required,min=2,max=50"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	CountryID primitive.ObjectID `bson:"country_id" json:"country_id"`
	Score     int                `bson:"score" json:"score"`
	Status    int                `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// CreatePlayerRequest is the payload for creating a player.
type CreatePlayerRequest struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=50"`
	LastName  string `json:"last_name" validate:"required,min=2,max=50"`
	Email     string `json:"email" validate:"required,email"`
	CountryID string `json:"country_id" validate:"required"`
}

// UpdatePlayerRequest is the payload for updating a player.
type UpdatePlayerRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=2,max=50"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=2,max=50"`
	CountryID *string `json:"country_id,omitempty"`
	Score     *int    `json:"score,omitempty" validate:"omitempty,min=0"`
	Status    *int    `json:"status,omitempty" validate:"omitempty,oneof=0 1"`
}
