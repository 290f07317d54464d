package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Topic groups documentation, questions and tests under one subject area.
type Topic struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Description string             `bson:"description" json:"description"`
	CountryID   primitive.ObjectID `bson:"country_id" json:"country_id"`
	Status      int                `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// CreateTopicRequest is the payload for creating a topic.
type CreateTopicRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description"`
	CountryID   string `json:"country_id" validate:"required"`
}

// UpdateTopicRequest is the payload for updating a topic.
type UpdateTopicRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty"`
	CountryID   *string `json:"country_id,omitempty"`
	Status      *int    `json:"status,omitempty" validate:"omitempty,oneof=0 1"`
}
