package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Test is an assembled quiz: an ordered set of question references under a topic.
type Test struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Title           string               `bson:"title" json:"title" validate:"required,min=2,max=200"`
	TopicID         primitive.ObjectID   `bson:"topic_id" json:"topic_id"`
	Questions       []primitive.ObjectID `bson:"questions" json:"questions"`
	DurationMinutes int                  `bson:"duration_minutes" json:"duration_minutes" validate:"min=1"`
	PassMark        int                  `bson:"pass_mark" json:"pass_mark" validate:"min=0,max=100"`
	Status          int                  `bson:"status" json:"status"`
	CreatedAt       time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time            `bson:"updated_at" json:"updated_at"`
}

// CreateTestRequest is the payload for creating a test.
type CreateTestRequest struct {
	Title           string   `json:"title" validate:"required,min=2,max=200"`
	TopicID         string   `json:"topic_id" validate:"required"`
	Questions       []string `json:"questions" validate:"required,min=1"`
	DurationMinutes int      `json:"duration_minutes" validate:"min=1"`
	PassMark        int      `json:"pass_mark" validate:"min=0,max=100"`
}

// UpdateTestRequest is the payload for updating a test.
type UpdateTestRequest struct {
	Title           *string  `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Questions       []string `json:"questions,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" validate:"omitempty,min=1"`
	PassMark        *int     `json:"pass_mark,omitempty" validate:"omitempty,min=0,max=100"`
	Status          *int     `json:"status,omitempty" validate:"omitempty,oneof=0 1"`
}
