package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback is a message left by a player, triaged by admins.
type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PlayerID  primitive.ObjectID `bson:"player_id" json:"player_id"`
	Subject   string             `bson:"subject" json:"subject" validate:"required,min=2,max=200"`
	Body      string             `bson:"body" json:"body" validate:"required"`
	Rating    int                `bson:"rating" json:"rating" validate:"min=1,max=5"`
	Resolved  bool               `bson:"resolved" json:"resolved"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// CreateFeedbackRequest is the payload for recording feedback.
type CreateFeedbackRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	Subject  string `json:"subject" validate:"required,min=2,max=200"`
	Body     string `json:"body" validate:"required"`
	Rating   int    `json:"rating" validate:"min=1,max=5"`
}

// UpdateFeedbackRequest is the payload for updating feedback (typically resolving it).
type UpdateFeedbackRequest struct {
	Subject  *string `json:"subject,omitempty" validate:"omitempty,min=2,max=200"`
	Body     *string `json:"body,omitempty"`
	Resolved *bool   `json:"resolved,omitempty"`
}
