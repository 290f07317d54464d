package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Documentation is learning material attached to a topic.
type Documentation struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title         string             `bson:"title" json:"title" validate:"required,min=2,max=200"`
	Body          string             `bson:"body" json:"body" validate:"required"`
	TopicID       primitive.ObjectID `bson:"topic_id" json:"topic_id"`
	AttachmentURL string             `bson:"attachment_url,omitempty" json:"attachment_url,omitempty"`
	Status        int                `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// CreateDocumentationRequest is the payload for creating documentation.
type CreateDocumentationRequest struct {
	Title         string `json:"title" validate:"required,min=2,max=200"`
	Body          string `json:"body" validate:"required"`
	TopicID       string `json:"topic_id" validate:"required"`
	AttachmentURL string `json:"attachment_url,omitempty" validate:"omitempty,url"`
}

// UpdateDocumentationRequest is the payload for updating documentation.
type UpdateDocumentationRequest struct {
	Title         *string `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Body          *string `json:"body,omitempty"`
	TopicID       *string `json:"topic_id,omitempty"`
	AttachmentURL *string `json:"attachment_url,omitempty" validate:"omitempty,url"`
	Status        *int    `json:"status,omitempty" validate:"omitempty,oneof=0 1"`
}
