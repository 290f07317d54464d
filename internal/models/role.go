package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lifecycle status values shared by every statused document.
const (
	StatusInactive = 0
	StatusActive   = 1
)

// Role is a named, statused bundle of permission codes assignable to an admin.
type Role struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required,min=2,max=50"`
	Permissions []Permission       `bson:"permissions" json:"permissions"`
	Status      int                `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// CreateRoleRequest is the payload for creating a role.
type CreateRoleRequest struct {
	Name        string       `json:"name" validate:"required,min=2,max=50"`
	Permissions []Permission `json:"permissions" validate:"required,min=1"`
}

// UpdateRoleRequest is the payload for updating a role. Nil fields are left unchanged.
type UpdateRoleRequest struct {
	Name        *string      `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Permissions []Permission `json:"permissions,omitempty"`
	Status      *int         `json:"status,omitempty" validate:"omitempty,oneof=0 1"`
}

// DefaultRoles are seeded at startup so a fresh database always has a usable
// super-admin role.
var DefaultRoles = []Role{
	{
		Name:        "Super Admin",
		Permissions: AllPermissions(),
		Status:      StatusActive,
	},
	{
		Name: "Content Editor",
		Permissions: []Permission{
			PermViewCountry, PermViewTopic, PermAddTopic, PermEditTopic,
			PermViewDocumentation, PermAddDocumentation, PermEditDocumentation,
			PermViewQuestion, PermAddQuestion, PermEditQuestion,
			PermViewTest, PermAddTest, PermEditTest,
		},
		Status: StatusActive,
	},
	{
		Name: "Support",
		Permissions: []Permission{
			PermViewPlayer, PermEditPlayer,
			PermViewFeedback, PermEditFeedback,
		},
		Status: StatusActive,
	},
}
