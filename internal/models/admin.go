package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin represents a back-office user. Admins are never hard-deleted; delete
// operations flip Status to inactive.
type Admin struct {
	ID                  primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	FirstName           string               `bson:"first_name" json:"first_name" validate:"required,min=2,max=50"`
	LastName            string               `bson:"last_name" json:"last_name" validate:"required,min=2,max=50"`
	Email               string               `bson:"email" json:"email" validate:"required,email"`
	Password            string               `bson:"password" json:"-"`
	Salt                string               `bson:"salt" json:"-"`
	Roles               []primitive.ObjectID `bson:"roles" json:"roles"`
	Supervisor          *primitive.ObjectID  `bson:"supervisor,omitempty" json:"supervisor,omitempty"`
	Status              int                  `bson:"status" json:"status"`
	NeedsPasswordChange bool                 `bson:"needs_password_change" json:"needs_password_change"`
	CreatedAt           time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time            `bson:"updated_at" json:"updated_at"`
}

// CreateAdminRequest is the payload for creating an admin. A temporary password
// is generated server-side and mailed to the new admin.
type CreateAdminRequest struct {
	FirstName  string   `json:"first_name" validate:"required,min=2,max=50"`
	LastName   string   `json:"last_name" validate:"required,min=2,max=50"`
	Email      string   `json:"email" validate:"required,email"`
	Roles      []string `json:"roles" validate:"required,min=1"`
	Supervisor string   `json:"supervisor,omitempty"`
}

// UpdateAdminRequest is the payload for updating an admin. Nil fields are left unchanged.
type UpdateAdminRequest struct {
	FirstName  *string  `json:"first_name,omitempty" validate:"omitempty,min=2,max=50"`
	LastName   *string  `json:"last_name,omitempty" validate:"omitempty,min=2,max=50"`
	Roles      []string `json:"roles,omitempty"`
	Supervisor *string  `json:"supervisor,omitempty"`
	Status     *int     `json:"status,omitempty" validate:"omitempty,oneof=0 1"`
}

// LoginRequest is the payload for admin login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token               string `json:"token"`
	AdminID             string `json:"admin_id"`
	Email               string `json:"email"`
	NeedsPasswordChange bool   `json:"needs_password_change"`
}

// ChangePasswordRequest is the payload for changing the authenticated admin's password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// AuthContext holds the authenticated admin's identity, stored in the request
// context by the authentication middleware.
type AuthContext struct {
	AdminID primitive.ObjectID
	Email   string
	Roles   []primitive.ObjectID
}
