package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user can hold
const (
	RoleUser   = "user"
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role      string             `bson:"role" json:"role"` // user, member or admin
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

func (u *User) GetID() primitive.ObjectID   { return u.ID }
func (u *User) SetID(id primitive.ObjectID) { u.ID = id }

// UpsertUserRequest is the body of PUT /users
type UpsertUserRequest struct {
	Name  string `json:"name" binding:"max=100"`
	Email string `json:"email" binding:"required,email,max=254"`
	Photo string `json:"photo" binding:"omitempty,url"`
}

// RoleUpdateRequest is the body of PATCH /agements-user/:email.
// "member" approves the agreement, "user" rejects it.
type RoleUpdateRequest struct {
	Role string `json:"role" binding:"required,oneof=user member"`
}

// ValidRole reports whether role is one of the known roles
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleMember, RoleAdmin:
		return true
	}
	return false
}
