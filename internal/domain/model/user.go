package model

import "time"

// Role is the closed set of panel roles. Authorization checks work on this
// type, not on raw strings.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor:
		return true
	}
	return false
}

type User struct {
	ID             string    `bson:"id" json:"id"`
	Username       string    `bson:"username" json:"username"`
	Email          string    `bson:"email" json:"email"`
	HashedPassword string    `bson:"password" json:"-"` // Not exposed
	Role           Role      `bson:"role" json:"role"`
	IsActive       bool      `bson:"is_active" json:"is_active"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
