package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r belongs to the closed role enumeration.
// Roles are fixed at registration and never change afterwards.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Username       string             `bson:"username" json:"username"`
	HashedPassword string             `bson:"password" json:"-"` // Not exposed
	Role           Role               `bson:"role" json:"role"`
}
