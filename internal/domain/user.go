package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole reports whether s is one of the closed role values.
func ValidRole(s string) bool { return s == RoleUser || s == RoleAdmin }

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role" json:"role"` // "user" or "admin"
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

type UserRepository interface {
	// Insert stores the user verbatim and returns the new id.
	Insert(ctx context.Context, u *User) (primitive.ObjectID, error)
	// FindByEmail returns (nil, nil) when no user has the email.
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	// PromoteToAdmin sets role="admin" on the user with the given id.
	PromoteToAdmin(ctx context.Context, id string) (UpdateResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
}
