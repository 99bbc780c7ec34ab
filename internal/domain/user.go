package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

type User struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name   string             `bson:"name" json:"name"`
	Email  string             `bson:"email" json:"email"`
	Role   string             `bson:"role" json:"role"` // buyer / seller / admin
	Verify bool               `bson:"verify" json:"verify"`
}

type UserStore interface {
	Insert(ctx context.Context, u *User) (*InsertResult, error)
	// FindByEmail returns (nil, nil) when no user matches.
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	ListByRole(ctx context.Context, role string) ([]User, error)
	// SetRole is update-only unless upsert is set explicitly.
	SetRole(ctx context.Context, id, role string, upsert bool) (*UpdateResult, error)
	SetVerify(ctx context.Context, email string, verify bool) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}
