package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Document is a schemaless record. Categories, products and orders carry
// freeform fields from the storefront, so they stay document-shaped instead
// of being pinned to a struct. Products additionally carry the stamped
// "seller", "email" and "verify" fields (copied from the creating user),
// orders a "buyerEmail" field.
type Document = bson.M

type CategoryStore interface {
	Insert(ctx context.Context, doc Document) (*InsertResult, error)
	List(ctx context.Context) ([]Document, error)
}

type ProductStore interface {
	Insert(ctx context.Context, doc Document) (*InsertResult, error)
	// List returns all products newest-first.
	List(ctx context.Context) ([]Document, error)
	// FindByID returns (nil, nil) when no product matches.
	FindByID(ctx context.Context, id string) (Document, error)
	ListByCategory(ctx context.Context, categoryID string) ([]Document, error)
	// ListByEmail returns products stamped with the given email, newest-first.
	ListByEmail(ctx context.Context, email string) ([]Document, error)
	// Update merges the given fields into the record ($set semantics).
	Update(ctx context.Context, id string, fields Document) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}

type OrderStore interface {
	Insert(ctx context.Context, doc Document) (*InsertResult, error)
	ListByBuyer(ctx context.Context, email string) ([]Document, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}
