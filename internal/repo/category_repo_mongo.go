package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"variety-store-server/internal/domain"
)

type CategoryRepo struct{ col *mongo.Collection }

func NewCategoryRepo(db *mongo.Database) *CategoryRepo {
	return &CategoryRepo{col: db.Collection(ColCategories)}
}

func (r *CategoryRepo) Insert(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return toInsertResult(res), nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]domain.Document, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	docs := []domain.Document{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return docs, nil
}
