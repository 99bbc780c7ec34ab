package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"variety-store-server/internal/domain"
)

type OrderRepo struct{ col *mongo.Collection }

func NewOrderRepo(db *mongo.Database) *OrderRepo {
	return &OrderRepo{col: db.Collection(ColOrders)}
}

func (r *OrderRepo) Insert(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return toInsertResult(res), nil
}

func (r *OrderRepo) ListByBuyer(ctx context.Context, email string) ([]domain.Document, error) {
	cur, err := r.col.Find(ctx, bson.M{"buyerEmail": email})
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	docs := []domain.Document{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return docs, nil
}

func (r *OrderRepo) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	oid, err := parseOID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete order: %w", err)
	}
	return toDeleteResult(res), nil
}
