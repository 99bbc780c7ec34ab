package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"variety-store-server/internal/domain"
)

type ProductRepo struct{ col *mongo.Collection }

func NewProductRepo(db *mongo.Database) *ProductRepo {
	return &ProductRepo{col: db.Collection(ColProducts)}
}

// newestFirst approximates insertion order: ObjectIDs are monotonic.
var newestFirst = options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})

func (r *ProductRepo) Insert(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return toInsertResult(res), nil
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Document, error) {
	return r.find(ctx, bson.M{}, newestFirst)
}

func (r *ProductRepo) FindByID(ctx context.Context, id string) (domain.Document, error) {
	oid, err := parseOID(id)
	if err != nil {
		return nil, err
	}
	var doc domain.Document
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if noDocuments(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc, nil
}

func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID string) ([]domain.Document, error) {
	return r.find(ctx, bson.M{"categoryId": categoryID})
}

func (r *ProductRepo) ListByEmail(ctx context.Context, email string) ([]domain.Document, error) {
	return r.find(ctx, bson.M{"email": email}, newestFirst)
}

func (r *ProductRepo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]domain.Document, error) {
	cur, err := r.col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	docs := []domain.Document{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return docs, nil
}

func (r *ProductRepo) Update(ctx context.Context, id string, fields domain.Document) (*domain.UpdateResult, error) {
	oid, err := parseOID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return toUpdateResult(res), nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	oid, err := parseOID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return toDeleteResult(res), nil
}
