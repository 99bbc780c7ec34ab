package repo

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"variety-store-server/internal/domain"
)

// Collection names match the deployed database.
const (
	ColUsers      = "Users"
	ColProducts   = "Products"
	ColCategories = "Categories"
	ColOrders     = "Orders"
)

func parseOID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return oid, nil
}

func toInsertResult(res *mongo.InsertOneResult) *domain.InsertResult {
	return &domain.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}

func toUpdateResult(res *mongo.UpdateResult) *domain.UpdateResult {
	return &domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func toDeleteResult(res *mongo.DeleteResult) *domain.DeleteResult {
	return &domain.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

func noDocuments(err error) bool { return errors.Is(err, mongo.ErrNoDocuments) }
