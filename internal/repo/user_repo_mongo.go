package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"variety-store-server/internal/domain"
)

type UserRepo struct{ col *mongo.Collection }

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection(ColUsers)}
}

func (r *UserRepo) Insert(ctx context.Context, u *domain.User) (*domain.InsertResult, error) {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return toInsertResult(res), nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if noDocuments(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	return r.find(ctx, bson.M{})
}

func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	return r.find(ctx, bson.M{"role": role})
}

func (r *UserRepo) find(ctx context.Context, filter bson.M) ([]domain.User, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	users := []domain.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *UserRepo) SetRole(ctx context.Context, id, role string, upsert bool) (*domain.UpdateResult, error) {
	oid, err := parseOID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"role": role}},
		options.Update().SetUpsert(upsert),
	)
	if err != nil {
		return nil, fmt.Errorf("set role: %w", err)
	}
	return toUpdateResult(res), nil
}

func (r *UserRepo) SetVerify(ctx context.Context, email string, verify bool) (*domain.UpdateResult, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"verify": verify}},
	)
	if err != nil {
		return nil, fmt.Errorf("set verify: %w", err)
	}
	return toUpdateResult(res), nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	oid, err := parseOID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return toDeleteResult(res), nil
}
