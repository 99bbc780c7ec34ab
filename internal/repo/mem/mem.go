// Package mem holds in-memory implementations of the domain stores, used by
// handler tests in place of a live mongo deployment. Listings reverse
// insertion order to mimic the {_id:-1} sort.
package mem

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"variety-store-server/internal/domain"
)

func parseOID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

// collection is an append-only slice of documents behind a lock.
type collection struct {
	mu   sync.Mutex
	docs []domain.Document
}

func (c *collection) insert(doc domain.Document) *domain.InsertResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	stored := domain.Document{}
	for k, v := range doc {
		stored[k] = v
	}
	oid := primitive.NewObjectID()
	stored["_id"] = oid
	c.docs = append(c.docs, stored)
	return &domain.InsertResult{Acknowledged: true, InsertedID: oid}
}

func (c *collection) filter(match func(domain.Document) bool, reverse bool) []domain.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := []domain.Document{}
	for _, d := range c.docs {
		if match(d) {
			out = append(out, d)
		}
	}
	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func (c *collection) deleteByID(oid primitive.ObjectID) *domain.DeleteResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, d := range c.docs {
		if d["_id"] == oid {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}
		}
	}
	return &domain.DeleteResult{Acknowledged: true, DeletedCount: 0}
}

func matchAll(domain.Document) bool { return true }

func matchField(key, val string) func(domain.Document) bool {
	return func(d domain.Document) bool { s, _ := d[key].(string); return s == val }
}

/* ---------- users ---------- */

type Users struct {
	mu    sync.Mutex
	users []*domain.User
}

func NewUsers() *Users { return &Users{} }

func (s *Users) Insert(_ context.Context, u *domain.User) (*domain.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	if cp.ID.IsZero() {
		cp.ID = primitive.NewObjectID()
	}
	s.users = append(s.users, &cp)
	return &domain.InsertResult{Acknowledged: true, InsertedID: cp.ID}, nil
}

func (s *Users) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Users) List(_ context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.User{}
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *Users) ListByRole(_ context.Context, role string) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.User{}
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *Users) SetRole(_ context.Context, id, role string, upsert bool) (*domain.UpdateResult, error) {
	oid, err := parseOID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == oid {
			modified := int64(0)
			if u.Role != role {
				u.Role = role
				modified = 1
			}
			return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	if !upsert {
		return &domain.UpdateResult{Acknowledged: true}, nil
	}
	s.users = append(s.users, &domain.User{ID: oid, Role: role})
	return &domain.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: oid}, nil
}

func (s *Users) SetVerify(_ context.Context, email string, verify bool) (*domain.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			modified := int64(0)
			if u.Verify != verify {
				u.Verify = verify
				modified = 1
			}
			return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return &domain.UpdateResult{Acknowledged: true}, nil
}

func (s *Users) Delete(_ context.Context, id string) (*domain.DeleteResult, error) {
	oid, err := parseOID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == oid {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &domain.DeleteResult{Acknowledged: true, DeletedCount: 0}, nil
}

/* ---------- categories ---------- */

type Categories struct{ collection }

func NewCategories() *Categories { return &Categories{} }

func (s *Categories) Insert(_ context.Context, doc domain.Document) (*domain.InsertResult, error) {
	return s.insert(doc), nil
}

func (s *Categories) List(_ context.Context) ([]domain.Document, error) {
	return s.filter(matchAll, false), nil
}

/* ---------- products ---------- */

type Products struct{ collection }

func NewProducts() *Products { return &Products{} }

func (s *Products) Insert(_ context.Context, doc domain.Document) (*domain.InsertResult, error) {
	return s.insert(doc), nil
}

func (s *Products) List(_ context.Context) ([]domain.Document, error) {
	return s.filter(matchAll, true), nil
}

func (s *Products) FindByID(_ context.Context, id string) (domain.Document, error) {
	oid, err := parseOID(id)
	if err != nil {
		return nil, err
	}
	docs := s.filter(func(d domain.Document) bool { return d["_id"] == oid }, false)
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}

func (s *Products) ListByCategory(_ context.Context, categoryID string) ([]domain.Document, error) {
	return s.filter(matchField("categoryId", categoryID), false), nil
}

func (s *Products) ListByEmail(_ context.Context, email string) ([]domain.Document, error) {
	return s.filter(matchField("email", email), true), nil
}

func (s *Products) Update(_ context.Context, id string, fields domain.Document) (*domain.UpdateResult, error) {
	oid, err := parseOID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.docs {
		if d["_id"] == oid {
			for k, v := range fields {
				d[k] = v
			}
			return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &domain.UpdateResult{Acknowledged: true}, nil
}

func (s *Products) Delete(_ context.Context, id string) (*domain.DeleteResult, error) {
	oid, err := parseOID(id)
	if err != nil {
		return nil, err
	}
	return s.deleteByID(oid), nil
}

/* ---------- orders ---------- */

type Orders struct{ collection }

func NewOrders() *Orders { return &Orders{} }

func (s *Orders) Insert(_ context.Context, doc domain.Document) (*domain.InsertResult, error) {
	return s.insert(doc), nil
}

func (s *Orders) ListByBuyer(_ context.Context, email string) ([]domain.Document, error) {
	return s.filter(matchField("buyerEmail", email), false), nil
}

func (s *Orders) Delete(_ context.Context, id string) (*domain.DeleteResult, error) {
	oid, err := parseOID(id)
	if err != nil {
		return nil, err
	}
	return s.deleteByID(oid), nil
}
