package auth

import (
	"context"

	"variety-store-server/internal/domain"
)

// RoleResolver maps a requester email to the user record that carries its
// role. Today the storefront trusts the client-supplied email and looks it up
// directly; keeping the seam an interface lets a session-based resolver
// replace this without touching handlers.
type RoleResolver interface {
	// Resolve returns (nil, nil) when the email is unknown.
	Resolve(ctx context.Context, email string) (*domain.User, error)
}

// StoreResolver resolves against the user store.
type StoreResolver struct {
	Users domain.UserStore
}

func (r *StoreResolver) Resolve(ctx context.Context, email string) (*domain.User, error) {
	return r.Users.FindByEmail(ctx, email)
}
