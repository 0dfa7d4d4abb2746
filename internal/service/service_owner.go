package service

import (
	"context"
	"errors"
	"fmt"

	"stockroom/internal/session"
	"stockroom/internal/store"
	"stockroom/internal/validators"
)

// ownerResolver is shared by the resource services: it turns a presented
// email into an owner id and checks the session token against that owner.
type ownerResolver struct {
	users     store.UserRepository
	authority session.Authority
}

func newOwnerResolver(users store.UserRepository, authority session.Authority) *ownerResolver {
	return &ownerResolver{users: users, authority: authority}
}

// resolve maps an email to its owner id. An unknown email is reported as
// [ErrEmailNotFound]; any other failure is a storage error.
func (o *ownerResolver) resolve(ctx context.Context, email string) (int64, error) {
	ownerID, err := o.users.FindIDByEmail(ctx, validators.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return 0, ErrEmailNotFound
		}
		return 0, fmt.Errorf("owner lookup failed: %w", err)
	}

	return ownerID, nil
}

// authorize checks the presented token against the resolved owner.
func (o *ownerResolver) authorize(token string, ownerID int64) error {
	if !o.authority.Authorize(token, ownerID) {
		return ErrInvalidCredentials
	}
	return nil
}
