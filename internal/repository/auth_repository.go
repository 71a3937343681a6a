package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lumina-dev/venue-reserve/internal/model"
)

// AuthRepo persists the single admin credential record.
type AuthRepo struct {
	store Store
}

// NewAuthRepo constructs an AuthRepo over the given gateway.
func NewAuthRepo(store Store) *AuthRepo {
	return &AuthRepo{store: store}
}

// Exists reports whether setup has been performed, i.e. whether a
// credential record is stored.
func (r *AuthRepo) Exists(ctx context.Context) (bool, error) {
	_, err := r.store.Read(ctx, KeyAuth)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Get returns the stored credentials. ErrNotFound is passed through so the
// caller can distinguish "not set up" from a storage failure.
func (r *AuthRepo) Get(ctx context.Context) (model.AdminCredentials, error) {
	b, err := r.store.Read(ctx, KeyAuth)
	if err != nil {
		return model.AdminCredentials{}, err
	}
	var creds model.AdminCredentials
	if err := json.Unmarshal(b, &creds); err != nil {
		return model.AdminCredentials{}, fmt.Errorf("decode auth record: %w", err)
	}
	return creds, nil
}

// Put replaces the credential record.
func (r *AuthRepo) Put(ctx context.Context, creds model.AdminCredentials) error {
	b, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode auth record: %w", err)
	}
	return r.store.Write(ctx, KeyAuth, b)
}
