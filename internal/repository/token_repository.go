package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRepo persists refresh-token hashes in Redis. Only the SHA-256 hash
// of a token is ever stored; the raw value goes back to the client. Each
// hash maps to the owning username with a TTL matching the token's expiry,
// and a per-user set tracks outstanding hashes so logout can revoke every
// session at once. Refresh tokens are session artifacts, not one of the
// four site records, so this repo talks to Redis directly instead of going
// through the record gateway.
type TokenRepo struct {
	rdb *redis.Client
}

// NewTokenRepo wraps an already connected Redis client.
func NewTokenRepo(rdb *redis.Client) *TokenRepo {
	if rdb == nil {
		panic("nil redis client passed to NewTokenRepo")
	}
	return &TokenRepo{rdb: rdb}
}

func refreshKey(hash string) string { return "reserve_refresh:" + hash }
func userSetKey(user string) string { return "reserve_refresh_user:" + user }

// StoreRefresh records a refresh token hash for the user until exp.
func (r *TokenRepo) StoreRefresh(ctx context.Context, username, tokenHash string, exp time.Time) error {
	ttl := time.Until(exp)
	if ttl <= 0 {
		return fmt.Errorf("refresh token already expired")
	}
	if err := r.rdb.Set(ctx, refreshKey(tokenHash), username, ttl).Err(); err != nil {
		return fmt.Errorf("store refresh: %w", err)
	}
	// Track the hash for bulk revocation. Keep the set alive at least as
	// long as its longest-lived member.
	if err := r.rdb.SAdd(ctx, userSetKey(username), tokenHash).Err(); err != nil {
		return fmt.Errorf("track refresh: %w", err)
	}
	if err := r.rdb.Expire(ctx, userSetKey(username), ttl).Err(); err != nil {
		return fmt.Errorf("track refresh ttl: %w", err)
	}
	return nil
}

// ValidateRefresh returns the owning username if a live token with the
// given hash exists; ErrNotFound otherwise.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) (string, error) {
	username, err := r.rdb.Get(ctx, refreshKey(tokenHash)).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("validate refresh: %w", err)
	}
	return username, nil
}

// RevokeByHash invalidates a single refresh token.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	username, err := r.ValidateRefresh(ctx, tokenHash)
	if err != nil {
		return err
	}
	if err := r.rdb.Del(ctx, refreshKey(tokenHash)).Err(); err != nil {
		return fmt.Errorf("revoke refresh: %w", err)
	}
	_ = r.rdb.SRem(ctx, userSetKey(username), tokenHash).Err()
	return nil
}

// RevokeAllForUser invalidates every outstanding refresh token of the user.
func (r *TokenRepo) RevokeAllForUser(ctx context.Context, username string) error {
	hashes, err := r.rdb.SMembers(ctx, userSetKey(username)).Result()
	if err != nil {
		return fmt.Errorf("list refresh tokens: %w", err)
	}
	for _, h := range hashes {
		if err := r.rdb.Del(ctx, refreshKey(h)).Err(); err != nil {
			return fmt.Errorf("revoke refresh: %w", err)
		}
	}
	if err := r.rdb.Del(ctx, userSetKey(username)).Err(); err != nil {
		return fmt.Errorf("clear refresh set: %w", err)
	}
	return nil
}
