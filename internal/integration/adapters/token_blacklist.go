// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// blacklistKeyPrefix namespaces revoked token keys in Redis.
const blacklistKeyPrefix = "revoked_token:"

// TokenBlacklist records revoked refresh tokens so revocation takes effect
// immediately, without waiting for the database row update to be observed.
type TokenBlacklist interface {
	// Revoke marks a token as revoked for the given duration.
	Revoke(ctx context.Context, token string, ttl time.Duration) error

	// IsRevoked reports whether a token has been revoked.
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// redisTokenBlacklist implements TokenBlacklist backed by Redis. Tokens are
// stored hashed; entries expire with the token itself.
type redisTokenBlacklist struct {
	client *redis.Client
}

// NewRedisTokenBlacklist creates a new Redis-backed token blacklist.
func NewRedisTokenBlacklist(client *redis.Client) TokenBlacklist {
	return &redisTokenBlacklist{
		client: client,
	}
}

// Revoke marks a token as revoked until its natural expiry.
func (b *redisTokenBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired, nothing to record
		return nil
	}
	return b.client.Set(ctx, blacklistKey(token), "1", ttl).Err()
}

// IsRevoked reports whether a token has been revoked.
func (b *redisTokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := b.client.Get(ctx, blacklistKey(token)).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// blacklistKey hashes the token so raw JWTs never land in Redis.
func blacklistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return blacklistKeyPrefix + hex.EncodeToString(sum[:])
}
