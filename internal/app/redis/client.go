package redis

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"agensi-backend/internal/app/identity"
)

// Cached identity lookups live under this prefix, keyed by a hash of the
// bearer token so raw tokens never land in Redis.
const identityPrefix = "identity:"

type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

type Config struct {
	Host        string
	Port        int
	User        string
	Password    string
	DialTimeout time.Duration
	ReadTimeout time.Duration
	IdentityTTL time.Duration
}

func New(ctx context.Context, cfg Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Username:    cfg.User,
		Password:    cfg.Password,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	ttl := cfg.IdentityTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

// CacheIdentity stores a resolved token->identity mapping with a short TTL.
// Revocation latency is bounded by the TTL, which stays well inside the
// provider's token lifetime.
func (c *Client) CacheIdentity(ctx context.Context, token string, user *identity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, identityKey(token), raw, c.ttl).Err()
}

// CachedIdentity returns the cached identity for a token, or nil on a miss.
// Redis errors degrade to a miss; the provider remains the source of truth.
func (c *Client) CachedIdentity(ctx context.Context, token string) *identity.User {
	raw, err := c.rdb.Get(ctx, identityKey(token)).Bytes()
	if err != nil {
		return nil
	}
	var user identity.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil
	}
	return &user
}

// DropIdentity evicts a cached token, e.g. after the provider rejects it.
func (c *Client) DropIdentity(ctx context.Context, token string) {
	c.rdb.Del(ctx, identityKey(token))
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

func identityKey(token string) string {
	sum := sha1.Sum([]byte(token))
	return identityPrefix + hex.EncodeToString(sum[:])
}
