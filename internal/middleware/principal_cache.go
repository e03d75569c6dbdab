package middleware

// principal_cache.go caches principal resolution in redis. The gate itself
// is a pure lookup; caching belongs to this integration layer so the core
// stays side-effect free. Entries are short-lived because a role or company
// change must take effect quickly, and any redis trouble degrades to
// resolving straight through.

import (
    "context"
    "encoding/json"
    "fmt"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/event-wristbands/internal/model"
)

// PrincipalCache wraps an AuthGate with a redis read-through cache.
type PrincipalCache struct {
    gate AuthGate
    rdb  *redis.Client
    ttl  time.Duration
}

// NewPrincipalCache builds the cache. A nil redis client disables caching
// entirely; Resolve then always hits the underlying gate.
func NewPrincipalCache(gate AuthGate, rdb *redis.Client, ttl time.Duration) *PrincipalCache {
    if ttl <= 0 {
        ttl = 30 * time.Second
    }
    return &PrincipalCache{gate: gate, rdb: rdb, ttl: ttl}
}

// Resolve returns the cached principal when present, otherwise resolves
// through the gate and stores the result. Cache errors are ignored: a
// broken cache must never turn into an authorization failure or success on
// its own.
func (p *PrincipalCache) Resolve(ctx context.Context, userID uint64) (model.Principal, error) {
    key := fmt.Sprintf("principal:%d", userID)
    if p.rdb != nil {
        if raw, err := p.rdb.Get(ctx, key).Bytes(); err == nil {
            var cached model.Principal
            if json.Unmarshal(raw, &cached) == nil && cached.UserID == userID {
                return cached, nil
            }
        }
    }

    resolved, err := p.gate.Resolve(ctx, userID)
    if err != nil {
        return model.Principal{}, err
    }

    if p.rdb != nil {
        if raw, err := json.Marshal(resolved); err == nil {
            _ = p.rdb.Set(ctx, key, raw, p.ttl).Err()
        }
    }
    return resolved, nil
}
