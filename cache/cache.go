package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Leaderboards is a short-TTL cache for computed leaderboard payloads. Writes
// to the underlying collections do not invalidate it; stale reads inside the
// TTL window are accepted.
//
// With a Redis address it stores entries under leaderboard:<key> with the TTL
// as expiry. Without one it falls back to an in-process map whose staleness
// check rides on Go's monotonic clock.
type Leaderboards struct {
	ttl time.Duration
	rdb *redis.Client

	mu      sync.Mutex
	entries map[string]memEntry
}

type memEntry struct {
	value    []byte
	storedAt time.Time
}

func New(ctx context.Context, redisAddr string, ttl time.Duration) (*Leaderboards, error) {
	c := &Leaderboards{
		ttl:     ttl,
		entries: make(map[string]memEntry),
	}
	if redisAddr == "" {
		return c, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         redisAddr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, err
	}
	c.rdb = rdb
	return c, nil
}

func (c *Leaderboards) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.rdb != nil {
		val, err := c.rdb.Get(ctx, "leaderboard:"+key).Bytes()
		if err != nil {
			// redis.Nil and transport errors alike read as a miss; the
			// caller recomputes.
			return nil, false
		}
		return val, true
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || time.Since(e.storedAt) >= c.ttl {
		return nil, false
	}
	return e.value, true
}

func (c *Leaderboards) Set(ctx context.Context, key string, value []byte) {
	if c.rdb != nil {
		_ = c.rdb.Set(ctx, "leaderboard:"+key, value, c.ttl).Err()
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memEntry{value: value, storedAt: time.Now()}
}

func (c *Leaderboards) Close() error {
	if c.rdb != nil {
		return c.rdb.Close()
	}
	return nil
}
