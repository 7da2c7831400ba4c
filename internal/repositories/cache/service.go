package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	keys "storeadmin/internal/utils/cache"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Store is the part of the query cache the services depend on.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Generation reports how many times op has been invalidated.
	Generation(ctx context.Context, op keys.QueryOp) (int64, error)
	// SetIfCurrent stores value only while the generation of the key's op is
	// still gen, and reports whether it did.
	SetIfCurrent(ctx context.Context, key string, value interface{}, ttl time.Duration, gen int64) (bool, error)
	Invalidate(ctx context.Context, ops ...keys.QueryOp) error
}

// KEYS[1] generation key, KEYS[2] entry key; ARGV gen, payload, ttl in ms.
var setIfCurrent = redis.NewScript(`
if (redis.call("GET", KEYS[1]) or "0") ~= ARGV[1] then
	return 0
end
redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[3])
return 1
`)

// CacheService stores JSON-encoded query results in Redis.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
	stats  *Stats
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
		stats:  NewStats(),
	}
}

// SetIfCurrent writes a JSON entry unless the key's op was invalidated after gen
// was read. A zero ttl uses the service default.
func (s *CacheService) SetIfCurrent(ctx context.Context, key string, value interface{}, ttl time.Duration, gen int64) (bool, error) {
	if ttl <= 0 {
		ttl = s.ttl
	}
	data, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("failed to marshal cache value: %w", err)
	}

	genKey := keys.GenerationKey(keys.OpOf(key))
	stored, err := setIfCurrent.Run(ctx, s.client, []string{genKey, key},
		strconv.FormatInt(gen, 10), data, ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("failed to set cache value: %w", err)
	}
	return stored == 1, nil
}

func (s *CacheService) Generation(ctx context.Context, op keys.QueryOp) (int64, error) {
	gen, err := s.client.Get(ctx, keys.GenerationKey(op)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read cache generation: %w", err)
	}
	return gen, nil
}

// Get decodes the value at key into dest. A missing key is not an error.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			s.stats.Miss(key)
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.stats.Miss(key)
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	s.stats.Hit(key)
	return true, nil
}

// Invalidate removes every cached entry of the given ops.
func (s *CacheService) Invalidate(ctx context.Context, ops ...keys.QueryOp) error {
	for _, op := range ops {
		// Bumped before deleting so a load already in flight cannot store
		// what it read before the change.
		if err := s.client.Incr(ctx, keys.GenerationKey(op)).Err(); err != nil {
			return fmt.Errorf("invalidate %s: %w", op, err)
		}
		deleted, err := s.deleteOp(ctx, op)
		if err != nil {
			return fmt.Errorf("invalidate %s: %w", op, err)
		}
		log.Debug().Str("op", string(op)).Int("keys", deleted).Msg("[cache] invalidated")
	}
	return nil
}

func (s *CacheService) deleteOp(ctx context.Context, op keys.QueryOp) (int, error) {
	deleted := 0
	n, err := s.client.Del(ctx, keys.Base(op)).Result()
	if err != nil {
		return 0, err
	}
	deleted += int(n)

	iter := s.client.Scan(ctx, 0, keys.Pattern(op), 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, iter.Err()
}

// FlushQueries drops every query cache entry.
func (s *CacheService) FlushQueries(ctx context.Context) error {
	return s.Invalidate(ctx, keys.AllOps()...)
}

func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (s *CacheService) PoolStats() *redis.PoolStats {
	return s.client.PoolStats()
}

// Stats returns the hit/miss counters of this service.
func (s *CacheService) Stats() *Stats {
	return s.stats
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
