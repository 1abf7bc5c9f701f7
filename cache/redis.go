package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/hisaab-app/hisaab-backend/models"
)

// Config is the redis configuration
type Config struct {
	Addr     string
	Password string
	Db       int
}

var ctx = context.Background()

// A short TTL ensures entries don't stay stale if an invalidation is lost
// to a race between concurrent writers.
var cacheEntryTTL = 30 * time.Second

// RedisCache implements the Cache interface for redis
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates an instance of RedisCache
func NewRedisCache(config Config) Cache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     config.Addr,
			Password: config.Password,
			DB:       config.Db,
		}),
	}
}

// makeKey makes a key from a group id
func (r *RedisCache) makeKey(groupID string) string {
	return "summary:" + groupID
}

// GetSummary gets the cached summary for a group from redis. Connection or
// decode failures are treated as cache misses.
func (r *RedisCache) GetSummary(groupID string) (*models.GroupSummary, bool) {
	val, err := r.client.Get(ctx, r.makeKey(groupID)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Warn().Err(err).Str("group", groupID).Msg("redis get failed, recomputing")
		return nil, false
	}

	var summary models.GroupSummary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		log.Warn().Err(err).Str("group", groupID).Msg("failed to decode cached summary")
		return nil, false
	}
	return &summary, true
}

// SetSummary sets the groupID/summary key/value in redis
func (r *RedisCache) SetSummary(groupID string, summary *models.GroupSummary) {
	value, err := json.Marshal(summary)
	if err != nil {
		log.Warn().Err(err).Str("group", groupID).Msg("failed to encode summary for cache")
		return
	}
	if err := r.client.Set(ctx, r.makeKey(groupID), value, cacheEntryTTL).Err(); err != nil {
		log.Warn().Err(err).Str("group", groupID).Msg("redis set failed")
	}
}

// Invalidate drops the cached summary for a group
func (r *RedisCache) Invalidate(groupID string) {
	if err := r.client.Del(ctx, r.makeKey(groupID)).Err(); err != nil {
		log.Warn().Err(err).Str("group", groupID).Msg("redis del failed")
	}
}
