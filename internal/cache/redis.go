package cache

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore keeps entries in Redis so multiple instances can share one
// cache. Entries carry a server-side safety expiry well beyond the policy
// TTL; staleness is still decided by the caller from Entry.Timestamp.
type RedisStore struct {
	client *goredis.Client
	expiry time.Duration
	logger *zap.Logger
}

func NewRedisStore(client *goredis.Client, expiry time.Duration, logger *zap.Logger) *RedisStore {
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &RedisStore{
		client: client,
		expiry: expiry,
		logger: logger,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (Entry, bool) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != goredis.Nil {
			s.logger.Warn("Redis cache read failed", zap.String("key", key), zap.Error(err))
		}
		return Entry{}, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		s.logger.Debug("Discarding malformed redis cache entry",
			zap.String("key", key),
			zap.Error(err))
		_ = s.client.Del(ctx, key).Err()
		return Entry{}, false
	}

	return entry, true
}

func (s *RedisStore) Set(ctx context.Context, key string, entry Entry) {
	data, err := json.Marshal(entry)
	if err != nil {
		s.logger.Warn("Failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}

	if err := s.client.Set(ctx, key, data, s.expiry).Err(); err != nil {
		s.logger.Warn("Redis cache write failed", zap.String("key", key), zap.Error(err))
	}
}
