package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

// Key namespaces for the paginated list caches.
const (
	KeyActivities = "activities"
	KeyGoals      = "goals"
)

// PageCache memoizes paginated list payloads. It holds no authority: the
// database is always the source of truth and every entry is invalidated
// explicitly on write, so entries carry no TTL.
type PageCache interface {
	GetPage(key string, dest interface{}) (bool, error)
	SetPage(key string, payload interface{}) error
	InvalidateUser(prefix string, userID uint) error
	Close() error
}

// PageKey builds the cache key for one page of a user's list:
// "goals:{userID}:page:{page}:limit:{limit}".
func PageKey(prefix string, userID uint, page, limit int) string {
	return fmt.Sprintf("%s:%d:page:%d:limit:%d", prefix, userID, page, limit)
}

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// GetPage reads a cached page payload into dest. The second return is false
// on a miss.
func (r *RedisClient) GetPage(key string, dest interface{}) (bool, error) {
	data, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get page from Redis: %w", err)
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached page: %w", err)
	}
	return true, nil
}

func (r *RedisClient) SetPage(key string, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal page: %w", err)
	}
	// No expiry: entries live until the next mutation invalidates them.
	if err := r.client.Set(r.ctx, key, jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to store page in Redis: %w", err)
	}
	return nil
}

// InvalidateUser drops every cached page in the namespace for the user. A
// single mutation can shift pagination boundaries across all pages, so the
// whole "{prefix}:{userID}:page:*" keyspace goes at once.
func (r *RedisClient) InvalidateUser(prefix string, userID uint) error {
	pattern := fmt.Sprintf("%s:%d:page:*", prefix, userID)
	keys, err := r.client.Keys(r.ctx, pattern).Result()
	if err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(r.ctx, keys...).Err()
}
