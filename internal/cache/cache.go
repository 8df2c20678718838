// Package cache provides Redis caching for post detail reads. The cache is
// optional: when Redis is unreachable every helper degrades to a no-op.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

const (
	postKeyPrefix = "post:%d"
	postTTL       = 30 * time.Minute
)

// InitRedis initializes the Redis client with the given address or URL.
func InitRedis(addr string) {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			log.Printf("Redis connection warning: invalid REDIS_URL %q: %v (continuing without cache)", addr, err)
			client = nil
			return
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without cache)", err)
		client = nil
	} else {
		log.Println("Redis connected successfully")
	}
}

// GetClient returns the current Redis client instance, nil when unavailable.
func GetClient() *redis.Client {
	return client
}

// SetClient replaces the client. Used by tests to point at a fake server.
func SetClient(c *redis.Client) {
	client = c
}

func postKey(postID uint) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}

// CachePost stores a post detail payload under the post's key.
func CachePost(ctx context.Context, postID uint, v any) {
	if client == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	client.Set(ctx, postKey(postID), data, postTTL)
}

// LookupPost loads a cached post detail payload into dest. Returns false on
// miss or any cache failure.
func LookupPost(ctx context.Context, postID uint, dest any) bool {
	if client == nil {
		return false
	}
	data, err := client.Get(ctx, postKey(postID)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// InvalidatePost drops the cached payload after a mutation.
func InvalidatePost(ctx context.Context, postID uint) {
	if client != nil {
		client.Del(ctx, postKey(postID))
	}
}
