package utils

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// The property list is the hottest read on the site, so it is cached per
// filter combination and the whole prefix is dropped on any write.

const propertyCachePrefix = "properties"

var RedisClient *redis.Client

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}

func CacheTTL() time.Duration {
	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			return d
		}
	}
	return 5 * time.Minute
}

func GetCached(ctx context.Context, key string, dest interface{}) (bool, error) {
	if RedisClient == nil {
		return false, nil
	}
	data, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(data), dest)
}

func SetCached(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if RedisClient == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return RedisClient.Set(ctx, key, data, ttl).Err()
}

// PropertyListCache bundles the listing cache operations behind a value the
// controllers hold, so tests can swap in a fake the same way they do stores.
type PropertyListCache struct {
	TTL time.Duration
}

func NewPropertyListCache() *PropertyListCache {
	return &PropertyListCache{TTL: CacheTTL()}
}

func (c *PropertyListCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return GetCached(ctx, key, dest)
}

func (c *PropertyListCache) Set(ctx context.Context, key string, value interface{}) error {
	return SetCached(ctx, key, value, c.TTL)
}

func (c *PropertyListCache) Invalidate(ctx context.Context) {
	InvalidateProperties(ctx)
}

// PropertyListKey builds a stable cache key from the listing query params.
func PropertyListKey(queryParams map[string]string) string {
	keys := make([]string, 0, len(queryParams))
	for k := range queryParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, k := range keys {
		if i > 0 {
			builder.WriteString(":")
		}
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(queryParams[k])
	}

	hash := md5.Sum([]byte(builder.String()))
	return propertyCachePrefix + ":" + hex.EncodeToString(hash[:])
}

// InvalidateProperties drops every cached listing after a write.
func InvalidateProperties(ctx context.Context) {
	if RedisClient == nil {
		return
	}
	iter := RedisClient.Scan(ctx, 0, propertyCachePrefix+":*", 0).Iterator()
	for iter.Next(ctx) {
		RedisClient.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("cache invalidation failed: %v", err)
	}
}
