// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"aamer/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (provider profile cache).
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		// Redis is optional; every caller degrades to the DB path.
		log.Printf("WARNING: failed to connect to Redis (cache): %v", err)
		CacheClient = nil
	}
}

// GetCacheClient returns the generic cache client, which may be nil when
// Redis is unavailable.
func GetCacheClient() *redis.Client {
	return CacheClient
}

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Printf("WARNING: failed to connect to Redis (auth cache): %v", err)
		AuthCacheClient = nil
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching,
// which may be nil when Redis is unavailable.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}

// InitRedis initializes both Redis clients.
func InitRedis() {
	InitCache()
	InitAuthCache()
}
