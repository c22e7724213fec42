package utils

import (
	"context"
	"log"
	"time"

	"invoicely/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces cached token hashes per user.
const AuthCachePrefix = "auth:"

// AuthCacheTTL bounds how long a verified token hash stays cached.
const AuthCacheTTL = time.Hour

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// CacheTokenHash stores the current token hash for a user. Best
// effort: a missing cache client is simply skipped, the database
// remains the source of truth.
func CacheTokenHash(userID, tokenHash string) {
	if AuthCacheClient == nil {
		return
	}
	_ = AuthCacheClient.Set(context.Background(), AuthCachePrefix+userID, tokenHash, AuthCacheTTL).Err()
}

// EvictTokenHash removes the cached token hash for a user.
func EvictTokenHash(userID string) {
	if AuthCacheClient == nil {
		return
	}
	_ = AuthCacheClient.Del(context.Background(), AuthCachePrefix+userID).Err()
}
