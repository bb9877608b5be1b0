// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"atithi/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient is the dedicated Redis client for booking sessions.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client used for booking session storage.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the booking session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// SessionTTL returns the configured booking session lifetime.
func SessionTTL() time.Duration {
	minutes := config.AppConfig.SessionTTLMinutes
	if minutes <= 0 {
		minutes = 30
	}
	return time.Duration(minutes) * time.Minute
}
