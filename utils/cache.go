package utils

import (
	"context"
	"fmt"
	"time"

	"dayplanner/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient backs session schedules when SESSION_BACKEND is redis.
var SessionCacheClient *redis.Client

// NewRedisClient connects to addr/db and verifies the connection with a ping.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s (db %d): %w", addr, db, err)
	}
	return client, nil
}

// InitSessionCache initializes the Redis client used for session schedules.
func InitSessionCache() error {
	client, err := NewRedisClient(context.Background(),
		config.AppConfig.RedisAddr,
		config.AppConfig.RedisPassword,
		config.AppConfig.RedisSessionDB,
	)
	if err != nil {
		return err
	}
	SessionCacheClient = client
	return nil
}

// GetSessionCacheClient returns the session cache client, connecting on first use.
func GetSessionCacheClient() (*redis.Client, error) {
	if SessionCacheClient == nil {
		if err := InitSessionCache(); err != nil {
			return nil, err
		}
	}
	return SessionCacheClient, nil
}
