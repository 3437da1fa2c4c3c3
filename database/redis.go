// file: database/redis.go
package database

import (
	"context"
	"time"

	"InnoHub/config"
	"InnoHub/logger"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

func InitRedis() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.App.RedisAddr,
		Password: config.App.RedisPassword,
		DB:       config.App.RedisDB,
		PoolSize: 100,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RDB.Ping(ctx).Result(); err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}

	logger.Info("Redis connection established")
}
