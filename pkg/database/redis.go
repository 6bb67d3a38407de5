package database

import (
	"context"
	"fmt"
	"mindcare_backend/internal/config"
	"mindcare_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     50,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, err
	}

	logger.Log.Info("Redis connection established", zap.String("addr", rdb.Options().Addr))
	return rdb, nil
}

// InitOptionalRedis Redis 未启用或不可用时返回 nil，调用方回退到数据库
func InitOptionalRedis(cfg *config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		logger.Log.Info("Redis disabled, leaderboard and chat cache fall back to the database")
		return nil
	}
	rdb, err := InitRedis(cfg)
	if err != nil {
		logger.Log.Warn("Redis unavailable, falling back to the database", zap.Error(err))
		return nil
	}
	return rdb
}
