package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"mindcare_backend/internal/model"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	chatRecentKeyPrefix = "chat:recent:"
	chatRecentSize      = 20
	chatRecentTTL       = 7 * 24 * time.Hour
)

// ChatRepository 对话记录落库，同时在 Redis 列表中缓存每个用户最近的对话
type ChatRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewChatRepository(db *gorm.DB, rdb *redis.Client) *ChatRepository {
	return &ChatRepository{DB: db, Redis: rdb}
}

func (r *ChatRepository) Create(turn *model.ChatTurn) error {
	return r.DB.Create(turn).Error
}

func (r *ChatRepository) ListByUser(userID string, limit int) ([]model.ChatTurn, error) {
	var turns []model.ChatTurn
	err := r.DB.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&turns).Error
	return turns, err
}

func recentKey(userID string) string {
	return chatRecentKeyPrefix + userID
}

// CacheRecent 把一轮对话压入用户的最近对话列表，列表只保留最新 20 条
func (r *ChatRepository) CacheRecent(ctx context.Context, turn *model.ChatTurn) error {
	if r.Redis == nil {
		return nil
	}
	data, err := json.Marshal(turn)
	if err != nil {
		return err
	}
	key := recentKey(turn.UserID)
	pipe := r.Redis.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, chatRecentSize-1)
	pipe.Expire(ctx, key, chatRecentTTL)
	_, err = pipe.Exec(ctx)
	return err
}

// Recent 从缓存读取最近的对话，最新的在前。
// 缓存未启用或为空时返回 ok=false，由调用方回源数据库。
func (r *ChatRepository) Recent(ctx context.Context, userID string, limit int) ([]model.ChatTurn, bool, error) {
	if r.Redis == nil {
		return nil, false, nil
	}
	vals, err := r.Redis.LRange(ctx, recentKey(userID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, false, err
	}
	if len(vals) == 0 {
		return nil, false, nil
	}
	turns := make([]model.ChatTurn, 0, len(vals))
	for _, v := range vals {
		var turn model.ChatTurn
		if err := json.Unmarshal([]byte(v), &turn); err != nil {
			return nil, false, fmt.Errorf("decode cached chat turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, true, nil
}
