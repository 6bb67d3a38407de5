package repository

import (
	"context"

	"github.com/go-redis/redis/v8"
)

const leaderboardKey = "leaderboard:xp"

type LeaderboardEntry struct {
	UserID string
	XP     int
}

// LeaderboardRepository 基于 Redis 有序集合的经验值排行榜
type LeaderboardRepository struct {
	Redis *redis.Client
}

func NewLeaderboardRepository(rdb *redis.Client) *LeaderboardRepository {
	return &LeaderboardRepository{Redis: rdb}
}

func (r *LeaderboardRepository) Enabled() bool {
	return r.Redis != nil
}

func (r *LeaderboardRepository) SetXP(ctx context.Context, userID string, xp int) error {
	if r.Redis == nil {
		return nil
	}
	return r.Redis.ZAdd(ctx, leaderboardKey, &redis.Z{Score: float64(xp), Member: userID}).Err()
}

func (r *LeaderboardRepository) Top(ctx context.Context, n int) ([]LeaderboardEntry, error) {
	if r.Redis == nil {
		return nil, nil
	}
	zs, err := r.Redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(zs))
	for _, z := range zs {
		id, ok := z.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, LeaderboardEntry{UserID: id, XP: int(z.Score)})
	}
	return entries, nil
}
