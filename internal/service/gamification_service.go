package service

import (
	"context"
	"fmt"
	"math"
	"mindcare_backend/internal/gamification"
	"mindcare_backend/internal/repository"
	"mindcare_backend/internal/util"
	"mindcare_backend/pkg/logger"
	"mindcare_backend/pkg/monitoring"

	"go.uber.org/zap"
)

type GamificationService struct {
	UserRepo    *repository.UserRepository
	Leaderboard *repository.LeaderboardRepository
}

func NewGamificationService(userRepo *repository.UserRepository, leaderboard *repository.LeaderboardRepository) *GamificationService {
	return &GamificationService{UserRepo: userRepo, Leaderboard: leaderboard}
}

type LeaderboardItem struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name,omitempty"`
	XP       int    `json:"xp"`
}

// Award 增加经验值并整体重算等级和徽章，经验值只增不减
func (s *GamificationService) Award(ctx context.Context, userID string, xp int) (*gamification.Progression, error) {
	if xp < 0 {
		return nil, fmt.Errorf("%w: xp must not be negative", util.ErrValidation)
	}
	user, err := findUser(s.UserRepo, userID)
	if err != nil {
		return nil, err
	}
	if xp > math.MaxInt-user.XP {
		return nil, fmt.Errorf("%w: xp award overflows the total", util.ErrValidation)
	}

	p := gamification.Compute(user.XP + xp)
	if err := s.UserRepo.UpdateProgression(userID, p.XP, p.Level, p.Badges); err != nil {
		return nil, err
	}
	if xp > 0 {
		monitoring.XPAwarded.Add(float64(xp))
	}

	if err := s.Leaderboard.SetXP(ctx, userID, p.XP); err != nil {
		logger.Log.Warn("Failed to update leaderboard", zap.String("user_id", userID), zap.Error(err))
	}
	return &p, nil
}

func (s *GamificationService) Get(userID string) (*gamification.Progression, error) {
	user, err := findUser(s.UserRepo, userID)
	if err != nil {
		return nil, err
	}
	p := gamification.Compute(user.XP)
	return &p, nil
}

// TopUsers 优先读 Redis 排行榜，不可用或为空时回退到数据库
func (s *GamificationService) TopUsers(ctx context.Context) ([]LeaderboardItem, error) {
	if s.Leaderboard.Enabled() {
		entries, err := s.Leaderboard.Top(ctx, util.LeaderboardSize)
		if err != nil {
			logger.Log.Warn("Leaderboard cache unavailable, reading from database", zap.Error(err))
		} else if len(entries) > 0 {
			return s.fromCache(entries)
		}
	}

	users, err := s.UserRepo.FindTopByXP(util.LeaderboardSize)
	if err != nil {
		return nil, err
	}
	items := make([]LeaderboardItem, 0, len(users))
	for _, u := range users {
		items = append(items, LeaderboardItem{UserID: u.ID, FullName: u.FullName, XP: u.XP})
	}
	return items, nil
}

func (s *GamificationService) fromCache(entries []repository.LeaderboardEntry) ([]LeaderboardItem, error) {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.UserID
	}
	users, err := s.UserRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName
	}
	items := make([]LeaderboardItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, LeaderboardItem{UserID: e.UserID, FullName: names[e.UserID], XP: e.XP})
	}
	return items, nil
}

// SyncLeaderboard 启动时把数据库中的经验值写入 Redis 排行榜
func (s *GamificationService) SyncLeaderboard(ctx context.Context) error {
	if !s.Leaderboard.Enabled() {
		return nil
	}
	users, err := s.UserRepo.FindTopByXP(1000)
	if err != nil {
		return err
	}
	for _, u := range users {
		if err := s.Leaderboard.SetXP(ctx, u.ID, u.XP); err != nil {
			return err
		}
	}
	return nil
}

func (s *GamificationService) Badges() []string {
	return gamification.BadgeCatalog()
}
