package service

import (
	"context"
	"fmt"
	"mindcare_backend/internal/gamification"
	"mindcare_backend/internal/model"
	"mindcare_backend/internal/repository"
	"mindcare_backend/internal/sentiment"
	"mindcare_backend/internal/util"
	"mindcare_backend/pkg/logger"
	"mindcare_backend/pkg/monitoring"
	"strings"
	"time"

	"go.uber.org/zap"
)

type JournalService struct {
	Repo         *repository.JournalRepository
	UserRepo     *repository.UserRepository
	Gamification *GamificationService
	Sentiment    sentiment.Classifier
	Now          func() time.Time
}

func NewJournalService(
	repo *repository.JournalRepository,
	userRepo *repository.UserRepository,
	gamificationService *GamificationService,
	classifier sentiment.Classifier,
) *JournalService {
	return &JournalService{
		Repo:         repo,
		UserRepo:     userRepo,
		Gamification: gamificationService,
		Sentiment:    classifier,
		Now:          func() time.Time { return time.Now().UTC() },
	}
}

type MoodInput struct {
	MoodLevel int
	Note      string
}

type SleepInput struct {
	Hours   float64
	Quality int
	Note    string
}

// JournalSaveResult 保存日志后的返回内容
type JournalSaveResult struct {
	Message     string                    `json:"message"`
	Entry       interface{}               `json:"entry"`
	Streak      int                       `json:"streak"`
	Progression *gamification.Progression `json:"progression,omitempty"`
}

func (s *JournalService) SaveMood(ctx context.Context, userID string, in MoodInput) (*JournalSaveResult, error) {
	if in.MoodLevel < 1 || in.MoodLevel > 10 {
		return nil, fmt.Errorf("%w: mood_level must be between 1 and 10", util.ErrValidation)
	}
	user, err := findUser(s.UserRepo, userID)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	entry := &model.MoodEntry{
		UserID:    userID,
		Day:       util.DayOf(now),
		MoodLevel: in.MoodLevel,
		Note:      in.Note,
		Analysis:  s.analyze(ctx, in.Note),
	}
	entry.RecordedAt = now

	saved, err := s.Repo.UpsertMood(entry)
	if err != nil {
		return nil, fmt.Errorf("save mood entry: %w", err)
	}
	return s.finish(ctx, user, "mood", "خلق و خو با موفقیت ذخیره شد", saved, 0)
}

func (s *JournalService) SaveSleep(ctx context.Context, userID string, in SleepInput) (*JournalSaveResult, error) {
	if in.Hours < 0 || in.Hours > 24 {
		return nil, fmt.Errorf("%w: hours must be between 0 and 24", util.ErrValidation)
	}
	if in.Quality < 1 || in.Quality > 5 {
		return nil, fmt.Errorf("%w: quality must be between 1 and 5", util.ErrValidation)
	}
	user, err := findUser(s.UserRepo, userID)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	entry := &model.SleepEntry{
		UserID:  userID,
		Day:     util.DayOf(now),
		Hours:   in.Hours,
		Quality: in.Quality,
		Note:    in.Note,
	}
	entry.RecordedAt = now

	saved, err := s.Repo.UpsertSleep(entry)
	if err != nil {
		return nil, fmt.Errorf("save sleep entry: %w", err)
	}
	return s.finish(ctx, user, "sleep", "اطلاعات خواب ذخیره شد", saved, util.XPJournal)
}

func (s *JournalService) SaveReflection(ctx context.Context, userID, text string) (*JournalSaveResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", util.ErrValidation)
	}
	user, err := findUser(s.UserRepo, userID)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	entry := &model.ReflectionEntry{
		UserID:   userID,
		Day:      util.DayOf(now),
		Text:     text,
		Analysis: s.analyze(ctx, text),
	}
	entry.RecordedAt = now

	saved, err := s.Repo.UpsertReflection(entry)
	if err != nil {
		return nil, fmt.Errorf("save reflection: %w", err)
	}
	return s.finish(ctx, user, "reflection", "یادداشت روزانه ذخیره شد", saved, util.XPJournal)
}

func (s *JournalService) ListMood(userID string, limit int) ([]model.MoodEntry, error) {
	return s.Repo.ListMood(userID, journalLimit(limit))
}

func (s *JournalService) ListSleep(userID string, limit int) ([]model.SleepEntry, error) {
	return s.Repo.ListSleep(userID, journalLimit(limit))
}

func (s *JournalService) ListReflections(userID string, limit int) ([]model.ReflectionEntry, error) {
	return s.Repo.ListReflections(userID, journalLimit(limit))
}

// journalLimit 非正数或超过 30 时取 30
func journalLimit(n int) int {
	if n <= 0 || n > util.JournalHistoryLimit {
		return util.JournalHistoryLimit
	}
	return n
}

// finish 更新连续记录天数、计数并按需奖励经验值
func (s *JournalService) finish(ctx context.Context, user *model.User, kind, message string, entry interface{}, xp int) (*JournalSaveResult, error) {
	streak, err := s.touchStreak(user)
	if err != nil {
		return nil, err
	}
	monitoring.JournalEntries.WithLabelValues(kind).Inc()

	result := &JournalSaveResult{Message: message, Entry: entry, Streak: streak}
	if xp > 0 {
		p, err := s.Gamification.Award(ctx, user.ID, xp)
		if err != nil {
			return nil, fmt.Errorf("award xp: %w", err)
		}
		result.Progression = p
	}
	return result, nil
}

func (s *JournalService) touchStreak(user *model.User) (int, error) {
	now := s.Now()
	streak := gamification.Streak(user.LastJournalAt, user.JournalStreak, now)
	if err := s.UserRepo.UpdateStreak(user.ID, streak, now); err != nil {
		return 0, err
	}
	return streak, nil
}

// analyze 情感分析失败时记录日志并按中性处理
func (s *JournalService) analyze(ctx context.Context, text string) model.Sentiment {
	return analyzeOrNeutral(ctx, s.Sentiment, text)
}

func analyzeOrNeutral(ctx context.Context, c sentiment.Classifier, text string) model.Sentiment {
	if c == nil {
		return model.Sentiment{Label: sentiment.LabelNeutral}
	}
	res, err := c.Analyze(ctx, text)
	if err != nil {
		logger.Log.Warn("Sentiment analysis failed, using neutral", zap.Error(err))
		res = sentiment.Neutral()
	}
	return model.Sentiment{Label: res.Label, Score: res.Score}
}
