package repository

import (
	"mindcare_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JournalRepository 心情、睡眠、每日反思三类日志。每个用户每天只保留一条，
// 同一天再次提交时在同一条语句内覆盖（last write wins）。
type JournalRepository struct {
	DB *gorm.DB
}

func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{DB: db}
}

var (
	moodColumns       = []string{"mood_level", "note", "analysis", "recorded_at", "updated_at"}
	sleepColumns      = []string{"hours", "quality", "note", "recorded_at", "updated_at"}
	reflectionColumns = []string{"text", "analysis", "recorded_at", "updated_at"}
)

func upsertDaily[T any](db *gorm.DB, entry *T, columns []string, userID, day string) (*T, error) {
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(entry).Error
	if err != nil {
		return nil, err
	}

	// 冲突时插入语句里生成的 ID 不会落库，重新读取当天的记录
	var stored T
	if err := db.Where("user_id = ? AND day = ?", userID, day).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func listRecent[T any](db *gorm.DB, userID string, limit int) ([]T, error) {
	var entries []T
	err := db.Where("user_id = ?", userID).
		Order("day DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *JournalRepository) UpsertMood(entry *model.MoodEntry) (*model.MoodEntry, error) {
	return upsertDaily(r.DB, entry, moodColumns, entry.UserID, entry.Day)
}

func (r *JournalRepository) UpsertSleep(entry *model.SleepEntry) (*model.SleepEntry, error) {
	return upsertDaily(r.DB, entry, sleepColumns, entry.UserID, entry.Day)
}

func (r *JournalRepository) UpsertReflection(entry *model.ReflectionEntry) (*model.ReflectionEntry, error) {
	return upsertDaily(r.DB, entry, reflectionColumns, entry.UserID, entry.Day)
}

func (r *JournalRepository) ListMood(userID string, limit int) ([]model.MoodEntry, error) {
	return listRecent[model.MoodEntry](r.DB, userID, limit)
}

func (r *JournalRepository) ListSleep(userID string, limit int) ([]model.SleepEntry, error) {
	return listRecent[model.SleepEntry](r.DB, userID, limit)
}

func (r *JournalRepository) ListReflections(userID string, limit int) ([]model.ReflectionEntry, error) {
	return listRecent[model.ReflectionEntry](r.DB, userID, limit)
}
