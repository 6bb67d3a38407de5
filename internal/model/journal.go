package model

import "time"

// JournalEntry 日志类记录的公共字段；每个用户每个自然日一条，同日再次提交覆盖原记录
type JournalEntry struct {
	UUIDBase
	RecordedAt time.Time `gorm:"index" json:"date"`
}

// Sentiment 外部情感分析结果
type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// swagger:model MoodEntry
type MoodEntry struct {
	JournalEntry
	UserID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_mood_user_day" json:"userId"`
	Day       string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_mood_user_day" json:"day"`
	MoodLevel int       `json:"moodLevel"`
	Note      string    `gorm:"type:text" json:"note"`
	Analysis  Sentiment `gorm:"serializer:json" json:"analysis"`
}

func (MoodEntry) TableName() string {
	return "mood_entries"
}

// swagger:model SleepEntry
type SleepEntry struct {
	JournalEntry
	UserID  string  `gorm:"type:varchar(36);not null;uniqueIndex:idx_sleep_user_day" json:"userId"`
	Day     string  `gorm:"type:varchar(10);not null;uniqueIndex:idx_sleep_user_day" json:"day"`
	Hours   float64 `json:"hours"`
	Quality int     `json:"quality"`
	Note    string  `gorm:"type:text" json:"note"`
}

func (SleepEntry) TableName() string {
	return "sleep_entries"
}

// swagger:model ReflectionEntry
type ReflectionEntry struct {
	JournalEntry
	UserID   string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_reflection_user_day" json:"userId"`
	Day      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_reflection_user_day" json:"day"`
	Text     string    `gorm:"type:text" json:"text"`
	Analysis Sentiment `gorm:"serializer:json" json:"analysis"`
}

func (ReflectionEntry) TableName() string {
	return "daily_reflections"
}
