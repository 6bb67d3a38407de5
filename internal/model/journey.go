package model

import "time"

// JourneyProgress 用户在习惯养成旅程中的进度
// swagger:model JourneyProgress
type JourneyProgress struct {
	UUIDBase
	UserID      string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_journey" json:"userId"`
	JourneyID   string    `gorm:"size:64;not null;uniqueIndex:idx_user_journey" json:"journeyId"`
	CurrentStep int       `gorm:"default:0" json:"currentStep"`
	StartedAt   time.Time `json:"startedAt"`
}

func (JourneyProgress) TableName() string {
	return "journey_progress"
}
