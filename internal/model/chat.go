package model

import "time"

// ChatTurn 一轮对话记录，只追加不修改
// swagger:model ChatTurn
type ChatTurn struct {
	UUIDBase
	UserID      string    `gorm:"index;type:varchar(36);not null" json:"userId"`
	UserMessage string    `gorm:"type:text" json:"userMessage"`
	BotResponse string    `gorm:"type:text" json:"botResponse"`
	Topic       string    `gorm:"size:30" json:"topic"`
	Analysis    Sentiment `gorm:"serializer:json" json:"analysis"`
	Timestamp   time.Time `gorm:"index" json:"timestamp"`
}

func (ChatTurn) TableName() string {
	return "chat_history"
}
