package model

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Memory 用户自定义偏好（昵称等），以 JSON 形式存储
type Memory map[string]interface{}

// swagger:model User
type User struct {
	UUIDBase
	Email         string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password      string     `gorm:"size:100;not null" json:"-"`
	FullName      string     `gorm:"size:100;not null" json:"fullName"`
	Age           int        `json:"age"`
	StudentLevel  string     `gorm:"size:50" json:"studentLevel"`
	ConsentGiven  bool       `gorm:"default:false" json:"consentGiven"`
	Role          UserRole   `gorm:"size:20;default:'user'" json:"role"`
	XP            int        `gorm:"default:0" json:"xp"`
	Level         int        `gorm:"default:1" json:"level"`
	Badges        []string   `gorm:"serializer:json" json:"badges"`
	Memory        Memory     `gorm:"serializer:json" json:"memory"`
	JournalStreak int        `gorm:"default:0" json:"journalStreak"`
	LastJournalAt *time.Time `json:"lastJournalAt,omitempty"`
	LastLogin     time.Time  `json:"lastLogin"`
	LastSeen      time.Time  `json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
