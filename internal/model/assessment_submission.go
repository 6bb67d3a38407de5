package model

import "time"

type AssessmentType string

const (
	AssessmentDASS21 AssessmentType = "DASS-21"
	AssessmentPHQ9   AssessmentType = "PHQ-9"
)

// AssessmentResult 评估结果快照，提交后不再修改
type AssessmentResult struct {
	DepressionScore *int     `json:"depression_score,omitempty"`
	AnxietyScore    *int     `json:"anxiety_score,omitempty"`
	StressScore     *int     `json:"stress_score,omitempty"`
	DepressionLevel string   `json:"depression_level,omitempty"`
	AnxietyLevel    string   `json:"anxiety_level,omitempty"`
	StressLevel     string   `json:"stress_level,omitempty"`
	TotalScore      *int     `json:"total_score,omitempty"`
	SeverityLevel   string   `json:"severity_level,omitempty"`
	Analysis        string   `json:"analysis"`
	Recommendations []string `json:"recommendations"`
}

// swagger:model AssessmentSubmission
type AssessmentSubmission struct {
	UUIDBase
	UserID         string           `gorm:"index;type:varchar(36);not null" json:"userId"`
	AssessmentType AssessmentType   `gorm:"size:20;index;not null" json:"assessmentType"`
	Responses      map[string]int   `gorm:"serializer:json" json:"responses"`
	Result         AssessmentResult `gorm:"serializer:json" json:"results"`
	CompletedAt    time.Time        `gorm:"index" json:"completedAt"`
}

func (AssessmentSubmission) TableName() string {
	return "assessment_submissions"
}
