package repository

import (
	"mindcare_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) Create(submission *model.AssessmentSubmission) error {
	return r.DB.Create(submission).Error
}

// ListByUser 按完成时间倒序返回最近 limit 条
func (r *AssessmentRepository) ListByUser(userID string, limit int) ([]model.AssessmentSubmission, error) {
	var submissions []model.AssessmentSubmission
	err := r.DB.Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&submissions).Error
	return submissions, err
}

// ListAll 研究数据导出使用
func (r *AssessmentRepository) ListAll() ([]model.AssessmentSubmission, error) {
	var submissions []model.AssessmentSubmission
	err := r.DB.Order("completed_at ASC").Find(&submissions).Error
	return submissions, err
}

func (r *AssessmentRepository) CountByType() (map[model.AssessmentType]int64, error) {
	var rows []struct {
		AssessmentType model.AssessmentType
		Count          int64
	}
	err := r.DB.Model(&model.AssessmentSubmission{}).
		Select("assessment_type, COUNT(*) AS count").
		Group("assessment_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[model.AssessmentType]int64, len(rows))
	for _, row := range rows {
		counts[row.AssessmentType] = row.Count
	}
	return counts, nil
}
