package repository

import (
	"mindcare_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JourneyRepository struct {
	DB *gorm.DB
}

func NewJourneyRepository(db *gorm.DB) *JourneyRepository {
	return &JourneyRepository{DB: db}
}

// Start 开始或重新开始一个旅程，进度归零
func (r *JourneyRepository) Start(userID, journeyID string, at time.Time) (*model.JourneyProgress, error) {
	progress := &model.JourneyProgress{
		UserID:    userID,
		JourneyID: journeyID,
		StartedAt: at,
	}
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "journey_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"current_step", "started_at", "updated_at"}),
	}).Create(progress).Error
	if err != nil {
		return nil, err
	}
	return r.Find(userID, journeyID)
}

func (r *JourneyRepository) Find(userID, journeyID string) (*model.JourneyProgress, error) {
	var progress model.JourneyProgress
	err := r.DB.Where("user_id = ? AND journey_id = ?", userID, journeyID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *JourneyRepository) UpdateStep(id string, step int) error {
	return r.DB.Model(&model.JourneyProgress{}).
		Where("id = ?", id).
		Update("current_step", step).
		Error
}

func (r *JourneyRepository) ListByUser(userID string) ([]model.JourneyProgress, error) {
	var list []model.JourneyProgress
	err := r.DB.Where("user_id = ?", userID).Order("started_at DESC").Find(&list).Error
	return list, err
}
