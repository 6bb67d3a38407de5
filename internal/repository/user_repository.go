package repository

import (
	"mindcare_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, "id = ?", id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// UpdateProgression 一次性写入重新计算后的经验、等级和徽章
func (r *UserRepository) UpdateProgression(userID string, xp, level int, badges []string) error {
	return r.DB.Model(&model.User{UUIDBase: model.UUIDBase{ID: userID}}).
		Select("xp", "level", "badges").
		Updates(&model.User{XP: xp, Level: level, Badges: badges}).
		Error
}

func (r *UserRepository) UpdateMemory(userID string, memory model.Memory) error {
	return r.DB.Model(&model.User{UUIDBase: model.UUIDBase{ID: userID}}).
		Select("memory").
		Updates(&model.User{Memory: memory}).
		Error
}

func (r *UserRepository) UpdateStreak(userID string, streak int, at time.Time) error {
	return r.DB.Model(&model.User{UUIDBase: model.UUIDBase{ID: userID}}).
		Select("journal_streak", "last_journal_at").
		Updates(&model.User{JournalStreak: streak, LastJournalAt: &at}).
		Error
}

func (r *UserRepository) UpdateLastLogin(userID string, at time.Time) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", at).
		Error
}

func (r *UserRepository) UpdateLastSeen(userID string, at time.Time) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", at).
		Error
}

func (r *UserRepository) FindTopByXP(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("xp DESC").Limit(limit).Find(&users).Error
	return users, err
}

// FindByIDs 按传入顺序返回用户，不存在的 ID 被跳过
func (r *UserRepository) FindByIDs(ids []string) ([]model.User, error) {
	if len(ids) == 0 {
		return []model.User{}, nil
	}
	var users []model.User
	if err := r.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	ordered := make([]model.User, 0, len(users))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			ordered = append(ordered, u)
		}
	}
	return ordered, nil
}
