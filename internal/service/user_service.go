package service

import (
	"errors"
	"mindcare_backend/internal/model"
	"mindcare_backend/internal/repository"
	"mindcare_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

// findUser 读取当前用户，令牌有效但用户已删除时返回 ErrUserNotFound
func findUser(repo *repository.UserRepository, userID string) (*model.User, error) {
	user, err := repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Profile(userID string) (*model.User, error) {
	user, err := findUser(s.UserRepo, userID)
	if err != nil {
		return nil, err
	}
	if user.Memory == nil {
		user.Memory = model.Memory{}
	}
	if user.Badges == nil {
		user.Badges = []string{}
	}
	return user, nil
}

func (s *UserService) GetMemory(userID string) (model.Memory, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}
	return user.Memory, nil
}

// UpdateMemory 浅合并：patch 中的键覆盖原值，其余键保留
func (s *UserService) UpdateMemory(userID string, patch map[string]interface{}) (model.Memory, error) {
	memory, err := s.GetMemory(userID)
	if err != nil {
		return nil, err
	}
	for k, v := range patch {
		memory[k] = v
	}
	if err := s.UserRepo.UpdateMemory(userID, memory); err != nil {
		return nil, err
	}
	return memory, nil
}

func (s *UserService) UpdateLastSeen(userID string) error {
	return s.UserRepo.UpdateLastSeen(userID, time.Now().UTC())
}
