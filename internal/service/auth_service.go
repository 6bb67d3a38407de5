package service

import (
	"errors"
	"fmt"
	"mindcare_backend/internal/config"
	"mindcare_backend/internal/model"
	"mindcare_backend/internal/repository"
	"mindcare_backend/internal/util"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	FullName        string
	Age             int
	StudentLevel    string
	ConsentGiven    bool
}

// AuthResult 登录/注册成功后返回的令牌和用户信息
type AuthResult struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        *model.User `json:"user"`
}

func (s *AuthService) Register(in RegisterInput) (*AuthResult, error) {
	if !in.ConsentGiven {
		return nil, util.ErrConsentRequired
	}
	if in.Password != in.ConfirmPassword {
		return nil, util.ErrPasswordMismatch
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	exists, err := s.UserRepo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrEmailRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &model.User{
		Email:        email,
		Password:     string(hashedPassword),
		FullName:     in.FullName,
		Age:          in.Age,
		StudentLevel: in.StudentLevel,
		ConsentGiven: true,
		Role:         model.RoleUser,
		Level:        1,
		Badges:       []string{},
		Memory:       model.Memory{},
		LastLogin:    now,
		LastSeen:     now,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return s.issue(user)
}

func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	user, err := s.UserRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.UserRepo.UpdateLastLogin(user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = now
	return s.issue(user)
}

// CreateAdmin 命令行创建管理员，邮箱已存在时返回 ErrEmailRegistered
func (s *AuthService) CreateAdmin(email, password, fullName string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", util.ErrValidation)
	}
	exists, err := s.UserRepo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrEmailRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if fullName == "" {
		fullName = "Admin User"
	}
	now := time.Now().UTC()
	admin := &model.User{
		Email:        email,
		Password:     string(hashedPassword),
		FullName:     fullName,
		StudentLevel: "admin",
		ConsentGiven: true,
		Role:         model.RoleAdmin,
		Level:        1,
		Badges:       []string{},
		Memory:       model.Memory{},
		LastLogin:    now,
		LastSeen:     now,
	}
	if err := s.UserRepo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AuthService) issue(user *model.User) (*AuthResult, error) {
	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResult{AccessToken: token, TokenType: "bearer", User: user}, nil
}
