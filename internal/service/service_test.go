package service

import (
	"context"
	"errors"
	"mindcare_backend/internal/catalog"
	"mindcare_backend/internal/chatbot"
	"mindcare_backend/internal/config"
	"mindcare_backend/internal/model"
	"mindcare_backend/internal/repository"
	"mindcare_backend/internal/sentiment"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type fixture struct {
	db           *gorm.DB
	cfg          *config.Config
	userRepo     *repository.UserRepository
	auth         *AuthService
	gamification *GamificationService
	assessment   *AssessmentService
	journal      *JournalService
	chat         *ChatService
	user         *UserService
	journey      *JourneyService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&model.User{},
		&model.AssessmentSubmission{},
		&model.MoodEntry{},
		&model.SleepEntry{},
		&model.ReflectionEntry{},
		&model.ChatTurn{},
		&model.JourneyProgress{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.JWT.ExpireTime = 30 * time.Minute
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = t.TempDir()

	userRepo := repository.NewUserRepository(db)
	gam := NewGamificationService(userRepo, repository.NewLeaderboardRepository(nil))
	f := &fixture{
		db:           db,
		cfg:          cfg,
		userRepo:     userRepo,
		auth:         NewAuthService(userRepo, cfg),
		gamification: gam,
		assessment:   NewAssessmentService(repository.NewAssessmentRepository(db), gam, NewStorageService(cfg), cat),
		journal:      NewJournalService(repository.NewJournalRepository(db), userRepo, gam, sentiment.Noop{}),
		chat:         NewChatService(repository.NewChatRepository(db, nil), userRepo, chatbot.NewSeededResponder(7), sentiment.Noop{}),
		user:         NewUserService(userRepo),
		journey:      NewJourneyService(cat, repository.NewJourneyRepository(db)),
	}
	return f
}

func (f *fixture) register(t *testing.T, email string) *model.User {
	t.Helper()
	res, err := f.auth.Register(RegisterInput{
		Email:           email,
		Password:        "secret123",
		ConfirmPassword: "secret123",
		FullName:        "مریم",
		Age:             21,
		StudentLevel:    "bachelor",
		ConsentGiven:    true,
	})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return res.User
}

// clock 可控时钟
type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

type failingClassifier struct{}

func (failingClassifier) Analyze(context.Context, string) (sentiment.Result, error) {
	return sentiment.Result{}, errors.New("model loading")
}

func (failingClassifier) Models() []string { return []string{"broken"} }
