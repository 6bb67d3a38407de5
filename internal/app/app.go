package app

import (
	"context"
	"errors"
	"fmt"
	"mindcare_backend/internal/catalog"
	"mindcare_backend/internal/chatbot"
	"mindcare_backend/internal/config"
	"mindcare_backend/internal/controller"
	"mindcare_backend/internal/middleware"
	"mindcare_backend/internal/repository"
	"mindcare_backend/internal/sentiment"
	"mindcare_backend/internal/service"
	"mindcare_backend/pkg/database"
	"mindcare_backend/pkg/logger"
	"mindcare_backend/pkg/monitoring"
	"mindcare_backend/pkg/security"
	"mindcare_backend/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	cors            *security.CORSPolicy
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	assessment  *repository.AssessmentRepository
	journal     *repository.JournalRepository
	journey     *repository.JourneyRepository
	chat        *repository.ChatRepository
	leaderboard *repository.LeaderboardRepository
}

type services struct {
	auth         *service.AuthService
	storage      *service.StorageService
	gamification *service.GamificationService
	assessment   *service.AssessmentService
	journal      *service.JournalService
	chat         *service.ChatService
	user         *service.UserService
	journey      *service.JourneyService
	wellbeing    *service.WellbeingService
	nlp          *service.NLPService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	assessment   *controller.AssessmentController
	journal      *controller.JournalController
	chat         *controller.ChatController
	gamification *controller.GamificationController
	journey      *controller.JourneyController
	wellbeing    *controller.WellbeingController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新，只刷新可在运行时变化的部分
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		assessment:  repository.NewAssessmentRepository(db),
		journal:     repository.NewJournalRepository(db),
		journey:     repository.NewJourneyRepository(db),
		chat:        repository.NewChatRepository(db, rdb),
		leaderboard: repository.NewLeaderboardRepository(rdb),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) (*services, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	classifier, err := sentiment.New(cfg.Sentiment)
	if err != nil {
		return nil, fmt.Errorf("init sentiment: %w", err)
	}

	s := &services{}
	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.gamification = service.NewGamificationService(repos.user, repos.leaderboard)
	s.assessment = service.NewAssessmentService(repos.assessment, s.gamification, s.storage, cat)
	s.journal = service.NewJournalService(repos.journal, repos.user, s.gamification, classifier)
	s.chat = service.NewChatService(repos.chat, repos.user, chatbot.NewSeededResponder(cfg.Chat.Seed), classifier)
	s.user = service.NewUserService(repos.user)
	s.journey = service.NewJourneyService(cat, repos.journey)
	s.wellbeing = service.NewWellbeingService(cat)
	s.nlp = service.NewNLPService(classifier)
	return s, nil
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user),
		assessment:   controller.NewAssessmentController(s.assessment),
		journal:      controller.NewJournalController(s.journal),
		chat:         controller.NewChatController(s.chat),
		gamification: controller.NewGamificationController(s.gamification),
		journey:      controller.NewJourneyController(s.journey),
		wellbeing:    controller.NewWellbeingController(s.wellbeing, s.nlp),
		health:       controller.NewHealthController(a.DB, a.Redis),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(monitoring.MetricsMiddleware())
	router.Use(middleware.RequestLogger(logger.Log))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	a.cors = security.NewCORSPolicy(cfg.CORS.AllowedOrigins)
	router.Use(a.cors.Handler())
	router.Use(security.Secure(cfg.Server.Mode == "debug"))
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	a.RegisterConfigCallback(func(c *config.Config) {
		a.cors.SetOrigins(c.CORS.AllowedOrigins)
	})
}

// NewApp 连接数据库与缓存并组装路由
func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
	}

	// Redis 不可用时排行榜和聊天记录回退到数据库
	rdb := database.InitOptionalRedis(&cfg.Redis)

	app, err := New(cfg, db, rdb)
	if err != nil {
		return nil, err
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, fmt.Errorf("initialize tracing: %w", err)
		}
		app.tracer = tp
	}

	app.RegisterConfigCallback(logger.ApplyConfig)

	if err := app.services.gamification.SyncLeaderboard(context.Background()); err != nil {
		logger.Log.Warn("leaderboard sync failed", zap.Error(err))
	}

	return app, nil
}

// New 基于已打开的存储组装应用，rdb 可以为 nil
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*App, error) {
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	s, err := app.initServices(repos, cfg)
	if err != nil {
		return nil, err
	}
	app.services = s
	c := app.initControllers(s)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, c, s, cfg)

	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	case <-ctx.Done():
	}
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
	return nil
}
