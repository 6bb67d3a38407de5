package app

import (
	"mindcare_backend/docs"
	"mindcare_backend/internal/config"
	"mindcare_backend/internal/middleware"
	"mindcare_backend/internal/model"
	"mindcare_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg.JWT.Secret), middleware.ActivityMiddleware(s.user))
	{
		a.registerUserRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWT.Secret), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.GET("/export-data", c.assessment.ExportResearchData)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		public.GET("/assessments/:type/questions", c.assessment.GetQuestions)

		public.GET("/journeys", c.journey.ListJourneys)
		public.GET("/journeys/:id", c.journey.GetJourney)

		public.GET("/gamification/leaderboard", c.gamification.Leaderboard)
		public.GET("/gamification/badges", c.gamification.Badges)

		public.POST("/nlp/analyze", c.wellbeing.Analyze)
		public.GET("/nlp/models", c.wellbeing.Models)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.user.GetProfile)
	rg.GET("/memory", c.user.GetMemory)
	rg.PUT("/memory", c.user.UpdateMemory)

	// 测评
	rg.POST("/submit-dass21", c.assessment.SubmitDASS21)
	rg.POST("/submit-phq9", c.assessment.SubmitPHQ9)
	rg.GET("/assessments", c.assessment.ListAssessments)

	// 日志
	rg.POST("/mood-entry", c.journal.CreateMoodEntry)
	rg.GET("/mood-entries", c.journal.ListMoodEntries)
	rg.POST("/sleep-entry", c.journal.CreateSleepEntry)
	rg.GET("/sleep-entries", c.journal.ListSleepEntries)
	rg.POST("/daily-reflection", c.journal.CreateReflection)
	rg.GET("/daily-reflections", c.journal.ListReflections)

	rg.POST("/chat", c.chat.SendMessage)
	rg.GET("/chat/history", c.chat.GetHistory)

	rg.GET("/mental-health-plan", c.wellbeing.GetPlan)

	rg.GET("/gamification", c.gamification.GetProgression)
	rg.POST("/gamification/award", c.gamification.Award)

	rg.POST("/journeys/:id/start", c.journey.StartJourney)
	rg.GET("/journeys/:id/progress", c.journey.GetProgress)
	rg.POST("/journeys/:id/advance", c.journey.AdvanceJourney)
}
