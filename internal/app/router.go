package app

import (
	"twi_edu_backend/docs"
	"twi_edu_backend/internal/config"
	"twi_edu_backend/internal/middleware"
	"twi_edu_backend/internal/model"
	"twi_edu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要登录的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerUserRoutes(authGroup, c)
	}

	// 3. 管理员路由
	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.POST("/contact", c.contact.SendMessage)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.GET("/dashboard", c.dashboard.GetDashboard)

	// 词典
	rg.GET("/dictionary/words", c.dictionary.GetWords)
	rg.GET("/dictionary/words/:id", c.dictionary.GetWordDetail)

	// 测验
	rg.GET("/quiz/topics", c.quiz.GetTopics)
	rg.POST("/quiz/:category/start", c.quiz.StartQuiz)
	rg.GET("/quiz/current", c.quiz.GetCurrentQuestion)
	rg.POST("/quiz/answer", c.quiz.SubmitAnswer)
	rg.POST("/quiz/abandon", c.quiz.AbandonQuiz)
	rg.GET("/quiz/history", c.quiz.GetMyHistory)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(cfg),
		middleware.RoleMiddleware(model.RoleAdmin),
		middleware.ActivityMiddleware(repos.user),
	)
	{
		admin.GET("/dashboard", c.admin.GetDashboard)

		// 用户管理
		admin.PATCH("/users/:id/role", c.admin.ToggleUserRole)
		admin.DELETE("/users/:id", c.admin.DeleteUser)

		// 词条管理
		admin.POST("/words", c.admin.CreateWord)
		admin.PUT("/words/:id", c.admin.UpdateWord)
		admin.DELETE("/words/:id", c.admin.DeleteWord)
		admin.POST("/words/:id/audio", c.admin.UploadWordAudio)

		// 题库管理
		admin.GET("/quiz/questions", c.admin.ListQuestions)
		admin.POST("/quiz/questions", c.admin.CreateQuestion)
		admin.DELETE("/quiz/questions/:id", c.admin.DeleteQuestion)
		admin.POST("/quiz/questions/:id/audio", c.admin.UploadQuestionAudio)

		// 留言收件箱
		admin.GET("/messages", c.contact.ListMessages)
		admin.PATCH("/messages/:id/read", c.contact.MarkMessageRead)
		admin.GET("/messages/unread-count", c.contact.GetUnreadCount)
	}
}
