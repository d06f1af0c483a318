package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"twi_edu_backend/internal/config"
	"twi_edu_backend/internal/controller"
	"twi_edu_backend/internal/repository"
	"twi_edu_backend/internal/service"
	"twi_edu_backend/internal/util"
	"twi_edu_backend/pkg/configwatcher"
	"twi_edu_backend/pkg/database"
	"twi_edu_backend/pkg/logger"
	"twi_edu_backend/pkg/monitoring"
	"twi_edu_backend/pkg/security"
	"twi_edu_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	word        *repository.WordRepository
	wordOfDay   *repository.WordOfTheDayRepository
	question    *repository.QuizQuestionRepository
	quizHistory *repository.QuizHistoryRepository
	contact     *repository.ContactMessageRepository
	quizRuns    *repository.QuizRunStore
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	storage     *service.StorageService
	word        *service.WordService
	question    *service.QuestionService
	dashboard   *service.DashboardService
	quiz        *service.QuizService
	quizHistory *service.QuizHistoryService
	contact     *service.ContactService
}

type controllers struct {
	auth       *controller.AuthController
	dashboard  *controller.DashboardController
	dictionary *controller.DictionaryController
	quiz       *controller.QuizController
	admin      *controller.AdminController
	contact    *controller.ContactController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	runTTL := time.Duration(cfg.Quiz.RunTTLHours) * time.Hour
	return &repositories{
		user:        repository.NewUserRepository(db),
		word:        repository.NewWordRepository(db),
		wordOfDay:   repository.NewWordOfTheDayRepository(db),
		question:    repository.NewQuizQuestionRepository(db),
		quizHistory: repository.NewQuizHistoryRepository(db),
		contact:     repository.NewContactMessageRepository(db),
		quizRuns:    repository.NewQuizRunStore(rdb, runTTL),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.word = service.NewWordService(repos.word, s.storage)
	s.question = service.NewQuestionService(repos.question, s.storage)
	s.dashboard = service.NewDashboardService(repos.word, repos.wordOfDay)
	s.quizHistory = service.NewQuizHistoryService(repos.quizHistory)
	s.quiz = service.NewQuizService(repos.question, repos.quizRuns, s.quizHistory)
	s.contact = service.NewContactService(repos.contact, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		dashboard:  controller.NewDashboardController(s.dashboard),
		dictionary: controller.NewDictionaryController(s.word),
		quiz:       controller.NewQuizController(s.quiz, s.question, s.quizHistory),
		admin:      controller.NewAdminController(s.user, s.word, s.question, s.quizHistory, s.contact),
		contact:    controller.NewContactController(s.contact),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	migrate := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb, cfg)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("twi-learning-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 配置热加载
	go configwatcher.WatchConfig("configs/config.yaml", a.Config, func(cfg interface{}) {
		newCfg, ok := cfg.(*config.Config)
		if !ok {
			return
		}
		for _, callback := range a.configCallbacks {
			callback(newCfg)
		}
	})

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
