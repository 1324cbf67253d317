package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"immo_backend/database"
	"immo_backend/internal/auth"
	"immo_backend/internal/cache"
	"immo_backend/internal/config"
	"immo_backend/internal/handlers"
	"immo_backend/internal/logger"
	"immo_backend/internal/metrics"
	"immo_backend/internal/middleware"
	"immo_backend/internal/notifier"
	"immo_backend/internal/ratelimit"
	"immo_backend/internal/repositories"
	"immo_backend/internal/routes"
	"immo_backend/internal/services"
	"immo_backend/internal/validator"
	"immo_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

// Dependencies - всё, что роутеру нужно снаружи. Тесты собирают его
// поверх memory.Store, Run - поверх GORM.
type Dependencies struct {
	Repos    *repositories.Container
	Notifier services.Notifier
	Unread   cache.UnreadCounter
	Tokens   *auth.TokenManager
	Metrics  *metrics.Metrics
	Ping     func(ctx context.Context) error
}

func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}
	logger.Info("Database connected")

	repos := repositories.NewGormContainer(gormDB)
	appMetrics := metrics.New()

	// 1. Кэш счетчиков и внешняя публикация - опциональны
	unread, redisClient := initUnreadCache(cfg)
	publisher := initPublisher(cfg)

	// 2. Очередь уведомлений
	dispatcher := notifier.NewDispatcher(notifier.DispatcherOptions{
		QueueSize:  cfg.Notifications.QueueSize,
		Workers:    cfg.Notifications.Workers,
		JobTimeout: time.Duration(cfg.Notifications.JobTimeout) * time.Second,
		Metrics:    appMetrics,
	})
	emitter := notifier.NewEmitter(notifier.EmitterDeps{
		Queue:         dispatcher,
		Properties:    repos.Properties,
		Notifications: repos.Notifications,
		Unread:        unread,
		Publisher:     publisher,
		Metrics:       appMetrics,
		AreaLimit:     cfg.Notifications.AreaFanoutLimit,
	})

	deps := Dependencies{
		Repos:    repos,
		Notifier: emitter,
		Unread:   unread,
		Tokens:   auth.NewTokenManager(cfg.JWT.Secret, cfg.JWTTTL()),
		Metrics:  appMetrics,
		Ping:     pingFunc(gormDB),
	}
	ginRouter, serviceContainer := SetupRouter(cfg, deps)

	// 3. Фоновая очистка прочитанных уведомлений
	cleanup := workers.NewNotificationCleanupWorker(
		serviceContainer.NotificationService,
		cfg.RetentionPeriod(),
		cfg.Notifications.CleanupSchedule,
	)
	if err := cleanup.Start(); err != nil {
		logger.Fatal("Failed to start cleanup worker", "error", err)
	}

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info(fmt.Sprintf("Server starting on %s", cfg.Address()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Сначала перестаем принимать запросы, потом дочищаем очередь уведомлений
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	cleanup.Stop(ctx)
	if err := dispatcher.Close(ctx); err != nil {
		logger.Warn("Notification queue not drained", "error", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Warn("Publisher close error", "error", err)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("Server stopped")
}

// SetupRouter собирает сервисы, хэндлеры и gin.Engine
func SetupRouter(cfg *config.Config, deps Dependencies) (*gin.Engine, *services.ServiceContainer) {
	// 1. Инициализируем сервисы
	serviceContainer := services.NewServiceContainer(services.ServiceDeps{
		Repos:             deps.Repos,
		Notifier:          deps.Notifier,
		Unread:            deps.Unread,
		NotificationLimit: cfg.Notifications.ListLimit,
	})

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(cfg, serviceContainer, deps.Ping)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg, deps.Metrics)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	var metricsHandler http.Handler
	if deps.Metrics != nil {
		metricsHandler = deps.Metrics.Handler()
	}
	routes.RegisterRoutes(ginRouter, appHandlers, middleware.AuthMiddleware(deps.Tokens), metricsHandler)

	return ginRouter, serviceContainer
}

func initializeHandlers(cfg *config.Config, svc *services.ServiceContainer, ping func(ctx context.Context) error) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())

	var sendLimit gin.HandlerFunc
	if limiter := ratelimit.NewPerMinute(cfg.RateLimit.MessagesPerMinute, cfg.RateLimit.Burst, 0); limiter != nil {
		sendLimit = middleware.RateLimitMiddleware(limiter)
	}

	return &handlers.AppHandlers{
		UserHandler:         handlers.NewUserHandler(baseHandler, svc.UserService),
		PropertyHandler:     handlers.NewPropertyHandler(baseHandler, svc.PropertyService),
		MessageHandler:      handlers.NewMessageHandler(baseHandler, svc.MessageService, sendLimit),
		FavoriteHandler:     handlers.NewFavoriteHandler(baseHandler, svc.FavoriteService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, svc.NotificationService),
		HealthHandler:       handlers.NewHealthHandler(ping),
	}
}

func initializeGinRouter(cfg *config.Config, m *metrics.Metrics) *gin.Engine {
	switch cfg.Server.Env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware(m))
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowOrigins))
	return router
}

func initUnreadCache(cfg *config.Config) (cache.UnreadCounter, *redis.Client) {
	if cfg.Redis.Addr == "" {
		logger.Info("Redis is not configured, unread counters are not cached")
		return cache.NoopUnreadCounter{}, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		// Без кэша сервис работает, просто чаще ходит в базу
		logger.Warn("Redis unavailable, unread cache disabled", "addr", cfg.Redis.Addr, "error", err)
		return cache.NoopUnreadCounter{}, nil
	}
	logger.Info("Redis connected", "addr", cfg.Redis.Addr)
	return cache.NewRedisUnreadCounter(client, time.Duration(cfg.Redis.TTL)*time.Second), client
}

func initPublisher(cfg *config.Config) notifier.Publisher {
	if len(cfg.Kafka.Brokers) == 0 {
		return notifier.NoopPublisher{}
	}
	logger.Info("Kafka publisher enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	return notifier.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
}

func pingFunc(db *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
