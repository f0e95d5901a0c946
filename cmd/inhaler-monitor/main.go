package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inhaler-monitor/internal/cache"
	"inhaler-monitor/internal/config"
	"inhaler-monitor/internal/database"
	httpapi "inhaler-monitor/internal/http"
	"inhaler-monitor/internal/logger"
	"inhaler-monitor/internal/repository"
	"inhaler-monitor/internal/service"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting inhaler-monitor service")

	// 初始化数据库
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	// 初始化 Redis（可选：最新告警缓存）
	var notifier service.AlertNotifier
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		notifier = cache.NewAlertCache(cache.NewRedisKVStore(redisClient), log)
		log.Info("Alert cache enabled", zap.String("redis_addr", cfg.Redis.Addr))
	}

	// 创建 Repository
	usersRepo := repository.NewUsersRepository(db, log)
	sensorRepo := repository.NewSensorReadingsRepository(db, log)
	quizRepo := repository.NewQuizResponsesRepository(db, log)
	usageRepo := repository.NewInhalerUsageRepository(db, log)
	alertsRepo := repository.NewAlertsRepository(db, log)

	// 创建评分模型客户端
	scorer := service.NewScorerClient(
		cfg.Scorer.URL,
		time.Duration(cfg.Scorer.Timeout)*time.Second,
		log,
	)

	// 创建 Service
	profileService := service.NewProfileService(usersRepo, log)
	sensorService := service.NewSensorService(sensorRepo, log)
	quizService := service.NewQuizService(quizRepo, log)
	usageService := service.NewUsageService(usageRepo, log)
	riskService := service.NewRiskService(
		sensorRepo,
		quizRepo,
		alertsRepo,
		scorer,
		notifier,
		cfg.Scorer.AlertThreshold,
		log,
	)

	// 创建 Handler 并注册路由
	router := httpapi.NewRouter(log)
	router.RegisterRoutes(
		httpapi.NewProfileHandler(profileService, log),
		httpapi.NewSensorHandler(sensorService, log),
		httpapi.NewQuizHandler(quizService, log),
		httpapi.NewUsageHandler(usageService, log),
		httpapi.NewRiskHandler(riskService, log),
	)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// 启动服务（在 goroutine 中）
	errChan := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// 监听系统信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// 等待信号或错误
	select {
	case sig := <-sigChan:
		log.Info("Received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-errChan:
		log.Error("Server error", zap.Error(err))
	}

	// 优雅停机
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down server", zap.Error(err))
	}

	log.Info("Service stopped")
}
