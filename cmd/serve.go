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

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	_ "github.com/msumanth960/epaper/docs"
	"github.com/msumanth960/epaper/internal/catalog"
	"github.com/msumanth960/epaper/internal/config"
	"github.com/msumanth960/epaper/internal/events"
	v1 "github.com/msumanth960/epaper/internal/handler/http/v1"
	"github.com/msumanth960/epaper/internal/repository"
	"github.com/msumanth960/epaper/internal/service"
	"github.com/msumanth960/epaper/pkg/postgres"
	redisclient "github.com/msumanth960/epaper/pkg/redis"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

// @title E-Paper Portal API
// @version 1.0
// @description Regional e-paper library, incident feed and citizen reporting API.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runServer(parent context.Context) error {
	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// Загрузка каталога
	cat, err := loadCatalog(cfg)
	if err != nil {
		log.Errorf("Failed to load catalog: %v", err)
		return err
	}
	log.WithFields(logrus.Fields{
		"regions":   len(cat.Regions()),
		"editions":  len(cat.Editions()),
		"incidents": len(cat.Incidents()),
	}).Info("Catalog loaded")

	// Инициализация репозиториев
	editionRepo, incidentRepo, closeStorage, err := newRepositories(ctx, cfg)
	if err != nil {
		log.Errorf("Failed to initialize storage: %v", err)
		return err
	}
	defer closeStorage()

	// Инициализация издателя событий
	publisher, closeEvents, err := newPublisher(ctx, cfg)
	if err != nil {
		log.Errorf("Failed to initialize event publisher: %v", err)
		return err
	}
	defer closeEvents()

	// Инициализация сервисов
	portalService := service.NewPortalService(cat, editionRepo, incidentRepo, publisher, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(portalService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	// Запуск сервера в горутине
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		log.Info("Received shutdown signal, shutting down server...")
	case err := <-serverErr:
		log.Errorf("Error starting HTTP server: %v", err)
		return err
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server gracefully stopped")
	return nil
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default()
	}
	return catalog.Load(cfg.CatalogPath)
}

// newRepositories выбирает хранилище отправок по STORAGE_DRIVER
func newRepositories(ctx context.Context, cfg *config.Config) (service.EditionRepository, service.IncidentRepository, func(), error) {
	if cfg.StorageDriver != config.StoragePostgres {
		log.Info("Using in-memory session storage")
		return repository.NewMemoryEditionRepository(), repository.NewMemoryIncidentRepository(), func() {}, nil
	}

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		return nil, nil, nil, err
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	log.Info("Successfully connected to PostgreSQL")

	return repository.NewEditionRepository(dbpool), repository.NewIncidentRepository(dbpool), dbpool.Close, nil
}

// newPublisher включает очередь Redis и воркер вебхуков, если задан REDIS_ADDR
func newPublisher(ctx context.Context, cfg *config.Config) (events.Publisher, func(), error) {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, submission events are only logged")
		return events.NewLogPublisher(log), func() {}, nil
	}

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Successfully connected to Redis")

	// Инициализация и запуск воркера вебхуков
	worker := events.NewWorker(redisClient, log, cfg)
	worker.Start(ctx)

	return events.NewRedisPublisher(redisClient), func() { redisClient.Close() }, nil
}
