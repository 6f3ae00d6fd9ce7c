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

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Clare-zewei/clickengineA-sub000/docs"
	"github.com/Clare-zewei/clickengineA-sub000/internal/cache"
	"github.com/Clare-zewei/clickengineA-sub000/internal/config"
	"github.com/Clare-zewei/clickengineA-sub000/internal/funnel"
	"github.com/Clare-zewei/clickengineA-sub000/internal/handler"
	"github.com/Clare-zewei/clickengineA-sub000/internal/logger"
	"github.com/Clare-zewei/clickengineA-sub000/internal/middleware"
	"github.com/Clare-zewei/clickengineA-sub000/internal/queue/sqs"
	"github.com/Clare-zewei/clickengineA-sub000/internal/repository"
	"github.com/Clare-zewei/clickengineA-sub000/internal/repository/clickhouse"
	"github.com/Clare-zewei/clickengineA-sub000/internal/repository/postgres"
	"github.com/Clare-zewei/clickengineA-sub000/internal/service"
	"github.com/Clare-zewei/clickengineA-sub000/internal/telemetry"
)

const shutdownTimeout = 15 * time.Second

// @title Funnel Template Analytics API
// @version 1.0
// @description Funnel template builder, calculator and performance tracking API
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	// A missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment, cfg.Service.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx := context.Background()

	// Initialize relational store
	db, err := postgres.Open(&cfg.Database, cfg.Service.Environment, log)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	if err := postgres.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	templateStore := postgres.NewTemplateStore(db, log)
	if cfg.Database.SeedDefaults {
		seeded, err := templateStore.SeedDefaults(ctx)
		if err != nil {
			log.Fatal("Failed to seed default templates", zap.Error(err))
		}
		log.Info("Default templates checked", zap.Int("seeded", seeded))
	}

	// Initialize ClickHouse client
	clickhouseClient, err := clickhouse.NewClient(ctx, &cfg.ClickHouse, log)
	if err != nil {
		log.Fatal("Failed to create ClickHouse client", zap.Error(err))
	}
	perfRepo := clickhouse.NewRepository(clickhouseClient, log)
	defer func() {
		if err := perfRepo.Close(); err != nil {
			log.Error("Failed to close ClickHouse client", zap.Error(err))
		}
	}()

	// Initialize SQS client
	sqsClient, err := sqs.NewClient(ctx, cfg.SQS, log)
	if err != nil {
		log.Fatal("Failed to create SQS client", zap.Error(err))
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := telemetry.New(registry)

	opts := []handler.Option{
		handler.WithMiddleware(
			middleware.RequestLogger(log, metrics),
			middleware.CORS(cfg.Service.AllowedOrigins),
		),
		handler.WithMetricsHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
		handler.WithHealthCheck("clickhouse", perfRepo.Ping),
		handler.WithHealthCheck("database", func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}),
	}

	// Redis is optional
	var store repository.TemplateStore = templateStore
	if cfg.Redis.URL != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis.URL, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis client", zap.Error(err))
			}
		}()

		backend := cache.NewRedisBackend(redisClient, log)
		store = cache.NewTemplateCache(templateStore, backend, time.Duration(cfg.Redis.TemplateCacheTTLSec)*time.Second, log)
		opts = append(opts,
			handler.WithWriteLimiter(middleware.RateLimiter(backend, cfg.Redis.RateLimitRequests, time.Duration(cfg.Redis.RateLimitWindowSec)*time.Second, log)),
			handler.WithHealthCheck("redis", backend.Ping),
		)
	} else {
		log.Info("Redis not configured, template cache and rate limiting disabled")
	}

	funnelOptions := funnel.Options{
		DropOffThreshold:      cfg.Funnel.DropOffThreshold,
		BaseCostPerStep:       cfg.Funnel.BaseCostPerStep,
		AvgRevenuePerCustomer: cfg.Funnel.AvgRevenuePerCustomer,
	}

	// Initialize services
	catalogService := service.NewCatalogService(postgres.NewEventRepository(db, log), log)
	services := handler.Services{
		Templates:   service.NewTemplateService(store, catalogService, funnelOptions, metrics, log),
		Performance: service.NewPerformanceService(store, sqsClient, perfRepo, funnelOptions, metrics, log),
		Keywords:    service.NewKeywordService(postgres.NewKeywordRepository(db, log), log),
		Catalog:     catalogService,
	}

	// Initialize handler
	h := handler.NewHandler(services, log, opts...)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("API server starting", zap.String("address", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start API server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down API server gracefully")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down API server", zap.Error(err))
	}
}
