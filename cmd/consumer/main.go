package main

import (
	"context"
	"encoding/json"
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

	"github.com/Clare-zewei/clickengineA-sub000/internal/config"
	"github.com/Clare-zewei/clickengineA-sub000/internal/consumer"
	"github.com/Clare-zewei/clickengineA-sub000/internal/logger"
	"github.com/Clare-zewei/clickengineA-sub000/internal/queue/sqs"
	"github.com/Clare-zewei/clickengineA-sub000/internal/repository/clickhouse"
	"github.com/Clare-zewei/clickengineA-sub000/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Service.Environment, cfg.Service.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("Snapshot consumer stopped", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Starting snapshot consumer", zap.String("environment", cfg.Service.Environment))

	chClient, err := clickhouse.NewClient(ctx, &cfg.ClickHouse, log)
	if err != nil {
		return err
	}
	repo := clickhouse.NewRepository(chClient, log)
	defer func() { _ = repo.Close() }()

	if err := repo.InitSchema(ctx); err != nil {
		return err
	}

	sqsClient, err := sqs.NewClient(ctx, cfg.SQS, log)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := telemetry.New(registry)

	opsServer := &http.Server{
		Addr:              ":" + cfg.Consumer.HealthCheckPort,
		Handler:           opsMux(repo.Ping, registry, log),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("Ops server listening", zap.String("address", opsServer.Addr))
		if err := opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Ops server failed", zap.Error(err))
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := opsServer.Shutdown(shutdownCtx); err != nil {
			log.Error("Failed to shut down ops server", zap.Error(err))
		}
	}()

	pipeline := consumer.NewConsumer(cfg, sqsClient, repo, metrics, log)
	if err := pipeline.Start(ctx); err != nil {
		return fmt.Errorf("consumer pipeline failed: %w", err)
	}

	log.Info("Snapshot consumer drained")
	return nil
}

// opsMux serves /health against the snapshot store and /metrics from registry
func opsMux(ping func(context.Context) error, registry *prometheus.Registry, log *zap.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		status, body := http.StatusOK, map[string]string{"status": "ok"}
		if err := ping(r.Context()); err != nil {
			log.Warn("Health check failed", zap.Error(err))
			status, body = http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "clickhouse": err.Error()}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	})
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return mux
}
