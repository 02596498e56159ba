package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/storm-buster/jal-setu/internal/adapter/httpapi"
	kafkaadapter "github.com/storm-buster/jal-setu/internal/adapter/kafka"
	"github.com/storm-buster/jal-setu/internal/config"
	"github.com/storm-buster/jal-setu/internal/floodzone"
	"github.com/storm-buster/jal-setu/internal/observability"
	"github.com/storm-buster/jal-setu/internal/registry"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	rivers, err := registry.New()
	if err != nil {
		logger.Error("failed to load river registry", "error", err)
		os.Exit(1)
	}

	cache := floodzone.NewCache(cfg.CacheCapacity)

	// Audit-event publishing is feature-flagged via KAFKA_BROKERS / KAFKA_ENABLED.
	var publisher floodzone.EventPublisher
	var kafkaPublisher *kafkaadapter.Publisher
	if cfg.KafkaEnabled {
		kafkaPublisher = kafkaadapter.NewPublisher(cfg, logger)
		publisher = kafkaPublisher
		logger.Info("kafka event publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaEventsTopic)
	} else {
		logger.Info("kafka event publishing disabled")
	}

	svc := floodzone.NewService(rivers, cache, publisher, logger, metrics, clockwork.NewRealClock())
	srv := httpapi.NewServer(cfg.HTTPAddr, cfg.CORSOrigins, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
