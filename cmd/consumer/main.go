package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/invaderrssofficial-source/invaders.final/internal/config"
	"github.com/invaderrssofficial-source/invaders.final/internal/kafka"
	"github.com/invaderrssofficial-source/invaders.final/internal/logger"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(os.Getenv("INVADERS_CONFIG"))
	if err != nil {
		logger.New("info").Fatal("Failed to load config", zap.Error(err))
	}
	log := logger.New(cfg.Logging.Level)
	defer func() { _ = log.Sync() }()

	log.Info("Starting audit consumer",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.Kafka.Topic),
		zap.String("group", cfg.Kafka.GroupID),
	)

	if err := kafka.NewConsumer(cfg.Kafka, log.Named("consumer")).Run(ctx); err != nil {
		log.Error("Consumer stopped", zap.Error(err))
		os.Exit(1)
	}
	log.Info("Consumer stopped")
}
