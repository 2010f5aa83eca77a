package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/invaderrssofficial-source/invaders.final/internal/config"
	"github.com/invaderrssofficial-source/invaders.final/internal/repository"
)

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// Consumer reads audit entries from the topic and writes them to the log.
type Consumer struct {
	reader     messageReader
	logger     *zap.Logger
	retryDelay time.Duration
}

func NewConsumer(cfg config.KafkaConfig, logger *zap.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		Topic:          cfg.Topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	return &Consumer{reader: reader, logger: logger, retryDelay: 5 * time.Second}
}

// Run blocks until ctx is cancelled. Read errors are logged and retried.
func (c *Consumer) Run(ctx context.Context) error {
	defer func() {
		if err := c.reader.Close(); err != nil {
			c.logger.Error("Error closing Kafka reader", zap.Error(err))
		}
	}()

	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("Context cancelled, exiting message loop")
				return nil
			}
			c.logger.Error("Error reading message", zap.Error(err))
			select {
			case <-time.After(c.retryDelay):
				continue
			case <-ctx.Done():
				return nil
			}
		}

		c.handle(m)
	}
}

func (c *Consumer) handle(m kafka.Message) {
	fields := []zap.Field{
		zap.Time("timestamp", m.Time),
		zap.Int("partition", m.Partition),
		zap.Int64("offset", m.Offset),
		zap.ByteString("key", m.Key),
	}

	var entry repository.AuditLogPayload
	if err := json.Unmarshal(m.Value, &entry); err != nil {
		c.logger.Warn("undecodable audit message", append(fields, zap.ByteString("value", m.Value), zap.Error(err))...)
		return
	}

	c.logger.Info("audit",
		append(fields,
			zap.String("procedure", entry.Procedure),
			zap.String("request_id", entry.RequestID),
			zap.String("user_id", entry.UserID),
			zap.String("entity_id", entry.EntityID),
			zap.String("outcome", entry.Outcome),
			zap.String("error", entry.Error),
			zap.Int64("duration_ms", entry.DurationMS),
		)...,
	)
}
