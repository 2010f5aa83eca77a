package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/invaderrssofficial-source/invaders.final/internal/config"
	"github.com/invaderrssofficial-source/invaders.final/internal/db"
	"github.com/invaderrssofficial-source/invaders.final/internal/metrics"
	"github.com/invaderrssofficial-source/invaders.final/internal/repository"
	"github.com/invaderrssofficial-source/invaders.final/internal/storage"
)

const releaseTimeout = 5 * time.Second

var errSendInterrupted = errors.New("send interrupted")

type PublisherConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
	// ClaimLease is how long a PROCESSING task may stay untouched before
	// another poll claims it again.
	ClaimLease time.Duration
}

func PublisherConfigFrom(cfg config.KafkaConfig) PublisherConfig {
	return PublisherConfig{
		PollInterval: cfg.PollInterval,
		BatchSize:    cfg.BatchSize,
		MaxAttempts:  cfg.MaxAttempts,
		ClaimLease:   cfg.ClaimLease,
	}
}

// Publisher moves outbox tasks to the producer. Tasks are claimed in one
// transaction and sent outside of it; a failed send is retried on a later
// poll until MaxAttempts is reached. Claimed tasks left unsent when ctx ends
// go back to CREATED, and claims older than ClaimLease are taken over.
type Publisher struct {
	db       db.DB
	repo     storage.OutboxTaskRepository
	producer Producer
	config   PublisherConfig
	logger   *zap.Logger
	timeNow  func() time.Time
}

func NewPublisher(database db.DB, repo storage.OutboxTaskRepository, producer Producer, cfg PublisherConfig, logger *zap.Logger) *Publisher {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.ClaimLease <= 0 {
		cfg.ClaimLease = time.Minute
	}
	return &Publisher{
		db:       database,
		repo:     repo,
		producer: producer,
		config:   cfg,
		logger:   logger,
		timeNow:  time.Now,
	}
}

// Run polls until ctx is cancelled and closes the producer on the way out.
func (p *Publisher) Run(ctx context.Context) error {
	defer func() {
		if err := p.producer.Close(); err != nil {
			p.logger.Error("Failed to close producer", zap.Error(err))
		}
	}()

	p.logger.Info("Starting outbox publisher",
		zap.Duration("poll_interval", p.config.PollInterval),
		zap.Int("batch_size", p.config.BatchSize),
	)

	ticker := time.NewTicker(p.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.processBatch(ctx); err != nil && ctx.Err() == nil {
				p.logger.Error("Outbox publisher failed to process batch", zap.Error(err))
			}
		case <-ctx.Done():
			p.logger.Info("Outbox publisher context cancelled, stopping")
			return nil
		}
	}
}

func (p *Publisher) processBatch(ctx context.Context) error {
	tasks, err := p.claimTasks(ctx)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return nil
	}

	p.logger.Debug("Outbox publisher fetched tasks", zap.Int("count", len(tasks)))

	for i, task := range tasks {
		if ctx.Err() != nil {
			p.releaseTasks(ctx, tasks[i:])
			return ctx.Err()
		}

		err := p.processSingleTask(ctx, task)
		if errors.Is(err, errSendInterrupted) {
			p.releaseTasks(ctx, tasks[i:])
			return ctx.Err()
		}
		if err != nil {
			p.logger.Error("Failed to process task", zap.Stringer("task", task.ID), zap.Error(err))
		}
	}

	return nil
}

// releaseTasks puts claimed but unsent tasks back to CREATED without
// counting an attempt. Failures are left to the claim lease.
func (p *Publisher) releaseTasks(ctx context.Context, tasks []*repository.OutboxTask) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	for _, task := range tasks {
		if err := p.repo.UpdateTaskStatus(ctx, p.db, task.ID, repository.TaskStatusCreated, task.Attempts, task.LastError, nil); err != nil {
			p.logger.Warn("Failed to release task, it will be reclaimed after the lease",
				zap.Stringer("task", task.ID),
				zap.Error(err),
			)
			continue
		}
		p.logger.Info("Released unsent task", zap.Stringer("task", task.ID))
	}
}

func (p *Publisher) claimTasks(ctx context.Context) ([]*repository.OutboxTask, error) {
	tx, err := p.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction for fetching tasks: %w", err)
	}

	tasks, err := p.repo.GetProcessableTasksTx(ctx, tx, p.config.BatchSize, p.config.MaxAttempts, p.config.ClaimLease)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, fmt.Errorf("failed to get processable tasks: %w", err)
	}

	for _, task := range tasks {
		err := p.repo.UpdateTaskStatusTx(ctx, tx, task.ID, repository.TaskStatusProcessing, task.Attempts, nil, nil)
		if err != nil {
			_ = tx.Rollback(ctx)
			return nil, fmt.Errorf("failed to mark task %s as PROCESSING: %w", task.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit claimed tasks: %w", err)
	}
	return tasks, nil
}

func (p *Publisher) processSingleTask(ctx context.Context, task *repository.OutboxTask) error {
	err := p.producer.SendMessage(ctx, task.Topic, []byte(task.ID.String()), task.Payload)
	if err != nil && ctx.Err() != nil {
		return fmt.Errorf("%w: %w", errSendInterrupted, err)
	}
	if err != nil {
		metrics.OutboxPublishedTotal.WithLabelValues("failed").Inc()
		attempts := task.Attempts + 1
		errMsg := err.Error()

		if attempts >= p.config.MaxAttempts {
			p.logger.Warn("Task reached max attempts, giving up",
				zap.Stringer("task", task.ID),
				zap.Int("attempts", attempts),
			)
		}

		if updateErr := p.repo.UpdateTaskStatus(ctx, p.db, task.ID, repository.TaskStatusFailed, attempts, &errMsg, nil); updateErr != nil {
			return fmt.Errorf("failed to update task status after send failure: %w", updateErr)
		}
		return err
	}

	metrics.OutboxPublishedTotal.WithLabelValues("sent").Inc()
	now := p.timeNow().UTC()
	if err := p.repo.UpdateTaskStatus(ctx, p.db, task.ID, repository.TaskStatusDone, task.Attempts, nil, &now); err != nil {
		return fmt.Errorf("failed to update task status after successful send: %w", err)
	}
	return nil
}
