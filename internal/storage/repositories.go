//go:generate mockgen -source ./repositories.go -destination=./mocks/repositories.go -package=mock_storage
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/invaderrssofficial-source/invaders.final/internal/db"
	"github.com/invaderrssofficial-source/invaders.final/internal/repository"
)

type OrderRepository interface {
	GetAll(ctx context.Context, limit int) ([]*repository.Order, error)
	Create(ctx context.Context, order *repository.Order) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type MerchRepository interface {
	GetAll(ctx context.Context, limit int) ([]*repository.MerchItem, error)
	Create(ctx context.Context, item *repository.MerchItem) error
	Update(ctx context.Context, id string, cols []repository.Column) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type HeroRepository interface {
	GetAll(ctx context.Context, limit int) ([]*repository.Hero, error)
	Create(ctx context.Context, hero *repository.Hero) error
	Update(ctx context.Context, id string, cols []repository.Column) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type SettingsRepository interface {
	Get(ctx context.Context, key string) (*repository.Setting, error)
	Upsert(ctx context.Context, key, value string) (string, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, username, password string) error
	ValidateUser(ctx context.Context, username, password string) (bool, error)
	Exists(ctx context.Context, username string) (bool, error)
}

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasksTx(ctx context.Context, tx db.Tx, limit, maxAttempts int, lease time.Duration) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, database db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}
