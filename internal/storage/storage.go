package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/invaderrssofficial-source/invaders.final/internal/db"
	"github.com/invaderrssofficial-source/invaders.final/internal/metrics"
	"github.com/invaderrssofficial-source/invaders.final/internal/repository"
)

const (
	orderPageSize   = 100
	catalogPageSize = 1000
)

// Storage applies the read and write policies on top of the repositories:
// reads never fail and degrade to empty or default values, writes always
// report the store's error.
type Storage struct {
	db           db.DB
	orderRepo    OrderRepository
	merchRepo    MerchRepository
	heroRepo     HeroRepository
	settingsRepo SettingsRepository
	outboxRepo   OutboxTaskRepository
	logger       *zap.Logger

	timeNow func() time.Time
	newID   func() string
}

func NewStorage(
	database db.DB,
	orderRepo OrderRepository,
	merchRepo MerchRepository,
	heroRepo HeroRepository,
	settingsRepo SettingsRepository,
	outboxRepo OutboxTaskRepository,
	logger *zap.Logger,
) *Storage {
	return &Storage{
		db:           database,
		orderRepo:    orderRepo,
		merchRepo:    merchRepo,
		heroRepo:     heroRepo,
		settingsRepo: settingsRepo,
		outboxRepo:   outboxRepo,
		logger:       logger,
		timeNow:      time.Now,
		newID:        func() string { return uuid.New().String() },
	}
}

func (s *Storage) readFallback(entity string, err error) {
	metrics.ReadFallbackTotal.WithLabelValues(entity).Inc()
	s.logger.Warn("store read failed, serving fallback",
		zap.String("entity", entity),
		zap.Error(err),
	)
}

func (s *Storage) ListOrders(ctx context.Context) []Order {
	rows, err := s.orderRepo.GetAll(ctx, orderPageSize)
	if err != nil {
		s.readFallback("orders", err)
		return []Order{}
	}

	orders := make([]Order, 0, len(rows))
	for _, row := range rows {
		order, err := orderFromRow(row)
		if err != nil {
			s.logger.Warn("order items unreadable", zap.String("order_id", row.ID), zap.Error(err))
		}
		orders = append(orders, order)
	}
	return orders
}

func (s *Storage) CreateOrder(ctx context.Context, in NewOrder) (*Order, error) {
	row, err := orderToRow(s.newID(), in, s.timeNow().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, row); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_order").Inc()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	metrics.OrdersCreatedTotal.Inc()

	order, err := orderFromRow(row)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Storage) UpdateOrderStatus(ctx context.Context, id string, status Status) error {
	if err := s.orderRepo.UpdateStatus(ctx, id, string(status)); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_order_status").Inc()
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

func (s *Storage) DeleteOrder(ctx context.Context, id string) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("delete_order").Inc()
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func (s *Storage) ListMerch(ctx context.Context) []MerchItem {
	rows, err := s.merchRepo.GetAll(ctx, catalogPageSize)
	if err != nil {
		s.readFallback("merch", err)
		return []MerchItem{}
	}

	items := make([]MerchItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, merchFromRow(row))
	}
	return items
}

func (s *Storage) CreateMerch(ctx context.Context, in NewMerchItem) (*MerchItem, error) {
	row := merchToRow(s.newID(), in, s.timeNow().UTC())
	if err := s.merchRepo.Create(ctx, row); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_merch").Inc()
		return nil, fmt.Errorf("failed to create merch item: %w", err)
	}
	item := merchFromRow(row)
	return &item, nil
}

func (s *Storage) UpdateMerch(ctx context.Context, id string, patch MerchPatch) error {
	if err := s.merchRepo.Update(ctx, id, merchPatchColumns(patch)); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_merch").Inc()
		return fmt.Errorf("failed to update merch item: %w", err)
	}
	return nil
}

func (s *Storage) DeleteMerch(ctx context.Context, id string) error {
	if err := s.merchRepo.Delete(ctx, id); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("delete_merch").Inc()
		return fmt.Errorf("failed to delete merch item: %w", err)
	}
	return nil
}

func (s *Storage) ListHeroes(ctx context.Context) []Hero {
	rows, err := s.heroRepo.GetAll(ctx, catalogPageSize)
	if err != nil {
		s.readFallback("heroes", err)
		return []Hero{}
	}

	heroes := make([]Hero, 0, len(rows))
	for _, row := range rows {
		heroes = append(heroes, heroFromRow(row))
	}
	return heroes
}

func (s *Storage) CreateHero(ctx context.Context, in NewHero) (*Hero, error) {
	row := heroToRow(s.newID(), in, s.timeNow().UTC())
	if err := s.heroRepo.Create(ctx, row); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_hero").Inc()
		return nil, fmt.Errorf("failed to create hero: %w", err)
	}
	hero := heroFromRow(row)
	return &hero, nil
}

func (s *Storage) UpdateHero(ctx context.Context, id string, patch HeroPatch) error {
	if err := s.heroRepo.Update(ctx, id, heroPatchColumns(patch)); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_hero").Inc()
		return fmt.Errorf("failed to update hero: %w", err)
	}
	return nil
}

func (s *Storage) DeleteHero(ctx context.Context, id string) error {
	if err := s.heroRepo.Delete(ctx, id); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("delete_hero").Inc()
		return fmt.Errorf("failed to delete hero: %w", err)
	}
	return nil
}

// GetBankInfo returns the stored bank details or DefaultBankInfo.
func (s *Storage) GetBankInfo(ctx context.Context) BankInfo {
	setting, err := s.settingsRepo.Get(ctx, BankInfoKey)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			s.logger.Debug("no bank info stored, serving defaults")
		} else {
			s.readFallback("settings", err)
		}
		return DefaultBankInfo()
	}

	info, err := bankInfoFromValue(setting.Value)
	if err != nil {
		s.readFallback("settings", err)
		return DefaultBankInfo()
	}
	return info
}

func (s *Storage) UpdateBankInfo(ctx context.Context, info BankInfo) (BankInfo, error) {
	value, err := bankInfoToValue(info)
	if err != nil {
		return BankInfo{}, err
	}

	stored, err := s.settingsRepo.Upsert(ctx, BankInfoKey, value)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_settings").Inc()
		return BankInfo{}, fmt.Errorf("failed to update settings: %w", err)
	}

	saved, err := bankInfoFromValue(stored)
	if err != nil {
		return info, nil
	}
	return saved, nil
}

type SeedResult struct {
	Merch    int
	Heroes   int
	BankInfo bool
}

// SeedCatalog fills empty catalog tables with the default merch and roster
// and stores the default bank details when none exist.
func (s *Storage) SeedCatalog(ctx context.Context) (SeedResult, error) {
	var res SeedResult
	now := s.timeNow().UTC()

	n, err := s.merchRepo.Count(ctx)
	if err != nil {
		return res, err
	}
	if n == 0 {
		for i, item := range DefaultMerch() {
			row := merchToRow(s.newID(), item, now.Add(time.Duration(i)*time.Millisecond))
			if err := s.merchRepo.Create(ctx, row); err != nil {
				return res, fmt.Errorf("failed to seed merch item %q: %w", item.Name, err)
			}
			res.Merch++
		}
	}

	n, err = s.heroRepo.Count(ctx)
	if err != nil {
		return res, err
	}
	if n == 0 {
		for i, hero := range DefaultHeroes() {
			row := heroToRow(s.newID(), hero, now.Add(time.Duration(i)*time.Millisecond))
			if err := s.heroRepo.Create(ctx, row); err != nil {
				return res, fmt.Errorf("failed to seed hero %q: %w", hero.Name, err)
			}
			res.Heroes++
		}
	}

	_, err = s.settingsRepo.Get(ctx, BankInfoKey)
	switch {
	case errors.Is(err, repository.ErrObjectNotFound):
		if _, err := s.UpdateBankInfo(ctx, DefaultBankInfo()); err != nil {
			return res, err
		}
		res.BankInfo = true
	case err != nil:
		return res, fmt.Errorf("failed to read settings: %w", err)
	}

	return res, nil
}

// WriteAuditBatch stores a batch of audit payloads as outbox tasks in a
// single transaction.
func (s *Storage) WriteAuditBatch(ctx context.Context, topic string, entries []repository.AuditLogPayload) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin audit transaction: %w", err)
	}

	for _, entry := range entries {
		payload, err := json.Marshal(entry)
		if err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("failed to encode audit entry: %w", err)
		}
		task := &repository.OutboxTask{Payload: payload, Topic: topic}
		if err := s.outboxRepo.CreateTx(ctx, tx, task); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("failed to store audit entry: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit audit batch: %w", err)
	}
	return nil
}
