package postgresql

import (
	"context"
	"fmt"

	"github.com/invaderrssofficial-source/invaders.final/internal/db"
	"github.com/invaderrssofficial-source/invaders.final/internal/repository"
	"github.com/invaderrssofficial-source/invaders.final/internal/storage"
)

type MerchRepo struct {
	db db.DB
}

func NewMerchRepo(db db.DB) storage.MerchRepository {
	return &MerchRepo{db: db}
}

func (r *MerchRepo) GetAll(ctx context.Context, limit int) ([]*repository.MerchItem, error) {
	query := `
        SELECT id, name, price, image, created_at
        FROM merch_items
        ORDER BY created_at ASC
        LIMIT $1
    `
	var items []*repository.MerchItem
	err := r.db.Select(ctx, &items, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get merch items: %w", err)
	}
	return items, nil
}

func (r *MerchRepo) Create(ctx context.Context, item *repository.MerchItem) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO merch_items (id, name, price, image, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `, item.ID, item.Name, item.Price, item.Image, item.CreatedAt)
	return err
}

func (r *MerchRepo) Update(ctx context.Context, id string, cols []repository.Column) error {
	if len(cols) == 0 {
		return nil
	}
	query, args := buildUpdate("merch_items", id, cols)
	_, err := r.db.Exec(ctx, query, args...)
	return err
}

func (r *MerchRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM merch_items WHERE id = $1", id)
	return err
}

func (r *MerchRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.ExecQueryRow(ctx, "SELECT COUNT(*) FROM merch_items").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count merch items: %w", err)
	}
	return count, nil
}
