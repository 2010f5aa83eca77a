package postgresql

import (
	"context"
	"fmt"

	"github.com/invaderrssofficial-source/invaders.final/internal/db"
	"github.com/invaderrssofficial-source/invaders.final/internal/repository"
	"github.com/invaderrssofficial-source/invaders.final/internal/storage"
)

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) storage.OrderRepository {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) GetAll(ctx context.Context, limit int) ([]*repository.Order, error) {
	query := `
        SELECT id, customer_name, customer_phone, items, total_price, transfer_slip_uri, status, created_at
        FROM orders
        ORDER BY created_at DESC
        LIMIT $1
    `
	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepo) Create(ctx context.Context, order *repository.Order) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO orders (
            id, customer_name, customer_phone, items, total_price, transfer_slip_uri, status, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, order.ID, order.CustomerName, order.CustomerPhone, order.Items, order.TotalPrice, order.TransferSlipURI, order.Status, order.CreatedAt)
	return err
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.db.Exec(ctx, "UPDATE orders SET status = $1 WHERE id = $2", status, id)
	return err
}

func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	return err
}
