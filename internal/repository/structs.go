package repository

import (
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("not found")

// Order mirrors a row of the orders table. Items holds the jsonb line items
// as raw text.
type Order struct {
	ID              string    `db:"id"`
	CustomerName    string    `db:"customer_name"`
	CustomerPhone   string    `db:"customer_phone"`
	Items           string    `db:"items"`
	TotalPrice      string    `db:"total_price"`
	TransferSlipURI *string   `db:"transfer_slip_uri"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
}

type MerchItem struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Price     string    `db:"price"`
	Image     string    `db:"image"`
	CreatedAt time.Time `db:"created_at"`
}

type Hero struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Position  string    `db:"position"`
	Number    string    `db:"number"`
	Image     string    `db:"image"`
	CreatedAt time.Time `db:"created_at"`
}

type Setting struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

// Column is a single assignment of a partial update.
type Column struct {
	Name  string
	Value interface{}
}
