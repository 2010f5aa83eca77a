package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invaderrssofficial-source/invaders.final/internal/repository"
)

const currencyPrefix = "MVR"

var ErrInvalidPrice = errors.New("price must be a decimal amount, optionally prefixed with MVR")

// NormalizePrice turns "MVR 1,250" or "1250" into "1250.00".
func NormalizePrice(s string) (string, error) {
	v := strings.TrimSpace(s)
	if len(v) >= len(currencyPrefix) && strings.EqualFold(v[:len(currencyPrefix)], currencyPrefix) {
		v = strings.TrimSpace(v[len(currencyPrefix):])
	}
	v = strings.ReplaceAll(v, ",", "")

	d, err := decimal.NewFromString(v)
	if err != nil || d.IsNegative() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	return d.StringFixed(2), nil
}

func orderToRow(id string, in NewOrder, createdAt time.Time) (*repository.Order, error) {
	items := in.Items
	if items == nil {
		items = []LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order items: %w", err)
	}
	total, err := NormalizePrice(in.TotalPrice)
	if err != nil {
		return nil, err
	}
	return &repository.Order{
		ID:              id,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		Items:           string(raw),
		TotalPrice:      total,
		TransferSlipURI: in.TransferSlipURI,
		Status:          string(StatusPending),
		CreatedAt:       createdAt,
	}, nil
}

// orderFromRow never fails: undecodable items come back as an empty list
// together with the decode error so the caller can log it.
func orderFromRow(row *repository.Order) (Order, error) {
	order := Order{
		ID:              row.ID,
		CustomerName:    row.CustomerName,
		CustomerPhone:   row.CustomerPhone,
		Items:           []LineItem{},
		TotalPrice:      row.TotalPrice,
		TransferSlipURI: row.TransferSlipURI,
		Status:          Status(row.Status),
		CreatedAt:       row.CreatedAt,
	}
	if row.Items == "" || row.Items == "null" {
		return order, nil
	}
	var items []LineItem
	if err := json.Unmarshal([]byte(row.Items), &items); err != nil {
		return order, fmt.Errorf("failed to decode items of order %s: %w", row.ID, err)
	}
	if items != nil {
		order.Items = items
	}
	return order, nil
}

func merchToRow(id string, in NewMerchItem, createdAt time.Time) *repository.MerchItem {
	return &repository.MerchItem{
		ID:        id,
		Name:      in.Name,
		Price:     in.Price,
		Image:     in.Image,
		CreatedAt: createdAt,
	}
}

func merchFromRow(row *repository.MerchItem) MerchItem {
	return MerchItem{
		ID:    row.ID,
		Name:  row.Name,
		Price: row.Price,
		Image: row.Image,
	}
}

func merchPatchColumns(p MerchPatch) []repository.Column {
	var cols []repository.Column
	if p.Name != nil {
		cols = append(cols, repository.Column{Name: "name", Value: *p.Name})
	}
	if p.Price != nil {
		cols = append(cols, repository.Column{Name: "price", Value: *p.Price})
	}
	if p.Image != nil {
		cols = append(cols, repository.Column{Name: "image", Value: *p.Image})
	}
	return cols
}

func heroToRow(id string, in NewHero, createdAt time.Time) *repository.Hero {
	return &repository.Hero{
		ID:        id,
		Name:      in.Name,
		Position:  in.Position,
		Number:    in.Number,
		Image:     in.Image,
		CreatedAt: createdAt,
	}
}

func heroFromRow(row *repository.Hero) Hero {
	return Hero{
		ID:       row.ID,
		Name:     row.Name,
		Position: row.Position,
		Number:   row.Number,
		Image:    row.Image,
	}
}

func heroPatchColumns(p HeroPatch) []repository.Column {
	var cols []repository.Column
	if p.Name != nil {
		cols = append(cols, repository.Column{Name: "name", Value: *p.Name})
	}
	if p.Position != nil {
		cols = append(cols, repository.Column{Name: "position", Value: *p.Position})
	}
	if p.Number != nil {
		cols = append(cols, repository.Column{Name: "number", Value: *p.Number})
	}
	if p.Image != nil {
		cols = append(cols, repository.Column{Name: "image", Value: *p.Image})
	}
	return cols
}

func bankInfoToValue(info BankInfo) (string, error) {
	raw, err := json.Marshal(info)
	if err != nil {
		return "", fmt.Errorf("failed to encode bank info: %w", err)
	}
	return string(raw), nil
}

func bankInfoFromValue(value string) (BankInfo, error) {
	var info BankInfo
	if err := json.Unmarshal([]byte(value), &info); err != nil {
		return BankInfo{}, fmt.Errorf("failed to decode bank info: %w", err)
	}
	return info, nil
}
