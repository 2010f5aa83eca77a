package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/invaderrssofficial-source/invaders.final/internal/config"
)

// NewDb opens the shared store handle. Connections are established lazily,
// but missing credentials fail here, before any request is served.
func NewDb(ctx context.Context, cfg config.StoreConfig) (*Database, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse store url: %w", err)
	}
	poolCfg.ConnConfig.Password = cfg.ServiceKey
	poolCfg.LazyConnect = true
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.ConnectConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create store pool: %w", err)
	}
	return NewDatabase(pool, cfg.Timeout()), nil
}
