package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/invaderrssofficial-source/invaders.final/internal/db"
	"github.com/invaderrssofficial-source/invaders.final/internal/repository"
	"github.com/invaderrssofficial-source/invaders.final/internal/storage"
)

// no unique or exclusion constraint matching the ON CONFLICT specification
const codeInvalidColumnReference = "42P10"

type SettingsRepo struct {
	db db.DB
}

func NewSettingsRepo(db db.DB) storage.SettingsRepository {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) Get(ctx context.Context, key string) (*repository.Setting, error) {
	var setting repository.Setting
	err := r.db.Get(ctx, &setting, "SELECT key, value FROM settings WHERE key = $1", key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &setting, nil
}

// Upsert stores value under key and returns what the store holds afterwards.
// Tables created without a unique key fall back to update-then-insert.
func (r *SettingsRepo) Upsert(ctx context.Context, key, value string) (string, error) {
	var stored string
	err := r.db.ExecQueryRow(ctx, `
        INSERT INTO settings (key, value) VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
        RETURNING value
    `, key, value).Scan(&stored)
	if err == nil {
		return stored, nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != codeInvalidColumnReference {
		return "", err
	}

	tag, err := r.db.Exec(ctx, "UPDATE settings SET value = $1 WHERE key = $2", value, key)
	if err != nil {
		return "", err
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.db.Exec(ctx, "INSERT INTO settings (key, value) VALUES ($1, $2)", key, value); err != nil {
			return "", err
		}
	}
	return value, nil
}
