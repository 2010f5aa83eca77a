package postgresql

import (
	"context"
	"fmt"

	"github.com/invaderrssofficial-source/invaders.final/internal/db"
	"github.com/invaderrssofficial-source/invaders.final/internal/repository"
	"github.com/invaderrssofficial-source/invaders.final/internal/storage"
)

type HeroRepo struct {
	db db.DB
}

func NewHeroRepo(db db.DB) storage.HeroRepository {
	return &HeroRepo{db: db}
}

func (r *HeroRepo) GetAll(ctx context.Context, limit int) ([]*repository.Hero, error) {
	query := `
        SELECT id, name, position, number, image, created_at
        FROM heroes
        ORDER BY created_at ASC
        LIMIT $1
    `
	var heroes []*repository.Hero
	err := r.db.Select(ctx, &heroes, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get heroes: %w", err)
	}
	return heroes, nil
}

func (r *HeroRepo) Create(ctx context.Context, hero *repository.Hero) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO heroes (id, name, position, number, image, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, hero.ID, hero.Name, hero.Position, hero.Number, hero.Image, hero.CreatedAt)
	return err
}

func (r *HeroRepo) Update(ctx context.Context, id string, cols []repository.Column) error {
	if len(cols) == 0 {
		return nil
	}
	query, args := buildUpdate("heroes", id, cols)
	_, err := r.db.Exec(ctx, query, args...)
	return err
}

func (r *HeroRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM heroes WHERE id = $1", id)
	return err
}

func (r *HeroRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.ExecQueryRow(ctx, "SELECT COUNT(*) FROM heroes").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count heroes: %w", err)
	}
	return count, nil
}
