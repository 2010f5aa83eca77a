package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/invaderrssofficial-source/invaders.final/internal/config"
	"github.com/invaderrssofficial-source/invaders.final/internal/db"
	mock_database "github.com/invaderrssofficial-source/invaders.final/internal/db/mocks"
)

type stubRow struct {
	ctx context.Context
	val int
}

func (r stubRow) Scan(dest ...interface{}) error {
	if err := r.ctx.Err(); err != nil {
		return err
	}
	*(dest[0].(*int)) = r.val
	return nil
}

func TestDatabase_Exec(t *testing.T) {
	t.Run("passes through within the bound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pool := mock_database.NewMockPool(ctrl)
		database := db.NewDatabase(pool, time.Second)

		pool.EXPECT().Exec(gomock.Any(), "DELETE FROM heroes WHERE id = $1", "hero-1").
			DoAndReturn(func(ctx context.Context, _ string, _ ...interface{}) (pgconn.CommandTag, error) {
				deadline, ok := ctx.Deadline()
				assert.True(t, ok)
				assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 100*time.Millisecond)
				return pgconn.CommandTag("DELETE 1"), nil
			})

		tag, err := database.Exec(context.Background(), "DELETE FROM heroes WHERE id = $1", "hero-1")
		require.NoError(t, err)
		assert.EqualValues(t, 1, tag.RowsAffected())
	})

	t.Run("slow call is cut off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pool := mock_database.NewMockPool(ctrl)
		database := db.NewDatabase(pool, 50*time.Millisecond)

		pool.EXPECT().Exec(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, _ ...interface{}) (pgconn.CommandTag, error) {
				<-ctx.Done()
				return nil, errors.New("conn closed")
			})

		start := time.Now()
		_, err := database.Exec(context.Background(), "SELECT pg_sleep(60)")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("store error is returned unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pool := mock_database.NewMockPool(ctrl)
		database := db.NewDatabase(pool, time.Second)

		storeErr := errors.New("permission denied for table orders")
		pool.EXPECT().Exec(gomock.Any(), gomock.Any()).Return(nil, storeErr)

		_, err := database.Exec(context.Background(), "DELETE FROM orders")
		assert.Equal(t, storeErr, err)
	})
}

func TestDatabase_ExecQueryRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	pool := mock_database.NewMockPool(ctrl)
	database := db.NewDatabase(pool, time.Second)

	pool.EXPECT().QueryRow(gomock.Any(), "SELECT COUNT(*) FROM heroes").
		DoAndReturn(func(ctx context.Context, _ string, _ ...interface{}) pgx.Row {
			return stubRow{ctx: ctx, val: 12}
		})

	var count int
	err := database.ExecQueryRow(context.Background(), "SELECT COUNT(*) FROM heroes").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 12, count)
}

func TestDatabase_ParentCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	pool := mock_database.NewMockPool(ctrl)
	database := db.NewDatabase(pool, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	pool.EXPECT().Exec(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...interface{}) (pgconn.CommandTag, error) {
			cancel()
			<-ctx.Done()
			return nil, ctx.Err()
		})

	_, err := database.Exec(ctx, "UPDATE orders SET status = 'confirmed'")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewDb_MissingConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.StoreConfig
	}{
		{name: "no url", cfg: config.StoreConfig{ServiceKey: "key"}},
		{name: "no key", cfg: config.StoreConfig{URL: "postgres://localhost/invaders"}},
		{name: "nothing", cfg: config.StoreConfig{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := db.NewDb(context.Background(), tc.cfg)
			assert.ErrorIs(t, err, config.ErrMissingStoreConfig)
		})
	}
}

func TestMigrate(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mock_database.NewMockDB(ctrl)

	mockDB.EXPECT().Exec(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query string, _ ...interface{}) (pgconn.CommandTag, error) {
			assert.Contains(t, query, "CREATE TABLE IF NOT EXISTS orders")
			assert.Contains(t, query, "CREATE TABLE IF NOT EXISTS settings")
			return nil, nil
		})

	require.NoError(t, db.Migrate(context.Background(), mockDB))
}
