package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/invaderrssofficial-source/invaders.final/internal/db/mocks"
	"github.com/invaderrssofficial-source/invaders.final/internal/repository"
	"github.com/invaderrssofficial-source/invaders.final/internal/repository/postgresql"
)

const bankKey = "bank_transfer_info"

func stringRow(s string) fakeRow {
	return fakeRow{scan: func(dest ...interface{}) error {
		*(dest[0].(*string)) = s
		return nil
	}}
}

func TestSettingsRepo_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewSettingsRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), bankKey).
			DoAndReturn(func(_ context.Context, dest *repository.Setting, _ string, _ ...interface{}) error {
				*dest = repository.Setting{Key: bankKey, Value: `{"bankName":"MIB"}`}
				return nil
			})

		setting, err := repo.Get(ctx, bankKey)
		require.NoError(t, err)
		assert.JSONEq(t, `{"bankName":"MIB"}`, setting.Value)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewSettingsRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), bankKey).Return(pgx.ErrNoRows)

		setting, err := repo.Get(ctx, bankKey)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, setting)
	})
}

func TestSettingsRepo_Upsert(t *testing.T) {
	ctx := context.Background()
	value := `{"bankName":"MIB","accountName":"Club Invaders","accountNumber":"9000"}`

	t.Run("atomic upsert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewSettingsRepo(mockDB)

		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), bankKey, value).
			DoAndReturn(func(_ context.Context, query string, _ ...interface{}) pgx.Row {
				assert.Contains(t, query, "ON CONFLICT (key) DO UPDATE")
				return stringRow(value)
			})

		stored, err := repo.Upsert(ctx, bankKey, value)
		require.NoError(t, err)
		assert.Equal(t, value, stored)
	})

	t.Run("fallback updates existing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewSettingsRepo(mockDB)

		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), bankKey, value).
			Return(errRow(&pgconn.PgError{Code: "42P10"}))
		mockDB.EXPECT().Exec(gomock.Any(), "UPDATE settings SET value = $1 WHERE key = $2", value, bankKey).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		stored, err := repo.Upsert(ctx, bankKey, value)
		require.NoError(t, err)
		assert.Equal(t, value, stored)
	})

	t.Run("fallback inserts missing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewSettingsRepo(mockDB)

		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), bankKey, value).
			Return(errRow(&pgconn.PgError{Code: "42P10"}))
		gomock.InOrder(
			mockDB.EXPECT().Exec(gomock.Any(), "UPDATE settings SET value = $1 WHERE key = $2", value, bankKey).
				Return(pgconn.CommandTag("UPDATE 0"), nil),
			mockDB.EXPECT().Exec(gomock.Any(), "INSERT INTO settings (key, value) VALUES ($1, $2)", bankKey, value).
				Return(pgconn.CommandTag("INSERT 0 1"), nil),
		)

		_, err := repo.Upsert(ctx, bankKey, value)
		assert.NoError(t, err)
	})

	t.Run("other store errors surface", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewSettingsRepo(mockDB)

		storeErr := errors.New("permission denied for table settings")
		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), bankKey, value).Return(errRow(storeErr))

		_, err := repo.Upsert(ctx, bankKey, value)
		assert.ErrorIs(t, err, storeErr)
	})
}
