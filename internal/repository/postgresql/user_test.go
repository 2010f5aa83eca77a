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
	"golang.org/x/crypto/bcrypt"

	mock_database "github.com/invaderrssofficial-source/invaders.final/internal/db/mocks"
	"github.com/invaderrssofficial-source/invaders.final/internal/repository/postgresql"
)

func TestUserRepo_ValidateUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		row      fakeRow
		want     bool
		wantErr  bool
	}{
		{name: "correct password", password: "s3cret", row: stringRow(string(hash)), want: true},
		{name: "wrong password", password: "guess", row: stringRow(string(hash)), want: false},
		{name: "unknown user", password: "s3cret", row: errRow(pgx.ErrNoRows), want: false},
		{name: "store failure", password: "s3cret", row: errRow(errors.New("timeout")), wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := mock_database.NewMockDB(ctrl)
			repo := postgresql.NewUserRepo(mockDB)

			mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), "admin").Return(tc.row)

			ok, err := repo.ValidateUser(context.Background(), "admin", tc.password)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestUserRepo_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewUserRepo(mockDB)

	mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), "admin", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, args ...interface{}) (pgconn.CommandTag, error) {
			hashed := args[1].(string)
			assert.NotEqual(t, "s3cret", hashed)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("s3cret")))
			return nil, nil
		})

	assert.NoError(t, repo.CreateUser(context.Background(), "admin", "s3cret"))
}

func TestUserRepo_Exists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewUserRepo(mockDB)

	mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), "admin").Return(intRow(1))

	ok, err := repo.Exists(context.Background(), "admin")
	require.NoError(t, err)
	assert.True(t, ok)
}
