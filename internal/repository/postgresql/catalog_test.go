package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/invaderrssofficial-source/invaders.final/internal/db/mocks"
	"github.com/invaderrssofficial-source/invaders.final/internal/repository"
	"github.com/invaderrssofficial-source/invaders.final/internal/repository/postgresql"
)

type fakeRow struct {
	scan func(dest ...interface{}) error
}

func (r fakeRow) Scan(dest ...interface{}) error { return r.scan(dest...) }

func intRow(n int) fakeRow {
	return fakeRow{scan: func(dest ...interface{}) error {
		*(dest[0].(*int)) = n
		return nil
	}}
}

func errRow(err error) fakeRow {
	return fakeRow{scan: func(...interface{}) error { return err }}
}

func TestMerchRepo_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewMerchRepo(mockDB)

	item := &repository.MerchItem{
		ID:        "merch-1",
		Name:      "Training Tee",
		Price:     "MVR 350",
		Image:     "https://x/y.png",
		CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), item.ID, item.Name, item.Price, item.Image, item.CreatedAt).Return(nil, nil)

	assert.NoError(t, repo.Create(context.Background(), item))
}

func TestMerchRepo_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewMerchRepo(mockDB)

	mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), 1000).
		DoAndReturn(func(_ context.Context, dest *[]*repository.MerchItem, query string, _ ...interface{}) error {
			assert.Contains(t, query, "ORDER BY created_at ASC")
			*dest = []*repository.MerchItem{{ID: "merch-1", Name: "Training Tee"}}
			return nil
		})

	items, err := repo.GetAll(context.Background(), 1000)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestMerchRepo_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial columns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewMerchRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(),
			"UPDATE merch_items SET name = $1, price = $2 WHERE id = $3",
			"Away Kit", "MVR 550", "merch-1",
		).Return(nil, nil)

		err := repo.Update(ctx, "merch-1", []repository.Column{
			{Name: "name", Value: "Away Kit"},
			{Name: "price", Value: "MVR 550"},
		})
		assert.NoError(t, err)
	})

	t.Run("empty patch skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewMerchRepo(mockDB)

		assert.NoError(t, repo.Update(ctx, "merch-1", nil))
	})
}

func TestMerchRepo_Count(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewMerchRepo(mockDB)

	mockDB.EXPECT().ExecQueryRow(gomock.Any(), "SELECT COUNT(*) FROM merch_items").Return(intRow(4))
	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any()).Return(errRow(errors.New("boom")))
	_, err = repo.Count(context.Background())
	assert.Error(t, err)
}

func TestHeroRepo_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewHeroRepo(mockDB)

	mockDB.EXPECT().Exec(gomock.Any(),
		"UPDATE heroes SET number = $1 WHERE id = $2",
		"99", "hero-1",
	).Return(nil, nil)

	assert.NoError(t, repo.Update(context.Background(), "hero-1", []repository.Column{{Name: "number", Value: "99"}}))
}

func TestHeroRepo_CreateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewHeroRepo(mockDB)

	hero := &repository.Hero{ID: "hero-1", Name: "Ali Waheed", Position: "Midfielder", Number: "10", Image: "img"}
	mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), hero.ID, hero.Name, hero.Position, hero.Number, hero.Image, hero.CreatedAt).Return(nil, nil)
	mockDB.EXPECT().Exec(gomock.Any(), "DELETE FROM heroes WHERE id = $1", "hero-1").Return(nil, nil)

	assert.NoError(t, repo.Create(context.Background(), hero))
	assert.NoError(t, repo.Delete(context.Background(), "hero-1"))
}

func TestHeroRepo_GetAllError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewHeroRepo(mockDB)

	storeErr := errors.New("relation \"heroes\" does not exist")
	mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), 1000).Return(storeErr)

	_, err := repo.GetAll(context.Background(), 1000)
	assert.ErrorIs(t, err, storeErr)
}
