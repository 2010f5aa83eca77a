package postgresql_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/invaderrssofficial-source/invaders.final/internal/db/mocks"
	"github.com/invaderrssofficial-source/invaders.final/internal/repository"
	"github.com/invaderrssofficial-source/invaders.final/internal/repository/postgresql"
)

func TestOutboxTaskRepo_CreateTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewOutboxTaskRepo()

	task := &repository.OutboxTask{
		Payload: json.RawMessage(`{"procedure":"orders.delete"}`),
		Topic:   "audit_logs",
	}

	mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(),
		gomock.Any(),
		repository.TaskStatusCreated,
		`{"procedure":"orders.delete"}`,
		"audit_logs",
		gomock.Any(),
		gomock.Any(),
	).Return(nil, nil)

	require.NoError(t, repo.CreateTx(context.Background(), mockTx, task))
	assert.NotEqual(t, uuid.Nil, task.ID)
}

func TestOutboxTaskRepo_GetProcessableTasksTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewOutboxTaskRepo()

	id := uuid.New()
	before := time.Now().UTC()
	mockTx.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(),
		repository.TaskStatusCreated,
		repository.TaskStatusFailed, 5,
		repository.TaskStatusProcessing, gomock.Any(),
		20,
	).DoAndReturn(func(_ context.Context, dest *[]*repository.OutboxTask, query string, args ...interface{}) error {
		assert.Contains(t, query, "FOR UPDATE SKIP LOCKED")
		assert.Contains(t, query, "updated_at < $5")
		staleBefore, ok := args[4].(time.Time)
		require.True(t, ok)
		assert.WithinDuration(t, before.Add(-time.Minute), staleBefore, 5*time.Second)
		*dest = []*repository.OutboxTask{{ID: id, Status: repository.TaskStatusProcessing}}
		return nil
	})

	tasks, err := repo.GetProcessableTasksTx(context.Background(), mockTx, 20, 5, time.Minute)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, id, tasks[0].ID)
}

func TestOutboxTaskRepo_UpdateTaskStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOutboxTaskRepo()

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), id, repository.TaskStatusDone, 1, gomock.Nil(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		assert.NoError(t, repo.UpdateTaskStatus(ctx, mockDB, id, repository.TaskStatusDone, 1, nil, nil))
	})

	t.Run("missing task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewOutboxTaskRepo()

		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.UpdateTaskStatusTx(ctx, mockTx, id, repository.TaskStatusProcessing, 0, nil, nil)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}
