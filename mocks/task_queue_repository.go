package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/printfarm/printfarm-backend/repositories"
)

type TaskQueueRepository struct {
	mock.Mock
}

func (m *TaskQueueRepository) EnqueuePrinterSyncTask(ctx context.Context, tx repositories.Transaction, printerId int64) error {
	args := m.Called(ctx, tx, printerId)
	return args.Error(0)
}
