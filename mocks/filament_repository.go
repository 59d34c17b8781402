package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories"
)

type FilamentRepository struct {
	mock.Mock
}

func (m *FilamentRepository) ListFilaments(ctx context.Context, exec repositories.Executor) ([]models.Filament, error) {
	args := m.Called(ctx, exec)
	return args.Get(0).([]models.Filament), args.Error(1)
}

func (m *FilamentRepository) CreateFilament(ctx context.Context, exec repositories.Executor,
	input models.CreateFilamentInput,
) (models.Filament, error) {
	args := m.Called(ctx, exec, input)
	return args.Get(0).(models.Filament), args.Error(1)
}

func (m *FilamentRepository) UpdateFilament(ctx context.Context, exec repositories.Executor,
	input models.UpdateFilamentInput,
) (models.Filament, error) {
	args := m.Called(ctx, exec, input)
	return args.Get(0).(models.Filament), args.Error(1)
}

func (m *FilamentRepository) DeleteFilament(ctx context.Context, exec repositories.Executor, filamentId int64) error {
	args := m.Called(ctx, exec, filamentId)
	return args.Error(0)
}
