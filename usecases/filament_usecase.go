package usecases

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories"
	"github.com/printfarm/printfarm-backend/usecases/executor_factory"
)

type FilamentRepository interface {
	ListFilaments(ctx context.Context, exec repositories.Executor) ([]models.Filament, error)
	CreateFilament(ctx context.Context, exec repositories.Executor, input models.CreateFilamentInput) (models.Filament, error)
	UpdateFilament(ctx context.Context, exec repositories.Executor, input models.UpdateFilamentInput) (models.Filament, error)
	DeleteFilament(ctx context.Context, exec repositories.Executor, filamentId int64) error
}

type FilamentUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      FilamentRepository
}

func (usecase *FilamentUsecase) ListFilaments(ctx context.Context) ([]models.Filament, error) {
	return usecase.repository.ListFilaments(ctx, usecase.executorFactory.NewExecutor())
}

func (usecase *FilamentUsecase) CreateFilament(ctx context.Context, input models.CreateFilamentInput) (models.Filament, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return models.Filament{}, errors.Wrap(models.BadParameterError, "name is required")
	}
	return usecase.repository.CreateFilament(ctx, usecase.executorFactory.NewExecutor(), input)
}

func (usecase *FilamentUsecase) UpdateFilament(ctx context.Context, input models.UpdateFilamentInput) (models.Filament, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return models.Filament{}, errors.Wrap(models.BadParameterError, "name can not be empty")
	}
	filament, err := usecase.repository.UpdateFilament(ctx, usecase.executorFactory.NewExecutor(), input)
	if errors.Is(err, models.NotFoundError) {
		return models.Filament{}, errors.WithStack(models.ErrFilamentNotFound)
	}
	return filament, err
}

func (usecase *FilamentUsecase) DeleteFilament(ctx context.Context, filamentId int64) error {
	err := usecase.repository.DeleteFilament(ctx, usecase.executorFactory.NewExecutor(), filamentId)
	if errors.Is(err, models.NotFoundError) {
		return errors.WithStack(models.ErrFilamentNotFound)
	}
	return err
}
