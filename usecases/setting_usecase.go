package usecases

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories"
	"github.com/printfarm/printfarm-backend/usecases/executor_factory"
)

type SettingRepository interface {
	ListSettings(ctx context.Context, exec repositories.Executor) ([]models.Setting, error)
	CreateSetting(ctx context.Context, exec repositories.Executor, input models.CreateSettingInput) (models.Setting, error)
	UpdateSetting(ctx context.Context, exec repositories.Executor, input models.UpdateSettingInput) (models.Setting, error)
	DeleteSetting(ctx context.Context, exec repositories.Executor, settingId int64) error
}

type SettingUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      SettingRepository
}

func (usecase *SettingUsecase) ListSettings(ctx context.Context) ([]models.Setting, error) {
	return usecase.repository.ListSettings(ctx, usecase.executorFactory.NewExecutor())
}

func (usecase *SettingUsecase) CreateSetting(ctx context.Context, input models.CreateSettingInput) (models.Setting, error) {
	input.Key = strings.TrimSpace(input.Key)
	if input.Key == "" {
		return models.Setting{}, errors.Wrap(models.BadParameterError, "key is required")
	}
	return usecase.repository.CreateSetting(ctx, usecase.executorFactory.NewExecutor(), input)
}

func (usecase *SettingUsecase) UpdateSetting(ctx context.Context, input models.UpdateSettingInput) (models.Setting, error) {
	if input.Key != nil {
		key := strings.TrimSpace(*input.Key)
		if key == "" {
			return models.Setting{}, errors.Wrap(models.BadParameterError, "key can not be empty")
		}
		input.Key = &key
	}
	setting, err := usecase.repository.UpdateSetting(ctx, usecase.executorFactory.NewExecutor(), input)
	if errors.Is(err, models.NotFoundError) {
		return models.Setting{}, errors.WithStack(models.ErrSettingNotFound)
	}
	return setting, err
}

func (usecase *SettingUsecase) DeleteSetting(ctx context.Context, settingId int64) error {
	err := usecase.repository.DeleteSetting(ctx, usecase.executorFactory.NewExecutor(), settingId)
	if errors.Is(err, models.NotFoundError) {
		return errors.WithStack(models.ErrSettingNotFound)
	}
	return err
}
