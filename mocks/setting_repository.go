package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories"
)

type SettingRepository struct {
	mock.Mock
}

func (m *SettingRepository) ListSettings(ctx context.Context, exec repositories.Executor) ([]models.Setting, error) {
	args := m.Called(ctx, exec)
	return args.Get(0).([]models.Setting), args.Error(1)
}

func (m *SettingRepository) CreateSetting(ctx context.Context, exec repositories.Executor,
	input models.CreateSettingInput,
) (models.Setting, error) {
	args := m.Called(ctx, exec, input)
	return args.Get(0).(models.Setting), args.Error(1)
}

func (m *SettingRepository) UpdateSetting(ctx context.Context, exec repositories.Executor,
	input models.UpdateSettingInput,
) (models.Setting, error) {
	args := m.Called(ctx, exec, input)
	return args.Get(0).(models.Setting), args.Error(1)
}

func (m *SettingRepository) DeleteSetting(ctx context.Context, exec repositories.Executor, settingId int64) error {
	args := m.Called(ctx, exec, settingId)
	return args.Error(0)
}
