package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/printfarm/printfarm-backend/models"
)

type MoonrakerRepository struct {
	mock.Mock
}

func (m *MoonrakerRepository) QueryPrinterStatus(ctx context.Context, baseUrl string) (models.MoonrakerStatus, error) {
	args := m.Called(ctx, baseUrl)
	return args.Get(0).(models.MoonrakerStatus), args.Error(1)
}
