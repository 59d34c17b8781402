package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories"
)

type PrinterRepository struct {
	mock.Mock
}

func (m *PrinterRepository) ListPrinters(ctx context.Context, exec repositories.Executor) ([]models.Printer, error) {
	args := m.Called(ctx, exec)
	return args.Get(0).([]models.Printer), args.Error(1)
}

func (m *PrinterRepository) ListSyncablePrinters(ctx context.Context, exec repositories.Executor) ([]models.Printer, error) {
	args := m.Called(ctx, exec)
	return args.Get(0).([]models.Printer), args.Error(1)
}

func (m *PrinterRepository) GetPrinterById(ctx context.Context, exec repositories.Executor, printerId int64) (models.Printer, error) {
	args := m.Called(ctx, exec, printerId)
	return args.Get(0).(models.Printer), args.Error(1)
}

func (m *PrinterRepository) CreatePrinter(ctx context.Context, exec repositories.Executor,
	input models.CreatePrinterInput,
) (models.Printer, error) {
	args := m.Called(ctx, exec, input)
	return args.Get(0).(models.Printer), args.Error(1)
}

func (m *PrinterRepository) UpdatePrinter(ctx context.Context, exec repositories.Executor,
	input models.UpdatePrinterInput,
) (models.Printer, error) {
	args := m.Called(ctx, exec, input)
	return args.Get(0).(models.Printer), args.Error(1)
}

func (m *PrinterRepository) UpdatePrinterSnapshot(ctx context.Context, exec repositories.Executor,
	printerId int64, snapshot models.PrinterSnapshot,
) (models.Printer, error) {
	args := m.Called(ctx, exec, printerId, snapshot)
	return args.Get(0).(models.Printer), args.Error(1)
}

func (m *PrinterRepository) DeletePrinter(ctx context.Context, exec repositories.Executor, printerId int64) error {
	args := m.Called(ctx, exec, printerId)
	return args.Error(0)
}
