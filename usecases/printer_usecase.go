package usecases

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories"
	"github.com/printfarm/printfarm-backend/usecases/executor_factory"
)

type PrinterRepository interface {
	ListPrinters(ctx context.Context, exec repositories.Executor) ([]models.Printer, error)
	GetPrinterById(ctx context.Context, exec repositories.Executor, printerId int64) (models.Printer, error)
	CreatePrinter(ctx context.Context, exec repositories.Executor, input models.CreatePrinterInput) (models.Printer, error)
	UpdatePrinter(ctx context.Context, exec repositories.Executor, input models.UpdatePrinterInput) (models.Printer, error)
	DeletePrinter(ctx context.Context, exec repositories.Executor, printerId int64) error
}

type timelineNotifier interface {
	NotifyTimelineChanged(ctx context.Context, exec repositories.Executor) error
}

type PrinterUsecase struct {
	executorFactory     executor_factory.ExecutorFactory
	transactionFactory  executor_factory.TransactionFactory
	repository          PrinterRepository
	taskQueueRepository repositories.TaskQueueRepository
	timelineNotifier    timelineNotifier
}

func (usecase *PrinterUsecase) ListPrinters(ctx context.Context) ([]models.Printer, error) {
	return usecase.repository.ListPrinters(ctx, usecase.executorFactory.NewExecutor())
}

func (usecase *PrinterUsecase) GetPrinter(ctx context.Context, printerId int64) (models.Printer, error) {
	printer, err := usecase.repository.GetPrinterById(ctx, usecase.executorFactory.NewExecutor(), printerId)
	if errors.Is(err, models.NotFoundError) {
		return models.Printer{}, errors.WithStack(models.ErrPrinterNotFound)
	}
	return printer, err
}

// CreatePrinter stores the printer, and schedules a first synchronisation when it has a Moonraker url.
func (usecase *PrinterUsecase) CreatePrinter(ctx context.Context, input models.CreatePrinterInput) (models.Printer, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return models.Printer{}, errors.Wrap(models.BadParameterError, "name is required")
	}
	input.MoonrakerUrl = models.NormalizeMoonrakerUrl(input.MoonrakerUrl)

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (models.Printer, error) {
		printer, err := usecase.repository.CreatePrinter(ctx, tx, input)
		if err != nil {
			return models.Printer{}, err
		}
		if printer.CanSync() {
			if err := usecase.taskQueueRepository.EnqueuePrinterSyncTask(ctx, tx, printer.Id); err != nil {
				return models.Printer{}, err
			}
		}
		if err := usecase.timelineNotifier.NotifyTimelineChanged(ctx, tx); err != nil {
			return models.Printer{}, err
		}
		return printer, nil
	})
}

func (usecase *PrinterUsecase) UpdatePrinter(ctx context.Context, input models.UpdatePrinterInput) (models.Printer, error) {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return models.Printer{}, errors.Wrap(models.BadParameterError, "name can not be empty")
		}
		input.Name = &name
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (models.Printer, error) {
		printer, err := usecase.repository.UpdatePrinter(ctx, tx, input)
		if errors.Is(err, models.NotFoundError) {
			return models.Printer{}, errors.WithStack(models.ErrPrinterNotFound)
		} else if err != nil {
			return models.Printer{}, err
		}
		if input.MoonrakerUrl != nil && printer.CanSync() {
			if err := usecase.taskQueueRepository.EnqueuePrinterSyncTask(ctx, tx, printer.Id); err != nil {
				return models.Printer{}, err
			}
		}
		if err := usecase.timelineNotifier.NotifyTimelineChanged(ctx, tx); err != nil {
			return models.Printer{}, err
		}
		return printer, nil
	})
}

// DeletePrinter deletes the printer and its jobs.
func (usecase *PrinterUsecase) DeletePrinter(ctx context.Context, printerId int64) error {
	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		err := usecase.repository.DeletePrinter(ctx, tx, printerId)
		if errors.Is(err, models.NotFoundError) {
			return errors.WithStack(models.ErrPrinterNotFound)
		} else if err != nil {
			return err
		}
		return usecase.timelineNotifier.NotifyTimelineChanged(ctx, tx)
	})
}
