package usecases

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories"
	"github.com/printfarm/printfarm-backend/repositories/clock"
	"github.com/printfarm/printfarm-backend/usecases/executor_factory"
	"github.com/printfarm/printfarm-backend/utils"
)

type MoonrakerPrinterRepository interface {
	GetPrinterById(ctx context.Context, exec repositories.Executor, printerId int64) (models.Printer, error)
	ListSyncablePrinters(ctx context.Context, exec repositories.Executor) ([]models.Printer, error)
	UpdatePrinterSnapshot(ctx context.Context, exec repositories.Executor, printerId int64,
		snapshot models.PrinterSnapshot) (models.Printer, error)
}

type MoonrakerUsecase struct {
	executorFactory     executor_factory.ExecutorFactory
	repository          MoonrakerPrinterRepository
	moonrakerRepository repositories.MoonrakerRepository
	timelineNotifier    timelineNotifier
	clock               clock.Clock
	syncConcurrency     int
}

// SyncPrinter fetches the live status of the printer from Moonraker and stores it. When Moonraker
// can not be reached the printer is marked offline and an upstream error is returned.
func (usecase *MoonrakerUsecase) SyncPrinter(ctx context.Context, printerId int64) (models.MoonrakerSync, error) {
	logger := utils.LoggerFromContext(ctx).With("printer_id", printerId)
	exec := usecase.executorFactory.NewExecutor()

	printer, err := usecase.repository.GetPrinterById(ctx, exec, printerId)
	if errors.Is(err, models.NotFoundError) {
		return models.MoonrakerSync{}, errors.WithStack(models.ErrPrinterNotConfigured)
	} else if err != nil {
		return models.MoonrakerSync{}, err
	}
	if !printer.CanSync() {
		return models.MoonrakerSync{}, errors.WithStack(models.ErrPrinterNotConfigured)
	}

	start := time.Now()
	status, err := usecase.moonrakerRepository.QueryPrinterStatus(ctx, *printer.MoonrakerUrl)
	now := usecase.clock.Now()
	if err != nil {
		utils.MetricPrinterSyncCount.WithLabelValues("failure").Inc()
		utils.MetricPrinterSyncLatency.WithLabelValues("failure").Observe(time.Since(start).Seconds())

		_, updateErr := usecase.repository.UpdatePrinterSnapshot(ctx, exec, printer.Id, models.PrinterSnapshot{
			Status:   models.PrinterStatusOffline,
			SyncedAt: now,
		})
		if updateErr != nil {
			logger.WarnContext(ctx, "could not mark printer offline", "error", updateErr.Error())
		} else {
			usecase.notifyTimeline(ctx, exec)
		}
		return models.MoonrakerSync{}, models.UpstreamFailure(err, "error querying Moonraker")
	}

	updated, err := usecase.repository.UpdatePrinterSnapshot(ctx, exec, printer.Id, models.PrinterSnapshot{
		Status:    status.State,
		Moonraker: &status,
		SyncedAt:  now,
	})
	if err != nil {
		return models.MoonrakerSync{}, err
	}
	usecase.notifyTimeline(ctx, exec)

	utils.MetricPrinterSyncCount.WithLabelValues("success").Inc()
	utils.MetricPrinterSyncLatency.WithLabelValues("success").Observe(time.Since(start).Seconds())
	logger.DebugContext(ctx, fmt.Sprintf("printer %s synced: %s", updated.Name, status.State))

	return models.MoonrakerSync{
		Printer:   updated,
		Status:    status,
		Timestamp: now,
	}, nil
}

// SyncAllPrinters synchronises every printer having a Moonraker url. Failures of single printers
// are logged and counted, they do not stop the others.
func (usecase *MoonrakerUsecase) SyncAllPrinters(ctx context.Context) (models.SyncAllReport, error) {
	logger := utils.LoggerFromContext(ctx)

	printers, err := usecase.repository.ListSyncablePrinters(ctx, usecase.executorFactory.NewExecutor())
	if err != nil {
		return models.SyncAllReport{}, err
	}

	var synced, failed, skipped atomic.Int64
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(usecase.syncConcurrency, 1))
	for _, printer := range printers {
		group.Go(func() error {
			_, err := usecase.SyncPrinter(groupCtx, printer.Id)
			switch {
			case err == nil:
				synced.Add(1)
			case errors.Is(err, models.NotFoundError):
				// deleted or unconfigured since listed
				skipped.Add(1)
			default:
				failed.Add(1)
				logger.WarnContext(groupCtx, fmt.Sprintf("could not sync printer %d", printer.Id),
					"printer_id", printer.Id, "error", err.Error())
			}
			return nil
		})
	}
	_ = group.Wait()

	return models.SyncAllReport{
		Synced:  int(synced.Load()),
		Failed:  int(failed.Load()),
		Skipped: int(skipped.Load()),
	}, nil
}

func (usecase *MoonrakerUsecase) notifyTimeline(ctx context.Context, exec repositories.Executor) {
	if err := usecase.timelineNotifier.NotifyTimelineChanged(ctx, exec); err != nil {
		utils.LoggerFromContext(ctx).WarnContext(ctx, "could not notify timeline change", "error", err.Error())
	}
}
