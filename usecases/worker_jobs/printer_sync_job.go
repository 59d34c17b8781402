package worker_jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riverqueue/river"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/utils"
)

const (
	PRINTER_SYNC_ALL_TIMEOUT = 2 * time.Minute
	PRINTER_SYNC_TIMEOUT     = 30 * time.Second
)

func NewPrinterSyncAllPeriodicJob(interval time.Duration) *river.PeriodicJob {
	return river.NewPeriodicJob(
		river.PeriodicInterval(interval),
		func() (river.JobArgs, *river.InsertOpts) {
			return models.PrinterSyncAllArgs{},
				&river.InsertOpts{
					Queue:       river.QueueDefault,
					MaxAttempts: 1,
					UniqueOpts: river.UniqueOpts{
						ByQueue:  true,
						ByPeriod: interval,
					},
				}
		},
		&river.PeriodicJobOpts{RunOnStart: true},
	)
}

type printerSyncer interface {
	SyncPrinter(ctx context.Context, printerId int64) (models.MoonrakerSync, error)
	SyncAllPrinters(ctx context.Context) (models.SyncAllReport, error)
}

// PrinterSyncAllWorker refreshes the status of the whole fleet.
type PrinterSyncAllWorker struct {
	river.WorkerDefaults[models.PrinterSyncAllArgs]

	syncer printerSyncer
}

func NewPrinterSyncAllWorker(syncer printerSyncer) *PrinterSyncAllWorker {
	return &PrinterSyncAllWorker{syncer: syncer}
}

func (w *PrinterSyncAllWorker) Timeout(job *river.Job[models.PrinterSyncAllArgs]) time.Duration {
	return PRINTER_SYNC_ALL_TIMEOUT
}

func (w *PrinterSyncAllWorker) Work(ctx context.Context, job *river.Job[models.PrinterSyncAllArgs]) error {
	logger := utils.LoggerFromContext(ctx)

	report, err := w.syncer.SyncAllPrinters(ctx)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, fmt.Sprintf("Printer sync completed: %d synced, %d failed, %d skipped",
		report.Synced, report.Failed, report.Skipped),
		"synced", report.Synced,
		"failed", report.Failed,
		"skipped", report.Skipped)
	return nil
}

// PrinterSyncWorker refreshes a single printer, after it was created or its url changed.
type PrinterSyncWorker struct {
	river.WorkerDefaults[models.PrinterSyncArgs]

	syncer printerSyncer
}

func NewPrinterSyncWorker(syncer printerSyncer) *PrinterSyncWorker {
	return &PrinterSyncWorker{syncer: syncer}
}

func (w *PrinterSyncWorker) Timeout(job *river.Job[models.PrinterSyncArgs]) time.Duration {
	return PRINTER_SYNC_TIMEOUT
}

func (w *PrinterSyncWorker) Work(ctx context.Context, job *river.Job[models.PrinterSyncArgs]) error {
	logger := utils.LoggerFromContext(ctx)

	_, err := w.syncer.SyncPrinter(ctx, job.Args.PrinterId)
	switch {
	case errors.Is(err, models.NotFoundError):
		logger.InfoContext(ctx, fmt.Sprintf("Printer %d no longer configured for sync", job.Args.PrinterId))
		return nil
	case errors.Is(err, models.UpstreamError):
		// the printer is marked offline, the periodic sync will pick it up again
		logger.WarnContext(ctx, fmt.Sprintf("Printer %d unreachable", job.Args.PrinterId), "error", err.Error())
		return nil
	}
	return err
}
