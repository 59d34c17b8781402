package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/utils"
)

const (
	nbRetriesPrinterSync = 3
	priorityPrinterSync  = 2 // nb: higher number is lower priority (between 1 and 4)
	// printer sync jobs for the same printer are deduplicated over this period
	printerSyncUniquePeriod = 10 * time.Second
)

type TaskQueueRepository interface {
	EnqueuePrinterSyncTask(ctx context.Context, tx Transaction, printerId int64) error
}

type riverRepository struct {
	client *river.Client[pgx.Tx]
}

func NewTaskQueueRepository(client *river.Client[pgx.Tx]) TaskQueueRepository {
	return riverRepository{client: client}
}

func (r riverRepository) EnqueuePrinterSyncTask(ctx context.Context, tx Transaction, printerId int64) error {
	logger := utils.LoggerFromContext(ctx)
	if r.client == nil {
		logger.DebugContext(ctx, "No task queue client configured, printer sync task not enqueued", "printer_id", printerId)
		return nil
	}

	res, err := r.client.InsertTx(ctx, tx.RawTx(), models.PrinterSyncArgs{
		PrinterId: printerId,
	}, &river.InsertOpts{
		MaxAttempts: nbRetriesPrinterSync,
		Priority:    priorityPrinterSync,
		Queue:       river.QueueDefault,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: printerSyncUniquePeriod,
		},
	})
	if err != nil {
		return err
	}
	logger.DebugContext(ctx, "Enqueued printer sync task", "printer_id", printerId, "job_id", res.Job.ID)
	return nil
}
