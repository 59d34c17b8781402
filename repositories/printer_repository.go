package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories/dbmodels"
)

func selectPrinters() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectPrinterColumn...).
		From(dbmodels.TABLE_PRINTERS)
}

func returningPrinter() string {
	return "RETURNING " + strings.Join(dbmodels.SelectPrinterColumn, ", ")
}

func (repo *PrintfarmDbRepository) ListPrinters(ctx context.Context, exec Executor) ([]models.Printer, error) {
	return SqlToListOfModels(ctx, exec, selectPrinters().OrderBy("id"), dbmodels.AdaptPrinter)
}

func (repo *PrintfarmDbRepository) ListSyncablePrinters(ctx context.Context, exec Executor) ([]models.Printer, error) {
	query := selectPrinters().
		Where(squirrel.NotEq{"moonraker_url": nil}).
		Where(squirrel.NotEq{"moonraker_url": ""}).
		OrderBy("id")
	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptPrinter)
}

func (repo *PrintfarmDbRepository) GetPrinterById(ctx context.Context, exec Executor, printerId int64) (models.Printer, error) {
	return SqlToModel(ctx, exec, selectPrinters().Where(squirrel.Eq{"id": printerId}), dbmodels.AdaptPrinter)
}

func (repo *PrintfarmDbRepository) CreatePrinter(
	ctx context.Context,
	exec Executor,
	input models.CreatePrinterInput,
) (models.Printer, error) {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_PRINTERS).
		Columns("name", "moonraker_url", "status").
		Values(input.Name, input.MoonrakerUrl, input.Status).
		Suffix(returningPrinter())
	return SqlToModel(ctx, exec, query, dbmodels.AdaptPrinter)
}

func (repo *PrintfarmDbRepository) UpdatePrinter(
	ctx context.Context,
	exec Executor,
	input models.UpdatePrinterInput,
) (models.Printer, error) {
	values := map[string]any{}
	if input.Name != nil {
		values["name"] = *input.Name
	}
	if input.MoonrakerUrl != nil {
		// an empty url clears the Moonraker configuration
		values["moonraker_url"] = models.NormalizeMoonrakerUrl(input.MoonrakerUrl)
	}
	if input.Status != nil {
		values["status"] = *input.Status
	}
	if len(values) == 0 {
		return repo.GetPrinterById(ctx, exec, input.Id)
	}

	query := NewQueryBuilder().
		Update(dbmodels.TABLE_PRINTERS).
		SetMap(values).
		Where(squirrel.Eq{"id": input.Id}).
		Suffix(returningPrinter())
	return SqlToModel(ctx, exec, query, dbmodels.AdaptPrinter)
}

func (repo *PrintfarmDbRepository) UpdatePrinterSnapshot(
	ctx context.Context,
	exec Executor,
	printerId int64,
	snapshot models.PrinterSnapshot,
) (models.Printer, error) {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_PRINTERS).
		Set("status", snapshot.Status).
		Set("last_synced_at", snapshot.SyncedAt)
	if snapshot.Moonraker != nil {
		query = query.
			Set("current_filename", snapshot.Moonraker.Filename).
			Set("progress", snapshot.Moonraker.Progress).
			Set("print_duration", snapshot.Moonraker.PrintDuration).
			Set("current_layer", snapshot.Moonraker.CurrentLayer).
			Set("total_layer", snapshot.Moonraker.TotalLayer)
	}
	query = query.
		Where(squirrel.Eq{"id": printerId}).
		Suffix(returningPrinter())
	return SqlToModel(ctx, exec, query, dbmodels.AdaptPrinter)
}

func (repo *PrintfarmDbRepository) DeletePrinter(ctx context.Context, exec Executor, printerId int64) error {
	deleted, err := ExecBuilder(ctx, exec, NewQueryBuilder().
		Delete(dbmodels.TABLE_PRINTERS).
		Where(squirrel.Eq{"id": printerId}))
	if err != nil {
		return err
	}
	if deleted == 0 {
		return errors.Wrapf(models.NotFoundError, "printer %d", printerId)
	}
	return nil
}
