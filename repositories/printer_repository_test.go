package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories/dbmodels"
)

const printerColumns = "id, name, moonraker_url, status, created_at, current_filename, progress, " +
	"print_duration, current_layer, total_layer, last_synced_at"

func TestListPrinters(t *testing.T) {
	mock, _ := pgxmock.NewPool()
	repo := PrintfarmDbRepository{}
	now := time.Now()
	url := "http://voron.local"
	filename := "benchy.gcode"
	progress := 0.42

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + printerColumns + " FROM printers ORDER BY id")).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectPrinterColumn).
			AddRow(int64(1), "Voron", &url, "printing", now, &filename, &progress, nil, nil, nil, &now).
			AddRow(int64(2), "Prusa", nil, "offline", now, nil, nil, nil, nil, nil, nil))

	printers, err := repo.ListPrinters(context.Background(), mock)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	if assert.Len(t, printers, 2) {
		assert.Equal(t, "Voron", printers[0].Name)
		assert.Equal(t, &url, printers[0].MoonrakerUrl)
		assert.Equal(t, &filename, printers[0].CurrentFilename)
		assert.Equal(t, &progress, printers[0].Progress)
		assert.Nil(t, printers[1].MoonrakerUrl)
		assert.Nil(t, printers[1].LastSyncedAt)
	}
}

func TestListSyncablePrinters(t *testing.T) {
	mock, _ := pgxmock.NewPool()
	repo := PrintfarmDbRepository{}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + printerColumns +
		" FROM printers WHERE moonraker_url IS NOT NULL AND moonraker_url <> $1 ORDER BY id")).
		WithArgs("").
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectPrinterColumn))

	printers, err := repo.ListSyncablePrinters(context.Background(), mock)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, printers)
}

func TestGetPrinterById_NotFound(t *testing.T) {
	mock, _ := pgxmock.NewPool()
	repo := PrintfarmDbRepository{}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + printerColumns + " FROM printers WHERE id = $1")).
		WithArgs(int64(12)).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectPrinterColumn))

	_, err := repo.GetPrinterById(context.Background(), mock, 12)

	assert.True(t, errors.Is(err, models.NotFoundError))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePrinter(t *testing.T) {
	mock, _ := pgxmock.NewPool()
	repo := PrintfarmDbRepository{}
	now := time.Now()
	url := "http://voron.local"

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO printers (name,moonraker_url,status) VALUES ($1,$2,$3) RETURNING " +
		printerColumns)).
		WithArgs("Voron", &url, "offline").
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectPrinterColumn).
			AddRow(int64(3), "Voron", &url, "offline", now, nil, nil, nil, nil, nil, nil))

	printer, err := repo.CreatePrinter(context.Background(), mock, models.CreatePrinterInput{
		Name:         "Voron",
		MoonrakerUrl: &url,
		Status:       "offline",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, int64(3), printer.Id)
	assert.Equal(t, now, printer.CreatedAt)
}

func TestUpdatePrinter(t *testing.T) {
	mock, _ := pgxmock.NewPool()
	repo := PrintfarmDbRepository{}
	now := time.Now()
	name := "Voron 2.4"
	emptyUrl := ""

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE printers SET moonraker_url = $1, name = $2 WHERE id = $3 RETURNING " +
		printerColumns)).
		WithArgs((*string)(nil), name, int64(3)).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectPrinterColumn).
			AddRow(int64(3), name, nil, "offline", now, nil, nil, nil, nil, nil, nil))

	printer, err := repo.UpdatePrinter(context.Background(), mock, models.UpdatePrinterInput{
		Id:           3,
		Name:         &name,
		MoonrakerUrl: &emptyUrl,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, name, printer.Name)
	assert.Nil(t, printer.MoonrakerUrl)
}

func TestUpdatePrinter_NothingToUpdate(t *testing.T) {
	mock, _ := pgxmock.NewPool()
	repo := PrintfarmDbRepository{}
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + printerColumns + " FROM printers WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectPrinterColumn).
			AddRow(int64(3), "Voron", nil, "offline", now, nil, nil, nil, nil, nil, nil))

	printer, err := repo.UpdatePrinter(context.Background(), mock, models.UpdatePrinterInput{Id: 3})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, "Voron", printer.Name)
}

func TestUpdatePrinterSnapshot_Offline(t *testing.T) {
	mock, _ := pgxmock.NewPool()
	repo := PrintfarmDbRepository{}
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE printers SET status = $1, last_synced_at = $2 WHERE id = $3 RETURNING " +
		printerColumns)).
		WithArgs(models.PrinterStatusOffline, now, int64(3)).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectPrinterColumn).
			AddRow(int64(3), "Voron", nil, "offline", now, nil, nil, nil, nil, nil, &now))

	printer, err := repo.UpdatePrinterSnapshot(context.Background(), mock, 3, models.PrinterSnapshot{
		Status:   models.PrinterStatusOffline,
		SyncedAt: now,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, &now, printer.LastSyncedAt)
}

func TestDeletePrinter(t *testing.T) {
	mock, _ := pgxmock.NewPool()
	repo := PrintfarmDbRepository{}

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM printers WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM printers WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.NoError(t, repo.DeletePrinter(context.Background(), mock, 3))
	err := repo.DeletePrinter(context.Background(), mock, 4)
	assert.True(t, errors.Is(err, models.NotFoundError))
	assert.NoError(t, mock.ExpectationsWereMet())
}
