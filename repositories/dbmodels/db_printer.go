package dbmodels

import (
	"time"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/utils"
)

type DBPrinter struct {
	Id              int64      `db:"id"`
	Name            string     `db:"name"`
	MoonrakerUrl    *string    `db:"moonraker_url"`
	Status          string     `db:"status"`
	CreatedAt       time.Time  `db:"created_at"`
	CurrentFilename *string    `db:"current_filename"`
	Progress        *float64   `db:"progress"`
	PrintDuration   *float64   `db:"print_duration"`
	CurrentLayer    *int       `db:"current_layer"`
	TotalLayer      *int       `db:"total_layer"`
	LastSyncedAt    *time.Time `db:"last_synced_at"`
}

const TABLE_PRINTERS = "printers"

var SelectPrinterColumn = utils.ColumnList[DBPrinter]()

func AdaptPrinter(db DBPrinter) (models.Printer, error) {
	return models.Printer{
		Id:              db.Id,
		Name:            db.Name,
		MoonrakerUrl:    db.MoonrakerUrl,
		Status:          db.Status,
		CreatedAt:       db.CreatedAt,
		CurrentFilename: db.CurrentFilename,
		Progress:        db.Progress,
		PrintDuration:   db.PrintDuration,
		CurrentLayer:    db.CurrentLayer,
		TotalLayer:      db.TotalLayer,
		LastSyncedAt:    db.LastSyncedAt,
	}, nil
}
