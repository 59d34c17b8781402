package dbmodels

import (
	"time"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/utils"
)

type DBJob struct {
	Id                int64      `db:"id"`
	PrinterId         int64      `db:"printer_id"`
	Filename          string     `db:"filename"`
	Material          *string    `db:"material"`
	DurationEstimated *float64   `db:"duration_estimated"`
	DurationSlicer    *float64   `db:"duration_slicer"`
	StartTime         *time.Time `db:"start_time"`
	EndTime           *time.Time `db:"end_time"`
	Status            string     `db:"status"`
}

const TABLE_JOBS = "jobs"

var SelectJobColumn = utils.ColumnList[DBJob]()

func AdaptJob(db DBJob) (models.Job, error) {
	return models.Job{
		Id:                db.Id,
		PrinterId:         db.PrinterId,
		Filename:          db.Filename,
		Material:          db.Material,
		DurationEstimated: db.DurationEstimated,
		DurationSlicer:    db.DurationSlicer,
		StartTime:         db.StartTime,
		EndTime:           db.EndTime,
		Status:            db.Status,
	}, nil
}
