package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories/dbmodels"
)

func selectJobs() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectJobColumn...).
		From(dbmodels.TABLE_JOBS)
}

// ListJobs returns jobs most recent first, jobs that never started last. Statuses are compared
// case insensitively, as in Job.IsActive.
func (repo *PrintfarmDbRepository) ListJobs(
	ctx context.Context,
	exec Executor,
	filter models.JobListFilter,
) ([]models.Job, error) {
	query := selectJobs().OrderBy("start_time DESC NULLS LAST", "id DESC")
	switch filter {
	case models.JobListCurrent:
		query = query.Where(squirrel.Eq{"lower(status)": models.ActiveJobStatuses})
	case models.JobListHistory:
		query = query.Where(squirrel.NotEq{"lower(status)": models.ActiveJobStatuses})
	}
	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptJob)
}

func (repo *PrintfarmDbRepository) GetJobById(ctx context.Context, exec Executor, jobId int64) (models.Job, error) {
	return SqlToModel(ctx, exec, selectJobs().Where(squirrel.Eq{"id": jobId}), dbmodels.AdaptJob)
}

func (repo *PrintfarmDbRepository) CreateJob(ctx context.Context, exec Executor, input models.CreateJobInput) (models.Job, error) {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_JOBS).
		Columns(
			"printer_id",
			"filename",
			"material",
			"duration_estimated",
			"duration_slicer",
			"start_time",
			"end_time",
			"status",
		).
		Values(
			input.PrinterId,
			input.Filename,
			input.Material,
			input.DurationEstimated,
			input.DurationSlicer,
			input.StartTime,
			input.EndTime,
			input.Status,
		).
		Suffix("RETURNING " + strings.Join(dbmodels.SelectJobColumn, ", "))
	job, err := SqlToModel(ctx, exec, query, dbmodels.AdaptJob)
	if IsForeignKeyViolationError(err) {
		// the printer was deleted since it was checked
		return models.Job{}, errors.WithStack(models.ErrPrinterNotFound)
	}
	return job, err
}

func (repo *PrintfarmDbRepository) UpdateJob(ctx context.Context, exec Executor, input models.UpdateJobInput) (models.Job, error) {
	values := map[string]any{}
	if input.PrinterId != nil {
		values["printer_id"] = *input.PrinterId
	}
	if input.Filename != nil {
		values["filename"] = *input.Filename
	}
	if input.Material != nil {
		values["material"] = *input.Material
	}
	if input.DurationEstimated != nil {
		values["duration_estimated"] = *input.DurationEstimated
	}
	if input.DurationSlicer != nil {
		values["duration_slicer"] = *input.DurationSlicer
	}
	if input.StartTime != nil {
		values["start_time"] = *input.StartTime
	}
	if input.EndTime != nil {
		values["end_time"] = *input.EndTime
	}
	if input.Status != nil {
		values["status"] = *input.Status
	}
	if len(values) == 0 {
		return repo.GetJobById(ctx, exec, input.Id)
	}

	query := NewQueryBuilder().
		Update(dbmodels.TABLE_JOBS).
		SetMap(values).
		Where(squirrel.Eq{"id": input.Id}).
		Suffix("RETURNING " + strings.Join(dbmodels.SelectJobColumn, ", "))
	job, err := SqlToModel(ctx, exec, query, dbmodels.AdaptJob)
	if IsForeignKeyViolationError(err) {
		// the printer was deleted since it was checked
		return models.Job{}, errors.WithStack(models.ErrPrinterNotFound)
	}
	return job, err
}

func (repo *PrintfarmDbRepository) DeleteJob(ctx context.Context, exec Executor, jobId int64) error {
	deleted, err := ExecBuilder(ctx, exec, NewQueryBuilder().
		Delete(dbmodels.TABLE_JOBS).
		Where(squirrel.Eq{"id": jobId}))
	if err != nil {
		return err
	}
	if deleted == 0 {
		return errors.Wrapf(models.NotFoundError, "job %d", jobId)
	}
	return nil
}
