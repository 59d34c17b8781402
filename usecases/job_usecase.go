package usecases

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories"
	"github.com/printfarm/printfarm-backend/usecases/executor_factory"
)

type JobRepository interface {
	GetPrinterById(ctx context.Context, exec repositories.Executor, printerId int64) (models.Printer, error)
	ListJobs(ctx context.Context, exec repositories.Executor, filter models.JobListFilter) ([]models.Job, error)
	GetJobById(ctx context.Context, exec repositories.Executor, jobId int64) (models.Job, error)
	CreateJob(ctx context.Context, exec repositories.Executor, input models.CreateJobInput) (models.Job, error)
	UpdateJob(ctx context.Context, exec repositories.Executor, input models.UpdateJobInput) (models.Job, error)
	DeleteJob(ctx context.Context, exec repositories.Executor, jobId int64) error
}

type JobUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         JobRepository
	timelineNotifier   timelineNotifier
}

func (usecase *JobUsecase) ListJobs(ctx context.Context, filter models.JobListFilter) ([]models.Job, error) {
	return usecase.repository.ListJobs(ctx, usecase.executorFactory.NewExecutor(), filter)
}

func (usecase *JobUsecase) CreateJob(ctx context.Context, input models.CreateJobInput) (models.Job, error) {
	input.Filename = strings.TrimSpace(input.Filename)
	if input.Filename == "" {
		return models.Job{}, errors.Wrap(models.BadParameterError, "filename is required")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (models.Job, error) {
		if err := usecase.checkPrinterExists(ctx, tx, input.PrinterId); err != nil {
			return models.Job{}, err
		}
		job, err := usecase.repository.CreateJob(ctx, tx, input)
		if err != nil {
			return models.Job{}, err
		}
		if err := usecase.timelineNotifier.NotifyTimelineChanged(ctx, tx); err != nil {
			return models.Job{}, err
		}
		return job, nil
	})
}

func (usecase *JobUsecase) UpdateJob(ctx context.Context, input models.UpdateJobInput) (models.Job, error) {
	if input.Filename != nil && strings.TrimSpace(*input.Filename) == "" {
		return models.Job{}, errors.Wrap(models.BadParameterError, "filename can not be empty")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (models.Job, error) {
		if _, err := usecase.repository.GetJobById(ctx, tx, input.Id); errors.Is(err, models.NotFoundError) {
			return models.Job{}, errors.WithStack(models.ErrJobNotFound)
		} else if err != nil {
			return models.Job{}, err
		}
		if input.PrinterId != nil {
			if err := usecase.checkPrinterExists(ctx, tx, *input.PrinterId); err != nil {
				return models.Job{}, err
			}
		}

		job, err := usecase.repository.UpdateJob(ctx, tx, input)
		if err != nil {
			return models.Job{}, err
		}
		if err := usecase.timelineNotifier.NotifyTimelineChanged(ctx, tx); err != nil {
			return models.Job{}, err
		}
		return job, nil
	})
}

func (usecase *JobUsecase) DeleteJob(ctx context.Context, jobId int64) error {
	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		err := usecase.repository.DeleteJob(ctx, tx, jobId)
		if errors.Is(err, models.NotFoundError) {
			return errors.WithStack(models.ErrJobNotFound)
		} else if err != nil {
			return err
		}
		return usecase.timelineNotifier.NotifyTimelineChanged(ctx, tx)
	})
}

func (usecase *JobUsecase) checkPrinterExists(ctx context.Context, exec repositories.Executor, printerId int64) error {
	_, err := usecase.repository.GetPrinterById(ctx, exec, printerId)
	if errors.Is(err, models.NotFoundError) {
		return errors.WithStack(models.ErrPrinterNotFound)
	}
	return err
}
