package mocks

import (
	"context"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories"
)

// JobRepository also lists printers and filaments, for the usecases aggregating them with jobs.
type JobRepository struct {
	PrinterRepository
}

func (m *JobRepository) ListJobs(ctx context.Context, exec repositories.Executor, filter models.JobListFilter) ([]models.Job, error) {
	args := m.Called(ctx, exec, filter)
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *JobRepository) GetJobById(ctx context.Context, exec repositories.Executor, jobId int64) (models.Job, error) {
	args := m.Called(ctx, exec, jobId)
	return args.Get(0).(models.Job), args.Error(1)
}

func (m *JobRepository) CreateJob(ctx context.Context, exec repositories.Executor, input models.CreateJobInput) (models.Job, error) {
	args := m.Called(ctx, exec, input)
	return args.Get(0).(models.Job), args.Error(1)
}

func (m *JobRepository) UpdateJob(ctx context.Context, exec repositories.Executor, input models.UpdateJobInput) (models.Job, error) {
	args := m.Called(ctx, exec, input)
	return args.Get(0).(models.Job), args.Error(1)
}

func (m *JobRepository) DeleteJob(ctx context.Context, exec repositories.Executor, jobId int64) error {
	args := m.Called(ctx, exec, jobId)
	return args.Error(0)
}

func (m *JobRepository) ListFilaments(ctx context.Context, exec repositories.Executor) ([]models.Filament, error) {
	args := m.Called(ctx, exec)
	return args.Get(0).([]models.Filament), args.Error(1)
}
