package usecases

import (
	"context"
	"time"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories"
	"github.com/printfarm/printfarm-backend/repositories/clock"
	"github.com/printfarm/printfarm-backend/usecases/executor_factory"
)

type DashboardRepository interface {
	ListPrinters(ctx context.Context, exec repositories.Executor) ([]models.Printer, error)
	ListJobs(ctx context.Context, exec repositories.Executor, filter models.JobListFilter) ([]models.Job, error)
	ListFilaments(ctx context.Context, exec repositories.Executor) ([]models.Filament, error)
}

type DashboardUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      DashboardRepository
	clock           clock.Clock
	location        *time.Location
}

func (usecase *DashboardUsecase) GetOverview(ctx context.Context) (models.DashboardOverview, error) {
	exec := usecase.executorFactory.NewExecutor()
	printers, err := usecase.repository.ListPrinters(ctx, exec)
	if err != nil {
		return models.DashboardOverview{}, err
	}
	jobs, err := usecase.repository.ListJobs(ctx, exec, models.JobListAll)
	if err != nil {
		return models.DashboardOverview{}, err
	}
	filaments, err := usecase.repository.ListFilaments(ctx, exec)
	if err != nil {
		return models.DashboardOverview{}, err
	}

	location := usecase.location
	if location == nil {
		location = time.UTC
	}
	return models.BuildDashboardOverview(printers, jobs, filaments, usecase.clock.Now().In(location)), nil
}
