package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/printfarm/printfarm-backend/mocks"
	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/pure_utils"
	"github.com/printfarm/printfarm-backend/repositories/clock"
)

func TestGetOverview(t *testing.T) {
	ctx := context.Background()
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("timezone database not available")
	}
	// 1st of June in Paris, still May in UTC
	now := time.Date(2024, 5, 31, 22, 30, 0, 0, time.UTC)
	lateMay := time.Date(2024, 5, 31, 21, 0, 0, 0, time.UTC)
	earlyJune := time.Date(2024, 5, 31, 22, 15, 0, 0, time.UTC)

	exec := new(mocks.Executor)
	executorFactory := new(mocks.ExecutorFactory)
	executorFactory.On("NewExecutor").Return(exec)
	repository := new(mocks.JobRepository)
	repository.On("ListPrinters", ctx, exec).Return([]models.Printer{
		{Id: 1, Name: "Voron", Status: "printing"},
		{Id: 2, Name: "Prusa", Status: "offline"},
	}, nil)
	repository.On("ListJobs", ctx, exec, models.JobListAll).Return([]models.Job{
		{Id: 2, PrinterId: 1, Status: "printing", StartTime: &earlyJune},
		{Id: 1, PrinterId: 1, Status: "completed", StartTime: &lateMay, EndTime: &earlyJune},
	}, nil)
	repository.On("ListFilaments", ctx, exec).Return([]models.Filament{
		{Id: 1, Name: "PLA black", Material: pure_utils.Ptr("PLA"), StockGrams: pure_utils.Ptr(800.0)},
	}, nil)

	usecase := DashboardUsecase{
		executorFactory: executorFactory,
		repository:      repository,
		clock:           clock.NewMock(now),
		location:        paris,
	}

	overview, err := usecase.GetOverview(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, overview.ActivePrinters)
	assert.Equal(t, 2, overview.TotalPrinters)
	assert.Equal(t, 1, overview.JobsThisMonth)
	assert.Equal(t, 50, overview.SuccessRate)
	assert.Equal(t, []models.MaterialStock{{Material: "PLA", StockGrams: 800}}, overview.StockByMaterial)
}

func TestGetOverview_repository_error(t *testing.T) {
	ctx := context.Background()
	exec := new(mocks.Executor)
	executorFactory := new(mocks.ExecutorFactory)
	executorFactory.On("NewExecutor").Return(exec)
	repository := new(mocks.JobRepository)
	repository.On("ListPrinters", ctx, exec).Return([]models.Printer(nil), errors.New("connection reset"))

	usecase := DashboardUsecase{executorFactory: executorFactory, repository: repository, clock: clock.New()}

	_, err := usecase.GetOverview(ctx)
	assert.Error(t, err)
}
