package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/printfarm/printfarm-backend/mocks"
	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/pure_utils"
)

func TestFilamentUsecase(t *testing.T) {
	ctx := context.Background()
	exec := new(mocks.Executor)

	newUsecase := func() (*FilamentUsecase, *mocks.FilamentRepository) {
		executorFactory := new(mocks.ExecutorFactory)
		executorFactory.On("NewExecutor").Return(exec)
		repository := new(mocks.FilamentRepository)
		return &FilamentUsecase{executorFactory: executorFactory, repository: repository}, repository
	}

	t.Run("create trims the name", func(t *testing.T) {
		usecase, repository := newUsecase()
		input := models.CreateFilamentInput{Name: "PLA Galaxy", StockGrams: pure_utils.Ptr(750.0)}
		repository.On("CreateFilament", ctx, exec, input).Return(models.Filament{Id: 1, Name: input.Name}, nil)

		filament, err := usecase.CreateFilament(ctx, models.CreateFilamentInput{
			Name:       " PLA Galaxy ",
			StockGrams: pure_utils.Ptr(750.0),
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), filament.Id)
		repository.AssertExpectations(t)
	})

	t.Run("create with blank name", func(t *testing.T) {
		usecase, _ := newUsecase()
		_, err := usecase.CreateFilament(ctx, models.CreateFilamentInput{Name: ""})
		assert.ErrorIs(t, err, models.BadParameterError)
	})

	t.Run("update with empty name", func(t *testing.T) {
		usecase, _ := newUsecase()
		_, err := usecase.UpdateFilament(ctx, models.UpdateFilamentInput{Id: 1, Name: pure_utils.Ptr(" ")})
		assert.ErrorIs(t, err, models.BadParameterError)
	})

	t.Run("update unknown filament", func(t *testing.T) {
		usecase, repository := newUsecase()
		input := models.UpdateFilamentInput{Id: 8, Brand: pure_utils.Ptr("Prusament")}
		repository.On("UpdateFilament", ctx, exec, input).Return(models.Filament{}, errors.Wrap(models.NotFoundError, "no rows"))

		_, err := usecase.UpdateFilament(ctx, input)
		assert.ErrorIs(t, err, models.ErrFilamentNotFound)
	})

	t.Run("delete unknown filament", func(t *testing.T) {
		usecase, repository := newUsecase()
		repository.On("DeleteFilament", ctx, exec, int64(8)).Return(errors.Wrap(models.NotFoundError, "no rows"))

		err := usecase.DeleteFilament(ctx, 8)
		assert.ErrorIs(t, err, models.ErrFilamentNotFound)
		assert.Equal(t, "filament not found", err.Error())
	})
}
