package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories/dbmodels"
)

func selectFilaments() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectFilamentColumn...).
		From(dbmodels.TABLE_FILAMENTS)
}

func (repo *PrintfarmDbRepository) ListFilaments(ctx context.Context, exec Executor) ([]models.Filament, error) {
	return SqlToListOfModels(ctx, exec, selectFilaments().OrderBy("id"), dbmodels.AdaptFilament)
}

func (repo *PrintfarmDbRepository) GetFilamentById(ctx context.Context, exec Executor, filamentId int64) (models.Filament, error) {
	return SqlToModel(ctx, exec, selectFilaments().Where(squirrel.Eq{"id": filamentId}), dbmodels.AdaptFilament)
}

func (repo *PrintfarmDbRepository) CreateFilament(
	ctx context.Context,
	exec Executor,
	input models.CreateFilamentInput,
) (models.Filament, error) {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_FILAMENTS).
		Columns("name", "color", "material", "price_per_kg", "stock_grams", "brand").
		Values(input.Name, input.Color, input.Material, input.PricePerKg, input.StockGrams, input.Brand).
		Suffix("RETURNING " + strings.Join(dbmodels.SelectFilamentColumn, ", "))
	return SqlToModel(ctx, exec, query, dbmodels.AdaptFilament)
}

func (repo *PrintfarmDbRepository) UpdateFilament(
	ctx context.Context,
	exec Executor,
	input models.UpdateFilamentInput,
) (models.Filament, error) {
	values := map[string]any{}
	if input.Name != nil {
		values["name"] = *input.Name
	}
	if input.Color != nil {
		values["color"] = *input.Color
	}
	if input.Material != nil {
		values["material"] = *input.Material
	}
	if input.PricePerKg != nil {
		values["price_per_kg"] = *input.PricePerKg
	}
	if input.StockGrams != nil {
		values["stock_grams"] = *input.StockGrams
	}
	if input.Brand != nil {
		values["brand"] = *input.Brand
	}
	if len(values) == 0 {
		return repo.GetFilamentById(ctx, exec, input.Id)
	}

	query := NewQueryBuilder().
		Update(dbmodels.TABLE_FILAMENTS).
		SetMap(values).
		Where(squirrel.Eq{"id": input.Id}).
		Suffix("RETURNING " + strings.Join(dbmodels.SelectFilamentColumn, ", "))
	return SqlToModel(ctx, exec, query, dbmodels.AdaptFilament)
}

func (repo *PrintfarmDbRepository) DeleteFilament(ctx context.Context, exec Executor, filamentId int64) error {
	deleted, err := ExecBuilder(ctx, exec, NewQueryBuilder().
		Delete(dbmodels.TABLE_FILAMENTS).
		Where(squirrel.Eq{"id": filamentId}))
	if err != nil {
		return err
	}
	if deleted == 0 {
		return errors.Wrapf(models.NotFoundError, "filament %d", filamentId)
	}
	return nil
}
