package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories/dbmodels"
)

func selectSettings() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectSettingColumn...).
		From(dbmodels.TABLE_SETTINGS)
}

func (repo *PrintfarmDbRepository) ListSettings(ctx context.Context, exec Executor) ([]models.Setting, error) {
	return SqlToListOfModels(ctx, exec, selectSettings().OrderBy("key"), dbmodels.AdaptSetting)
}

func (repo *PrintfarmDbRepository) GetSettingById(ctx context.Context, exec Executor, settingId int64) (models.Setting, error) {
	return SqlToModel(ctx, exec, selectSettings().Where(squirrel.Eq{"id": settingId}), dbmodels.AdaptSetting)
}

func (repo *PrintfarmDbRepository) CreateSetting(ctx context.Context, exec Executor, input models.CreateSettingInput) (models.Setting, error) {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_SETTINGS).
		Columns("key", "value").
		Values(input.Key, input.Value).
		Suffix("RETURNING " + strings.Join(dbmodels.SelectSettingColumn, ", "))
	setting, err := SqlToModel(ctx, exec, query, dbmodels.AdaptSetting)
	if IsUniqueViolationError(err) {
		return models.Setting{}, errors.WithStack(models.ErrSettingKeyExists)
	}
	return setting, err
}

func (repo *PrintfarmDbRepository) UpdateSetting(ctx context.Context, exec Executor, input models.UpdateSettingInput) (models.Setting, error) {
	values := map[string]any{}
	if input.Key != nil {
		values["key"] = *input.Key
	}
	if input.Value != nil {
		values["value"] = *input.Value
	}
	if len(values) == 0 {
		return repo.GetSettingById(ctx, exec, input.Id)
	}

	query := NewQueryBuilder().
		Update(dbmodels.TABLE_SETTINGS).
		SetMap(values).
		Where(squirrel.Eq{"id": input.Id}).
		Suffix("RETURNING " + strings.Join(dbmodels.SelectSettingColumn, ", "))
	setting, err := SqlToModel(ctx, exec, query, dbmodels.AdaptSetting)
	if IsUniqueViolationError(err) {
		return models.Setting{}, errors.WithStack(models.ErrSettingKeyExists)
	}
	return setting, err
}

func (repo *PrintfarmDbRepository) DeleteSetting(ctx context.Context, exec Executor, settingId int64) error {
	deleted, err := ExecBuilder(ctx, exec, NewQueryBuilder().
		Delete(dbmodels.TABLE_SETTINGS).
		Where(squirrel.Eq{"id": settingId}))
	if err != nil {
		return err
	}
	if deleted == 0 {
		return errors.Wrapf(models.NotFoundError, "setting %d", settingId)
	}
	return nil
}
