package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories/dbmodels"
)

func (repo *PrintfarmDbRepository) GetUserByEmail(ctx context.Context, exec Executor, email string) (models.User, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectUserColumn...).
		From(dbmodels.TABLE_USERS).
		Where(squirrel.Eq{"email": email})
	return SqlToModel(ctx, exec, query, dbmodels.AdaptUser)
}

func (repo *PrintfarmDbRepository) CreateUser(ctx context.Context, exec Executor, input models.CreateUserInput) (models.User, error) {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_USERS).
		Columns("email", "hashed_password").
		Values(input.Email, input.HashedPassword).
		Suffix("RETURNING " + strings.Join(dbmodels.SelectUserColumn, ", "))
	user, err := SqlToModel(ctx, exec, query, dbmodels.AdaptUser)
	if IsUniqueViolationError(err) {
		return models.User{}, errors.Wrapf(models.ConflictError, "user %s already exists", input.Email)
	}
	return user, err
}
