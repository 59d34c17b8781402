package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/printfarm/printfarm-backend/models"
)

type ExecutorGetter interface {
	GetExecutor() Executor
	Transaction(ctx context.Context, fn func(tx Transaction) error) error
}

type PgExecutorGetter struct {
	connectionPool *pgxpool.Pool
}

func NewExecutorGetter(pool *pgxpool.Pool) PgExecutorGetter {
	return PgExecutorGetter{
		connectionPool: pool,
	}
}

func (g PgExecutorGetter) Transaction(ctx context.Context, fn func(tx Transaction) error) error {
	err := pgx.BeginFunc(ctx, g.connectionPool, func(tx pgx.Tx) error {
		return fn(PgTx{tx: tx})
	})

	// helper: The callback can return ErrIgnoreRollBackError
	// to explicitly specify that the error should be ignored.
	if errors.Is(err, models.ErrIgnoreRollBackError) {
		return nil
	}
	return errors.Wrap(err, "Error executing transaction")
}

func (g PgExecutorGetter) GetExecutor() Executor {
	return g.connectionPool
}
