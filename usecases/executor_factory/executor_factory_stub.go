package executor_factory

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/printfarm/printfarm-backend/repositories"
)

// ExecutorFactoryStub runs queries and transactions against a pgxmock pool.
type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock: pool,
	}
}

type TransactionStub struct {
	pgx.Tx
}

func (stub TransactionStub) RawTx() pgx.Tx {
	return stub.Tx
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return stub.Mock
}

// GetExecutor lets the stub stand in for the repositories executor getter.
func (stub ExecutorFactoryStub) GetExecutor() repositories.Executor {
	return stub.Mock
}

func (stub ExecutorFactoryStub) Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error {
	tx, err := stub.Mock.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(TransactionStub{Tx: tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
