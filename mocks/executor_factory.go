package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/printfarm/printfarm-backend/repositories"
)

type ExecutorFactory struct {
	mock.Mock
}

func (e *ExecutorFactory) NewExecutor() repositories.Executor {
	args := e.Called()
	return args.Get(0).(repositories.Executor)
}

// TransactionFactory runs the callback against TxMock. The error set on the expectation is
// returned when the callback succeeds, to simulate a failed commit.
type TransactionFactory struct {
	mock.Mock
	TxMock *Transaction
}

func (t *TransactionFactory) Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error {
	args := t.Called(ctx, fn)
	err := fn(t.TxMock)
	if err != nil {
		return err
	}
	return args.Error(0)
}
