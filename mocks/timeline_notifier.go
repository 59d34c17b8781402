package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/printfarm/printfarm-backend/repositories"
)

type TimelineNotifier struct {
	mock.Mock
}

func (m *TimelineNotifier) NotifyTimelineChanged(ctx context.Context, exec repositories.Executor) error {
	args := m.Called(ctx, exec)
	return args.Error(0)
}

// ListenTimelineChanges calls onChange as many times as the first value returned by the expectation.
func (m *TimelineNotifier) ListenTimelineChanges(ctx context.Context, onChange func(ctx context.Context)) error {
	args := m.Called(ctx, onChange)
	for range args.Int(0) {
		onChange(ctx)
	}
	return args.Error(1)
}
