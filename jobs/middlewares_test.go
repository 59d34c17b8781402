package jobs

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/printfarm/printfarm-backend/utils"
)

func testJob(attempt, maxAttempts int) *rivertype.JobRow {
	return &rivertype.JobRow{
		ID:          12,
		Kind:        "printer_sync",
		Attempt:     attempt,
		MaxAttempts: maxAttempts,
		Queue:       "default",
		EncodedArgs: []byte(`{"printer_id": 3}`),
	}
}

func TestLoggerMiddleware_StoresJobLogger(t *testing.T) {
	var buf bytes.Buffer
	m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

	err := m.Work(context.Background(), testJob(1, 3), func(ctx context.Context) error {
		utils.LoggerFromContext(ctx).InfoContext(ctx, "syncing")
		return nil
	})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "msg=syncing job_id=12 job_kind=printer_sync")
	assert.Contains(t, buf.String(), "printer_sync job n°12 succeeded")
}

func TestLoggerMiddleware_RetriedFailure(t *testing.T) {
	var buf bytes.Buffer
	m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))
	jobErr := errors.New("moonraker unreachable")

	err := m.Work(context.Background(), testJob(1, 3), func(ctx context.Context) error {
		return jobErr
	})

	assert.ErrorIs(t, err, jobErr)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "will be retried")
}

func TestRecovererMiddleware(t *testing.T) {
	m := NewRecoveredMiddleware()

	err := m.Work(context.Background(), testJob(1, 1), func(ctx context.Context) error {
		panic("boom")
	})

	assert.ErrorContains(t, err, "panic in printer_sync job: boom")
}

func TestWorkerMiddlewares_Chain(t *testing.T) {
	middlewares := WorkerMiddlewares(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		noop.NewTracerProvider().Tracer(""))
	assert.Len(t, middlewares, 4)

	tracing := NewTracingMiddleware(noop.NewTracerProvider().Tracer(""))
	called := false
	err := tracing.Work(context.Background(), testJob(1, 1), func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}
