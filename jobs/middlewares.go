package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/printfarm/printfarm-backend/utils"
)

const sdkIdentifier = "sentry.go.river.printfarm"

// WorkerMiddlewares is the middleware stack of every worker, outermost first.
func WorkerMiddlewares(logger *slog.Logger, tracer trace.Tracer) []rivertype.WorkerMiddleware {
	return []rivertype.WorkerMiddleware{
		NewRecoveredMiddleware(),
		NewSentryMiddleware(),
		NewTracingMiddleware(tracer),
		NewLoggerMiddleware(logger),
	}
}

// Logger middleware

type LoggerMiddleware struct {
	l *slog.Logger
}

func NewLoggerMiddleware(l *slog.Logger) LoggerMiddleware {
	return LoggerMiddleware{l: l}
}

// Work stores a job scoped logger in the context. Failures are reported to sentry once the
// job has used all its attempts, earlier ones are only logged.
func (m LoggerMiddleware) Work(ctx context.Context, job *rivertype.JobRow, doInner func(context.Context) error) error {
	logger := m.l.With(
		"job_id", job.ID,
		"job_kind", job.Kind,
		"job_attempt", job.Attempt,
		"queue", job.Queue,
	)
	start := time.Now()
	logger.DebugContext(ctx, fmt.Sprintf("Starting %s job n°%d - attempt %d", job.Kind, job.ID, job.Attempt))

	ctx = utils.StoreLoggerInContext(ctx, logger)
	err := doInner(ctx)
	duration := time.Since(start)

	var snoozeErr *river.JobSnoozeError
	switch {
	case err == nil:
		logger.InfoContext(ctx, fmt.Sprintf("%s job n°%d succeeded after %s", job.Kind, job.ID, duration))
	case errors.As(err, &snoozeErr):
		logger.InfoContext(ctx, fmt.Sprintf("%s job n°%d snoozed after %s", job.Kind, job.ID, duration))
	case job.Attempt >= job.MaxAttempts:
		utils.LogAndReportSentryError(ctx, errors.Wrapf(err, "%s job n°%d failed after its last attempt", job.Kind, job.ID))
	default:
		logger.WarnContext(ctx, fmt.Sprintf("%s job n°%d failed after %s, will be retried", job.Kind, job.ID, duration),
			"error", err.Error())
	}
	return err
}

// Recovered middleware

type RecovererMiddleware struct{}

func NewRecoveredMiddleware() RecovererMiddleware {
	return RecovererMiddleware{}
}

func (m RecovererMiddleware) Work(ctx context.Context, job *rivertype.JobRow, doInner func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("panic in %s job: %v", job.Kind, r)
		}
	}()
	return doInner(ctx)
}

// Opentelemetry tracing middleware

type TracingMiddleware struct {
	tracer trace.Tracer
}

func NewTracingMiddleware(tracer trace.Tracer) TracingMiddleware {
	return TracingMiddleware{tracer: tracer}
}

func (m TracingMiddleware) Work(ctx context.Context, job *rivertype.JobRow, doInner func(context.Context) error) error {
	ctx, span := m.tracer.Start(
		ctx,
		job.Kind,
		trace.WithAttributes(
			attribute.Int64("job_id", job.ID),
			attribute.String("job_kind", job.Kind),
			attribute.Int("job_attempt", job.Attempt),
			attribute.String("queue", job.Queue),
		),
	)
	defer span.End()

	err := doInner(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// Sentry middleware

type SentryMiddleware struct{}

func NewSentryMiddleware() SentryMiddleware {
	return SentryMiddleware{}
}

func (m SentryMiddleware) Work(ctx context.Context, job *rivertype.JobRow, doInner func(context.Context) error) error {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
		ctx = sentry.SetHubOnContext(ctx, hub)
	}
	if client := hub.Client(); client != nil {
		client.SetSDKIdentifier(sdkIdentifier)
	}

	scope := hub.PushScope()
	defer hub.PopScope()
	scope.SetTag("job_id", strconv.FormatInt(job.ID, 10))
	scope.SetTag("job_kind", job.Kind)
	scope.SetTag("job_attempt", strconv.Itoa(job.Attempt))
	var args map[string]any
	if err := json.Unmarshal(job.EncodedArgs, &args); err != nil {
		scope.SetTag("payload", "error decoding payload")
	} else {
		scope.SetContext("payload", args)
	}

	transaction := sentry.StartTransaction(ctx,
		fmt.Sprintf("river task %s", job.Kind),
		sentry.WithOpName("river.task"),
		sentry.WithTransactionSource(sentry.SourceTask),
	)
	defer transaction.Finish()

	err := doInner(transaction.Context())
	if err != nil {
		transaction.Status = sentry.SpanStatusInternalError
	}
	return err
}
