package repositories

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/printfarm/printfarm-backend/utils"
)

const (
	TimelineChannel         = "timeline_updates"
	timelineListenRetryWait = 5 * time.Second
)

// TimelineNotifier broadcasts timeline changes between processes through Postgres LISTEN/NOTIFY.
// Notifications sent in a transaction are delivered when it commits.
type TimelineNotifier interface {
	NotifyTimelineChanged(ctx context.Context, exec Executor) error
	ListenTimelineChanges(ctx context.Context, onChange func(ctx context.Context)) error
}

type PgTimelineNotifier struct {
	pool *pgxpool.Pool
}

func NewTimelineNotifier(pool *pgxpool.Pool) PgTimelineNotifier {
	return PgTimelineNotifier{pool: pool}
}

func (n PgTimelineNotifier) NotifyTimelineChanged(ctx context.Context, exec Executor) error {
	_, err := exec.Exec(ctx, "SELECT pg_notify($1, '')", TimelineChannel)
	return errors.Wrap(err, "could not notify timeline change")
}

// ListenTimelineChanges blocks until the context is cancelled, calling onChange for every
// notification. The connection is re-established after failures.
func (n PgTimelineNotifier) ListenTimelineChanges(ctx context.Context, onChange func(ctx context.Context)) error {
	logger := utils.LoggerFromContext(ctx)
	for {
		err := n.listenOnce(ctx, onChange)
		if ctx.Err() != nil {
			return nil
		}
		logger.WarnContext(ctx, "timeline listener disconnected, retrying", "error", err.Error())

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(timelineListenRetryWait):
		}
	}
}

func (n PgTimelineNotifier) listenOnce(ctx context.Context, onChange func(ctx context.Context)) error {
	conn, err := n.pool.Acquire(ctx)
	if err != nil {
		return errors.Wrap(err, "could not acquire connection")
	}
	defer func() {
		_, _ = conn.Exec(context.WithoutCancel(ctx), "UNLISTEN *")
		conn.Release()
	}()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{TimelineChannel}.Sanitize()); err != nil {
		return errors.Wrap(err, "could not listen to timeline channel")
	}

	for {
		if _, err := conn.Conn().WaitForNotification(ctx); err != nil {
			return errors.Wrap(err, "error waiting for notification")
		}
		onChange(ctx)
	}
}
