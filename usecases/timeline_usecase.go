package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories"
	"github.com/printfarm/printfarm-backend/repositories/clock"
	"github.com/printfarm/printfarm-backend/usecases/executor_factory"
	"github.com/printfarm/printfarm-backend/usecases/timeline"
	"github.com/printfarm/printfarm-backend/utils"
)

// changes notified within this delay are sent as a single update
const timelineUpdateDelay = 500 * time.Millisecond

type TimelineRepository interface {
	ListPrinters(ctx context.Context, exec repositories.Executor) ([]models.Printer, error)
	ListJobs(ctx context.Context, exec repositories.Executor, filter models.JobListFilter) ([]models.Job, error)
}

type timelineListener interface {
	ListenTimelineChanges(ctx context.Context, onChange func(ctx context.Context)) error
}

type TimelineUsecase struct {
	executorFactory  executor_factory.ExecutorFactory
	repository       TimelineRepository
	timelineNotifier timelineListener
	clock            clock.Clock
	updateDelay      time.Duration
}

// BuildTimeline lists every printer with its jobs, most recent first.
func (usecase *TimelineUsecase) BuildTimeline(ctx context.Context) ([]models.TimelineItem, error) {
	exec := usecase.executorFactory.NewExecutor()
	printers, err := usecase.repository.ListPrinters(ctx, exec)
	if err != nil {
		return nil, err
	}
	jobs, err := usecase.repository.ListJobs(ctx, exec, models.JobListAll)
	if err != nil {
		return nil, err
	}
	return models.BuildTimelineItems(printers, jobs), nil
}

// TimestampedTimeline is the timeline as sent in reply to websocket messages.
func (usecase *TimelineUsecase) TimestampedTimeline(ctx context.Context) (models.TimelineUpdate, error) {
	items, err := usecase.BuildTimeline(ctx)
	if err != nil {
		return models.TimelineUpdate{}, err
	}
	now := usecase.clock.Now().UTC()
	return models.TimelineUpdate{Items: items, Timestamp: &now}, nil
}

// PublishTimelineUpdates broadcasts a fresh timeline to the hub subscribers when the timeline
// changes, until the context is cancelled. A burst of changes, such as a sync of every printer,
// results in a single update.
func (usecase *TimelineUsecase) PublishTimelineUpdates(ctx context.Context, hub *timeline.Hub) error {
	changed := make(chan struct{}, 1)
	stopped := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		usecase.broadcastTimelineChanges(ctx, hub, changed, stopped)
	}()

	err := usecase.timelineNotifier.ListenTimelineChanges(ctx, func(ctx context.Context) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	close(stopped)
	wg.Wait()
	return err
}

func (usecase *TimelineUsecase) broadcastTimelineChanges(
	ctx context.Context,
	hub *timeline.Hub,
	changed <-chan struct{},
	stopped <-chan struct{},
) {
	for {
		select {
		case <-changed:
		case <-stopped:
			select {
			case <-changed:
			default:
				return
			}
		}

		select {
		case <-time.After(usecase.updateDelay):
		case <-stopped:
		}
		select {
		case <-changed:
		default:
		}

		if ctx.Err() != nil {
			return
		}
		usecase.broadcastTimeline(ctx, hub)
	}
}

func (usecase *TimelineUsecase) broadcastTimeline(ctx context.Context, hub *timeline.Hub) {
	if hub.Len() == 0 {
		return
	}
	update, err := usecase.TimestampedTimeline(ctx)
	if err != nil {
		utils.LoggerFromContext(ctx).WarnContext(ctx, "could not build timeline update", "error", err.Error())
		return
	}
	hub.Broadcast(update)
}
