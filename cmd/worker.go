package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	"github.com/printfarm/printfarm-backend/infra"
	"github.com/printfarm/printfarm-backend/jobs"
	"github.com/printfarm/printfarm-backend/repositories"
	"github.com/printfarm/printfarm-backend/usecases"
	"github.com/printfarm/printfarm-backend/usecases/worker_jobs"
	"github.com/printfarm/printfarm-backend/utils"
)

func RunWorker(config CompiledConfig) error {
	pgConfig := pgConfigFromEnv()
	workerConfig := WorkerConfig{
		loggingFormat:       utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:           utils.GetEnv("SENTRY_DSN", ""),
		syncInterval:        utils.GetEnvDurationSeconds("PRINTER_SYNC_INTERVAL_SECONDS", 30),
		moonrakerTimeout:    utils.GetEnvDurationSeconds("MOONRAKER_TIMEOUT_SECONDS", 10),
		syncConcurrency:     utils.GetEnv("MOONRAKER_SYNC_CONCURRENCY", usecases.DefaultMoonrakerSyncConcurrency),
		maxConcurrentWorker: utils.GetEnv("WORKER_MAX_CONCURRENCY", 10),
	}
	env := utils.GetEnv("ENV", "development")

	logger := utils.NewLogger(workerConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if err := workerConfig.Validate(); err != nil {
		logger.ErrorContext(ctx, "invalid worker configuration", "error", err.Error())
		return err
	}

	infra.SetupSentry(workerConfig.sentryDsn, env, config.Version)
	defer sentry.Flush(3 * time.Second)

	telemetryRessources, err := infra.InitTelemetry(ctx, telemetryConfigFromEnv(), config.Version)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		telemetryRessources = infra.NoopTelemetry()
	}
	defer func() {
		if err := telemetryRessources.Shutdown(context.Background()); err != nil {
			logger.WarnContext(ctx, "error shutting down telemetry", "error", err.Error())
		}
	}()

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		telemetryRessources.TracerProvider, pgConfig.MaxPoolConnections)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	defer pool.Close()

	repositories := repositories.NewRepositories(
		pool,
		repositories.WithMoonrakerTimeout(workerConfig.moonrakerTimeout),
	)
	uc := usecases.NewUsecases(repositories,
		usecases.WithMoonrakerSyncConcurrency(workerConfig.syncConcurrency),
	)

	workers := river.NewWorkers()
	river.AddWorker(workers, uc.NewPrinterSyncAllWorker())
	river.AddWorker(workers, uc.NewPrinterSyncWorker())

	periodicJobs := []*river.PeriodicJob{}
	if workerConfig.syncInterval > 0 {
		periodicJobs = append(periodicJobs, worker_jobs.NewPrinterSyncAllPeriodicJob(workerConfig.syncInterval))
	} else {
		logger.InfoContext(ctx, "Periodic printer sync is disabled")
	}

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		FetchPollInterval: 100 * time.Millisecond,
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: workerConfig.maxConcurrentWorker},
		},
		PeriodicJobs: periodicJobs,

		// Must be larger than the time it takes to process a job.
		RescueStuckJobsAfter: 5 * time.Minute,
		WorkerMiddleware:     jobs.WorkerMiddlewares(logger, telemetryRessources.Tracer),
		Workers:              workers,
	})
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	if err := riverClient.Start(ctx); err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	logger.InfoContext(ctx, "River client started", "sync_interval", workerConfig.syncInterval.String())

	// Teardown sequence
	sigintOrTerm := make(chan os.Signal, 1)
	signal.Notify(sigintOrTerm, syscall.SIGINT, syscall.SIGTERM)

	go cleanStop(ctx, sigintOrTerm, riverClient)

	<-riverClient.Stopped()
	logger.InfoContext(ctx, "River client stopped")

	return nil
}

// cleanStop waits for SIGINT/SIGTERM, then lets running jobs finish. A second signal, or the soft
// stop timeout, cancels the running jobs.
func cleanStop(ctx context.Context, sigintOrTerm chan os.Signal, riverClient *river.Client[pgx.Tx]) {
	logger := utils.LoggerFromContext(ctx)
	<-sigintOrTerm
	logger.InfoContext(ctx, "Received SIGINT/SIGTERM; initiating soft stop (try to wait for jobs to finish)")

	softStopCtx, softStopCtxCancel := context.WithTimeout(ctx, 10*time.Second)
	defer softStopCtxCancel()

	go func() {
		select {
		case <-sigintOrTerm:
			logger.InfoContext(ctx, "Received SIGINT/SIGTERM again; initiating hard stop (cancel everything)")
			softStopCtxCancel()
		case <-softStopCtx.Done():
			logger.InfoContext(ctx, "Soft stop timeout; initiating hard stop (cancel everything)")
		}
	}()

	err := riverClient.Stop(softStopCtx)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		logger.ErrorContext(ctx, "Soft stop failed", "error", err)
		panic(err)
	}
	if err == nil {
		logger.InfoContext(ctx, "Soft stop succeeded")
		return
	}

	hardStopCtx, hardStopCtxCancel := context.WithTimeout(ctx, 10*time.Second)
	defer hardStopCtxCancel()

	// a job ignoring the context cancellation can still block the hard stop
	err = riverClient.StopAndCancel(hardStopCtx)
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		logger.InfoContext(ctx, "Hard stop timeout; ignoring stop procedure and exiting unsafely")
	} else if err != nil {
		panic(err)
	}
}
