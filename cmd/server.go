package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	"github.com/printfarm/printfarm-backend/api"
	"github.com/printfarm/printfarm-backend/infra"
	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories"
	"github.com/printfarm/printfarm-backend/usecases"
	"github.com/printfarm/printfarm-backend/usecases/timeline"
	"github.com/printfarm/printfarm-backend/utils"
)

func RunServer(config CompiledConfig) error {
	// This is where we read the environment variables and set up the configuration for the application.
	apiConfig := api.Configuration{
		Env:               utils.GetEnv("ENV", "development"),
		AppName:           utils.GetEnv("APP_NAME", "3D Print Manager"),
		AppVersion:        config.Version,
		Port:              utils.GetEnv("PORT", "8000"),
		CorsOrigins:       utils.GetEnvList("CORS_ORIGINS", "*"),
		DefaultTimeout:    utils.GetEnvDurationSeconds("DEFAULT_TIMEOUT_SECOND", 30),
		RateLimitRequests: utils.GetEnv("RATE_LIMIT_REQUESTS", 200),
		RateLimitWindow:   utils.GetEnvDurationSeconds("RATE_LIMIT_WINDOW", 60),
		EnablePrometheus:  utils.GetEnv("ENABLE_PROMETHEUS", false),
	}
	pgConfig := pgConfigFromEnv()
	serverConfig := ServerConfig{
		jwtSecret:        utils.GetRequiredEnv[string]("JWT_SECRET"),
		jwtLifetime:      time.Duration(utils.GetEnv("JWT_EXPIRES_MINUTES", 120)) * time.Minute,
		loggingFormat:    utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:        utils.GetEnv("SENTRY_DSN", ""),
		localTimezone:    utils.GetEnv("LOCAL_TZ", "UTC"),
		moonrakerTimeout: utils.GetEnvDurationSeconds("MOONRAKER_TIMEOUT_SECONDS", 10),
		adminEmail:       utils.GetEnv("ADMIN_EMAIL", ""),
		adminPassword:    utils.GetEnv("ADMIN_PASSWORD", ""),
	}

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if err := serverConfig.Validate(); err != nil {
		logger.ErrorContext(ctx, "invalid server configuration", "error", err.Error())
		return err
	}
	location, _ := time.LoadLocation(serverConfig.localTimezone)
	apiConfig.Location = location

	infra.SetupSentry(serverConfig.sentryDsn, apiConfig.Env, config.Version)
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

	// Insert-only client: the server enqueues printer sync jobs, the worker runs them.
	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{})
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	repositories := repositories.NewRepositories(
		pool,
		repositories.WithRiverClient(riverClient),
		repositories.WithJwtSigning([]byte(serverConfig.jwtSecret), serverConfig.jwtLifetime),
		repositories.WithMoonrakerTimeout(serverConfig.moonrakerTimeout),
	)

	uc := usecases.NewUsecases(repositories,
		usecases.WithLocation(location),
		usecases.WithMoonrakerSyncConcurrency(utils.GetEnv("MOONRAKER_SYNC_CONCURRENCY",
			usecases.DefaultMoonrakerSyncConcurrency)),
	)

	////////////////////////////////////////////////////////////
	// Seed the database
	////////////////////////////////////////////////////////////
	seedUsecase := uc.NewSeedUseCase()
	if err := seedUsecase.SeedAdmin(ctx, models.SeedConfiguration{
		AdminEmail:    serverConfig.adminEmail,
		AdminPassword: serverConfig.adminPassword,
	}); err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	if err := api.RegisterValidators(); err != nil {
		return err
	}

	authUsecase := uc.NewAuthUsecase()
	auth := utils.NewAuthentication(&authUsecase)
	hub := timeline.NewHub(timeline.DefaultSubscriberBufferSize)

	router, err := api.InitRouterMiddlewares(ctx, apiConfig, telemetryRessources)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	server := api.NewServer(router, apiConfig, uc, auth, hub)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		timelineUsecase := uc.NewTimelineUsecase()
		if err := timelineUsecase.PublishTimelineUpdates(notify, hub); err != nil {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "timeline updates stopped"))
		}
	}()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while serving the app"))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// websockets are hijacked connections, the server shutdown does not wait for them
	hub.Close()
	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogAndReportSentryError(
			ctx,
			errors.Wrap(err, "Error while shutting down the server"),
		)
		return err
	}

	return nil
}
