package cmd

import (
	"time"

	"github.com/cockroachdb/errors"
)

type CompiledConfig struct {
	Version string
}

type ServerConfig struct {
	jwtSecret        string
	jwtLifetime      time.Duration
	loggingFormat    string
	sentryDsn        string
	localTimezone    string
	moonrakerTimeout time.Duration
	adminEmail       string
	adminPassword    string
}

func (config ServerConfig) Validate() error {
	if config.jwtSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if config.jwtLifetime <= 0 {
		return errors.New("JWT_EXPIRES_MINUTES must be positive")
	}
	if _, err := time.LoadLocation(config.localTimezone); err != nil {
		return errors.Wrapf(err, "LOCAL_TZ %q is not a valid timezone", config.localTimezone)
	}
	return nil
}

type WorkerConfig struct {
	loggingFormat       string
	sentryDsn           string
	syncInterval        time.Duration
	moonrakerTimeout    time.Duration
	syncConcurrency     int
	maxConcurrentWorker int
}

func (config WorkerConfig) Validate() error {
	if config.syncInterval < 0 {
		return errors.New("PRINTER_SYNC_INTERVAL_SECONDS can not be negative")
	}
	if config.moonrakerTimeout <= 0 {
		return errors.New("MOONRAKER_TIMEOUT_SECONDS must be positive")
	}
	if config.syncConcurrency <= 0 {
		return errors.New("MOONRAKER_SYNC_CONCURRENCY must be positive")
	}
	return nil
}
