package cmd

import (
	"github.com/printfarm/printfarm-backend/infra"
	"github.com/printfarm/printfarm-backend/utils"
)

const appName = "printfarm-backend"

func pgConfigFromEnv() infra.PgConfig {
	connectionString := utils.GetEnv("PG_CONNECTION_STRING", "")
	if connectionString == "" {
		connectionString = utils.GetEnv("DATABASE_URL", "")
	}
	return infra.PgConfig{
		ConnectionString:   connectionString,
		Database:           utils.GetEnv("PG_DATABASE", "printfarm"),
		Hostname:           utils.GetEnv("PG_HOSTNAME", "localhost"),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", "postgres"),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
}

func telemetryConfigFromEnv() infra.TelemetryConfiguration {
	endpoint := utils.GetEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	return infra.TelemetryConfiguration{
		Enabled:         endpoint != "",
		ApplicationName: appName,
		Endpoint:        endpoint,
		SamplingRate:    utils.GetEnv("OTEL_SAMPLING_RATE", infra.DEFAULT_SAMPLING_RATE),
	}
}
