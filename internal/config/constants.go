package config

import "time"

const (
	envPort            = "PORT"
	envPollInterval    = "POLL_INTERVAL"
	envConfirmOnFinish = "NFFL_CONFIRM_ON_FINISH"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// League data changes on game days only; a relaxed refresh keeps the
	// browse surface current without hammering the backend.
	defaultPollInterval = 5 * Duration(time.Minute)
	defaultMetricsPort  = "9090"
)
