package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	PollInterval    Duration
	ConfirmOnFinish bool
	Upstream        UpstreamConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		PollInterval:    durationEnvOrDefault(envPollInterval, defaultPollInterval),
		ConfirmOnFinish: boolEnvOrDefault(envConfirmOnFinish, false),
		Upstream:        loadUpstream(),
		Metrics:         loadMetrics(),
	}
}
