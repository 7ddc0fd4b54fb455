package config

import "time"

const (
	envNfflBaseURL = "NFFL_BASE_URL"
	envNfflTimeout = "NFFL_TIMEOUT"
	envNfflRetries = "NFFL_RETRY_ATTEMPTS"

	defaultNfflBaseURL = "https://api.nffl.app/v1"
	defaultNfflTimeout = 15 * Duration(time.Second)
	defaultNfflRetries = 3
)

// UpstreamConfig controls how we talk to the NFFL backend API.
type UpstreamConfig struct {
	BaseURL       string
	Timeout       Duration
	RetryAttempts int
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		BaseURL:       envOrDefault(envNfflBaseURL, defaultNfflBaseURL),
		Timeout:       durationEnvOrDefault(envNfflTimeout, defaultNfflTimeout),
		RetryAttempts: intEnvOrDefault(envNfflRetries, defaultNfflRetries),
	}
}
