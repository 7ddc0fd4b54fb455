package server

import (
	"log/slog"
	"net/http"

	"nffl-league-service/internal/config"
	"nffl-league-service/internal/metrics"
	"nffl-league-service/internal/providers"
	"nffl-league-service/internal/providers/nffl"
)

// providerFactory assembles the NFFL client and its read-side wrappers. The
// raw client is kept alongside the wrapped provider because the match-auth
// gateway operations must not pick up retry behavior.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) (*nffl.Client, providers.LeagueProvider) {
	client := nffl.NewClient(nffl.Config{
		BaseURL:  cfg.Upstream.BaseURL,
		Recorder: f.metrics,
		HTTPClient: &http.Client{
			Timeout: cfg.Upstream.Timeout,
		},
	})
	reads := providers.NewRetryingProvider(client, f.logger, f.metrics, "nffl", cfg.Upstream.RetryAttempts, 0)
	return client, reads
}
