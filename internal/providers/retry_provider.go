package providers

import (
	"context"
	"log/slog"
	"time"

	"nffl-league-service/internal/domain"
	"nffl-league-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a LeagueProvider with retry/backoff behavior on the
// read paths. Mutating match-auth calls are never retried; they live on the
// gateway, not here.
type retryingProvider struct {
	inner       LeagueProvider
	logger      *slog.Logger
	recorder    *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner LeagueProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) LeagueProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if name == "" {
		name = "nffl"
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		recorder:    recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	return withRetry(r, ctx, "teams", r.inner.FetchTeams)
}

func (r *retryingProvider) FetchPlayers(ctx context.Context, teamID int) ([]domain.Player, error) {
	return withRetry(r, ctx, "players", func(ctx context.Context) ([]domain.Player, error) {
		return r.inner.FetchPlayers(ctx, teamID)
	})
}

func (r *retryingProvider) FetchGameDays(ctx context.Context) ([]domain.GameDay, error) {
	return withRetry(r, ctx, "game_days", r.inner.FetchGameDays)
}

func (r *retryingProvider) FetchMatches(ctx context.Context, filter MatchFilter) ([]domain.Match, error) {
	return withRetry(r, ctx, "matches", func(ctx context.Context) ([]domain.Match, error) {
		return r.inner.FetchMatches(ctx, filter)
	})
}

func (r *retryingProvider) FetchMatch(ctx context.Context, matchID int) (domain.Match, error) {
	return withRetry(r, ctx, "match", func(ctx context.Context) (domain.Match, error) {
		return r.inner.FetchMatch(ctx, matchID)
	})
}

func (r *retryingProvider) FetchSeasons(ctx context.Context) ([]domain.Season, error) {
	return withRetry(r, ctx, "seasons", r.inner.FetchSeasons)
}

func (r *retryingProvider) FetchTeamStats(ctx context.Context, teamID int) (domain.TeamStats, error) {
	return withRetry(r, ctx, "team_stats", func(ctx context.Context) (domain.TeamStats, error) {
		return r.inner.FetchTeamStats(ctx, teamID)
	})
}

func (r *retryingProvider) FetchPlayerStats(ctx context.Context, playerID int) (domain.PlayerStats, error) {
	return withRetry(r, ctx, "player_stats", func(ctx context.Context) (domain.PlayerStats, error) {
		return r.inner.FetchPlayerStats(ctx, playerID)
	})
}

func withRetry[T any](r *retryingProvider, ctx context.Context, op string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		result, err := fn(ctx)
		r.recorder.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if rlErr, ok := AsRateLimitError(err); ok {
			r.recorder.RecordRateLimit(r.name, rlErr.RetryAfter)
		}

		if attempt == r.maxAttempts {
			break
		}

		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch retry",
			"operation", op, "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}

	logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch failed",
		"operation", op, "attempts", r.maxAttempts, "err", lastErr)
	return zero, lastErr
}
