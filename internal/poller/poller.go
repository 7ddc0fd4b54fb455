package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nffl-league-service/internal/domain"
	"nffl-league-service/internal/logging"
	"nffl-league-service/internal/metrics"
	"nffl-league-service/internal/providers"
)

const defaultInterval = 5 * time.Minute

// Sink receives a freshly fetched league snapshot.
type Sink interface {
	SetTeams([]domain.Team)
	SetPlayers([]domain.Player)
	SetGameDays([]domain.GameDay)
	SetMatches([]domain.Match)
	SetSeasons([]domain.Season)
}

// Poller refreshes the in-memory league snapshot from the upstream on an
// interval. Stats are intentionally not polled; they are fetched on demand.
type Poller struct {
	provider providers.LeagueProvider
	sink     Sink
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider providers.LeagueProvider, sink Sink, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		sink:     sink,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm data on boot.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	err := p.refresh(ctx, start)
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), err)
	}
	if err != nil {
		p.logError("poller refresh failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}
	p.recordSuccess(start)
}

// refresh fetches every section and only then replaces the sink's snapshot,
// so a partial upstream failure leaves the previous snapshot intact.
func (p *Poller) refresh(ctx context.Context, start time.Time) error {
	teams, err := p.provider.FetchTeams(ctx)
	if err != nil {
		return err
	}
	players, err := p.provider.FetchPlayers(ctx, 0)
	if err != nil {
		return err
	}
	gameDays, err := p.provider.FetchGameDays(ctx)
	if err != nil {
		return err
	}
	matches, err := p.provider.FetchMatches(ctx, providers.MatchFilter{})
	if err != nil {
		return err
	}
	seasons, err := p.provider.FetchSeasons(ctx)
	if err != nil {
		return err
	}

	p.sink.SetTeams(teams)
	p.sink.SetPlayers(players)
	p.sink.SetGameDays(gameDays)
	p.sink.SetMatches(matches)
	p.sink.SetSeasons(seasons)

	p.logInfo("poller refreshed league snapshot",
		"teams", len(teams),
		"players", len(players),
		"game_days", len(gameDays),
		"matches", len(matches),
		"seasons", len(seasons),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
