package metrics

import (
	"sync"
	"time"
)

type callStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu       sync.Mutex
	provider map[string]*callStats
	gateway  map[string]*callStats
	http     map[string]*callStats
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		provider: make(map[string]*callStats),
		gateway:  make(map[string]*callStats),
		http:     make(map[string]*callStats),
		otel:     otel,
	}
}

// RecordProviderAttempt increments counters for an upstream read and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := ensureStats(&r.mu, r.provider, provider)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordGatewayCall tracks an authenticated match mutation (verify/create/delete/confirm).
func (r *Recorder) RecordGatewayCall(operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := ensureStats(&r.mu, r.gateway, operation)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordGatewayCall(operation, duration, err)
	}
}

// RecordRateLimit tracks that an upstream response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := ensureStats(&r.mu, r.provider, provider)
	r.mu.Lock()
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// Snapshot is a copy of the current stats for one provider or gateway operation.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// ProviderSnapshot returns a copy of the stats recorded for a provider.
func (r *Recorder) ProviderSnapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	return snapshot(&r.mu, r.provider, provider)
}

// GatewaySnapshot returns a copy of the stats recorded for a gateway operation.
func (r *Recorder) GatewaySnapshot(operation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	return snapshot(&r.mu, r.gateway, operation)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.ProviderSnapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.ProviderSnapshot(provider).Errors
}

// RecordHTTPRequest tracks basic HTTP metrics, keyed by method and route
// pattern.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}

	stats := ensureStats(&r.mu, r.http, method+" "+path)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if status >= 500 {
		stats.errors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// HTTPSnapshot returns a copy of the stats recorded per method and route.
func (r *Recorder) HTTPSnapshot() map[string]Snapshot {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[string]Snapshot, len(r.http))
	for key, stats := range r.http {
		result[key] = Snapshot{
			Calls:           stats.calls,
			Errors:          stats.errors,
			RateLimitHits:   stats.rateLimitHits,
			LastRetryAfter:  stats.lastRetryAfter,
			LastCallLatency: stats.lastCallLatency,
		}
	}
	return result
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

func ensureStats(mu *sync.Mutex, m map[string]*callStats, key string) *callStats {
	mu.Lock()
	defer mu.Unlock()

	stats, ok := m[key]
	if !ok {
		stats = &callStats{}
		m[key] = stats
	}
	return stats
}

func snapshot(mu *sync.Mutex, m map[string]*callStats, key string) Snapshot {
	mu.Lock()
	defer mu.Unlock()

	stats, ok := m[key]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}
