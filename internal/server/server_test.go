package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"nffl-league-service/internal/config"
	"nffl-league-service/internal/domain"
	"nffl-league-service/internal/poller"
	"nffl-league-service/internal/providers"
	"nffl-league-service/internal/testutil"
)

type stubHTTPServer struct {
	listenErr   error
	shutdowns   atomic.Int64
	listenCalls atomic.Int64
	handler     http.Handler
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls.Add(1)
	if s.listenErr != nil {
		return s.listenErr
	}
	return http.ErrServerClosed
}

func (s *stubHTTPServer) Shutdown(context.Context) error {
	s.shutdowns.Add(1)
	return nil
}

func (s *stubHTTPServer) Addr() string          { return ":0" }
func (s *stubHTTPServer) Handler() http.Handler { return s.handler }

type stubPoller struct {
	started atomic.Int64
	stopped atomic.Int64
}

func (p *stubPoller) Start(context.Context)      { p.started.Add(1) }
func (p *stubPoller) Stop(context.Context) error { p.stopped.Add(1); return nil }
func (p *stubPoller) Status() poller.Status      { return poller.Status{LastSuccess: time.Now()} }

// stubGateway satisfies refereeGateway for wiring tests.
type stubGateway struct{}

func (stubGateway) VerifyMatchAccess(_ context.Context, _ int, token string) error {
	if token != "1234567890" {
		return &providers.UpstreamError{Operation: "verify", StatusCode: http.StatusUnauthorized, Message: "verification failed"}
	}
	return nil
}

func (stubGateway) CreateMatchEvent(_ context.Context, matchID int, _ string, teamID int, eventType domain.EventType, score int, _ *int) (domain.MatchEvent, error) {
	return domain.MatchEvent{ID: 1, MatchID: matchID, TeamID: teamID, Type: eventType, Score: score}, nil
}

func (stubGateway) DeleteMatchEvent(context.Context, int, string, int) error { return nil }
func (stubGateway) ConfirmMatch(context.Context, int, string) error          { return nil }

func (stubGateway) FetchMatchEvents(context.Context, int) ([]domain.MatchEvent, error) {
	return nil, nil
}

func testConfig() config.Config {
	cfg := config.Load()
	cfg.Port = "0"
	cfg.PollInterval = time.Hour
	cfg.Metrics.Enabled = false
	return cfg
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	reads := &testutil.StubLeagueProvider{
		Teams:   []domain.Team{testutil.SampleTeam(10)},
		Matches: []domain.Match{testutil.SampleMatch(2, 10, 20)},
		Players: []domain.Player{testutil.SamplePlayer(1, 10), testutil.SamplePlayer(2, 20)},
	}
	return newServerWithProvider(testConfig(), testutil.DiscardLogger(), stubGateway{}, reads)
}

func TestRunShutsDownOnContextCancel(t *testing.T) {
	srv := newTestServer(t)
	httpStub := &stubHTTPServer{}
	pollerStub := &stubPoller{}
	srv.httpServer = httpStub
	srv.poller = pollerStub

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if pollerStub.started.Load() != 1 {
		t.Fatalf("poller started %d times, want 1", pollerStub.started.Load())
	}
	if pollerStub.stopped.Load() != 1 {
		t.Fatalf("poller stopped %d times, want 1", pollerStub.stopped.Load())
	}
	if httpStub.shutdowns.Load() != 1 {
		t.Fatalf("http server shut down %d times, want 1", httpStub.shutdowns.Load())
	}
}

func TestRunStopsOnListenFailure(t *testing.T) {
	srv := newTestServer(t)
	srv.httpServer = &stubHTTPServer{listenErr: errors.New("port in use")}
	srv.poller = &stubPoller{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after listen failure")
	}
}

func TestServerServesBrowseSurface(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.Handler()

	// The store is empty until the poller runs; feed it directly.
	srv.store.SetTeams([]domain.Team{testutil.SampleTeam(10)})

	rr := testutil.Serve(handler, http.MethodGet, "/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body domain.TeamsResponse
	testutil.DecodeJSON(t, rr, &body)
	if len(body.Teams) != 1 || body.Teams[0].ID != 10 {
		t.Fatalf("unexpected teams: %+v", body.Teams)
	}
}

func TestServerServesRefereeSurface(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.Handler()

	payload, _ := json.Marshal(map[string]any{"matchId": 2, "token": "1234567890"})
	rr := testutil.Serve(handler, http.MethodPost, "/referee/sessions", bytes.NewReader(payload))
	testutil.AssertStatus(t, rr, http.StatusCreated)

	var resp struct {
		SessionID string `json:"sessionId"`
		State     string `json:"state"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	if resp.State != "active" {
		t.Fatalf("state = %q, want active", resp.State)
	}

	eventPayload, _ := json.Marshal(map[string]any{"side": "home", "type": "Touchdown"})
	rr = testutil.Serve(handler, http.MethodPost, "/referee/sessions/"+resp.SessionID+"/events", bytes.NewReader(eventPayload))
	testutil.AssertStatus(t, rr, http.StatusCreated)

	var scoreboard struct {
		Home struct {
			Score int `json:"score"`
		} `json:"home"`
	}
	testutil.DecodeJSON(t, rr, &scoreboard)
	if scoreboard.Home.Score != 6 {
		t.Fatalf("home score = %d, want 6", scoreboard.Home.Score)
	}
}

func TestServerRejectsBadToken(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.Handler()

	payload, _ := json.Marshal(map[string]any{"matchId": 2, "token": "nope"})
	rr := testutil.Serve(handler, http.MethodPost, "/referee/sessions", bytes.NewReader(payload))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}
