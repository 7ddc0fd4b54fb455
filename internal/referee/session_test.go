package referee

import (
	"context"
	"errors"
	"sync"
	"testing"

	"nffl-league-service/internal/domain"
)

// fakeBackend implements Gateway, MatchLoader, RosterProvider and
// EventLoader against in-memory data, with injectable failures.
type fakeBackend struct {
	mu sync.Mutex

	match   domain.Match
	rosters map[int][]domain.Player
	events  []domain.MatchEvent

	verifyErr  error
	createErr  error
	deleteErr  error
	confirmErr error

	nextEventID int
	createCalls int
	verifyCalls int
	deleted     []int
	confirmed   int

	// createStarted/createRelease turn CreateMatchEvent into a barrier so
	// tests can observe the busy flag mid-flight.
	createStarted chan struct{}
	createRelease chan struct{}
}

func newFakeBackend() *fakeBackend {
	home := domain.Team{ID: 10, Name: "Harbor Hawks"}
	away := domain.Team{ID: 20, Name: "Riverside Raptors"}
	return &fakeBackend{
		match: domain.Match{ID: 2, HomeTeam: home, AwayTeam: away, GameDayID: 1},
		rosters: map[int][]domain.Player{
			10: {{ID: 101, FirstName: "Ava", LastName: "Clark", TeamID: 10}},
			20: {{ID: 201, FirstName: "Ben", LastName: "Diaz", TeamID: 20}},
		},
		nextEventID: 1000,
	}
}

func (f *fakeBackend) VerifyMatchAccess(_ context.Context, matchID int, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifyCalls++
	if f.verifyErr != nil {
		return f.verifyErr
	}
	if matchID != f.match.ID || token == "" {
		return errors.New("verification failed")
	}
	return nil
}

func (f *fakeBackend) CreateMatchEvent(_ context.Context, matchID int, _ string, teamID int, eventType domain.EventType, score int, playerID *int) (domain.MatchEvent, error) {
	if f.createStarted != nil {
		f.createStarted <- struct{}{}
		<-f.createRelease
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return domain.MatchEvent{}, f.createErr
	}
	f.nextEventID++
	event := domain.MatchEvent{
		ID:      f.nextEventID,
		MatchID: matchID,
		TeamID:  teamID,
		Type:    eventType,
		Score:   score,
	}
	if playerID != nil {
		event.Player = &domain.Player{ID: *playerID, TeamID: teamID}
	}
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeBackend) DeleteMatchEvent(_ context.Context, _ int, _ string, eventID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, eventID)
	return nil
}

func (f *fakeBackend) ConfirmMatch(_ context.Context, _ int, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.confirmErr != nil {
		return f.confirmErr
	}
	f.confirmed++
	return nil
}

func (f *fakeBackend) FetchMatch(_ context.Context, matchID int) (domain.Match, error) {
	if matchID != f.match.ID {
		return domain.Match{}, errors.New("match not found")
	}
	return f.match, nil
}

func (f *fakeBackend) FetchPlayers(_ context.Context, teamID int) ([]domain.Player, error) {
	return f.rosters[teamID], nil
}

func (f *fakeBackend) FetchMatchEvents(_ context.Context, _ int) ([]domain.MatchEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	events := make([]domain.MatchEvent, len(f.events))
	copy(events, f.events)
	return events, nil
}

func newTestSession(backend *fakeBackend) *Session {
	return NewSession(Deps{
		Gateway: backend,
		Matches: backend,
		Rosters: backend,
		Events:  backend,
	})
}

func activeSession(t *testing.T, backend *fakeBackend) *Session {
	t.Helper()
	session := newTestSession(backend)
	if err := session.Verify(context.Background(), 2, "1234567890"); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	return session
}

func TestVerifyLoadsMatchAndPartitionsEvents(t *testing.T) {
	backend := newFakeBackend()
	backend.events = []domain.MatchEvent{
		{ID: 1, MatchID: 2, TeamID: 10, Type: domain.EventTouchdown, Score: 6},
		{ID: 2, MatchID: 2, TeamID: 20, Type: domain.EventSafety, Score: 2},
		{ID: 3, MatchID: 2, TeamID: 10, Type: domain.EventOnePointTry, Score: 1},
		{ID: 4, MatchID: 2, TeamID: 99, Type: domain.EventSack, Score: 0}, // unknown team, dropped
	}

	session := activeSession(t, backend)
	snap := session.Snapshot()

	if snap.State != StateActive {
		t.Fatalf("state = %q, want %q", snap.State, StateActive)
	}
	if snap.Match.ID != 2 {
		t.Errorf("match id = %d, want 2", snap.Match.ID)
	}
	if got := len(snap.Home.Events); got != 2 {
		t.Fatalf("home events = %d, want 2", got)
	}
	if snap.Home.Events[0].ID != 1 || snap.Home.Events[1].ID != 3 {
		t.Errorf("home event order = [%d %d], want [1 3]", snap.Home.Events[0].ID, snap.Home.Events[1].ID)
	}
	if snap.Home.Score != 7 {
		t.Errorf("home score = %d, want 7", snap.Home.Score)
	}
	if got := len(snap.Away.Events); got != 1 {
		t.Fatalf("away events = %d, want 1", got)
	}
	if snap.Away.Score != 2 {
		t.Errorf("away score = %d, want 2", snap.Away.Score)
	}
	if len(snap.Home.Roster) != 1 || len(snap.Away.Roster) != 1 {
		t.Errorf("rosters = %d/%d, want 1/1", len(snap.Home.Roster), len(snap.Away.Roster))
	}
}

func TestVerifyFailureIsRetryable(t *testing.T) {
	backend := newFakeBackend()
	backend.verifyErr = errors.New("bad token")

	session := newTestSession(backend)
	if err := session.Verify(context.Background(), 2, "wrong"); err == nil {
		t.Fatal("Verify succeeded with failing backend")
	}
	if got := session.State(); got != StateUninitialized {
		t.Fatalf("state after failed verify = %q, want %q", got, StateUninitialized)
	}

	backend.mu.Lock()
	backend.verifyErr = nil
	backend.mu.Unlock()
	if err := session.Verify(context.Background(), 2, "1234567890"); err != nil {
		t.Fatalf("retry Verify: %v", err)
	}
	if got := session.State(); got != StateActive {
		t.Fatalf("state after retry = %q, want %q", got, StateActive)
	}
}

func TestVerifyTwiceReturnsAlreadyStarted(t *testing.T) {
	session := activeSession(t, newFakeBackend())
	if err := session.Verify(context.Background(), 2, "1234567890"); !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("second Verify err = %v, want ErrAlreadyStarted", err)
	}
}

func TestAddEventAppendsAndScores(t *testing.T) {
	backend := newFakeBackend()
	session := activeSession(t, backend)

	playerID := 101
	event, err := session.AddEvent(context.Background(), domain.SideHome, domain.EventTouchdown, &playerID)
	if err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	if event.ID == 0 {
		t.Error("event missing server-assigned id")
	}
	if event.Score != 6 {
		t.Errorf("event score = %d, want 6", event.Score)
	}

	if _, err := session.AddEvent(context.Background(), domain.SideAway, domain.EventSack, nil); err != nil {
		t.Fatalf("AddEvent away: %v", err)
	}

	snap := session.Snapshot()
	if snap.Home.Score != 6 {
		t.Errorf("home score = %d, want 6", snap.Home.Score)
	}
	if snap.Away.Score != 0 {
		t.Errorf("away score = %d, want 0 (sack carries no points)", snap.Away.Score)
	}
	if len(snap.Away.Events) != 1 {
		t.Errorf("away events = %d, want 1", len(snap.Away.Events))
	}
}

func TestAddEventFailureLeavesStateUnchanged(t *testing.T) {
	backend := newFakeBackend()
	session := activeSession(t, backend)
	backend.mu.Lock()
	backend.createErr = errors.New("upstream down")
	backend.mu.Unlock()

	if _, err := session.AddEvent(context.Background(), domain.SideHome, domain.EventTouchdown, nil); err == nil {
		t.Fatal("AddEvent succeeded with failing backend")
	}
	snap := session.Snapshot()
	if len(snap.Home.Events) != 0 || snap.Home.Score != 0 {
		t.Errorf("home mutated after failed create: %d events, score %d", len(snap.Home.Events), snap.Home.Score)
	}

	// Session stays usable.
	backend.mu.Lock()
	backend.createErr = nil
	backend.mu.Unlock()
	if _, err := session.AddEvent(context.Background(), domain.SideHome, domain.EventTouchdown, nil); err != nil {
		t.Fatalf("AddEvent after recovery: %v", err)
	}
}

func TestAddEventRejectsUnknownSide(t *testing.T) {
	session := activeSession(t, newFakeBackend())
	if _, err := session.AddEvent(context.Background(), domain.Side("left"), domain.EventSafety, nil); err == nil {
		t.Fatal("AddEvent accepted unknown side")
	}
}

func TestRemoveEventSubtractsScore(t *testing.T) {
	backend := newFakeBackend()
	session := activeSession(t, backend)

	if _, err := session.AddEvent(context.Background(), domain.SideHome, domain.EventTouchdown, nil); err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	added, err := session.AddEvent(context.Background(), domain.SideHome, domain.EventTwoPointTry, nil)
	if err != nil {
		t.Fatalf("AddEvent: %v", err)
	}

	removed, err := session.RemoveEvent(context.Background(), domain.SideHome, 1)
	if err != nil {
		t.Fatalf("RemoveEvent: %v", err)
	}
	if removed.ID != added.ID {
		t.Errorf("removed id = %d, want %d", removed.ID, added.ID)
	}

	snap := session.Snapshot()
	if snap.Home.Score != 6 {
		t.Errorf("home score = %d, want 6", snap.Home.Score)
	}
	if len(snap.Home.Events) != 1 {
		t.Errorf("home events = %d, want 1", len(snap.Home.Events))
	}
	if len(backend.deleted) != 1 || backend.deleted[0] != added.ID {
		t.Errorf("backend deleted = %v, want [%d]", backend.deleted, added.ID)
	}
}

func TestRemoveEventIndexOutOfRange(t *testing.T) {
	session := activeSession(t, newFakeBackend())
	for _, index := range []int{-1, 0, 5} {
		if _, err := session.RemoveEvent(context.Background(), domain.SideHome, index); !errors.Is(err, ErrEventIndex) {
			t.Errorf("RemoveEvent(%d) err = %v, want ErrEventIndex", index, err)
		}
	}
}

func TestRemoveEventFailureKeepsEvent(t *testing.T) {
	backend := newFakeBackend()
	session := activeSession(t, backend)
	if _, err := session.AddEvent(context.Background(), domain.SideAway, domain.EventSafety, nil); err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	backend.mu.Lock()
	backend.deleteErr = errors.New("upstream down")
	backend.mu.Unlock()

	if _, err := session.RemoveEvent(context.Background(), domain.SideAway, 0); err == nil {
		t.Fatal("RemoveEvent succeeded with failing backend")
	}
	snap := session.Snapshot()
	if len(snap.Away.Events) != 1 || snap.Away.Score != 2 {
		t.Errorf("away mutated after failed delete: %d events, score %d", len(snap.Away.Events), snap.Away.Score)
	}
}

func TestMutationsRejectedWhileBusy(t *testing.T) {
	backend := newFakeBackend()
	backend.createStarted = make(chan struct{})
	backend.createRelease = make(chan struct{})
	session := activeSession(t, backend)

	done := make(chan error, 1)
	go func() {
		_, err := session.AddEvent(context.Background(), domain.SideHome, domain.EventTouchdown, nil)
		done <- err
	}()
	<-backend.createStarted

	if _, err := session.AddEvent(context.Background(), domain.SideAway, domain.EventSafety, nil); !errors.Is(err, ErrBusy) {
		t.Errorf("concurrent AddEvent err = %v, want ErrBusy", err)
	}
	if _, err := session.RemoveEvent(context.Background(), domain.SideHome, 0); !errors.Is(err, ErrBusy) {
		t.Errorf("concurrent RemoveEvent err = %v, want ErrBusy", err)
	}
	if err := session.StartOver(); !errors.Is(err, ErrBusy) {
		t.Errorf("concurrent StartOver err = %v, want ErrBusy", err)
	}

	close(backend.createRelease)
	if err := <-done; err != nil {
		t.Fatalf("in-flight AddEvent: %v", err)
	}
	if snap := session.Snapshot(); snap.Home.Score != 6 {
		t.Errorf("home score = %d, want 6", snap.Home.Score)
	}
}

func TestFinishIsLocalByDefault(t *testing.T) {
	backend := newFakeBackend()
	session := activeSession(t, backend)

	if err := session.Finish(context.Background()); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if got := session.State(); got != StateFinished {
		t.Fatalf("state = %q, want %q", got, StateFinished)
	}
	if backend.confirmed != 0 {
		t.Errorf("confirm calls = %d, want 0", backend.confirmed)
	}
	// Idempotent.
	if err := session.Finish(context.Background()); err != nil {
		t.Fatalf("second Finish: %v", err)
	}
	// Mutations are no longer allowed.
	if _, err := session.AddEvent(context.Background(), domain.SideHome, domain.EventTouchdown, nil); !errors.Is(err, ErrNotActive) {
		t.Errorf("AddEvent after finish err = %v, want ErrNotActive", err)
	}
}

func TestFinishWithConfirm(t *testing.T) {
	backend := newFakeBackend()
	session := NewSession(Deps{
		Gateway:         backend,
		Matches:         backend,
		Rosters:         backend,
		Events:          backend,
		ConfirmOnFinish: true,
	})
	if err := session.Verify(context.Background(), 2, "1234567890"); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	backend.mu.Lock()
	backend.confirmErr = errors.New("upstream down")
	backend.mu.Unlock()
	if err := session.Finish(context.Background()); err == nil {
		t.Fatal("Finish succeeded with failing confirm")
	}
	if got := session.State(); got != StateActive {
		t.Fatalf("state after failed confirm = %q, want %q", got, StateActive)
	}

	backend.mu.Lock()
	backend.confirmErr = nil
	backend.mu.Unlock()
	if err := session.Finish(context.Background()); err != nil {
		t.Fatalf("Finish retry: %v", err)
	}
	if backend.confirmed != 1 {
		t.Errorf("confirm calls = %d, want 1", backend.confirmed)
	}
}

func TestStartOverResetsSession(t *testing.T) {
	backend := newFakeBackend()
	session := activeSession(t, backend)
	if _, err := session.AddEvent(context.Background(), domain.SideHome, domain.EventTouchdown, nil); err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	if err := session.Finish(context.Background()); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	if err := session.StartOver(); err != nil {
		t.Fatalf("StartOver: %v", err)
	}
	snap := session.Snapshot()
	if snap.State != StateUninitialized {
		t.Fatalf("state = %q, want %q", snap.State, StateUninitialized)
	}
	if snap.Match.ID != 0 || snap.Home.Score != 0 || len(snap.Home.Events) != 0 {
		t.Error("StartOver did not clear session state")
	}

	// Events from the first run survive on the backend and load again.
	if err := session.Verify(context.Background(), 2, "1234567890"); err != nil {
		t.Fatalf("Verify after StartOver: %v", err)
	}
	if snap := session.Snapshot(); snap.Home.Score != 6 {
		t.Errorf("reloaded home score = %d, want 6", snap.Home.Score)
	}
}

func TestOperationsRequireActiveSession(t *testing.T) {
	session := newTestSession(newFakeBackend())

	if _, err := session.AddEvent(context.Background(), domain.SideHome, domain.EventTouchdown, nil); !errors.Is(err, ErrNotActive) {
		t.Errorf("AddEvent err = %v, want ErrNotActive", err)
	}
	if _, err := session.RemoveEvent(context.Background(), domain.SideHome, 0); !errors.Is(err, ErrNotActive) {
		t.Errorf("RemoveEvent err = %v, want ErrNotActive", err)
	}
	if err := session.Finish(context.Background()); !errors.Is(err, ErrNotActive) {
		t.Errorf("Finish err = %v, want ErrNotActive", err)
	}
	if _, err := session.Side(domain.SideHome); !errors.Is(err, ErrNotActive) {
		t.Errorf("Side err = %v, want ErrNotActive", err)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	backend := newFakeBackend()
	session := activeSession(t, backend)
	if _, err := session.AddEvent(context.Background(), domain.SideHome, domain.EventTouchdown, nil); err != nil {
		t.Fatalf("AddEvent: %v", err)
	}

	snap := session.Snapshot()
	snap.Home.Events[0].Score = 99
	snap.Home.Roster[0].FirstName = "changed"

	fresh := session.Snapshot()
	if fresh.Home.Events[0].Score != 6 {
		t.Error("snapshot shares event slice with session")
	}
	if fresh.Home.Roster[0].FirstName != "Ava" {
		t.Error("snapshot shares roster slice with session")
	}
}
