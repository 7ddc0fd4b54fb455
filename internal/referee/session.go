package referee

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"nffl-league-service/internal/domain"
	"nffl-league-service/internal/logging"
)

// State names the lifecycle stage of a scoring session.
type State string

const (
	StateUninitialized        State = "uninitialized"
	StateAwaitingVerification State = "awaiting_verification"
	StateActive               State = "active"
	StateFinished             State = "finished"
)

// Gateway performs the authenticated match-event operations against the
// backend. Calls fail fast; the backend is the sole authority on whether a
// token is valid for a given match.
type Gateway interface {
	VerifyMatchAccess(ctx context.Context, matchID int, token string) error
	CreateMatchEvent(ctx context.Context, matchID int, token string, teamID int, eventType domain.EventType, score int, playerID *int) (domain.MatchEvent, error)
	DeleteMatchEvent(ctx context.Context, matchID int, token string, eventID int) error
	ConfirmMatch(ctx context.Context, matchID int, token string) error
}

// RosterProvider fetches a team's players. A pure read with no side effects
// on session state beyond the return value.
type RosterProvider interface {
	FetchPlayers(ctx context.Context, teamID int) ([]domain.Player, error)
}

// MatchLoader fetches a single match.
type MatchLoader interface {
	FetchMatch(ctx context.Context, matchID int) (domain.Match, error)
}

// EventLoader fetches the events already recorded for a match.
type EventLoader interface {
	FetchMatchEvents(ctx context.Context, matchID int) ([]domain.MatchEvent, error)
}

// Deps bundles everything a session needs to talk to the backend.
type Deps struct {
	Gateway Gateway
	Matches MatchLoader
	Rosters RosterProvider
	Events  EventLoader
	Logger  *slog.Logger

	// ConfirmOnFinish wires Finish to the backend's confirm endpoint. Off by
	// default: finishing is then a purely local transition.
	ConfirmOnFinish bool
}

// Session owns one in-progress match officiation: the verified match, the
// access token, both rosters, and the per-side event lists with their
// derived scores. Each session is independent and shares nothing.
//
// At most one mutating call (verify/add/remove/finish-with-confirm) may be
// in flight at a time; concurrent attempts fail with ErrBusy. Local state
// changes only after the backend acknowledged the corresponding call, so a
// failed round trip never leaves a partial update behind.
type Session struct {
	deps Deps

	mu    sync.Mutex
	state State
	busy  bool
	match domain.Match
	token string
	home  *teamState
	away  *teamState
}

// NewSession constructs an uninitialized session.
func NewSession(deps Deps) *Session {
	return &Session{deps: deps, state: StateUninitialized}
}

// State reports the current lifecycle stage.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Verify checks the token against the match and, on success, loads the
// match, both rosters and any already-recorded events, partitioned by team.
// On any failure the session returns to Uninitialized and the same match id
// and token may be retried.
func (s *Session) Verify(ctx context.Context, matchID int, token string) error {
	s.mu.Lock()
	if s.state != StateUninitialized {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.state = StateAwaitingVerification
	s.busy = true
	s.mu.Unlock()

	err := s.load(ctx, matchID, token)
	if err != nil {
		s.mu.Lock()
		s.state = StateUninitialized
		s.busy = false
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Session) load(ctx context.Context, matchID int, token string) error {
	if err := s.deps.Gateway.VerifyMatchAccess(ctx, matchID, token); err != nil {
		return fmt.Errorf("verify match %d: %w", matchID, err)
	}

	match, err := s.deps.Matches.FetchMatch(ctx, matchID)
	if err != nil {
		return fmt.Errorf("load match %d: %w", matchID, err)
	}
	homeRoster, err := s.deps.Rosters.FetchPlayers(ctx, match.HomeTeam.ID)
	if err != nil {
		return fmt.Errorf("load home roster: %w", err)
	}
	awayRoster, err := s.deps.Rosters.FetchPlayers(ctx, match.AwayTeam.ID)
	if err != nil {
		return fmt.Errorf("load away roster: %w", err)
	}
	events, err := s.deps.Events.FetchMatchEvents(ctx, matchID)
	if err != nil {
		return fmt.Errorf("load match events: %w", err)
	}

	home := newTeamState(match.HomeTeam, homeRoster)
	away := newTeamState(match.AwayTeam, awayRoster)
	for _, event := range events {
		switch event.TeamID {
		case match.HomeTeam.ID:
			home.append(event)
		case match.AwayTeam.ID:
			away.append(event)
		default:
			// Should not occur with a consistent backend; drop rather
			// than corrupt either side's list.
			logging.Warn(s.deps.Logger, "dropping event for unknown team",
				logging.FieldMatchID, matchID,
				logging.FieldTeamID, event.TeamID,
				"event_id", event.ID)
		}
	}

	s.mu.Lock()
	s.match = match
	s.token = token
	s.home = home
	s.away = away
	s.state = StateActive
	s.busy = false
	s.mu.Unlock()
	return nil
}

// AddEvent records a new event for the named side. The score contribution is
// resolved from the type; a nil playerID records an "other/unknown" entry.
// The event is appended locally only after the backend returns it with its
// server-assigned id.
func (s *Session) AddEvent(ctx context.Context, side domain.Side, eventType domain.EventType, playerID *int) (domain.MatchEvent, error) {
	s.mu.Lock()
	if s.state != StateActive {
		s.mu.Unlock()
		return domain.MatchEvent{}, ErrNotActive
	}
	if s.busy {
		s.mu.Unlock()
		return domain.MatchEvent{}, ErrBusy
	}
	target, err := s.sideState(side)
	if err != nil {
		s.mu.Unlock()
		return domain.MatchEvent{}, err
	}
	matchID, token, teamID := s.match.ID, s.token, target.team.ID
	s.busy = true
	s.mu.Unlock()

	score := domain.TypeScore(eventType)
	event, err := s.deps.Gateway.CreateMatchEvent(ctx, matchID, token, teamID, eventType, score, playerID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if err != nil {
		return domain.MatchEvent{}, err
	}
	target.append(event)
	logging.Info(s.deps.Logger, "match event recorded",
		logging.FieldMatchID, matchID,
		logging.FieldSide, string(side),
		logging.FieldEventType, string(eventType),
		"score", target.score)
	return event, nil
}

// RemoveEvent deletes the event at index within the named side's current
// list. The index is validated against the list bounds before the backend
// call; it stays valid for the duration because mutations are serialized.
func (s *Session) RemoveEvent(ctx context.Context, side domain.Side, index int) (domain.MatchEvent, error) {
	s.mu.Lock()
	if s.state != StateActive {
		s.mu.Unlock()
		return domain.MatchEvent{}, ErrNotActive
	}
	if s.busy {
		s.mu.Unlock()
		return domain.MatchEvent{}, ErrBusy
	}
	target, err := s.sideState(side)
	if err != nil {
		s.mu.Unlock()
		return domain.MatchEvent{}, err
	}
	if index < 0 || index >= len(target.events) {
		s.mu.Unlock()
		return domain.MatchEvent{}, fmt.Errorf("%w: %d of %d", ErrEventIndex, index, len(target.events))
	}
	matchID, token, eventID := s.match.ID, s.token, target.events[index].ID
	s.busy = true
	s.mu.Unlock()

	err = s.deps.Gateway.DeleteMatchEvent(ctx, matchID, token, eventID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if err != nil {
		return domain.MatchEvent{}, err
	}
	removed := target.removeAt(index)
	logging.Info(s.deps.Logger, "match event removed",
		logging.FieldMatchID, matchID,
		logging.FieldSide, string(side),
		"event_id", removed.ID,
		"score", target.score)
	return removed, nil
}

// Finish closes the session. With ConfirmOnFinish set, the backend's confirm
// endpoint is called first and a failure leaves the session active so the
// referee can retry. Finishing an already finished session is a no-op.
func (s *Session) Finish(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StateFinished {
		s.mu.Unlock()
		return nil
	}
	if s.state != StateActive {
		s.mu.Unlock()
		return ErrNotActive
	}
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	if !s.deps.ConfirmOnFinish {
		s.state = StateFinished
		s.mu.Unlock()
		return nil
	}
	matchID, token := s.match.ID, s.token
	s.busy = true
	s.mu.Unlock()

	err := s.deps.Gateway.ConfirmMatch(ctx, matchID, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if err != nil {
		return err
	}
	s.state = StateFinished
	return nil
}

// StartOver discards all in-session state and returns to Uninitialized so a
// new match can be officiated.
func (s *Session) StartOver() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	s.match = domain.Match{}
	s.token = ""
	s.home = nil
	s.away = nil
	s.state = StateUninitialized
	return nil
}

// Snapshot is an immutable copy of the whole session for rendering.
type Snapshot struct {
	State State        `json:"state"`
	Match domain.Match `json:"match"`
	Home  TeamSnapshot `json:"home"`
	Away  TeamSnapshot `json:"away"`
}

// Snapshot returns a copy of the session's current state. Before activation
// the team snapshots are zero-valued.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{State: s.state, Match: s.match}
	if s.home != nil {
		snap.Home = s.home.snapshot()
	}
	if s.away != nil {
		snap.Away = s.away.snapshot()
	}
	return snap
}

// Side returns a copy of one side's state.
func (s *Session) Side(side domain.Side) (TeamSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, err := s.sideState(side)
	if err != nil {
		return TeamSnapshot{}, err
	}
	if target == nil {
		return TeamSnapshot{}, ErrNotActive
	}
	return target.snapshot(), nil
}

func (s *Session) sideState(side domain.Side) (*teamState, error) {
	switch side {
	case domain.SideHome:
		return s.home, nil
	case domain.SideAway:
		return s.away, nil
	default:
		return nil, fmt.Errorf("unknown side %q", side)
	}
}
