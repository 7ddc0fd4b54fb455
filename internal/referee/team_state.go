package referee

import "nffl-league-service/internal/domain"

// teamState holds one side's running state: the ordered event list and the
// derived score. It is rebuilt on load and mutated only after a successful
// gateway round trip, in lockstep with the backend.
type teamState struct {
	team   domain.Team
	roster []domain.Player
	events []domain.MatchEvent
	score  int
}

func newTeamState(team domain.Team, roster []domain.Player) *teamState {
	return &teamState{team: team, roster: roster}
}

func (t *teamState) append(event domain.MatchEvent) {
	t.events = append(t.events, event)
	t.recompute()
}

func (t *teamState) removeAt(index int) domain.MatchEvent {
	removed := t.events[index]
	t.events = append(t.events[:index], t.events[index+1:]...)
	t.recompute()
	return removed
}

// recompute derives the score from scratch; the list is small and a full sum
// cannot drift the way incremental updates can.
func (t *teamState) recompute() {
	score := 0
	for _, e := range t.events {
		score += e.Score
	}
	t.score = score
}

// TeamSnapshot is an immutable copy of one side's state.
type TeamSnapshot struct {
	Team   domain.Team        `json:"team"`
	Score  int                `json:"score"`
	Events []domain.MatchEvent `json:"events"`
	Roster []domain.Player    `json:"roster"`
}

func (t *teamState) snapshot() TeamSnapshot {
	events := make([]domain.MatchEvent, len(t.events))
	copy(events, t.events)
	roster := make([]domain.Player, len(t.roster))
	copy(roster, t.roster)
	return TeamSnapshot{
		Team:   t.team,
		Score:  t.score,
		Events: events,
		Roster: roster,
	}
}
