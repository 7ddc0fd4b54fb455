package store

import (
	"sort"
	"sync"

	"nffl-league-service/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of the league in memory. The
// poller replaces whole sections at a time; readers always see a complete,
// consistent section.
type MemoryStore struct {
	mu       sync.RWMutex
	teams    map[int]domain.Team
	players  map[int]domain.Player
	matches  map[int]domain.Match
	gameDays map[int]domain.GameDay
	seasons  []domain.Season
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		teams:    make(map[int]domain.Team),
		players:  make(map[int]domain.Player),
		matches:  make(map[int]domain.Match),
		gameDays: make(map[int]domain.GameDay),
	}
}

// SetTeams replaces the team snapshot.
func (s *MemoryStore) SetTeams(teams []domain.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = make(map[int]domain.Team, len(teams))
	for _, t := range teams {
		s.teams[t.ID] = t
	}
}

// ListTeams returns a copy of the current teams, ordered by id.
func (s *MemoryStore) ListTeams() []domain.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Team, 0, len(s.teams))
	for _, t := range s.teams {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// GetTeam retrieves a team by id.
func (s *MemoryStore) GetTeam(id int) (domain.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[id]
	return t, ok
}

// SetPlayers replaces the player snapshot.
func (s *MemoryStore) SetPlayers(players []domain.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = make(map[int]domain.Player, len(players))
	for _, p := range players {
		s.players[p.ID] = p
	}
}

// ListPlayers returns a copy of the current players, ordered by id. A
// non-zero teamID narrows the result to that team's roster.
func (s *MemoryStore) ListPlayers(teamID int) []domain.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Player, 0, len(s.players))
	for _, p := range s.players {
		if teamID != 0 && p.TeamID != teamID {
			continue
		}
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// GetPlayer retrieves a player by id.
func (s *MemoryStore) GetPlayer(id int) (domain.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	return p, ok
}

// SetMatches replaces the match snapshot.
func (s *MemoryStore) SetMatches(matches []domain.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.matches = make(map[int]domain.Match, len(matches))
	for _, m := range matches {
		s.matches[m.ID] = m
	}
}

// ListMatches returns matches ordered by id, optionally narrowed by game day
// (non-zero gameDayID) and/or participating team (non-zero teamID, matching
// either side but not the refereeing team).
func (s *MemoryStore) ListMatches(gameDayID, teamID int) []domain.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Match, 0, len(s.matches))
	for _, m := range s.matches {
		if gameDayID != 0 && m.GameDayID != gameDayID {
			continue
		}
		if teamID != 0 && m.HomeTeam.ID != teamID && m.AwayTeam.ID != teamID {
			continue
		}
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// GetMatch retrieves a match by id.
func (s *MemoryStore) GetMatch(id int) (domain.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.matches[id]
	return m, ok
}

// SetGameDays replaces the game day snapshot.
func (s *MemoryStore) SetGameDays(gameDays []domain.GameDay) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gameDays = make(map[int]domain.GameDay, len(gameDays))
	for _, g := range gameDays {
		s.gameDays[g.ID] = g
	}
}

// ListGameDays returns a copy of the current game days, ordered by id.
func (s *MemoryStore) ListGameDays() []domain.GameDay {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.GameDay, 0, len(s.gameDays))
	for _, g := range s.gameDays {
		result = append(result, g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// GetGameDay retrieves a game day by id.
func (s *MemoryStore) GetGameDay(id int) (domain.GameDay, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.gameDays[id]
	return g, ok
}

// SetSeasons replaces the season snapshot, preserving upstream order.
func (s *MemoryStore) SetSeasons(seasons []domain.Season) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seasons = make([]domain.Season, len(seasons))
	copy(s.seasons, seasons)
}

// ListSeasons returns a copy of the current seasons.
func (s *MemoryStore) ListSeasons() []domain.Season {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Season, len(s.seasons))
	copy(result, s.seasons)
	return result
}
