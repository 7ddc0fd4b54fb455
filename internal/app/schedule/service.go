package schedule

import "nffl-league-service/internal/domain"

// Store defines the contract for persisting and retrieving the league
// schedule: game days, matches and seasons.
type Store interface {
	ListGameDays() []domain.GameDay
	GetGameDay(id int) (domain.GameDay, bool)
	SetGameDays([]domain.GameDay)
	ListMatches(gameDayID, teamID int) []domain.Match
	GetMatch(id int) (domain.Match, bool)
	SetMatches([]domain.Match)
	ListSeasons() []domain.Season
	SetSeasons([]domain.Season)
}

// Service coordinates schedule operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// GameDays returns the current set of game days.
func (s *Service) GameDays() []domain.GameDay {
	return s.store.ListGameDays()
}

// GameDayByID returns a single game day if present.
func (s *Service) GameDayByID(id int) (domain.GameDay, bool) {
	return s.store.GetGameDay(id)
}

// Matches returns matches, optionally narrowed by game day and/or
// participating team (zero means no filter).
func (s *Service) Matches(gameDayID, teamID int) []domain.Match {
	return s.store.ListMatches(gameDayID, teamID)
}

// MatchByID returns a single match if present.
func (s *Service) MatchByID(id int) (domain.Match, bool) {
	return s.store.GetMatch(id)
}

// Seasons returns the current set of seasons.
func (s *Service) Seasons() []domain.Season {
	return s.store.ListSeasons()
}

// ReplaceSchedule swaps game days, matches and seasons with a new snapshot.
func (s *Service) ReplaceSchedule(gameDays []domain.GameDay, matches []domain.Match, seasons []domain.Season) {
	s.store.SetGameDays(gameDays)
	s.store.SetMatches(matches)
	s.store.SetSeasons(seasons)
}
