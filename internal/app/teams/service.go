package teams

import (
	"context"

	"nffl-league-service/internal/domain"
)

// Store defines the contract for persisting and retrieving teams.
type Store interface {
	ListTeams() []domain.Team
	GetTeam(id int) (domain.Team, bool)
	SetTeams([]domain.Team)
}

// StatsSource fetches team statistics from the upstream on demand; stats are
// not cached in the store because they change with every recorded event.
type StatsSource interface {
	FetchTeamStats(ctx context.Context, teamID int) (domain.TeamStats, error)
}

// Service coordinates team operations using a Store and a StatsSource.
type Service struct {
	store Store
	stats StatsSource
}

// NewService constructs a Service with the provided Store and StatsSource.
func NewService(store Store, stats StatsSource) *Service {
	return &Service{store: store, stats: stats}
}

// Teams returns the current set of teams.
func (s *Service) Teams() []domain.Team {
	return s.store.ListTeams()
}

// TeamByID returns a single team if present.
func (s *Service) TeamByID(id int) (domain.Team, bool) {
	return s.store.GetTeam(id)
}

// TeamStats fetches the team's current statistics from the upstream.
func (s *Service) TeamStats(ctx context.Context, id int) (domain.TeamStats, error) {
	return s.stats.FetchTeamStats(ctx, id)
}

// ReplaceTeams swaps the in-memory teams with a new snapshot.
func (s *Service) ReplaceTeams(items []domain.Team) {
	s.store.SetTeams(items)
}
