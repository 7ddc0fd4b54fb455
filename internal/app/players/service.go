package players

import (
	"context"

	"nffl-league-service/internal/domain"
)

// Store defines the contract for persisting and retrieving players.
type Store interface {
	ListPlayers(teamID int) []domain.Player
	GetPlayer(id int) (domain.Player, bool)
	SetPlayers([]domain.Player)
}

// StatsSource fetches player statistics from the upstream on demand.
type StatsSource interface {
	FetchPlayerStats(ctx context.Context, playerID int) (domain.PlayerStats, error)
}

// Service coordinates player operations using a Store and a StatsSource.
type Service struct {
	store Store
	stats StatsSource
}

// NewService constructs a Service with the provided Store and StatsSource.
func NewService(store Store, stats StatsSource) *Service {
	return &Service{store: store, stats: stats}
}

// Players returns the current set of players; a non-zero teamID narrows to
// one roster.
func (s *Service) Players(teamID int) []domain.Player {
	return s.store.ListPlayers(teamID)
}

// PlayerByID returns a single player if present.
func (s *Service) PlayerByID(id int) (domain.Player, bool) {
	return s.store.GetPlayer(id)
}

// PlayerStats fetches the player's current statistics from the upstream.
func (s *Service) PlayerStats(ctx context.Context, id int) (domain.PlayerStats, error) {
	return s.stats.FetchPlayerStats(ctx, id)
}

// ReplacePlayers swaps the in-memory players with a new snapshot.
func (s *Service) ReplacePlayers(items []domain.Player) {
	s.store.SetPlayers(items)
}
