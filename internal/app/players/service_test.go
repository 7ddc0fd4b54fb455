package players

import (
	"context"
	"testing"

	"nffl-league-service/internal/domain"
)

type stubStore struct {
	listResult []domain.Player
	lastTeamID int
	getResult  domain.Player
	getOK      bool

	setCalls int
	setValue []domain.Player
}

func (s *stubStore) ListPlayers(teamID int) []domain.Player {
	s.lastTeamID = teamID
	return s.listResult
}

func (s *stubStore) GetPlayer(id int) (domain.Player, bool) {
	_ = id
	return s.getResult, s.getOK
}

func (s *stubStore) SetPlayers(players []domain.Player) {
	s.setCalls++
	s.setValue = players
}

type stubStats struct {
	result domain.PlayerStats
	lastID int
}

func (s *stubStats) FetchPlayerStats(_ context.Context, playerID int) (domain.PlayerStats, error) {
	s.lastID = playerID
	return s.result, nil
}

func TestServicePlayersPassesTeamFilter(t *testing.T) {
	store := &stubStore{
		listResult: []domain.Player{{ID: 1, TeamID: 3}},
	}
	svc := NewService(store, &stubStats{})

	players := svc.Players(3)
	if len(players) != 1 {
		t.Fatalf("expected 1 player, got %d", len(players))
	}
	if store.lastTeamID != 3 {
		t.Fatalf("expected team filter 3, got %d", store.lastTeamID)
	}
}

func TestServicePlayerByID(t *testing.T) {
	store := &stubStore{getResult: domain.Player{ID: 5}, getOK: true}
	svc := NewService(store, &stubStats{})

	got, ok := svc.PlayerByID(5)
	if !ok {
		t.Fatal("expected to find player")
	}
	if got.ID != 5 {
		t.Fatalf("expected player 5, got %d", got.ID)
	}
}

func TestServicePlayerStats(t *testing.T) {
	stats := &stubStats{result: domain.PlayerStats{PlayerID: 5, Touchdowns: 2}}
	svc := NewService(&stubStore{}, stats)

	got, err := svc.PlayerStats(context.Background(), 5)
	if err != nil {
		t.Fatalf("PlayerStats: %v", err)
	}
	if got.Touchdowns != 2 {
		t.Fatalf("expected 2 touchdowns, got %d", got.Touchdowns)
	}
	if stats.lastID != 5 {
		t.Fatalf("expected stats fetched for player 5, got %d", stats.lastID)
	}
}

func TestServiceReplacePlayers(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store, &stubStats{})

	svc.ReplacePlayers([]domain.Player{{ID: 1}, {ID: 2}})
	if store.setCalls != 1 {
		t.Fatalf("expected 1 set call, got %d", store.setCalls)
	}
	if len(store.setValue) != 2 {
		t.Fatalf("unexpected set value: %+v", store.setValue)
	}
}
