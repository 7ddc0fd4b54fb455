package nffl

import (
	"testing"

	"nffl-league-service/internal/domain"
)

func TestMapMatchEventKeepsUpstreamScore(t *testing.T) {
	// A persisted event's score is authoritative even if it disagrees with
	// the current type table.
	event := mapMatchEvent(matchEventResponse{
		MatchEventID: 9,
		MatchID:      2,
		TeamID:       10,
		Type:         "Touchdown",
		Score:        7,
	})
	if event.Score != 7 {
		t.Fatalf("expected upstream score kept, got %d", event.Score)
	}
	if event.Type != domain.EventTouchdown {
		t.Fatalf("expected touchdown type, got %q", event.Type)
	}
}

func TestMapGameDay(t *testing.T) {
	day := mapGameDay(gameDayResponse{
		GameDayID:   4,
		Date:        "2020-03-01T10:00:00Z",
		Description: "Round 3",
		Location:    "Stadtpark",
		HostingTeam: teamResponse{TeamID: 10, Name: "Hawks", HomeTown: "Hamburg"},
		Season:      seasonResponse{SeasonID: 1, Name: "2020", Year: 2020},
	})
	if day.ID != 4 || day.HostingTeam.ID != 10 || day.Season.Year != 2020 {
		t.Fatalf("unexpected mapping: %+v", day)
	}
}

func TestMapPlayerFlattensTeam(t *testing.T) {
	player := mapPlayer(playerResponse{
		PlayerID:     7,
		FirstName:    "Jonas",
		LastName:     "Weber",
		JerseyNumber: 7,
		Team:         teamResponse{TeamID: 3},
	})
	if player.TeamID != 3 {
		t.Fatalf("expected team id flattened, got %+v", player)
	}
}
