package testutil

import "nffl-league-service/internal/domain"

// SampleTeam returns a minimal team fixture with the provided id.
func SampleTeam(id int) domain.Team {
	return domain.Team{
		ID:       id,
		Name:     "Team " + string(rune('A'+id%26)),
		HomeTown: "Testville",
		League:   domain.League{ID: 1, Name: "NFFL"},
	}
}

// SamplePlayer returns a minimal player fixture on the given team.
func SamplePlayer(id, teamID int) domain.Player {
	return domain.Player{
		ID:           id,
		FirstName:    "First",
		LastName:     "Last",
		JerseyNumber: id,
		TeamID:       teamID,
	}
}

// SampleMatch returns a match between two sample teams.
func SampleMatch(id, homeID, awayID int) domain.Match {
	return domain.Match{
		ID:        id,
		HomeTeam:  SampleTeam(homeID),
		AwayTeam:  SampleTeam(awayID),
		GameDayID: 1,
		Time:      "10:00",
	}
}
