package testutil

import (
	"context"

	"nffl-league-service/internal/domain"
	"nffl-league-service/internal/providers"
)

// StubLeagueProvider implements providers.LeagueProvider from fixed data,
// returning Err from every method when set.
type StubLeagueProvider struct {
	Teams    []domain.Team
	Players  []domain.Player
	GameDays []domain.GameDay
	Matches  []domain.Match
	Seasons  []domain.Season

	TeamStats   domain.TeamStats
	PlayerStats domain.PlayerStats

	Err error
}

func (p *StubLeagueProvider) FetchTeams(_ context.Context) ([]domain.Team, error) {
	return p.Teams, p.Err
}

func (p *StubLeagueProvider) FetchPlayers(_ context.Context, teamID int) ([]domain.Player, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	if teamID == 0 {
		return p.Players, nil
	}
	var roster []domain.Player
	for _, player := range p.Players {
		if player.TeamID == teamID {
			roster = append(roster, player)
		}
	}
	return roster, nil
}

func (p *StubLeagueProvider) FetchGameDays(_ context.Context) ([]domain.GameDay, error) {
	return p.GameDays, p.Err
}

func (p *StubLeagueProvider) FetchMatches(_ context.Context, filter providers.MatchFilter) ([]domain.Match, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	var result []domain.Match
	for _, m := range p.Matches {
		if filter.GameDayID != 0 && m.GameDayID != filter.GameDayID {
			continue
		}
		if filter.TeamID != 0 && m.HomeTeam.ID != filter.TeamID && m.AwayTeam.ID != filter.TeamID {
			continue
		}
		if filter.Final != nil && m.Final != *filter.Final {
			continue
		}
		result = append(result, m)
	}
	return result, nil
}

func (p *StubLeagueProvider) FetchMatch(_ context.Context, matchID int) (domain.Match, error) {
	if p.Err != nil {
		return domain.Match{}, p.Err
	}
	for _, m := range p.Matches {
		if m.ID == matchID {
			return m, nil
		}
	}
	return domain.Match{}, providers.ErrProviderUnavailable
}

func (p *StubLeagueProvider) FetchSeasons(_ context.Context) ([]domain.Season, error) {
	return p.Seasons, p.Err
}

func (p *StubLeagueProvider) FetchTeamStats(_ context.Context, _ int) (domain.TeamStats, error) {
	if p.Err != nil {
		return domain.TeamStats{}, p.Err
	}
	return p.TeamStats, nil
}

func (p *StubLeagueProvider) FetchPlayerStats(_ context.Context, _ int) (domain.PlayerStats, error) {
	if p.Err != nil {
		return domain.PlayerStats{}, p.Err
	}
	return p.PlayerStats, nil
}
