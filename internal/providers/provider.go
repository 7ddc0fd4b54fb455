package providers

import (
	"context"

	"nffl-league-service/internal/domain"
)

// MatchFilter narrows a match list fetch. Zero values mean "no constraint".
type MatchFilter struct {
	GameDayID int
	TeamID    int
	Final     *bool
}

// TeamProvider fetches normalized teams.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]domain.Team, error)
}

// PlayerProvider fetches normalized players, optionally scoped to one team.
// A teamID of 0 means all players.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context, teamID int) ([]domain.Player, error)
}

// ScheduleProvider fetches the league schedule.
type ScheduleProvider interface {
	FetchGameDays(ctx context.Context) ([]domain.GameDay, error)
	FetchMatches(ctx context.Context, filter MatchFilter) ([]domain.Match, error)
	FetchMatch(ctx context.Context, matchID int) (domain.Match, error)
}

// SeasonProvider fetches seasons.
type SeasonProvider interface {
	FetchSeasons(ctx context.Context) ([]domain.Season, error)
}

// StatsProvider fetches aggregated statistics straight from the upstream.
type StatsProvider interface {
	FetchTeamStats(ctx context.Context, teamID int) (domain.TeamStats, error)
	FetchPlayerStats(ctx context.Context, playerID int) (domain.PlayerStats, error)
}

// LeagueProvider combines all read capabilities of the upstream API.
type LeagueProvider interface {
	TeamProvider
	PlayerProvider
	ScheduleProvider
	SeasonProvider
	StatsProvider
}
