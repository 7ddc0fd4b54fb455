package nffl

import "nffl-league-service/internal/domain"

func mapTeam(t teamResponse) domain.Team {
	return domain.Team{
		ID:       t.TeamID,
		Name:     t.Name,
		HomeTown: t.HomeTown,
		League: domain.League{
			ID:   t.League.LeagueID,
			Name: t.League.Name,
		},
	}
}

func mapPlayer(p playerResponse) domain.Player {
	return domain.Player{
		ID:                 p.PlayerID,
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		JerseyNumber:       p.JerseyNumber,
		Position:           p.Position,
		RefereeCertificate: p.RefereeCertificate,
		TeamID:             p.Team.TeamID,
	}
}

func mapSeason(s seasonResponse) domain.Season {
	return domain.Season{
		ID:   s.SeasonID,
		Name: s.Name,
		Year: s.Year,
	}
}

func mapGameDay(g gameDayResponse) domain.GameDay {
	return domain.GameDay{
		ID:          g.GameDayID,
		Date:        g.Date,
		Description: g.Description,
		Location:    g.Location,
		HostingTeam: mapTeam(g.HostingTeam),
		Season:      mapSeason(g.Season),
	}
}

func mapMatch(m matchResponse) domain.Match {
	return domain.Match{
		ID:          m.MatchID,
		HomeTeam:    mapTeam(m.HomeTeam),
		AwayTeam:    mapTeam(m.AwayTeam),
		RefereeTeam: mapTeam(m.RefereeTeam),
		GameDayID:   m.GameDay.GameDayID,
		Time:        m.Time,
		Final:       m.Final,
	}
}

// mapMatchEvent keeps the upstream score untouched even when it disagrees
// with the fixed type mapping; the upstream record is authoritative for
// already persisted events.
func mapMatchEvent(e matchEventResponse) domain.MatchEvent {
	event := domain.MatchEvent{
		ID:      e.MatchEventID,
		MatchID: e.MatchID,
		TeamID:  e.TeamID,
		Type:    domain.EventType(e.Type),
		Score:   e.Score,
	}
	if e.Player != nil {
		player := mapPlayer(*e.Player)
		event.Player = &player
	}
	return event
}

func mapTeamStats(teamID int, s teamStatsResponse) domain.TeamStats {
	return domain.TeamStats{
		TeamID: teamID,
		MatchStats: domain.MatchStats{
			Games:             s.MatchStats.Games,
			Wins:              s.MatchStats.Wins,
			Losses:            s.MatchStats.Losses,
			WinningPercentage: s.MatchStats.WinningPercentage,
		},
		MatchEventStats: domain.MatchEventStats{
			Touchdowns:    s.MatchEventStats.Touchdowns,
			OnePointTries: s.MatchEventStats.OnePointTries,
			TwoPointTries: s.MatchEventStats.TwoPointTries,
			Interceptions: s.MatchEventStats.Interceptions,
			Sacks:         s.MatchEventStats.Sacks,
			Safeties:      s.MatchEventStats.Safeties,
		},
	}
}

func mapPlayerStats(playerID int, s playerStatsResponse) domain.PlayerStats {
	return domain.PlayerStats{
		PlayerID:      playerID,
		Games:         s.Games,
		Touchdowns:    s.Touchdowns,
		OnePointTries: s.OnePointTries,
		TwoPointTries: s.TwoPointTries,
		Interceptions: s.Interceptions,
		Sacks:         s.Sacks,
	}
}
