package nffl

import (
	"net/url"
	"strconv"
)

// Filters build the query strings the backend's list endpoints accept. Only
// parameters the backend implements server-side appear here; everything else
// is filtered client-side after the fetch.

// PlayerFilter narrows a /player/ list fetch.
type PlayerFilter struct {
	PlayerID  int
	FirstName string
	LastName  string
	TeamID    int
}

func (f PlayerFilter) values() url.Values {
	q := url.Values{}
	setInt(q, "PlayerId", f.PlayerID)
	setString(q, "FirstName", f.FirstName)
	setString(q, "LastName", f.LastName)
	setInt(q, "TeamId", f.TeamID)
	return q
}

// MatchListFilter narrows a /match/ list fetch.
type MatchListFilter struct {
	HomeTeamID    int
	AwayTeamID    int
	RefereeTeamID int
	GameDayID     int
	Final         *bool
}

func (f MatchListFilter) values() url.Values {
	q := url.Values{}
	setInt(q, "HomeTeamId", f.HomeTeamID)
	setInt(q, "AwayTeamId", f.AwayTeamID)
	setInt(q, "RefereeTeamId", f.RefereeTeamID)
	setInt(q, "GameDayId", f.GameDayID)
	if f.Final != nil {
		q.Set("Final", strconv.FormatBool(*f.Final))
	}
	return q
}

// MatchEventFilter narrows a /match/{id}/matchEvent/ list fetch. TeamId is
// not a server-side parameter; events are partitioned by team client-side.
type MatchEventFilter struct {
	MatchID int
	Type    string
}

func (f MatchEventFilter) values() url.Values {
	q := url.Values{}
	setInt(q, "MatchId", f.MatchID)
	setString(q, "Type", f.Type)
	return q
}

func setInt(q url.Values, key string, val int) {
	if val != 0 {
		q.Set(key, strconv.Itoa(val))
	}
}

func setString(q url.Values, key, val string) {
	if val != "" {
		q.Set(key, val)
	}
}
