package domain

// MatchStats summarizes a team's match record.
type MatchStats struct {
	Games             int     `json:"games"`
	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	WinningPercentage float64 `json:"winningPercentage"`
}

// MatchEventStats counts event occurrences per type.
type MatchEventStats struct {
	Touchdowns    int `json:"touchdowns"`
	OnePointTries int `json:"onePointTries"`
	TwoPointTries int `json:"twoPointTries"`
	Interceptions int `json:"interceptions"`
	Sacks         int `json:"sacks"`
	Safeties      int `json:"safeties"`
}

// TeamStats is the payload returned by /teams/{id}/stats.
type TeamStats struct {
	TeamID          int             `json:"teamId"`
	MatchStats      MatchStats      `json:"matchStats"`
	MatchEventStats MatchEventStats `json:"matchEventStats"`
}

// PlayerStats is the payload returned by /players/{id}/stats.
type PlayerStats struct {
	PlayerID      int `json:"playerId"`
	Games         int `json:"games"`
	Touchdowns    int `json:"touchdowns"`
	OnePointTries int `json:"onePointTries"`
	TwoPointTries int `json:"twoPointTries"`
	Interceptions int `json:"interceptions"`
	Sacks         int `json:"sacks"`
}
