package nffl

// Wire shapes mirror the backend's PascalCase field names exactly.

type leagueResponse struct {
	LeagueID int    `json:"LeagueId"`
	Name     string `json:"LeagueName"`
}

type seasonResponse struct {
	SeasonID int    `json:"SeasonId"`
	Name     string `json:"SeasonName"`
	Year     int    `json:"Year"`
}

type teamResponse struct {
	TeamID   int            `json:"TeamId"`
	Name     string         `json:"TeamName"`
	HomeTown string         `json:"HomeTown"`
	League   leagueResponse `json:"League"`
}

type playerResponse struct {
	PlayerID           int          `json:"PlayerId"`
	FirstName          string       `json:"FirstName"`
	LastName           string       `json:"LastName"`
	Team               teamResponse `json:"Team"`
	JerseyNumber       int          `json:"JerseyNumber"`
	Position           string       `json:"Position"`
	RefereeCertificate string       `json:"RefereeCertification"`
}

type gameDayResponse struct {
	GameDayID   int            `json:"GameDayId"`
	Date        string         `json:"Date"`
	Description string         `json:"Description"`
	HostingTeam teamResponse   `json:"HostingTeam"`
	Location    string         `json:"Location"`
	Season      seasonResponse `json:"Season"`
}

type matchResponse struct {
	MatchID     int             `json:"MatchId"`
	HomeTeam    teamResponse    `json:"HomeTeam"`
	AwayTeam    teamResponse    `json:"AwayTeam"`
	RefereeTeam teamResponse    `json:"RefereeTeam"`
	GameDay     gameDayResponse `json:"GameDay"`
	Time        string          `json:"Time"`
	Final       bool            `json:"Final"`
}

type matchEventResponse struct {
	MatchEventID int             `json:"MatchEventId"`
	MatchID      int             `json:"MatchId"`
	TeamID       int             `json:"TeamId"`
	Type         string          `json:"Type"`
	Score        int             `json:"Score"`
	Player       *playerResponse `json:"Player"`
}

type matchStatsResponse struct {
	Games             int     `json:"Games"`
	Wins              int     `json:"Wins"`
	Losses            int     `json:"Losses"`
	WinningPercentage float64 `json:"WinningPercentage"`
}

type matchEventStatsResponse struct {
	Touchdowns    int `json:"Touchdowns"`
	OnePointTries int `json:"OnePointTrys"`
	TwoPointTries int `json:"TwoPointTrys"`
	Interceptions int `json:"Interceptions"`
	Sacks         int `json:"Sacks"`
	Safeties      int `json:"Safetys"`
}

type teamStatsResponse struct {
	MatchStats      matchStatsResponse      `json:"MatchStats"`
	MatchEventStats matchEventStatsResponse `json:"MatchEventStats"`
}

type playerStatsResponse struct {
	Games         int `json:"Games"`
	Touchdowns    int `json:"Touchdowns"`
	OnePointTries int `json:"OnePointTrys"`
	TwoPointTries int `json:"TwoPointTrys"`
	Interceptions int `json:"Interceptions"`
	Sacks         int `json:"Sacks"`
}

// createEventRequest is the POST body for /match/{id}/matchEvent/. The Player
// object is omitted entirely for "other/unknown" entries.
type createEventRequest struct {
	TeamID int              `json:"TeamId"`
	Type   string           `json:"Type"`
	Score  int              `json:"Score"`
	Player *playerReference `json:"Player,omitempty"`
}

type playerReference struct {
	PlayerID int `json:"PlayerId"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
