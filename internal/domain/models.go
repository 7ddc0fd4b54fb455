package domain

// League identifies a league a team competes in.
type League struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Season groups game days into one playing year.
type Season struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Year int    `json:"year"`
}

// Team represents the normalized team shape exposed by the service.
type Team struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	HomeTown string `json:"homeTown,omitempty"`
	League   League `json:"league,omitempty"`
}

// Player belongs to exactly one team for the duration of a season.
type Player struct {
	ID                 int    `json:"id"`
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	JerseyNumber       int    `json:"jerseyNumber"`
	Position           string `json:"position,omitempty"`
	RefereeCertificate string `json:"refereeCertificate,omitempty"`
	TeamID             int    `json:"teamId"`
}

// GameDay is one hosted tournament day of the league schedule.
type GameDay struct {
	ID          int    `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	HostingTeam Team   `json:"hostingTeam"`
	Season      Season `json:"season"`
}

// Score captures home and away points.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Match is a single scheduled game between two teams with a designated
// officiating team.
type Match struct {
	ID          int    `json:"id"`
	HomeTeam    Team   `json:"homeTeam"`
	AwayTeam    Team   `json:"awayTeam"`
	RefereeTeam Team   `json:"refereeTeam"`
	GameDayID   int    `json:"gameDayId"`
	Time        string `json:"time"`
	Final       bool   `json:"final"`
}

// MatchEvent is a scored or logged occurrence attributed to a team and
// optionally a player. The ID is assigned by the upstream on creation; a
// locally built event has no identity until the create call returns.
type MatchEvent struct {
	ID      int       `json:"id"`
	MatchID int       `json:"matchId"`
	TeamID  int       `json:"teamId"`
	Type    EventType `json:"type"`
	Score   int       `json:"score"`
	Player  *Player   `json:"player,omitempty"`
}

// PlayerID returns the acting player's id, or 0 when the event carries no
// player ("other/unknown" entries).
func (e MatchEvent) PlayerID() int {
	if e.Player == nil {
		return 0
	}
	return e.Player.ID
}

// TeamsResponse is the payload returned by /teams.
type TeamsResponse struct {
	Teams []Team `json:"teams"`
}

// PlayersResponse is the payload returned by /players.
type PlayersResponse struct {
	Players []Player `json:"players"`
}

// GameDaysResponse is the payload returned by /gamedays.
type GameDaysResponse struct {
	GameDays []GameDay `json:"gameDays"`
}

// MatchesResponse is the payload returned by /matches.
type MatchesResponse struct {
	Matches []Match `json:"matches"`
}

// SeasonsResponse is the payload returned by /seasons.
type SeasonsResponse struct {
	Seasons []Season `json:"seasons"`
}
