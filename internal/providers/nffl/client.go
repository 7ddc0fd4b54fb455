package nffl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nffl-league-service/internal/domain"
	"nffl-league-service/internal/metrics"
	"nffl-league-service/internal/providers"
)

// Config controls how the client reaches the NFFL backend API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Recorder   *metrics.Recorder
}

// Client fetches league resources from the NFFL backend and maps them to
// domain models. It also implements the authenticated match-event operations
// keyed by the per-match access token.
type Client struct {
	baseURL    string
	httpClient httpDoer
	recorder   *metrics.Recorder
}

// NewClient constructs an NFFL client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		recorder:   cfg.Recorder,
	}
}

// FetchTeams retrieves all teams.
func (c *Client) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	var payload []teamResponse
	if err := c.getJSON(ctx, "fetch_teams", "/team/", nil, &payload); err != nil {
		return nil, err
	}
	teams := make([]domain.Team, 0, len(payload))
	for _, t := range payload {
		teams = append(teams, mapTeam(t))
	}
	return teams, nil
}

// FetchPlayers retrieves players, scoped to one team when teamID is non-zero.
func (c *Client) FetchPlayers(ctx context.Context, teamID int) ([]domain.Player, error) {
	filter := PlayerFilter{TeamID: teamID}
	var payload []playerResponse
	if err := c.getJSON(ctx, "fetch_players", "/player/", filter.values(), &payload); err != nil {
		return nil, err
	}
	players := make([]domain.Player, 0, len(payload))
	for _, p := range payload {
		players = append(players, mapPlayer(p))
	}
	return players, nil
}

// FetchGameDays retrieves the league's game days.
func (c *Client) FetchGameDays(ctx context.Context) ([]domain.GameDay, error) {
	var payload []gameDayResponse
	if err := c.getJSON(ctx, "fetch_game_days", "/gameDay/", nil, &payload); err != nil {
		return nil, err
	}
	days := make([]domain.GameDay, 0, len(payload))
	for _, g := range payload {
		days = append(days, mapGameDay(g))
	}
	return days, nil
}

// FetchMatches retrieves matches matching the filter.
func (c *Client) FetchMatches(ctx context.Context, filter providers.MatchFilter) ([]domain.Match, error) {
	wire := MatchListFilter{GameDayID: filter.GameDayID, Final: filter.Final}
	var payload []matchResponse
	if err := c.getJSON(ctx, "fetch_matches", "/match/", wire.values(), &payload); err != nil {
		return nil, err
	}
	matches := make([]domain.Match, 0, len(payload))
	for _, m := range payload {
		match := mapMatch(m)
		// TeamId is not a server-side match parameter; narrow here.
		if filter.TeamID != 0 && match.HomeTeam.ID != filter.TeamID && match.AwayTeam.ID != filter.TeamID {
			continue
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// FetchMatch retrieves a single match by id.
func (c *Client) FetchMatch(ctx context.Context, matchID int) (domain.Match, error) {
	var payload matchResponse
	if err := c.getJSON(ctx, "fetch_match", "/match/"+strconv.Itoa(matchID)+"/", nil, &payload); err != nil {
		return domain.Match{}, err
	}
	return mapMatch(payload), nil
}

// FetchMatchEvents retrieves the events already recorded for a match, in the
// backend's order.
func (c *Client) FetchMatchEvents(ctx context.Context, matchID int) ([]domain.MatchEvent, error) {
	filter := MatchEventFilter{MatchID: matchID}
	var payload []matchEventResponse
	path := "/match/" + strconv.Itoa(matchID) + "/matchEvent/"
	if err := c.getJSON(ctx, "fetch_match_events", path, filter.values(), &payload); err != nil {
		return nil, err
	}
	events := make([]domain.MatchEvent, 0, len(payload))
	for _, e := range payload {
		events = append(events, mapMatchEvent(e))
	}
	return events, nil
}

// FetchSeasons retrieves all seasons.
func (c *Client) FetchSeasons(ctx context.Context) ([]domain.Season, error) {
	var payload []seasonResponse
	if err := c.getJSON(ctx, "fetch_seasons", "/season/", nil, &payload); err != nil {
		return nil, err
	}
	seasons := make([]domain.Season, 0, len(payload))
	for _, s := range payload {
		seasons = append(seasons, mapSeason(s))
	}
	return seasons, nil
}

// FetchTeamStats retrieves aggregated statistics for one team.
func (c *Client) FetchTeamStats(ctx context.Context, teamID int) (domain.TeamStats, error) {
	var payload teamStatsResponse
	path := "/team/" + strconv.Itoa(teamID) + "/stats/"
	if err := c.getJSON(ctx, "fetch_team_stats", path, nil, &payload); err != nil {
		return domain.TeamStats{}, err
	}
	return mapTeamStats(teamID, payload), nil
}

// FetchPlayerStats retrieves aggregated statistics for one player.
func (c *Client) FetchPlayerStats(ctx context.Context, playerID int) (domain.PlayerStats, error) {
	var payload playerStatsResponse
	path := "/player/" + strconv.Itoa(playerID) + "/stats/"
	if err := c.getJSON(ctx, "fetch_player_stats", path, nil, &payload); err != nil {
		return domain.PlayerStats{}, err
	}
	return mapPlayerStats(playerID, payload), nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, query url.Values, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(op, resp)
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}

// responseError turns a non-2xx response into a typed error, preserving the
// server-provided message when one is present.
func responseError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	msg := extractMessage(body)

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    msg,
		}
	}

	return &providers.UpstreamError{
		Operation:  op,
		StatusCode: resp.StatusCode,
		Message:    msg,
	}
}

func extractMessage(body []byte) string {
	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(body))
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
