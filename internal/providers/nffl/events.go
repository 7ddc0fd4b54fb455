package nffl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"nffl-league-service/internal/domain"
)

// Match-auth operations. Each carries the access token in the AuthHeader and
// fails fast: no retry, no partial effect on the caller's state.

const (
	opVerify      = "verify"
	opCreateEvent = "create_event"
	opDeleteEvent = "delete_event"
	opConfirm     = "confirm"
)

// VerifyMatchAccess checks the token against the match's verify endpoint.
// A nil error means the backend accepted the token for this match.
func (c *Client) VerifyMatchAccess(ctx context.Context, matchID int, token string) error {
	path := "/match/" + strconv.Itoa(matchID) + "/verify/"
	return c.authCall(ctx, opVerify, http.MethodGet, path, token, nil, nil)
}

// CreateMatchEvent records a new event for the match and returns the created
// event with its server-assigned id. A nil playerID omits the player
// reference ("other/unknown" entries).
func (c *Client) CreateMatchEvent(ctx context.Context, matchID int, token string, teamID int, eventType domain.EventType, score int, playerID *int) (domain.MatchEvent, error) {
	body := createEventRequest{
		TeamID: teamID,
		Type:   string(eventType),
		Score:  score,
	}
	if playerID != nil {
		body.Player = &playerReference{PlayerID: *playerID}
	}

	var payload matchEventResponse
	path := "/match/" + strconv.Itoa(matchID) + "/matchEvent/"
	if err := c.authCall(ctx, opCreateEvent, http.MethodPost, path, token, body, &payload); err != nil {
		return domain.MatchEvent{}, err
	}
	return mapMatchEvent(payload), nil
}

// DeleteMatchEvent removes a persisted event by its server-assigned id.
func (c *Client) DeleteMatchEvent(ctx context.Context, matchID int, token string, eventID int) error {
	path := "/match/" + strconv.Itoa(matchID) + "/matchEvent/" + strconv.Itoa(eventID) + "/"
	return c.authCall(ctx, opDeleteEvent, http.MethodDelete, path, token, nil, nil)
}

// ConfirmMatch marks the match as officially finished on the backend.
func (c *Client) ConfirmMatch(ctx context.Context, matchID int, token string) error {
	path := "/match/" + strconv.Itoa(matchID) + "/confirm/"
	return c.authCall(ctx, opConfirm, http.MethodPost, path, token, nil, nil)
}

func (c *Client) authCall(ctx context.Context, op, method, path, token string, body, dest any) error {
	start := time.Now()
	err := c.doAuthCall(ctx, op, method, path, token, body, dest)
	c.recorder.RecordGatewayCall(op, time.Since(start), err)
	return err
}

func (c *Client) doAuthCall(ctx context.Context, op, method, path, token string, body, dest any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set(AuthHeader, token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(op, resp)
	}

	if dest != nil {
		return json.NewDecoder(resp.Body).Decode(dest)
	}
	return nil
}
