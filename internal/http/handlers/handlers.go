package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"nffl-league-service/internal/app/players"
	"nffl-league-service/internal/app/schedule"
	"nffl-league-service/internal/app/teams"
	"nffl-league-service/internal/domain"
	"nffl-league-service/internal/logging"
	"nffl-league-service/internal/poller"
	"nffl-league-service/internal/providers"
)

// Handler wires the browse routes to the domain services.
type Handler struct {
	teams    *teams.Service
	players  *players.Service
	schedule *schedule.Service
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler.
func NewHandler(teamSvc *teams.Service, playerSvc *players.Service, scheduleSvc *schedule.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		teams:    teamSvc,
		players:  playerSvc,
		schedule: scheduleSvc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Teams returns the current set of teams.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.TeamsResponse{Teams: h.teams.Teams()}, h.logger)
}

// TeamByID returns a single team.
func (h *Handler) TeamByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}
	team, found := h.teams.TeamByID(id)
	if !found {
		writeError(w, r, http.StatusNotFound, "team not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, team, h.logger)
}

// TeamStats returns a team's current statistics, fetched from the upstream.
func (h *Handler) TeamStats(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}
	logger := loggerFromContext(r, h.logger)
	stats, err := h.teams.TeamStats(r.Context(), id)
	if err != nil {
		logging.Warn(logger, "team stats fetch failed", logging.FieldTeamID, id, "err", err)
		h.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats, h.logger)
}

// Players returns players, optionally narrowed by ?teamId=.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	teamID := 0
	if raw := r.URL.Query().Get("teamId"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, r, http.StatusBadRequest, "invalid teamId", h.logger)
			return
		}
		teamID = parsed
	}
	writeJSON(w, http.StatusOK, domain.PlayersResponse{Players: h.players.Players(teamID)}, h.logger)
}

// PlayerByID returns a single player.
func (h *Handler) PlayerByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}
	player, found := h.players.PlayerByID(id)
	if !found {
		writeError(w, r, http.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, player, h.logger)
}

// PlayerStats returns a player's current statistics, fetched from the upstream.
func (h *Handler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}
	logger := loggerFromContext(r, h.logger)
	stats, err := h.players.PlayerStats(r.Context(), id)
	if err != nil {
		logging.Warn(logger, "player stats fetch failed", "player_id", id, "err", err)
		h.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats, h.logger)
}

// GameDays returns the league schedule's game days.
func (h *Handler) GameDays(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.GameDaysResponse{GameDays: h.schedule.GameDays()}, h.logger)
}

// Matches returns matches, optionally narrowed by ?gameDayId=, ?teamId= and
// ?final=.
func (h *Handler) Matches(w http.ResponseWriter, r *http.Request) {
	gameDayID, teamID := 0, 0
	if raw := r.URL.Query().Get("gameDayId"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, r, http.StatusBadRequest, "invalid gameDayId", h.logger)
			return
		}
		gameDayID = parsed
	}
	if raw := r.URL.Query().Get("teamId"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, r, http.StatusBadRequest, "invalid teamId", h.logger)
			return
		}
		teamID = parsed
	}

	matches := h.schedule.Matches(gameDayID, teamID)

	if raw := r.URL.Query().Get("final"); raw != "" {
		final, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid final flag", h.logger)
			return
		}
		filtered := matches[:0]
		for _, m := range matches {
			if m.Final == final {
				filtered = append(filtered, m)
			}
		}
		matches = filtered
	}

	writeJSON(w, http.StatusOK, domain.MatchesResponse{Matches: matches}, h.logger)
}

// MatchByID returns a single match.
func (h *Handler) MatchByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}
	match, found := h.schedule.MatchByID(id)
	if !found {
		writeError(w, r, http.StatusNotFound, "match not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, match, h.logger)
}

// Seasons returns the league's seasons.
func (h *Handler) Seasons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.SeasonsResponse{Seasons: h.schedule.Seasons()}, h.logger)
}

func (h *Handler) writeUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	if rlErr, ok := providers.AsRateLimitError(err); ok {
		writeError(w, r, http.StatusTooManyRequests, rlErr.Error(), h.logger)
		return
	}
	if upErr, ok := providers.AsUpstreamError(err); ok && upErr.StatusCode == http.StatusNotFound {
		writeError(w, r, http.StatusNotFound, upErr.Error(), h.logger)
		return
	}
	writeError(w, r, http.StatusBadGateway, err.Error(), h.logger)
}

// pathID parses a positive integer path variable, answering 400 on anything
// else.
func pathID(w http.ResponseWriter, r *http.Request, name string, logger *slog.Logger) (int, bool) {
	raw := strings.TrimSpace(mux.Vars(r)[name])
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid "+name, logger)
		return 0, false
	}
	return id, true
}
