package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"nffl-league-service/internal/domain"
	"nffl-league-service/internal/logging"
	"nffl-league-service/internal/providers"
	"nffl-league-service/internal/referee"
)

// RefereeHandler exposes scoring sessions over HTTP. Each session is
// addressed by the opaque id handed out on creation.
type RefereeHandler struct {
	registry *referee.Registry
	logger   *slog.Logger
}

// NewRefereeHandler constructs a RefereeHandler around a session registry.
func NewRefereeHandler(registry *referee.Registry, logger *slog.Logger) *RefereeHandler {
	return &RefereeHandler{registry: registry, logger: logger}
}

type createSessionRequest struct {
	MatchID int    `json:"matchId"`
	Token   string `json:"token"`
}

type sessionResponse struct {
	SessionID string `json:"sessionId"`
	referee.Snapshot
}

type addEventRequest struct {
	Side     string `json:"side"`
	Type     string `json:"type"`
	PlayerID *int   `json:"playerId,omitempty"`
}

// CreateSession verifies referee access for a match and, on success, answers
// with the new session id and the loaded scoreboard. A rejected token tears
// the session down again so nothing half-initialized is addressable.
func (h *RefereeHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.MatchID <= 0 || req.Token == "" {
		writeError(w, r, http.StatusBadRequest, "matchId and token are required", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	id, session := h.registry.Create()
	if err := session.Verify(r.Context(), req.MatchID, req.Token); err != nil {
		h.registry.Delete(id)
		logging.Warn(logger, "session verification failed",
			logging.FieldMatchID, req.MatchID, "err", err)
		h.writeSessionError(w, r, err)
		return
	}

	logging.Info(logger, "scoring session started",
		logging.FieldSessionID, id,
		logging.FieldMatchID, req.MatchID)
	writeJSON(w, http.StatusCreated, sessionResponse{SessionID: id, Snapshot: session.Snapshot()}, h.logger)
}

// GetSession returns the session scoreboard: state, per-side scores, events
// and rosters.
func (h *RefereeHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, session, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{SessionID: id, Snapshot: session.Snapshot()}, h.logger)
}

// AddEvent records a new event for one side of the session's match.
func (h *RefereeHandler) AddEvent(w http.ResponseWriter, r *http.Request) {
	id, session, ok := h.lookup(w, r)
	if !ok {
		return
	}
	var req addEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	side, err := domain.ParseSide(req.Side)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	eventType, err := domain.ParseEventType(req.Type)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if req.PlayerID != nil && *req.PlayerID <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid playerId", h.logger)
		return
	}

	if _, err := session.AddEvent(r.Context(), side, eventType, req.PlayerID); err != nil {
		h.writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{SessionID: id, Snapshot: session.Snapshot()}, h.logger)
}

// RemoveEvent deletes the event at the given position within one side's
// event list.
func (h *RefereeHandler) RemoveEvent(w http.ResponseWriter, r *http.Request) {
	id, session, ok := h.lookup(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	side, err := domain.ParseSide(vars["side"])
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid event index", h.logger)
		return
	}

	if _, err := session.RemoveEvent(r.Context(), side, index); err != nil {
		h.writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{SessionID: id, Snapshot: session.Snapshot()}, h.logger)
}

// Finish closes the session's match.
func (h *RefereeHandler) Finish(w http.ResponseWriter, r *http.Request) {
	id, session, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if err := session.Finish(r.Context()); err != nil {
		h.writeSessionError(w, r, err)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "scoring session finished", logging.FieldSessionID, id)
	writeJSON(w, http.StatusOK, sessionResponse{SessionID: id, Snapshot: session.Snapshot()}, h.logger)
}

// Restart discards the session's match state so a new match can be scored
// under the same session id.
func (h *RefereeHandler) Restart(w http.ResponseWriter, r *http.Request) {
	id, session, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if err := session.StartOver(); err != nil {
		h.writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{SessionID: id, Snapshot: session.Snapshot()}, h.logger)
}

// DeleteSession removes the session entirely.
func (h *RefereeHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := h.registry.Get(id); !ok {
		writeError(w, r, http.StatusNotFound, "session not found", h.logger)
		return
	}
	h.registry.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *RefereeHandler) lookup(w http.ResponseWriter, r *http.Request) (string, *referee.Session, bool) {
	id := mux.Vars(r)["id"]
	session, ok := h.registry.Get(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "session not found", h.logger)
		return "", nil, false
	}
	return id, session, true
}

// writeSessionError maps session and gateway failures onto HTTP statuses:
// busy and lifecycle conflicts are 409, bad indexes 400, rejected tokens 401,
// rate limits 429, anything else from the upstream 502.
func (h *RefereeHandler) writeSessionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, referee.ErrBusy):
		writeError(w, r, http.StatusConflict, err.Error(), h.logger)
	case errors.Is(err, referee.ErrNotActive), errors.Is(err, referee.ErrAlreadyStarted):
		writeError(w, r, http.StatusConflict, err.Error(), h.logger)
	case errors.Is(err, referee.ErrEventIndex):
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
	default:
		if _, ok := providers.AsRateLimitError(err); ok {
			writeError(w, r, http.StatusTooManyRequests, err.Error(), h.logger)
			return
		}
		if upErr, ok := providers.AsUpstreamError(err); ok {
			if upErr.StatusCode == http.StatusUnauthorized || upErr.StatusCode == http.StatusForbidden {
				writeError(w, r, http.StatusUnauthorized, err.Error(), h.logger)
				return
			}
		}
		writeError(w, r, http.StatusBadGateway, err.Error(), h.logger)
	}
}
