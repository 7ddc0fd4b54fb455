package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gorilla/mux"

	"nffl-league-service/internal/http/handlers"
	"nffl-league-service/internal/http/middleware"
	"nffl-league-service/internal/metrics"
)

// NewRouter registers all routes and wires the logging middleware.
func NewRouter(handler *handlers.Handler, refereeHandler *handlers.RefereeHandler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Logging(logger, recorder))
	r.NotFoundHandler = middleware.Logging(logger, recorder)(jsonStatusHandler(nethttp.StatusNotFound, "not found"))
	r.MethodNotAllowedHandler = middleware.Logging(logger, recorder)(jsonStatusHandler(nethttp.StatusMethodNotAllowed, "method not allowed"))

	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)

	r.HandleFunc("/teams", handler.Teams).Methods(nethttp.MethodGet)
	r.HandleFunc("/teams/{id}", handler.TeamByID).Methods(nethttp.MethodGet)
	r.HandleFunc("/teams/{id}/stats", handler.TeamStats).Methods(nethttp.MethodGet)
	r.HandleFunc("/players", handler.Players).Methods(nethttp.MethodGet)
	r.HandleFunc("/players/{id}", handler.PlayerByID).Methods(nethttp.MethodGet)
	r.HandleFunc("/players/{id}/stats", handler.PlayerStats).Methods(nethttp.MethodGet)
	r.HandleFunc("/gamedays", handler.GameDays).Methods(nethttp.MethodGet)
	r.HandleFunc("/matches", handler.Matches).Methods(nethttp.MethodGet)
	r.HandleFunc("/matches/{id}", handler.MatchByID).Methods(nethttp.MethodGet)
	r.HandleFunc("/seasons", handler.Seasons).Methods(nethttp.MethodGet)

	sessions := r.PathPrefix("/referee/sessions").Subrouter()
	sessions.HandleFunc("", refereeHandler.CreateSession).Methods(nethttp.MethodPost)
	sessions.HandleFunc("/{id}", refereeHandler.GetSession).Methods(nethttp.MethodGet)
	sessions.HandleFunc("/{id}", refereeHandler.DeleteSession).Methods(nethttp.MethodDelete)
	sessions.HandleFunc("/{id}/events", refereeHandler.AddEvent).Methods(nethttp.MethodPost)
	sessions.HandleFunc("/{id}/events/{side}/{index}", refereeHandler.RemoveEvent).Methods(nethttp.MethodDelete)
	sessions.HandleFunc("/{id}/finish", refereeHandler.Finish).Methods(nethttp.MethodPost)
	sessions.HandleFunc("/{id}/restart", refereeHandler.Restart).Methods(nethttp.MethodPost)

	return r
}

func jsonStatusHandler(status int, message string) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"error":"` + message + `"}` + "\n"))
	})
}
