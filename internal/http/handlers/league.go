package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// League returns the whole league.
func (h *Handler) League(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.league.League(), h.logger)
}

// Standings returns teams ordered by winning percentage.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.league.Standings(), h.logger)
}

// Team returns one team by name.
func (h *Handler) Team(w http.ResponseWriter, r *http.Request) {
	team, err := h.league.Team(chi.URLParam(r, "name"))
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, team, h.logger)
}

// Regenerate replaces the league with a fresh one.
func (h *Handler) Regenerate(w http.ResponseWriter, r *http.Request) {
	l, err := h.league.Regenerate(r.Context())
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, l, h.logger)
}
