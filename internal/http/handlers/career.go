package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type nameRequest struct {
	Name string `json:"name"`
}

type upgradeRequest struct {
	Stat string `json:"stat"`
}

// CreateCareer rolls a new prospect for a team.
func (h *Handler) CreateCareer(w http.ResponseWriter, r *http.Request) {
	var req teamRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !required(w, r, h, "team", req.Team) {
		return
	}
	view, err := h.careers.Create(r.Context(), req.Team)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, view, h.logger)
}

func (h *Handler) Career(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.careers.Get(careerID(r)))
}

func (h *Handler) RerollCareer(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.careers.Reroll(r.Context(), careerID(r)))
}

// StartCareer names the prospect and opens the first season.
func (h *Handler) StartCareer(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r)(h.careers.Start(r.Context(), careerID(r), req.Name))
}

func (h *Handler) AtBat(w http.ResponseWriter, r *http.Request) {
	res, err := h.careers.AtBat(r.Context(), careerID(r))
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, res, h.logger)
}

func (h *Handler) EndGame(w http.ResponseWriter, r *http.Request) {
	res, err := h.careers.EndGame(r.Context(), careerID(r))
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, res, h.logger)
}

// Upgrade spends XP on one stat.
func (h *Handler) Upgrade(w http.ResponseWriter, r *http.Request) {
	var req upgradeRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !required(w, r, h, "stat", req.Stat) {
		return
	}
	h.respond(w, r)(h.careers.Upgrade(r.Context(), careerID(r), req.Stat))
}

func (h *Handler) Resume(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.careers.Resume(r.Context(), careerID(r)))
}

func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.careers.Advance(r.Context(), careerID(r)))
}

// respond writes a service result pair as 200 or the mapped failure.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request) func(any, error) {
	return func(payload any, err error) {
		if err != nil {
			writeFailure(w, r, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, payload, h.logger)
	}
}

func careerID(r *http.Request) string {
	return chi.URLParam(r, "id")
}
