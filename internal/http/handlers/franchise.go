package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/diamond-gm/internal/http/requestutil"
)

type teamRequest struct {
	Team string `json:"team"`
}

type lineupRequest struct {
	PlayerID string `json:"playerId"`
}

type pickRequest struct {
	ProspectID string `json:"prospectId"`
}

type promotionRequest struct {
	ProspectID string `json:"prospectId"`
	ReleaseID  string `json:"releaseId"`
}

type signRequest struct {
	FreeAgentID string `json:"freeAgentId"`
	ReleaseID   string `json:"releaseId"`
}

// StartFranchise takes control of a team.
func (h *Handler) StartFranchise(w http.ResponseWriter, r *http.Request) {
	var req teamRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !required(w, r, h, "team", req.Team) {
		return
	}
	view, err := h.franchise.Start(r.Context(), req.Team)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, view, h.logger)
}

func (h *Handler) Franchise(w http.ResponseWriter, r *http.Request) {
	view, err := h.franchise.Get()
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}

// EndFranchise abandons the running franchise.
func (h *Handler) EndFranchise(w http.ResponseWriter, r *http.Request) {
	if err := h.franchise.End(r.Context()); err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AssignLineup puts a player in the slot named by the path.
func (h *Handler) AssignLineup(w http.ResponseWriter, r *http.Request) {
	var req lineupRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !required(w, r, h, "playerId", req.PlayerID) {
		return
	}
	lineup, err := h.franchise.AssignLineup(r.Context(), position(r), req.PlayerID)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, lineup, h.logger)
}

func (h *Handler) ClearLineup(w http.ResponseWriter, r *http.Request) {
	lineup, err := h.franchise.ClearLineup(position(r))
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, lineup, h.logger)
}

// PlayRound plays the next round of the regular season.
func (h *Handler) PlayRound(w http.ResponseWriter, r *http.Request) {
	report, err := h.franchise.PlayRound(r.Context())
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, report, h.logger)
}

func (h *Handler) StartPlayoffs(w http.ResponseWriter, r *http.Request) {
	bracket, err := h.franchise.StartPlayoffs(r.Context())
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, bracket, h.logger)
}

func (h *Handler) AdvancePlayoffs(w http.ResponseWriter, r *http.Request) {
	report, err := h.franchise.AdvancePlayoffs(r.Context())
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, report, h.logger)
}

func (h *Handler) StartDraft(w http.ResponseWriter, r *http.Request) {
	state, err := h.franchise.StartDraft(r.Context())
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, state, h.logger)
}

// Pick makes the current selection with the named prospect.
func (h *Handler) Pick(w http.ResponseWriter, r *http.Request) {
	var req pickRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !required(w, r, h, "prospectId", req.ProspectID) {
		return
	}
	report, err := h.franchise.Pick(r.Context(), req.ProspectID)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, report, h.logger)
}

func (h *Handler) AutoPick(w http.ResponseWriter, r *http.Request) {
	report, err := h.franchise.AutoPick(r.Context())
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, report, h.logger)
}

// Promote swaps a minor leaguer onto the active roster.
func (h *Handler) Promote(w http.ResponseWriter, r *http.Request) {
	var req promotionRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !required(w, r, h, "prospectId", req.ProspectID) || !required(w, r, h, "releaseId", req.ReleaseID) {
		return
	}
	p, err := h.franchise.Promote(r.Context(), req.ProspectID, req.ReleaseID)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, p, h.logger)
}

func (h *Handler) FreeAgents(w http.ResponseWriter, r *http.Request) {
	pool, err := h.franchise.FreeAgents()
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, pool, h.logger)
}

// Sign brings in a free agent for a released roster player.
func (h *Handler) Sign(w http.ResponseWriter, r *http.Request) {
	var req signRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !required(w, r, h, "freeAgentId", req.FreeAgentID) || !required(w, r, h, "releaseId", req.ReleaseID) {
		return
	}
	p, err := h.franchise.Sign(r.Context(), req.FreeAgentID, req.ReleaseID)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, p, h.logger)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := requestutil.DecodeBody(r, dst); err != nil {
		writeFailure(w, r, err, h.logger)
		return false
	}
	return true
}

func required(w http.ResponseWriter, r *http.Request, h *Handler, field, value string) bool {
	if strings.TrimSpace(value) == "" {
		writeError(w, r, http.StatusBadRequest, field+" is required", h.logger)
		return false
	}
	return true
}

func position(r *http.Request) string {
	return chi.URLParam(r, "position")
}
