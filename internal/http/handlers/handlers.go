package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appcareer "github.com/preston-bernstein/diamond-gm/internal/app/career"
	"github.com/preston-bernstein/diamond-gm/internal/app/franchise"
	"github.com/preston-bernstein/diamond-gm/internal/app/league"
	"github.com/preston-bernstein/diamond-gm/internal/archive"
)

// Services are the application services the API fronts.
type Services struct {
	League    *league.Service
	Franchise *franchise.Service
	Careers   *appcareer.Service
	Archive   archive.Archive
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	league    *league.Service
	franchise *franchise.Service
	careers   *appcareer.Service
	archive   archive.Archive
	logger    *slog.Logger
}

// NewHandler constructs a Handler. A nil archive serves empty listings.
func NewHandler(svc Services, logger *slog.Logger) *Handler {
	if svc.Archive == nil {
		svc.Archive = archive.Nop{}
	}
	return &Handler{
		league:    svc.League,
		franchise: svc.Franchise,
		careers:   svc.Careers,
		archive:   svc.Archive,
		logger:    logger,
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

// Ready reports whether every service the API needs is wired.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.league == nil || h.franchise == nil || h.careers == nil {
		writeError(w, r, http.StatusServiceUnavailable, "not ready", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// NotFound answers unknown routes in the API's error shape.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}

// ArchivedSeasons lists archived season summaries.
func (h *Handler) ArchivedSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.archive.List(r.Context())
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	if seasons == nil {
		seasons = []archive.Summary{}
	}
	writeJSON(w, http.StatusOK, seasons, h.logger)
}

// ArchivedSeason returns one archived season by year.
func (h *Handler) ArchivedSeason(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid year", h.logger)
		return
	}
	season, err := h.archive.Get(r.Context(), year)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, season, h.logger)
}
