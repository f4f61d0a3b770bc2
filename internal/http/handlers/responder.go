package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	appcareer "github.com/preston-bernstein/diamond-gm/internal/app/career"
	"github.com/preston-bernstein/diamond-gm/internal/app/franchise"
	"github.com/preston-bernstein/diamond-gm/internal/app/league"
	"github.com/preston-bernstein/diamond-gm/internal/archive"
	"github.com/preston-bernstein/diamond-gm/internal/career"
	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
	"github.com/preston-bernstein/diamond-gm/internal/engine/draft"
	"github.com/preston-bernstein/diamond-gm/internal/engine/salary"
	"github.com/preston-bernstein/diamond-gm/internal/engine/sim"
	"github.com/preston-bernstein/diamond-gm/internal/http/middleware"
	"github.com/preston-bernstein/diamond-gm/internal/http/requestutil"
	"github.com/preston-bernstein/diamond-gm/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeFailure maps a service error onto a status. Unrecognised errors are
// logged and reported as a bare 500.
func writeFailure(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.Error(loggerFromContext(r, logger), "request failed", err)
		writeError(w, r, status, "internal error", logger)
		return
	}
	writeError(w, r, status, err.Error(), logger)
}

var (
	notFound = []error{
		franchise.ErrNoFranchise,
		league.ErrTeamNotFound,
		appcareer.ErrSessionNotFound,
		archive.ErrNotFound,
	}
	badRequest = []error{
		requestutil.ErrBadBody,
		teams.ErrUnknownPosition,
		career.ErrBlankName,
		career.ErrUnknownStat,
	}
	conflict = []error{
		league.ErrFranchiseActive,
		franchise.ErrSeasonOver,
		franchise.ErrSeasonInProgress,
		franchise.ErrPlayoffsStarted,
		franchise.ErrPlayoffsNotStarted,
		franchise.ErrPlayoffsInProgress,
		franchise.ErrDraftStarted,
		franchise.ErrDraftNotStarted,
		draft.ErrDraftComplete,
		sim.ErrBracketDone,
		sim.ErrNotEnoughTeams,
		career.ErrWrongPhase,
		career.ErrGameComplete,
		career.ErrGameInProgress,
	}
	unprocessable = []error{
		franchise.ErrUnknownTeam,
		franchise.ErrUnknownProspect,
		franchise.ErrUnknownPlayer,
		franchise.ErrTypeMismatch,
		appcareer.ErrUnknownTeam,
		draft.ErrUnknownProspect,
		salary.ErrUnknownFreeAgent,
		salary.ErrUnknownRelease,
		salary.ErrTypeMismatch,
		salary.ErrCapExceeded,
		teams.ErrNotAssignable,
		teams.ErrRosterShape,
		career.ErrInsufficientXP,
		career.ErrStatMaxed,
	}
)

func statusFor(err error) int {
	switch {
	case matches(err, notFound):
		return http.StatusNotFound
	case matches(err, badRequest):
		return http.StatusBadRequest
	case matches(err, conflict):
		return http.StatusConflict
	case matches(err, unprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func matches(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
