package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/diamond-gm/internal/http/handlers"
	"github.com/preston-bernstein/diamond-gm/internal/http/middleware"
	"github.com/preston-bernstein/diamond-gm/internal/metrics"
)

// NewRouter registers the API routes behind request logging and panic recovery.
func NewRouter(h *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(logger, recorder))
	r.Use(chimiddleware.Recoverer)

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/league", func(r chi.Router) {
		r.Get("/", h.League)
		r.Get("/standings", h.Standings)
		r.Get("/teams/{name}", h.Team)
		r.Post("/regenerate", h.Regenerate)
	})

	r.Route("/franchise", func(r chi.Router) {
		r.Post("/", h.StartFranchise)
		r.Get("/", h.Franchise)
		r.Delete("/", h.EndFranchise)
		r.Put("/lineup/{position}", h.AssignLineup)
		r.Delete("/lineup/{position}", h.ClearLineup)
		r.Post("/rounds", h.PlayRound)
		r.Post("/playoffs", h.StartPlayoffs)
		r.Post("/playoffs/advance", h.AdvancePlayoffs)
		r.Post("/draft", h.StartDraft)
		r.Post("/draft/picks", h.Pick)
		r.Post("/draft/picks/auto", h.AutoPick)
		r.Post("/promotions", h.Promote)
		r.Get("/free-agents", h.FreeAgents)
		r.Post("/free-agents/sign", h.Sign)
	})

	r.Route("/careers", func(r chi.Router) {
		r.Post("/", h.CreateCareer)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Career)
			r.Post("/reroll", h.RerollCareer)
			r.Post("/start", h.StartCareer)
			r.Post("/at-bats", h.AtBat)
			r.Post("/games/end", h.EndGame)
			r.Post("/upgrades", h.Upgrade)
			r.Post("/resume", h.Resume)
			r.Post("/advance", h.Advance)
		})
	})

	r.Get("/archive/seasons", h.ArchivedSeasons)
	r.Get("/archive/seasons/{year}", h.ArchivedSeason)

	return r
}
