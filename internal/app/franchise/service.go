// Package franchise runs the user's general-manager loop: the regular
// season, playoffs, the draft and the offseason that follows it.
package franchise

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/preston-bernstein/diamond-gm/internal/archive"
	"github.com/preston-bernstein/diamond-gm/internal/config"
	"github.com/preston-bernstein/diamond-gm/internal/domain/league"
	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
	"github.com/preston-bernstein/diamond-gm/internal/engine/roster"
	"github.com/preston-bernstein/diamond-gm/internal/engine/salary"
	"github.com/preston-bernstein/diamond-gm/internal/engine/schedule"
	"github.com/preston-bernstein/diamond-gm/internal/logging"
	"github.com/preston-bernstein/diamond-gm/internal/metrics"
)

var (
	ErrNoFranchise        = errors.New("no active franchise")
	ErrUnknownTeam        = errors.New("unknown team")
	ErrSeasonOver         = errors.New("regular season is over")
	ErrSeasonInProgress   = errors.New("regular season still in progress")
	ErrPlayoffsStarted    = errors.New("playoffs already started")
	ErrPlayoffsNotStarted = errors.New("playoffs not started")
	ErrPlayoffsInProgress = errors.New("playoffs still in progress")
	ErrDraftStarted       = errors.New("draft already started")
	ErrDraftNotStarted    = errors.New("draft not started")
	ErrUnknownProspect    = errors.New("unknown prospect")
	ErrUnknownPlayer      = errors.New("unknown roster player")
	ErrTypeMismatch       = errors.New("players must be the same type")
)

// Store is the slice of the league store the franchise needs.
type Store interface {
	Snapshot() *league.League
	Mutate(fn func(*league.League) error) error
}

// Service owns the single active franchise. League changes go through the
// store; franchise bookkeeping is guarded by mu.
type Service struct {
	mu        sync.Mutex
	store     Store
	gen       *roster.Generator
	rules     config.Rules
	archive   archive.Archive
	logger    *slog.Logger
	metrics   *metrics.Recorder
	franchise *Franchise
}

// Option configures optional collaborators.
type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func WithMetrics(m *metrics.Recorder) Option {
	return func(s *Service) { s.metrics = m }
}

func WithArchive(a archive.Archive) Option {
	return func(s *Service) { s.archive = a }
}

// NewService constructs a Service. gen supplies both generated players and
// the random source for every simulation step.
func NewService(store Store, gen *roster.Generator, rules config.Rules, opts ...Option) *Service {
	s := &Service{
		store:   store,
		gen:     gen,
		rules:   rules,
		archive: archive.Nop{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Active reports whether a franchise is running.
func (s *Service) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.franchise != nil
}

// Start takes control of team, resets every record and draws a fresh
// schedule. Any previous franchise is abandoned.
func (s *Service) Start(ctx context.Context, team string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f *Franchise
	err := s.store.Mutate(func(l *league.League) error {
		if _, ok := l.Team(team); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownTeam, team)
		}
		sched, err := schedule.RoundRobin(len(l.Teams), s.rules.SeasonGames)
		if err != nil {
			return err
		}
		l.ResetRecords()
		f = &Franchise{
			Team:       team,
			Year:       l.Year,
			Schedule:   sched,
			TotalGames: len(sched),
			Lineup:     teams.Lineup{},
		}
		return nil
	})
	if err != nil {
		s.reject(ctx, "start franchise", err, logging.FieldTeam, team)
		return View{}, err
	}
	s.franchise = f
	logging.Info(s.log(ctx), "franchise started",
		logging.FieldTeam, team,
		logging.FieldYear, f.Year,
		logging.FieldCount, f.TotalGames,
	)
	return s.view(f), nil
}

// End abandons the active franchise. League state is left as is.
func (s *Service) End(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.franchise == nil {
		return ErrNoFranchise
	}
	logging.Info(s.log(ctx), "franchise ended", logging.FieldTeam, s.franchise.Team)
	s.franchise = nil
	return nil
}

// View is the franchise dashboard: season state, the user's club and the
// league table.
type View struct {
	Franchise *Franchise    `json:"franchise"`
	Team      *teams.Team   `json:"team"`
	Payroll   int           `json:"payroll"`
	Standings []*teams.Team `json:"standings"`
	Players   []Card        `json:"players"`
}

// Get returns the dashboard of the active franchise.
func (s *Service) Get() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.franchise == nil {
		return View{}, ErrNoFranchise
	}
	return s.view(s.franchise), nil
}

func (s *Service) view(f *Franchise) View {
	l := s.store.Snapshot()
	v := View{Franchise: f.Clone(), Standings: l.Standings()}
	if t, ok := l.Team(f.Team); ok {
		v.Team = t
		v.Payroll = salary.Payroll(t)
		v.Players = Cards(t.Roster)
	}
	return v
}

func (s *Service) active() (*Franchise, error) {
	if s.franchise == nil {
		return nil, ErrNoFranchise
	}
	return s.franchise, nil
}

func (s *Service) log(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, s.logger)
}

func (s *Service) reject(ctx context.Context, op string, err error, args ...any) {
	logging.Warn(s.log(ctx), op+" rejected", append(args, logging.FieldReason, err.Error())...)
}
