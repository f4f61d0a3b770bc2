// Package career hosts Career Mode sessions against the shared league.
package career

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	careermode "github.com/preston-bernstein/diamond-gm/internal/career"
	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
	"github.com/preston-bernstein/diamond-gm/internal/logging"
	"github.com/preston-bernstein/diamond-gm/internal/rng"
)

var (
	ErrSessionNotFound = errors.New("career not found")
	ErrUnknownTeam     = errors.New("unknown team")
)

// Store is the read side of the league store careers need.
type Store interface {
	Team(name string) (*teams.Team, bool)
	Standings() []*teams.Team
}

// View is a career plus the league table it plays alongside.
type View struct {
	ID          string             `json:"id"`
	Career      *careermode.Career `json:"career"`
	Average     float64            `json:"avg"`
	UpgradeCost int                `json:"upgradeCost"`
	Standings   []*teams.Team      `json:"standings"`
}

// AtBatView is the result of one plate appearance.
type AtBatView struct {
	Result careermode.AtBatResult `json:"result"`
	View
}

// GameView is the line of a finished game.
type GameView struct {
	Line careermode.GameLine `json:"line"`
	View
}

// Service keeps careers in memory keyed by id.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*careermode.Career
	store    Store
	src      rng.Source
	rules    careermode.Rules
	newID    func() string
	logger   *slog.Logger
}

// Option configures the service.
type Option func(*Service)

// WithIDFunc overrides session id generation.
func WithIDFunc(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func WithRules(r careermode.Rules) Option {
	return func(s *Service) { s.rules = r }
}

func NewService(store Store, src rng.Source, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		sessions: make(map[string]*careermode.Career),
		store:    store,
		src:      src,
		rules:    careermode.DefaultRules(),
		newID:    uuid.NewString,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create rolls a prospect for team and opens a session.
func (s *Service) Create(ctx context.Context, team string) (View, error) {
	if _, ok := s.store.Team(team); !ok {
		return View{}, fmt.Errorf("%w: %s", ErrUnknownTeam, team)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	c := careermode.New(s.src, team, s.rules)
	s.sessions[id] = c
	logging.Info(logging.FromContext(ctx, s.logger), "career created",
		logging.FieldCareer, id,
		logging.FieldTeam, team,
	)
	return s.view(id, c), nil
}

// Get returns a session.
func (s *Service) Get(id string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.sessions[id]
	if !ok {
		return View{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s.view(id, c), nil
}

func (s *Service) Reroll(ctx context.Context, id string) (View, error) {
	return s.apply(ctx, id, "reroll", func(c *careermode.Career) error {
		return c.Reroll(s.src)
	})
}

func (s *Service) Start(ctx context.Context, id, name string) (View, error) {
	return s.apply(ctx, id, "start", func(c *careermode.Career) error {
		return c.Start(name)
	})
}

func (s *Service) Upgrade(ctx context.Context, id, stat string) (View, error) {
	return s.apply(ctx, id, "upgrade", func(c *careermode.Career) error {
		return c.Upgrade(stat)
	})
}

func (s *Service) Resume(ctx context.Context, id string) (View, error) {
	return s.apply(ctx, id, "resume", (*careermode.Career).Resume)
}

func (s *Service) Advance(ctx context.Context, id string) (View, error) {
	return s.apply(ctx, id, "advance", (*careermode.Career).Advance)
}

// AtBat plays one plate appearance.
func (s *Service) AtBat(ctx context.Context, id string) (AtBatView, error) {
	var res careermode.AtBatResult
	v, err := s.apply(ctx, id, "at-bat", func(c *careermode.Career) error {
		var err error
		res, err = c.AtBat(s.src)
		return err
	})
	if err != nil {
		return AtBatView{}, err
	}
	return AtBatView{Result: res, View: v}, nil
}

// EndGame closes the current game once every at-bat is taken.
func (s *Service) EndGame(ctx context.Context, id string) (GameView, error) {
	var line careermode.GameLine
	v, err := s.apply(ctx, id, "end game", func(c *careermode.Career) error {
		var err error
		line, err = c.EndGame()
		return err
	})
	if err != nil {
		return GameView{}, err
	}
	return GameView{Line: line, View: v}, nil
}

// apply runs fn on a copy of the career and keeps the copy only on success.
func (s *Service) apply(ctx context.Context, id, op string, fn func(*careermode.Career) error) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.sessions[id]
	if !ok {
		return View{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	next := c.Clone()
	before := next.Phase
	if err := fn(next); err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "career "+op+" rejected",
			logging.FieldCareer, id,
			logging.FieldReason, err.Error(),
		)
		return View{}, err
	}
	s.sessions[id] = next
	if next.Phase != before {
		logging.Info(logging.FromContext(ctx, s.logger), "career phase changed",
			logging.FieldCareer, id,
			"from", before,
			"to", next.Phase,
		)
	}
	return s.view(id, next), nil
}

func (s *Service) view(id string, c *careermode.Career) View {
	return View{
		ID:          id,
		Career:      c.Clone(),
		Average:     c.Season.Average(),
		UpgradeCost: c.UpgradeCost(),
		Standings:   s.store.Standings(),
	}
}
