// Package league exposes read access to the shared league and guards its
// regeneration.
package league

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainleague "github.com/preston-bernstein/diamond-gm/internal/domain/league"
	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
	"github.com/preston-bernstein/diamond-gm/internal/logging"
)

var (
	ErrTeamNotFound    = errors.New("team not found")
	ErrFranchiseActive = errors.New("league is locked by an active franchise")
)

// Store defines the league store operations the service uses.
type Store interface {
	Snapshot() *domainleague.League
	Team(name string) (*teams.Team, bool)
	Standings() []*teams.Team
	Regenerate()
}

// Guard reports whether something depends on the current league.
type Guard interface {
	Active() bool
}

// Service coordinates league reads using a Store.
type Service struct {
	store  Store
	guard  Guard
	logger *slog.Logger
}

// NewService constructs a Service. guard may be nil.
func NewService(store Store, guard Guard, logger *slog.Logger) *Service {
	return &Service{store: store, guard: guard, logger: logger}
}

// League returns a copy of the whole league.
func (s *Service) League() *domainleague.League {
	return s.store.Snapshot()
}

// Standings returns teams ordered by winning percentage.
func (s *Service) Standings() []*teams.Team {
	return s.store.Standings()
}

// Team returns a single team by name.
func (s *Service) Team(name string) (*teams.Team, error) {
	t, ok := s.store.Team(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, name)
	}
	return t, nil
}

// Regenerate replaces the league with a freshly generated one. It is refused
// while a franchise is running on the current league.
func (s *Service) Regenerate(ctx context.Context) (*domainleague.League, error) {
	logger := logging.FromContext(ctx, s.logger)
	if s.guard != nil && s.guard.Active() {
		logging.Warn(logger, "league regeneration rejected", logging.FieldReason, ErrFranchiseActive.Error())
		return nil, ErrFranchiseActive
	}
	s.store.Regenerate()
	l := s.store.Snapshot()
	logging.Info(logger, "league regenerated", logging.FieldCount, len(l.Teams), logging.FieldYear, l.Year)
	return l, nil
}
