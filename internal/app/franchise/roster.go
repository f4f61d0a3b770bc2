package franchise

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/diamond-gm/internal/domain/league"
	"github.com/preston-bernstein/diamond-gm/internal/domain/players"
	"github.com/preston-bernstein/diamond-gm/internal/engine/salary"
	"github.com/preston-bernstein/diamond-gm/internal/logging"
	"github.com/preston-bernstein/diamond-gm/internal/metrics"
)

// Promote moves a minor leaguer onto the roster in place of releaseID,
// who leaves the game. Both must be the same type.
func (s *Service) Promote(ctx context.Context, prospectID, releaseID string) (*players.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.active()
	if err != nil {
		return nil, err
	}

	var promoted *players.Player
	err = s.store.Mutate(func(l *league.League) error {
		t, ok := l.Team(f.Team)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownTeam, f.Team)
		}
		pi := players.IndexOf(t.Minors, prospectID)
		if pi < 0 {
			return fmt.Errorf("%w: %s", ErrUnknownProspect, prospectID)
		}
		ri := players.IndexOf(t.Roster, releaseID)
		if ri < 0 {
			return fmt.Errorf("%w: %s", ErrUnknownPlayer, releaseID)
		}
		p := t.Minors[pi]
		if p.Kind != t.Roster[ri].Kind {
			return ErrTypeMismatch
		}
		p.Potential = 0
		p.Salary = salary.Tier(p)
		t.Roster[ri] = p
		t.Minors = append(t.Minors[:pi:pi], t.Minors[pi+1:]...)
		if err := t.ValidateRoster(); err != nil {
			return err
		}
		promoted = p.Clone()
		return nil
	})
	if err != nil {
		s.reject(ctx, "promotion", err, logging.FieldPlayer, prospectID)
		return nil, err
	}
	s.pruneLineup(f)
	logging.Info(s.log(ctx), "prospect promoted",
		logging.FieldTeam, f.Team,
		logging.FieldPlayer, prospectID,
		"released", releaseID,
	)
	return promoted, nil
}

// FreeAgents lists the league's current free-agent pool.
func (s *Service) FreeAgents() ([]*players.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.active(); err != nil {
		return nil, err
	}
	pool := s.store.Snapshot().FreeAgents
	if pool == nil {
		pool = []*players.Player{}
	}
	return pool, nil
}

// Sign adds a free agent to the user's roster in place of releaseID.
func (s *Service) Sign(ctx context.Context, freeAgentID, releaseID string) (*players.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.active()
	if err != nil {
		return nil, err
	}

	var signed *players.Player
	err = s.store.Mutate(func(l *league.League) error {
		if _, err := salary.Sign(l, f.Team, freeAgentID, releaseID); err != nil {
			return err
		}
		t, _ := l.Team(f.Team)
		p, _ := t.Player(freeAgentID)
		signed = p.Clone()
		return nil
	})
	if err != nil {
		s.metrics.RecordSigning(metrics.OutcomeRejected)
		s.reject(ctx, "signing", err, logging.FieldPlayer, freeAgentID)
		return nil, err
	}
	s.metrics.RecordSigning(metrics.OutcomeSigned)
	s.pruneLineup(f)
	logging.Info(s.log(ctx), "free agent signed",
		logging.FieldTeam, f.Team,
		logging.FieldPlayer, freeAgentID,
		"released", releaseID,
	)
	return signed, nil
}
