package franchise

import (
	"context"

	"github.com/preston-bernstein/diamond-gm/internal/domain/games"
	"github.com/preston-bernstein/diamond-gm/internal/engine/sim"
	"github.com/preston-bernstein/diamond-gm/internal/logging"
	"github.com/preston-bernstein/diamond-gm/internal/metrics"
)

// PlayoffReport is the bracket after a stage, with the games just played.
type PlayoffReport struct {
	Played  []games.PlayoffGame `json:"played"`
	Bracket *games.Bracket      `json:"bracket"`
}

// StartPlayoffs seeds the top four of the final standings.
func (s *Service) StartPlayoffs(ctx context.Context) (*games.Bracket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.active()
	if err != nil {
		return nil, err
	}
	switch {
	case !f.Ended:
		return nil, ErrSeasonInProgress
	case f.Bracket != nil:
		return nil, ErrPlayoffsStarted
	case f.Draft != nil:
		return nil, ErrDraftStarted
	}

	b, err := sim.Seed(s.store.Snapshot())
	if err != nil {
		return nil, err
	}
	f.Bracket = b
	logging.Info(s.log(ctx), "playoffs seeded", logging.FieldYear, f.Year, "seeds", b.Seeds)
	return cloneBracket(b), nil
}

// AdvancePlayoffs plays the next stage: both semifinals, then the final.
// Regular-season records are not touched.
func (s *Service) AdvancePlayoffs(ctx context.Context) (PlayoffReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.active()
	if err != nil {
		return PlayoffReport{}, err
	}
	if f.Bracket == nil {
		return PlayoffReport{}, ErrPlayoffsNotStarted
	}

	b := cloneBracket(f.Bracket)
	played, err := sim.Advance(s.gen.Source(), s.store.Snapshot(), b)
	if err != nil {
		return PlayoffReport{}, err
	}
	f.Bracket = b
	s.metrics.RecordGames(metrics.GamePlayoff, len(played))

	if b.Done() {
		logging.Info(s.log(ctx), "champion crowned", logging.FieldTeam, b.Champion, logging.FieldYear, f.Year)
	} else {
		logging.Info(s.log(ctx), "semifinals played", logging.FieldYear, f.Year, logging.FieldCount, len(played))
	}
	return PlayoffReport{Played: played, Bracket: cloneBracket(b)}, nil
}
