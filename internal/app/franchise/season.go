package franchise

import (
	"context"
	"fmt"
	"time"

	"github.com/preston-bernstein/diamond-gm/internal/domain/league"
	"github.com/preston-bernstein/diamond-gm/internal/domain/players"
	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
	"github.com/preston-bernstein/diamond-gm/internal/engine/sim"
	"github.com/preston-bernstein/diamond-gm/internal/logging"
	"github.com/preston-bernstein/diamond-gm/internal/metrics"
	"github.com/preston-bernstein/diamond-gm/internal/rng"
)

// AssignLineup puts playerID at position, moving them out of any other slot.
func (s *Service) AssignLineup(ctx context.Context, position, playerID string) (teams.Lineup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.active()
	if err != nil {
		return nil, err
	}
	pos, err := teams.ParsePosition(position)
	if err != nil {
		return nil, err
	}
	t, ok := s.store.Snapshot().Team(f.Team)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTeam, f.Team)
	}
	if err := f.Lineup.Assign(t, pos, playerID); err != nil {
		s.reject(ctx, "assign lineup", err, logging.FieldPlayer, playerID)
		return nil, err
	}
	return f.Lineup.Clone(), nil
}

// ClearLineup empties position.
func (s *Service) ClearLineup(position string) (teams.Lineup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.active()
	if err != nil {
		return nil, err
	}
	pos, err := teams.ParsePosition(position)
	if err != nil {
		return nil, err
	}
	f.Lineup.Clear(pos)
	return f.Lineup.Clone(), nil
}

// PlayRound plays the next scheduled round. CPU games are simulated once
// each; the user's game is the median of several simulations.
func (s *Service) PlayRound(ctx context.Context) (RoundReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.active()
	if err != nil {
		return RoundReport{}, err
	}
	if f.Ended || f.GamesPlayed >= len(f.Schedule) {
		return RoundReport{}, ErrSeasonOver
	}

	started := time.Now()
	roundIdx := f.GamesPlayed
	src := s.gen.Source()
	report := RoundReport{Round: roundIdx + 1}

	err = s.store.Mutate(func(l *league.League) error {
		user := l.Index(f.Team)
		if user < 0 {
			return fmt.Errorf("%w: %s", ErrUnknownTeam, f.Team)
		}
		cpu, held := sim.CPURound(src, l, f.Schedule[roundIdx], roundIdx, user)
		report.CPU = cpu
		if held == nil {
			return nil
		}
		res := sim.Median(src,
			s.side(l, f, held.Home, user, roundIdx),
			s.side(l, f, held.Away, user, roundIdx),
			s.rules.MedianSims,
		)
		l.RecordGame(res.Winner, res.Loser)
		report.User = &res
		report.Won = res.Winner == f.Team
		if report.Won {
			report.PlayerOfGame = playerOfGame(src, l.Teams[user], f.Lineup)
		}
		return nil
	})
	if err != nil {
		return RoundReport{}, err
	}

	s.metrics.RecordGames(metrics.GameCPU, len(report.CPU))
	if report.User != nil {
		s.metrics.RecordGames(metrics.GameUser, s.rules.MedianSims)
		f.Results = append(f.Results, *report.User)
	}
	f.GamesPlayed++
	f.Rotation = (f.Rotation + 1) % sim.RotationSize
	if f.GamesPlayed >= f.TotalGames {
		f.Ended = true
	}
	report.SeasonEnded = f.Ended
	s.metrics.RecordRound(time.Since(started))

	logging.Info(s.log(ctx), "round played",
		logging.FieldTeam, f.Team,
		logging.FieldRound, report.Round,
		logging.FieldCount, len(report.CPU),
		"won", report.Won,
		logging.FieldDurationMS, time.Since(started).Milliseconds(),
	)
	if f.Ended {
		logging.Info(s.log(ctx), "regular season ended", logging.FieldTeam, f.Team, logging.FieldYear, f.Year)
	}
	return report, nil
}

// pruneLineup drops lineup slots whose player left the roster.
func (s *Service) pruneLineup(f *Franchise) {
	if t, ok := s.store.Snapshot().Team(f.Team); ok {
		f.Lineup.Prune(t)
	}
}

// side builds one participant of the user's matchup. The user pitches the
// current rotation slot with their lineup; opponents cycle by games played.
func (s *Service) side(l *league.League, f *Franchise, idx, user, roundIdx int) sim.Side {
	t := l.Teams[idx]
	if idx != user {
		return sim.Side{Team: t, Starter: roundIdx % sim.RotationSize}
	}
	lineup := f.Lineup.Clone()
	if lineup == nil {
		lineup = teams.Lineup{}
	}
	lineup.Prune(t)
	return sim.Side{Team: t, Starter: f.Rotation % sim.RotationSize, Lineup: lineup}
}

// playerOfGame credits a random lineup player with a box-score line.
// Nothing is returned without a lineup.
func playerOfGame(src rng.Source, t *teams.Team, lineup teams.Lineup) *PlayerOfGame {
	var ids []string
	for _, id := range lineup.PlayerIDs() {
		if _, ok := t.Player(id); ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	p, _ := t.Player(rng.Pick(src, ids))
	return &PlayerOfGame{PlayerID: p.ID, Name: p.Name, Line: BoxScoreLine(src, p)}
}

// BoxScoreLine generates a standout line: "H-for-AB, R RBI[, 1 HR]" for
// hitters and "IP IP, K K, ER ER" for pitchers.
func BoxScoreLine(src rng.Source, p *players.Player) string {
	if p.IsPitcher() {
		innings := rng.Int(src, 6, 8)
		strikeouts := rng.Int(src, 3, 8)
		earned := rng.Int(src, 0, 3)
		return fmt.Sprintf("%d IP, %d K, %d ER", innings, strikeouts, earned)
	}
	hits := rng.Int(src, 1, 4)
	atBats := rng.Int(src, 3, 4)
	rbi := rng.Int(src, 0, 3)
	homer := rng.Chance(src, 0.3)
	if atBats < hits {
		atBats = hits
	}
	line := fmt.Sprintf("%d-for-%d, %d RBI", hits, atBats, rbi)
	if homer {
		line += ", 1 HR"
	}
	return line
}
