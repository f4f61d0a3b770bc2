package sim

import (
	"github.com/preston-bernstein/diamond-gm/internal/domain/games"
	"github.com/preston-bernstein/diamond-gm/internal/domain/league"
	"github.com/preston-bernstein/diamond-gm/internal/rng"
)

// RotationSize is the number of starters that take turns.
const RotationSize = 5

// CPURound simulates every matchup in round that does not involve skip
// (a league index, or -1 for none), once each, and records the results into l.
// It returns the results in schedule order and the skipped matchup, if any.
func CPURound(src rng.Source, l *league.League, round games.Round, roundIdx, skip int) ([]games.Result, *games.Matchup) {
	starter := roundIdx % RotationSize
	var held *games.Matchup
	results := make([]games.Result, 0, len(round))
	for _, m := range round {
		if skip >= 0 && m.Involves(skip) {
			mm := m
			held = &mm
			continue
		}
		if !validIndex(l, m.Home) || !validIndex(l, m.Away) {
			continue
		}
		res := Game(src,
			Side{Team: l.Teams[m.Home], Starter: starter},
			Side{Team: l.Teams[m.Away], Starter: starter},
			games.KindRegular,
		)
		l.RecordGame(res.Winner, res.Loser)
		results = append(results, res)
	}
	return results, held
}

func validIndex(l *league.League, i int) bool {
	return i >= 0 && i < len(l.Teams)
}
