// Package sim turns team strengths into game results.
package sim

import (
	"math"
	"sort"

	"github.com/preston-bernstein/diamond-gm/internal/domain/games"
	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
	"github.com/preston-bernstein/diamond-gm/internal/engine/strength"
	"github.com/preston-bernstein/diamond-gm/internal/rng"
)

// Scoring constants.
const (
	BaseRuns      = 3.0
	StrengthScale = 35.0
	NoiseSpread   = 2.0
)

// Side is one team's participation in a game.
type Side struct {
	Team    *teams.Team
	Starter int
	Lineup  teams.Lineup
}

// Game simulates a single game between home and away. Level scores go to the
// deeper pitching staff, then to a coin flip.
func Game(src rng.Source, home, away Side, kind games.Kind) games.Result {
	homeOff := strength.Offense(home.Team)
	homeDef := strength.Defense(home.Team, home.Starter, home.Lineup)
	awayOff := strength.Offense(away.Team)
	awayDef := strength.Defense(away.Team, away.Starter, away.Lineup)

	score := games.Score{
		Home: runs(src, homeOff, awayDef),
		Away: runs(src, awayOff, homeDef),
	}

	tb := games.TieBreakNone
	if score.Home == score.Away {
		hp, ap := strength.StaffPitching(home.Team), strength.StaffPitching(away.Team)
		switch {
		case hp > ap:
			score.Home++
			tb = games.TieBreakPitching
		case ap > hp:
			score.Away++
			tb = games.TieBreakPitching
		default:
			if rng.Chance(src, 0.5) {
				score.Home++
			} else {
				score.Away++
			}
			tb = games.TieBreakCoin
		}
	}

	res := games.Result{
		Home:     home.Team.Name,
		Away:     away.Team.Name,
		Score:    score,
		TieBreak: tb,
		Kind:     kind,
	}
	if score.Home > score.Away {
		res.Winner, res.Loser = res.Home, res.Away
	} else {
		res.Winner, res.Loser = res.Away, res.Home
	}
	return res
}

func runs(src rng.Source, offense, defense float64) int {
	v := math.Floor(BaseRuns + (offense-defense)/StrengthScale + rng.Uniform(src, -NoiseSpread, NoiseSpread))
	if v < 0 {
		return 0
	}
	return int(v)
}

// Median simulates the game n times and returns the run-total median
// (index n/2 after a stable sort). n below 1 is treated as 1.
func Median(src rng.Source, home, away Side, n int) games.Result {
	if n < 1 {
		n = 1
	}
	sims := make([]games.Result, n)
	for i := range sims {
		sims[i] = Game(src, home, away, games.KindRegular)
	}
	sort.SliceStable(sims, func(i, j int) bool {
		return sims[i].Score.Total() < sims[j].Score.Total()
	})
	return sims[n/2]
}
