// Package aging applies the between-season drift to every player.
package aging

import (
	"math"

	"github.com/preston-bernstein/diamond-gm/internal/domain/league"
	"github.com/preston-bernstein/diamond-gm/internal/domain/players"
	"github.com/preston-bernstein/diamond-gm/internal/rng"
)

// Age thresholds.
const (
	DeclineAge   = 32
	GrowthMaxAge = 28
	DeclineOdds  = 0.7
)

// Adjustment draws the season's multiplicative change for p, as a fraction.
func Adjustment(src rng.Source, p *players.Player) float64 {
	pct := rng.Uniform(src, -3, 3)
	switch {
	case p.Age > DeclineAge:
		if rng.Chance(src, DeclineOdds) {
			pct = rng.Uniform(src, -4, -1)
		} else {
			pct = rng.Uniform(src, 0, 2)
		}
	case p.Age <= GrowthMaxAge && p.Potential > 0 && p.Overall() < float64(p.Potential):
		pct = rng.Uniform(src, 0, 4)
	}
	return pct / 100
}

// Apply snapshots p's ratings, scales every rating by 1+pct (rounded and
// clamped) and adds a year of age.
func Apply(p *players.Player, pct float64) {
	p.SnapshotRatings()
	for _, r := range p.Ratings() {
		*r = players.Clamp(int(math.Round(float64(*r) * (1 + pct))))
	}
	p.Age++
}

// Player ages one player with a fresh adjustment.
func Player(src rng.Source, p *players.Player) {
	Apply(p, Adjustment(src, p))
}

// League ages every rostered and minor-league player, team by team.
func League(src rng.Source, l *league.League) int {
	n := 0
	for _, t := range l.Teams {
		for _, p := range t.Roster {
			Player(src, p)
			n++
		}
		for _, p := range t.Minors {
			Player(src, p)
			n++
		}
	}
	return n
}
