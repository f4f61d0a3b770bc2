// Package draft generates prospects, runs the draft and prunes minor leagues.
package draft

import (
	"math"
	"sort"

	"github.com/preston-bernstein/diamond-gm/internal/domain/players"
	"github.com/preston-bernstein/diamond-gm/internal/engine/roster"
	"github.com/preston-bernstein/diamond-gm/internal/rng"
)

// Prospect class shape.
const (
	PositionProspects = 14
	PitcherProspects  = 6
	ProspectAge       = 22
)

// Generation bounds.
const (
	PotentialMin  = 30
	PotentialMax  = 95
	StatPctMin    = 0.85
	StatPctMax    = 0.95
	potentialMult = 0.3
)

// Evaluate scores a player for drafting and retention.
func Evaluate(p *players.Player) float64 {
	bonus := potentialMult * float64(p.Potential)
	if p.IsPitcher() {
		return float64(p.Pitcher.Pitching) + bonus
	}
	return p.Overall() + bonus
}

// SortByEvaluation orders players best first. Equal scores keep input order.
func SortByEvaluation(ps []*players.Player) {
	sort.SliceStable(ps, func(i, j int) bool {
		return Evaluate(ps[i]) > Evaluate(ps[j])
	})
}

// Prospects generates the draft class, sorted by evaluation.
func Prospects(gen *roster.Generator) []*players.Player {
	out := make([]*players.Player, 0, PositionProspects+PitcherProspects)
	for i := 0; i < PositionProspects; i++ {
		out = append(out, Prospect(gen, players.KindPosition))
	}
	for i := 0; i < PitcherProspects; i++ {
		out = append(out, Prospect(gen, players.KindPitcher))
	}
	SortByEvaluation(out)
	return out
}

// Prospect generates one prospect. Each stat lands near potential scaled by
// its own draw from [StatPctMin, StatPctMax], plus a point of jitter.
func Prospect(gen *roster.Generator, kind players.Kind) *players.Player {
	src := gen.Source()
	potential := rng.Int(src, PotentialMin, PotentialMax)
	stat := func() int {
		base := int(math.Round(float64(potential) * rng.Uniform(src, StatPctMin, StatPctMax)))
		return players.Clamp(base + rng.Int(src, -1, 1))
	}

	var p *players.Player
	if kind == players.KindPitcher {
		p = players.NewPitcher(gen.NewID(), gen.Name(), players.PitcherRatings{
			Pitching: stat(), Defense: stat(),
		}, ProspectAge)
	} else {
		p = players.NewPositionPlayer(gen.NewID(), gen.Name(), players.BatterRatings{
			Hitting: stat(), Power: stat(), Speed: stat(), Defense: stat(),
		}, ProspectAge)
	}
	p.Potential = potential
	return p
}
