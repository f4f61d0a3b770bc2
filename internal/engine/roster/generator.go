package roster

import (
	"github.com/google/uuid"

	"github.com/preston-bernstein/diamond-gm/internal/domain/league"
	"github.com/preston-bernstein/diamond-gm/internal/domain/players"
	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
	"github.com/preston-bernstein/diamond-gm/internal/rng"
)

// Generation bounds.
const (
	TargetMin     = 55
	TargetMax     = 74
	VarianceMin   = -10
	VarianceMax   = 9
	TraitChance   = 0.3
	AgeMin        = 22
	AgeMax        = 36
	ReplacementLo = 40
	ReplacementHi = 54
)

// Profile is a team's target rating for each stat.
type Profile struct {
	Hitting  int
	Power    int
	Speed    int
	Defense  int
	Pitching int
}

// Generator builds players, teams and leagues from an injected random source.
type Generator struct {
	src   rng.Source
	newID func() string
}

// Option customizes a Generator.
type Option func(*Generator)

// WithIDFunc overrides player id generation.
func WithIDFunc(fn func() string) Option {
	return func(g *Generator) {
		if fn != nil {
			g.newID = fn
		}
	}
}

// NewGenerator constructs a Generator. Player ids default to random UUIDs.
func NewGenerator(src rng.Source, opts ...Option) *Generator {
	g := &Generator{src: src, newID: uuid.NewString}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewID returns a fresh player id.
func (g *Generator) NewID() string {
	return g.newID()
}

// Name draws a "First Last" display name.
func (g *Generator) Name() string {
	return rng.Pick(g.src, firstNames) + " " + rng.Pick(g.src, lastNames)
}

// Profile draws a team's target ratings.
func (g *Generator) Profile() Profile {
	return Profile{
		Hitting:  rng.Int(g.src, TargetMin, TargetMax),
		Power:    rng.Int(g.src, TargetMin, TargetMax),
		Speed:    rng.Int(g.src, TargetMin, TargetMax),
		Defense:  rng.Int(g.src, TargetMin, TargetMax),
		Pitching: rng.Int(g.src, TargetMin, TargetMax),
	}
}

func (g *Generator) vary(target int) int {
	return players.Clamp(target + rng.Int(g.src, VarianceMin, VarianceMax))
}

func (g *Generator) trait(pool []players.Trait) *players.Trait {
	if !rng.Chance(g.src, TraitChance) {
		return nil
	}
	t := rng.Pick(g.src, pool)
	return &t
}

// PositionPlayer generates a position player around the profile.
func (g *Generator) PositionPlayer(p Profile) *players.Player {
	pl := players.NewPositionPlayer(g.newID(), g.Name(), players.BatterRatings{
		Hitting: g.vary(p.Hitting),
		Power:   g.vary(p.Power),
		Speed:   g.vary(p.Speed),
		Defense: g.vary(p.Defense),
	}, 0)
	pl.Trait = g.trait(players.PositionTraits)
	pl.Age = rng.Int(g.src, AgeMin, AgeMax)
	return pl
}

// Pitcher generates a pitcher around the profile.
func (g *Generator) Pitcher(p Profile) *players.Player {
	pl := players.NewPitcher(g.newID(), g.Name(), players.PitcherRatings{
		Pitching: g.vary(p.Pitching),
		Defense:  g.vary(p.Defense),
	}, 0)
	pl.Trait = g.trait(players.PitcherTraits)
	pl.Age = rng.Int(g.src, AgeMin, AgeMax)
	return pl
}

// Roster generates 9 position players followed by 5 pitchers.
func (g *Generator) Roster(p Profile) []*players.Player {
	out := make([]*players.Player, 0, teams.RosterSize)
	for i := 0; i < teams.RosterPositionPlayers; i++ {
		out = append(out, g.PositionPlayer(p))
	}
	for i := 0; i < teams.RosterPitchers; i++ {
		out = append(out, g.Pitcher(p))
	}
	return out
}

// Team generates a full team for cfg.
func (g *Generator) Team(cfg teams.Config, salaryCap int) *teams.Team {
	return &teams.Team{
		Name:      cfg.Name,
		City:      cfg.City,
		Colors:    cfg.Colors,
		Roster:    g.Roster(g.Profile()),
		SalaryCap: salaryCap,
	}
}

// League generates every configured team with 0-0 records.
func (g *Generator) League(configs []teams.Config, salaryCap int) *league.League {
	l := &league.League{Year: league.StartYear, Teams: make([]*teams.Team, 0, len(configs))}
	for _, cfg := range configs {
		l.Teams = append(l.Teams, g.Team(cfg, salaryCap))
	}
	return l
}

// Replacement generates a replacement-level player of the given kind with
// ratings in [ReplacementLo, ReplacementHi] and the lowest salary tier.
func (g *Generator) Replacement(kind players.Kind) *players.Player {
	roll := func() int { return rng.Int(g.src, ReplacementLo, ReplacementHi) }
	var pl *players.Player
	if kind == players.KindPitcher {
		pl = players.NewPitcher(g.newID(), g.Name(), players.PitcherRatings{Pitching: roll(), Defense: roll()}, 0)
	} else {
		pl = players.NewPositionPlayer(g.newID(), g.Name(), players.BatterRatings{
			Hitting: roll(), Power: roll(), Speed: roll(), Defense: roll(),
		}, 0)
	}
	pl.Age = rng.Int(g.src, AgeMin, AgeMax)
	pl.Salary = players.TierLow
	return pl
}

// Source exposes the generator's random source to sibling generators.
func (g *Generator) Source() rng.Source {
	return g.src
}
