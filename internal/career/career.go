// Package career runs a single player's climb through the minor leagues.
package career

import (
	"errors"
	"fmt"
	"strings"

	"github.com/preston-bernstein/diamond-gm/internal/domain/players"
	"github.com/preston-bernstein/diamond-gm/internal/engine/atbat"
	"github.com/preston-bernstein/diamond-gm/internal/rng"
)

// Phase is the career's position in its loop.
type Phase string

const (
	PhaseCreate     Phase = "create"
	PhasePlaying    Phase = "playing"
	PhaseLockerRoom Phase = "locker-room"
	PhaseSeasonEnd  Phase = "season-end"
	PhaseGraduated  Phase = "graduated"
)

// Level is a minor-league tier.
type Level string

const (
	SingleA Level = "Single-A"
	DoubleA Level = "Double-A"
	TripleA Level = "Triple-A"
)

// Next returns the tier above l; ok is false from Triple-A.
func (l Level) Next() (Level, bool) {
	switch l {
	case SingleA:
		return DoubleA, true
	case DoubleA:
		return TripleA, true
	default:
		return "", false
	}
}

// Momentum is the player's current streak.
type Momentum string

const (
	MomentumNone Momentum = ""
	MomentumHot  Momentum = "hot"
	MomentumCold Momentum = "cold"
)

// Stat names accepted by Upgrade.
const (
	StatHitting = "hitting"
	StatPower   = "power"
	StatSpeed   = "speed"
	StatDefense = "defense"
)

var (
	ErrWrongPhase     = errors.New("action not allowed in current phase")
	ErrBlankName      = errors.New("player needs a name")
	ErrGameComplete   = errors.New("all at-bats for this game are done")
	ErrGameInProgress = errors.New("game still has at-bats remaining")
	ErrInsufficientXP = errors.New("not enough XP to upgrade")
	ErrUnknownStat    = errors.New("unknown stat")
	ErrStatMaxed      = errors.New("stat already at maximum")
)

// Rules are the career tunables.
type Rules struct {
	GamesPerSeason     int     `json:"gamesPerSeason"`
	AtBatsPerGame      int     `json:"atBatsPerGame"`
	LockerRoomInterval int     `json:"lockerRoomInterval"`
	UpgradeCost        int     `json:"upgradeCost"`
	LateBloomCost      int     `json:"lateBloomCost"`
	PromotionAverage   float64 `json:"promotionAverage"`
	RecentWindow       int     `json:"recentWindow"`
}

// DefaultRules mirror the standard game.
func DefaultRules() Rules {
	return Rules{
		GamesPerSeason:     20,
		AtBatsPerGame:      4,
		LockerRoomInterval: 5,
		UpgradeCost:        10,
		LateBloomCost:      8,
		PromotionAverage:   0.250,
		RecentWindow:       8,
	}
}

// XP awarded per hit type.
var hitXP = map[atbat.HitType]int{
	atbat.HitSingle:  1,
	atbat.HitDouble:  2,
	atbat.HitTriple:  2,
	atbat.HitHomeRun: 3,
}

// Prospect is the player being guided.
type Prospect struct {
	Name      string        `json:"name"`
	Team      string        `json:"team"`
	Hitting   int           `json:"hitting"`
	Power     int           `json:"power"`
	Speed     int           `json:"speed"`
	Defense   int           `json:"defense"`
	Potential int           `json:"potential"`
	Trait     players.Trait `json:"trait"`
}

// GameLine is the in-progress game.
type GameLine struct {
	AtBats int `json:"atBats"`
	Hits   int `json:"hits"`
}

// Season is the current season's counters.
type Season struct {
	Level       Level    `json:"level"`
	GamesPlayed int      `json:"gamesPlayed"`
	AtBats      int      `json:"atBats"`
	Hits        int      `json:"hits"`
	Doubles     int      `json:"doubles"`
	Triples     int      `json:"triples"`
	HomeRuns    int      `json:"homeRuns"`
	XP          int      `json:"xp"`
	Game        GameLine `json:"currentGame"`
	Recent      []bool   `json:"recentHits"`
	Momentum    Momentum `json:"momentum,omitempty"`
}

// Average is hits over at-bats, 0 before the first at-bat.
func (s Season) Average() float64 {
	if s.AtBats == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.AtBats)
}

// SeasonRecord is a finished season in the career history.
type SeasonRecord struct {
	Level    Level   `json:"level"`
	Games    int     `json:"games"`
	Average  float64 `json:"avg"`
	HomeRuns int     `json:"homeRuns"`
	Promoted bool    `json:"promoted"`
}

// AtBatResult is what one plate appearance produced.
type AtBatResult struct {
	atbat.Result
	OpponentPitching int      `json:"opponentPitching"`
	EarnedXP         int      `json:"earnedXp"`
	Momentum         Momentum `json:"momentumAfter,omitempty"`
}

// Career is one player's save.
type Career struct {
	Phase   Phase          `json:"phase"`
	Player  Prospect       `json:"player"`
	Season  Season         `json:"season"`
	History []SeasonRecord `json:"history"`
	Rules   Rules          `json:"rules"`
}

// Roll bounds.
const (
	ProspectStatMin  = 40
	ProspectStatMax  = 59
	PotentialMin     = 50
	PotentialMax     = 79
	OpponentPitchMin = 50
	OpponentPitchMax = 69
)

// New rolls a prospect bound to team.
func New(src rng.Source, team string, rules Rules) *Career {
	c := &Career{
		Phase:  PhaseCreate,
		Rules:  rules,
		Season: Season{Level: SingleA},
	}
	c.Player = rollProspect(src, team)
	return c
}

func rollProspect(src rng.Source, team string) Prospect {
	stat := func() int { return rng.Int(src, ProspectStatMin, ProspectStatMax) }
	return Prospect{
		Team:      team,
		Hitting:   stat(),
		Power:     stat(),
		Speed:     stat(),
		Defense:   stat(),
		Potential: rng.Int(src, PotentialMin, PotentialMax),
		Trait:     rng.Pick(src, players.PositionTraits),
	}
}

// Reroll replaces the prospect before the career starts.
func (c *Career) Reroll(src rng.Source) error {
	if c.Phase != PhaseCreate {
		return ErrWrongPhase
	}
	name := c.Player.Name
	c.Player = rollProspect(src, c.Player.Team)
	c.Player.Name = name
	return nil
}

// Start names the player and begins the first season.
func (c *Career) Start(name string) error {
	if c.Phase != PhaseCreate {
		return ErrWrongPhase
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	c.Player.Name = name
	c.Phase = PhasePlaying
	return nil
}

// MomentumBonus is the at-bat adjustment for the current streak.
func (c *Career) MomentumBonus() int {
	streaky := c.Player.Trait.ID == players.TraitStreaky
	switch c.Season.Momentum {
	case MomentumHot:
		if streaky {
			return 3
		}
		return 2
	case MomentumCold:
		if streaky {
			return -2
		}
		return -1
	default:
		return 0
	}
}

// AtBat plays one plate appearance against a random opposing pitcher.
func (c *Career) AtBat(src rng.Source) (AtBatResult, error) {
	if c.Phase != PhasePlaying {
		return AtBatResult{}, ErrWrongPhase
	}
	if c.Season.Game.AtBats >= c.Rules.AtBatsPerGame {
		return AtBatResult{}, ErrGameComplete
	}

	opp := rng.Int(src, OpponentPitchMin, OpponentPitchMax)
	res := atbat.Resolve(src, c.Player.Hitting, opp, c.MomentumBonus())

	s := &c.Season
	s.AtBats++
	s.Game.AtBats++
	earned := 0
	if !res.IsOut {
		s.Hits++
		s.Game.Hits++
		earned = hitXP[res.HitType]
		switch res.HitType {
		case atbat.HitDouble:
			s.Doubles++
		case atbat.HitTriple:
			s.Triples++
		case atbat.HitHomeRun:
			s.HomeRuns++
		}
	}
	s.Recent = append(s.Recent, !res.IsOut)
	if over := len(s.Recent) - c.Rules.RecentWindow; over > 0 {
		s.Recent = append([]bool(nil), s.Recent[over:]...)
	}
	s.Momentum = streak(s.Recent, c.Rules.RecentWindow)
	s.XP += earned

	return AtBatResult{Result: res, OpponentPitching: opp, EarnedXP: earned, Momentum: s.Momentum}, nil
}

// streak is hot after three straight hits and cold after a full window of outs.
func streak(recent []bool, window int) Momentum {
	if len(recent) < 3 {
		return MomentumNone
	}
	hot := true
	for _, hit := range recent[len(recent)-3:] {
		hot = hot && hit
	}
	if hot {
		return MomentumHot
	}
	if len(recent) < window {
		return MomentumNone
	}
	for _, hit := range recent[len(recent)-window:] {
		if hit {
			return MomentumNone
		}
	}
	return MomentumCold
}

// EndGame closes the current game once every at-bat is taken.
func (c *Career) EndGame() (GameLine, error) {
	if c.Phase != PhasePlaying {
		return GameLine{}, ErrWrongPhase
	}
	if c.Season.Game.AtBats < c.Rules.AtBatsPerGame {
		return GameLine{}, fmt.Errorf("%w: %d of %d", ErrGameInProgress, c.Season.Game.AtBats, c.Rules.AtBatsPerGame)
	}
	line := c.Season.Game
	c.Season.Game = GameLine{}
	c.Season.GamesPlayed++

	switch {
	case c.Season.GamesPlayed >= c.Rules.GamesPerSeason:
		c.History = append(c.History, SeasonRecord{
			Level:    c.Season.Level,
			Games:    c.Season.GamesPlayed,
			Average:  c.Season.Average(),
			HomeRuns: c.Season.HomeRuns,
			Promoted: c.promotable(),
		})
		c.Phase = PhaseSeasonEnd
	case c.Rules.LockerRoomInterval > 0 && c.Season.GamesPlayed%c.Rules.LockerRoomInterval == 0:
		c.Phase = PhaseLockerRoom
	}
	return line, nil
}

func (c *Career) promotable() bool {
	return c.Season.AtBats > 0 && c.Season.Average() >= c.Rules.PromotionAverage
}

// UpgradeCost is the XP price of one stat point for this player.
func (c *Career) UpgradeCost() int {
	if c.Player.Trait.ID == players.TraitLateBloom {
		return c.Rules.LateBloomCost
	}
	return c.Rules.UpgradeCost
}

// Upgrade spends XP on one stat point. Allowed at locker-room breaks and
// between seasons.
func (c *Career) Upgrade(stat string) error {
	if c.Phase != PhaseLockerRoom && c.Phase != PhaseSeasonEnd {
		return ErrWrongPhase
	}
	target, err := c.statRef(stat)
	if err != nil {
		return err
	}
	cost := c.UpgradeCost()
	if c.Season.XP < cost {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientXP, cost, c.Season.XP)
	}
	if *target >= players.MaxRating {
		return ErrStatMaxed
	}
	*target++
	c.Season.XP -= cost
	return nil
}

func (c *Career) statRef(stat string) (*int, error) {
	switch strings.ToLower(strings.TrimSpace(stat)) {
	case StatHitting:
		return &c.Player.Hitting, nil
	case StatPower:
		return &c.Player.Power, nil
	case StatSpeed:
		return &c.Player.Speed, nil
	case StatDefense:
		return &c.Player.Defense, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStat, stat)
	}
}

// Resume leaves the locker room.
func (c *Career) Resume() error {
	if c.Phase != PhaseLockerRoom {
		return ErrWrongPhase
	}
	c.Phase = PhasePlaying
	return nil
}

// Advance moves past a finished season: promotion at or above the
// threshold average, otherwise a repeat of the level. XP carries over.
func (c *Career) Advance() error {
	if c.Phase != PhaseSeasonEnd {
		return ErrWrongPhase
	}
	level := c.Season.Level
	if c.promotable() {
		next, ok := level.Next()
		if !ok {
			c.Phase = PhaseGraduated
			return nil
		}
		level = next
	}
	c.Season = Season{Level: level, XP: c.Season.XP}
	c.Phase = PhasePlaying
	return nil
}

// Clone deep-copies the career.
func (c *Career) Clone() *Career {
	if c == nil {
		return nil
	}
	out := *c
	out.Season.Recent = append([]bool(nil), c.Season.Recent...)
	out.History = append([]SeasonRecord(nil), c.History...)
	return &out
}
