package teams

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/diamond-gm/internal/domain/players"
)

// Steady-state active roster shape.
const (
	RosterPositionPlayers = 9
	RosterPitchers        = 5
	RosterSize            = RosterPositionPlayers + RosterPitchers
)

// ErrRosterShape is returned when a roster does not hold 9 position players and 5 pitchers.
var ErrRosterShape = errors.New("roster must hold 9 position players and 5 pitchers")

// Palette is a team's primary and secondary colours.
type Palette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// Record is a win/loss line.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Games returns wins plus losses.
func (r Record) Games() int {
	return r.Wins + r.Losses
}

// Pct is the winning percentage, 0 when no games were played.
func (r Record) Pct() float64 {
	total := r.Games()
	if total == 0 {
		return 0
	}
	return float64(r.Wins) / float64(total)
}

// Team is a franchise in the league. Name is the join key everywhere.
type Team struct {
	Name      string            `json:"name"`
	City      string            `json:"city"`
	Colors    Palette           `json:"colors"`
	Roster    []*players.Player `json:"roster"`
	Minors    []*players.Player `json:"minorLeague"`
	Record    Record            `json:"record"`
	SalaryCap int               `json:"salaryCap"`
}

// PositionPlayers returns the roster's position players in roster order.
func (t *Team) PositionPlayers() []*players.Player {
	return t.filter(players.KindPosition)
}

// Pitchers returns the roster's pitchers in roster order; index i is rotation slot i.
func (t *Team) Pitchers() []*players.Player {
	return t.filter(players.KindPitcher)
}

func (t *Team) filter(kind players.Kind) []*players.Player {
	out := make([]*players.Player, 0, len(t.Roster))
	for _, p := range t.Roster {
		if p != nil && p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// Counts returns the number of position players and pitchers on the roster.
func (t *Team) Counts() (position, pitchers int) {
	for _, p := range t.Roster {
		if p == nil {
			continue
		}
		if p.IsPitcher() {
			pitchers++
		} else {
			position++
		}
	}
	return position, pitchers
}

// ValidateRoster checks the 9/5 invariant.
func (t *Team) ValidateRoster() error {
	pos, pit := t.Counts()
	if pos != RosterPositionPlayers || pit != RosterPitchers {
		return fmt.Errorf("%w: %s has %d/%d", ErrRosterShape, t.Name, pos, pit)
	}
	return nil
}

// Player finds a rostered player by id.
func (t *Team) Player(id string) (*players.Player, bool) {
	if i := players.IndexOf(t.Roster, id); i >= 0 {
		return t.Roster[i], true
	}
	return nil, false
}

// Prospect finds a minor-league player by id.
func (t *Team) Prospect(id string) (*players.Player, bool) {
	if i := players.IndexOf(t.Minors, id); i >= 0 {
		return t.Minors[i], true
	}
	return nil, false
}

// Clone returns a deep copy of the team.
func (t *Team) Clone() *Team {
	if t == nil {
		return nil
	}
	c := *t
	c.Roster = players.CloneAll(t.Roster)
	c.Minors = players.CloneAll(t.Minors)
	return &c
}
