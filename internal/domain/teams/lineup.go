package teams

import (
	"errors"
	"fmt"
	"strings"
)

// Position is a lineup slot.
type Position string

const (
	Catcher     Position = "C"
	FirstBase   Position = "1B"
	SecondBase  Position = "2B"
	ThirdBase   Position = "3B"
	Shortstop   Position = "SS"
	LeftField   Position = "LF"
	CenterField Position = "CF"
	RightField  Position = "RF"
	Designated  Position = "DH"
)

// Positions lists every slot in batting-card order.
var Positions = []Position{Catcher, FirstBase, SecondBase, ThirdBase, Shortstop, LeftField, CenterField, RightField, Designated}

var defensiveBonus = map[Position]int{
	Catcher:     3,
	Shortstop:   3,
	CenterField: 3,
	SecondBase:  2,
	ThirdBase:   2,
	RightField:  2,
	FirstBase:   1,
	LeftField:   1,
	Designated:  0,
}

// DefensiveBonus is the strength bonus a filled slot contributes.
func (p Position) DefensiveBonus() int {
	return defensiveBonus[p]
}

var (
	ErrUnknownPosition = errors.New("unknown lineup position")
	ErrNotAssignable   = errors.New("player cannot be assigned to the lineup")
)

// ParsePosition resolves a slot name case-insensitively.
func ParsePosition(s string) (Position, error) {
	want := Position(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := defensiveBonus[want]; ok {
		return want, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPosition, s)
}

// Lineup maps slots to rostered player ids.
type Lineup map[Position]string

// Assign puts playerID in slot pos, vacating any other slot that held them.
// Only position players on the team's active roster may be assigned.
func (l Lineup) Assign(team *Team, pos Position, playerID string) error {
	if _, ok := defensiveBonus[pos]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPosition, pos)
	}
	p, ok := team.Player(playerID)
	if !ok || p.IsPitcher() {
		return fmt.Errorf("%w: %s", ErrNotAssignable, playerID)
	}
	for slot, id := range l {
		if id == playerID {
			delete(l, slot)
		}
	}
	l[pos] = playerID
	return nil
}

// Clear empties a slot.
func (l Lineup) Clear(pos Position) {
	delete(l, pos)
}

// Bonus sums the defensive bonus over filled slots.
func (l Lineup) Bonus() int {
	total := 0
	for pos, id := range l {
		if id != "" {
			total += pos.DefensiveBonus()
		}
	}
	return total
}

// Prune drops slots whose player is no longer an active position player.
func (l Lineup) Prune(team *Team) {
	for slot, id := range l {
		if p, ok := team.Player(id); !ok || p.IsPitcher() {
			delete(l, slot)
		}
	}
}

// PlayerIDs returns assigned ids in slot order.
func (l Lineup) PlayerIDs() []string {
	out := make([]string, 0, len(l))
	for _, pos := range Positions {
		if id, ok := l[pos]; ok && id != "" {
			out = append(out, id)
		}
	}
	return out
}

// Clone copies the lineup.
func (l Lineup) Clone() Lineup {
	if l == nil {
		return nil
	}
	out := make(Lineup, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}
