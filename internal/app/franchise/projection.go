package franchise

import (
	"fmt"

	"github.com/preston-bernstein/diamond-gm/internal/domain/players"
)

// ProjectedAtBats is a full season of four at-bats a game.
const ProjectedAtBats = 80

// Projection is a position player's expected season line.
type Projection struct {
	AtBats      int    `json:"atBats"`
	Hits        int    `json:"hits"`
	HomeRuns    int    `json:"homeRuns"`
	StolenBases int    `json:"stolenBases"`
	Average     string `json:"avg"`
}

// Project derives a season line from current ratings. Pitchers get nil.
func Project(p *players.Player) *Projection {
	if p == nil || p.Batter == nil {
		return nil
	}
	b := p.Batter
	hits := ProjectedAtBats * b.Hitting / 100
	// Home runs are 80 × power/100 × 0.15, kept in integers.
	return &Projection{
		AtBats:      ProjectedAtBats,
		Hits:        hits,
		HomeRuns:    b.Power * 12 / 100,
		StolenBases: b.Speed * 20 / 100,
		Average:     fmt.Sprintf("%.3f", float64(hits)/ProjectedAtBats),
	}
}

// FormatDelta renders a rating against last season's value:
// "75 (+5)", "70 (-3)", "60 (=)", or just "75" with no history.
func FormatDelta(current int, previous *int) string {
	if previous == nil || *previous == 0 {
		return fmt.Sprint(current)
	}
	switch change := current - *previous; {
	case change > 0:
		return fmt.Sprintf("%d (+%d)", current, change)
	case change < 0:
		return fmt.Sprintf("%d (%d)", current, change)
	default:
		return fmt.Sprintf("%d (=)", current)
	}
}

// Card is a roster entry decorated for display.
type Card struct {
	Player     *players.Player   `json:"player"`
	Projection *Projection       `json:"projection,omitempty"`
	Ratings    map[string]string `json:"ratings"`
}

// Cards builds display cards in roster order.
func Cards(roster []*players.Player) []Card {
	out := make([]Card, 0, len(roster))
	for _, p := range roster {
		out = append(out, Card{Player: p, Projection: Project(p), Ratings: ratingDeltas(p)})
	}
	return out
}

func ratingDeltas(p *players.Player) map[string]string {
	prev := p.Previous
	switch {
	case p.Batter != nil:
		b := p.Batter
		var was players.BatterRatings
		if prev != nil && prev.Batter != nil {
			was = *prev.Batter
		}
		return map[string]string{
			"hitting": FormatDelta(b.Hitting, &was.Hitting),
			"power":   FormatDelta(b.Power, &was.Power),
			"speed":   FormatDelta(b.Speed, &was.Speed),
			"defense": FormatDelta(b.Defense, &was.Defense),
		}
	case p.Pitcher != nil:
		r := p.Pitcher
		var was players.PitcherRatings
		if prev != nil && prev.Pitcher != nil {
			was = *prev.Pitcher
		}
		return map[string]string{
			"pitching": FormatDelta(r.Pitching, &was.Pitching),
			"defense":  FormatDelta(r.Defense, &was.Defense),
		}
	}
	return map[string]string{}
}
