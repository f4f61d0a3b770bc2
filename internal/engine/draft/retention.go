package draft

import (
	"github.com/preston-bernstein/diamond-gm/internal/domain/league"
	"github.com/preston-bernstein/diamond-gm/internal/domain/players"
	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
)

// DefaultRetention is how many prospects a minor league keeps.
const DefaultRetention = 5

// Retain merges picks into the team's minor league, re-ranks everyone by
// evaluation and keeps the top k. The rest are returned and leave the game.
func Retain(t *teams.Team, picks []*players.Player, k int) []*players.Player {
	if k < 0 {
		k = 0
	}
	pool := make([]*players.Player, 0, len(t.Minors)+len(picks))
	pool = append(pool, t.Minors...)
	pool = append(pool, picks...)
	SortByEvaluation(pool)
	if len(pool) <= k {
		t.Minors = pool
		return nil
	}
	t.Minors = pool[:k:k]
	return pool[k:]
}

// ApplyRetention runs Retain for every team using the draft's picks and
// returns how many players each team released.
func ApplyRetention(l *league.League, s *State, k int) map[string]int {
	released := make(map[string]int, len(l.Teams))
	for _, t := range l.Teams {
		released[t.Name] = len(Retain(t, s.PicksFor(t.Name), k))
	}
	return released
}
