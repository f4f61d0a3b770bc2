// Package schedule builds round-robin season schedules.
package schedule

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/diamond-gm/internal/domain/games"
)

// Defaults for the eight-team league.
const (
	DefaultTeams  = 8
	DefaultRounds = 20
)

var ErrInvalidShape = errors.New("invalid schedule shape")

// RoundRobin builds rounds using the circle method: team 0 stays fixed while
// the others rotate one step right per round (wrapping every n-1 rounds), and
// slot i meets slot n-1-i. Every team plays exactly once per round.
func RoundRobin(n, rounds int) (games.Schedule, error) {
	if n < 2 || n%2 != 0 {
		return nil, fmt.Errorf("%w: %d teams", ErrInvalidShape, n)
	}
	if rounds < 0 {
		return nil, fmt.Errorf("%w: %d rounds", ErrInvalidShape, rounds)
	}

	s := make(games.Schedule, 0, rounds)
	slots := make([]int, n)
	for r := 0; r < rounds; r++ {
		shift := r % (n - 1)
		slots[0] = 0
		for i := 1; i < n; i++ {
			// right rotation of 1..n-1 by shift
			slots[i] = 1 + ((i-1-shift)%(n-1)+(n-1))%(n-1)
		}
		round := make(games.Round, 0, n/2)
		for i := 0; i < n/2; i++ {
			round = append(round, games.Matchup{Home: slots[i], Away: slots[n-1-i]})
		}
		s = append(s, round)
	}
	return s, nil
}

// Default is the 8-team, 20-round season.
func Default() games.Schedule {
	s, _ := RoundRobin(DefaultTeams, DefaultRounds)
	return s
}
