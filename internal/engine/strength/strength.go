// Package strength aggregates a roster into offensive and defensive scores.
package strength

import (
	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
)

// NoRotation selects the roster-wide average pitching instead of a starter.
const NoRotation = -1

// FlatLineupBonus stands in for the positional bonus of a team with no lineup.
const FlatLineupBonus = 10

// Weights of the defensive blend.
const (
	fieldingWeight = 0.3
	pitchingWeight = 0.6
	speedWeight    = 0.5
)

// Offense averages hitting + power + half of speed over position players.
func Offense(t *teams.Team) float64 {
	bats := t.PositionPlayers()
	if len(bats) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range bats {
		sum += float64(p.Batter.Hitting+p.Batter.Power) + speedWeight*float64(p.Batter.Speed)
	}
	return sum / float64(len(bats))
}

// Defense blends fielding, the starter's pitching and the lineup bonus.
// A starter index outside the rotation falls back to average pitching; a nil
// lineup earns FlatLineupBonus.
func Defense(t *teams.Team, starter int, lineup teams.Lineup) float64 {
	bonus := FlatLineupBonus
	if lineup != nil {
		bonus = lineup.Bonus()
	}
	return fieldingWeight*Fielding(t) + pitchingWeight*Pitching(t, starter) + float64(bonus)
}

// Fielding is the mean defense rating of position players.
func Fielding(t *teams.Team) float64 {
	bats := t.PositionPlayers()
	if len(bats) == 0 {
		return 0
	}
	sum := 0
	for _, p := range bats {
		sum += p.Batter.Defense
	}
	return float64(sum) / float64(len(bats))
}

// Pitching returns the starter's rating, or the staff average when starter
// is out of range.
func Pitching(t *teams.Team, starter int) float64 {
	arms := t.Pitchers()
	if starter >= 0 && starter < len(arms) {
		return float64(arms[starter].Pitcher.Pitching)
	}
	if len(arms) == 0 {
		return 0
	}
	return float64(StaffPitching(t)) / float64(len(arms))
}

// StaffPitching sums the pitching rating over every pitcher on the roster.
func StaffPitching(t *teams.Team) int {
	sum := 0
	for _, p := range t.Pitchers() {
		sum += p.Pitcher.Pitching
	}
	return sum
}
