package testutil

import (
	"fmt"

	"github.com/preston-bernstein/diamond-gm/internal/domain/league"
	"github.com/preston-bernstein/diamond-gm/internal/domain/players"
	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
)

// Batter returns a position player with the given ratings.
func Batter(id string, hitting, power, speed, defense int) *players.Player {
	return players.NewPositionPlayer(id, "Batter "+id, players.BatterRatings{
		Hitting: hitting, Power: power, Speed: speed, Defense: defense,
	}, 27)
}

// Arm returns a pitcher with the given ratings.
func Arm(id string, pitching, defense int) *players.Player {
	return players.NewPitcher(id, "Pitcher "+id, players.PitcherRatings{Pitching: pitching, Defense: defense}, 27)
}

// UniformTeam returns a 9/5 team where every batter rating is bat and every
// pitcher throws pitch. Player ids are prefixed with the team name.
func UniformTeam(name string, bat, pitch int) *teams.Team {
	t := &teams.Team{Name: name, City: name + " City", SalaryCap: 36}
	for i := 0; i < teams.RosterPositionPlayers; i++ {
		t.Roster = append(t.Roster, Batter(fmt.Sprintf("%s-b%d", name, i), bat, bat, bat, bat))
	}
	for i := 0; i < teams.RosterPitchers; i++ {
		t.Roster = append(t.Roster, Arm(fmt.Sprintf("%s-p%d", name, i), pitch, bat))
	}
	return t
}

// UniformLeague builds an n-team league of identical UniformTeam rosters.
func UniformLeague(n, bat, pitch int) *league.League {
	l := &league.League{Year: league.StartYear}
	for i := 0; i < n; i++ {
		l.Teams = append(l.Teams, UniformTeam(fmt.Sprintf("T%d", i), bat, pitch))
	}
	return l
}

// SequentialIDs returns an id generator yielding prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
