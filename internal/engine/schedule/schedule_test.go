package schedule

import (
	"errors"
	"testing"
)

func TestDefaultEveryTeamOncePerRound(t *testing.T) {
	s := Default()
	if len(s) != DefaultRounds {
		t.Fatalf("expected %d rounds, got %d", DefaultRounds, len(s))
	}
	games := make([]int, DefaultTeams)
	for r, round := range s {
		if len(round) != DefaultTeams/2 {
			t.Fatalf("round %d: expected 4 matchups, got %d", r, len(round))
		}
		seen := map[int]bool{}
		for _, m := range round {
			for _, idx := range []int{m.Home, m.Away} {
				if idx < 0 || idx >= DefaultTeams {
					t.Fatalf("round %d: index %d out of range", r, idx)
				}
				if seen[idx] {
					t.Fatalf("round %d: team %d plays twice", r, idx)
				}
				seen[idx] = true
				games[idx]++
			}
		}
		if len(seen) != DefaultTeams {
			t.Fatalf("round %d: expected all teams, got %d", r, len(seen))
		}
	}
	for idx, n := range games {
		if n != DefaultRounds {
			t.Fatalf("team %d played %d games", idx, n)
		}
	}
}

func TestFirstRoundsMatchCircleMethod(t *testing.T) {
	s := Default()
	// round 0: 0-7, 1-6, 2-5, 3-4
	want0 := [][2]int{{0, 7}, {1, 6}, {2, 5}, {3, 4}}
	for i, m := range s[0] {
		if m.Home != want0[i][0] || m.Away != want0[i][1] {
			t.Fatalf("round 0 matchup %d: got %+v", i, m)
		}
	}
	// round 1 rotates 1..7 right by one: [0,7,1,2,3,4,5,6]
	want1 := [][2]int{{0, 6}, {7, 5}, {1, 4}, {2, 3}}
	for i, m := range s[1] {
		if m.Home != want1[i][0] || m.Away != want1[i][1] {
			t.Fatalf("round 1 matchup %d: got %+v", i, m)
		}
	}
	// rotation wraps every 7 rounds
	for i := range s[0] {
		if s[7][i] != s[0][i] {
			t.Fatalf("expected round 7 to repeat round 0")
		}
	}
}

func TestOpponentsCoverLeagueInFirstCycle(t *testing.T) {
	s, err := RoundRobin(8, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pairs := map[[2]int]bool{}
	for _, round := range s {
		for _, m := range round {
			a, b := m.Home, m.Away
			if a > b {
				a, b = b, a
			}
			pairs[[2]int{a, b}] = true
		}
	}
	if len(pairs) != 28 {
		t.Fatalf("expected 28 distinct pairings in one cycle, got %d", len(pairs))
	}
}

func TestRoundRobinRejectsOddLeague(t *testing.T) {
	if _, err := RoundRobin(7, 20); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape, got %v", err)
	}
	if _, err := RoundRobin(0, 20); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape for empty league, got %v", err)
	}
	if _, err := RoundRobin(8, -1); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape for negative rounds, got %v", err)
	}
}
