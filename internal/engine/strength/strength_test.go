package strength

import (
	"math"
	"testing"

	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
	"github.com/preston-bernstein/diamond-gm/internal/testutil"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestOffense(t *testing.T) {
	team := testutil.UniformTeam("A", 60, 70)
	// 60 + 60 + 30
	if got := Offense(team); !approx(got, 150) {
		t.Fatalf("expected 150, got %v", got)
	}
}

func TestDefenseUsesRotationStarter(t *testing.T) {
	team := testutil.UniformTeam("A", 60, 70)
	team.Pitchers()[2].Pitcher.Pitching = 90

	got := Defense(team, 2, nil)
	want := 0.3*60 + 0.6*90 + FlatLineupBonus
	if !approx(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDefenseFallsBackToAverage(t *testing.T) {
	team := testutil.UniformTeam("A", 60, 70)
	team.Pitchers()[0].Pitcher.Pitching = 95 // avg = (95 + 4*70)/5 = 75
	for _, idx := range []int{NoRotation, 5, 99} {
		got := Defense(team, idx, nil)
		want := 0.3*60 + 0.6*75 + FlatLineupBonus
		if !approx(got, want) {
			t.Fatalf("index %d: expected %v, got %v", idx, want, got)
		}
	}
}

func TestDefenseLineupBonus(t *testing.T) {
	team := testutil.UniformTeam("A", 60, 70)
	bats := team.PositionPlayers()
	lineup := teams.Lineup{}
	if err := lineup.Assign(team, teams.Catcher, bats[0].ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := lineup.Assign(team, teams.FirstBase, bats[1].ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	got := Defense(team, 0, lineup)
	want := 0.3*60 + 0.6*70 + 4
	if !approx(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if empty := Defense(team, 0, teams.Lineup{}); !approx(empty, 0.3*60+0.6*70) {
		t.Fatalf("empty lineup should earn no bonus, got %v", empty)
	}
}

func TestEmptyTeam(t *testing.T) {
	team := &teams.Team{Name: "empty"}
	if Offense(team) != 0 || Fielding(team) != 0 || Pitching(team, NoRotation) != 0 {
		t.Fatalf("expected zero strengths for an empty roster")
	}
}

func TestStaffPitching(t *testing.T) {
	if got := StaffPitching(testutil.UniformTeam("A", 60, 70)); got != 350 {
		t.Fatalf("expected 350, got %d", got)
	}
}
