package sim

import (
	"testing"

	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
	"github.com/preston-bernstein/diamond-gm/internal/engine/roster"
	"github.com/preston-bernstein/diamond-gm/internal/engine/schedule"
	"github.com/preston-bernstein/diamond-gm/internal/rng"
	"github.com/preston-bernstein/diamond-gm/internal/testutil"
)

func TestFullScheduleGivesEveryTeamTwentyGames(t *testing.T) {
	src := rng.New(2025)
	l := roster.NewGenerator(src).League(teams.DefaultConfigs, 36)
	for r, round := range schedule.Default() {
		results, held := CPURound(src, l, round, r, -1)
		if held != nil {
			t.Fatalf("round %d: nothing should be held", r)
		}
		if len(results) != 4 {
			t.Fatalf("round %d: expected 4 results, got %d", r, len(results))
		}
	}
	for _, team := range l.Teams {
		if team.Record.Games() != schedule.DefaultRounds {
			t.Fatalf("%s played %d games", team.Name, team.Record.Games())
		}
	}
}

func TestCPURoundHoldsUserMatchup(t *testing.T) {
	l := testutil.UniformLeague(8, 60, 60)
	round := schedule.Default()[0]
	results, held := CPURound(rng.New(1), l, round, 0, 3)
	if held == nil || !held.Involves(3) {
		t.Fatalf("expected held matchup for team 3, got %+v", held)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 cpu results, got %d", len(results))
	}
	for _, idx := range []int{held.Home, held.Away} {
		if l.Teams[idx].Record.Games() != 0 {
			t.Fatalf("held matchup must not be recorded")
		}
	}
}
