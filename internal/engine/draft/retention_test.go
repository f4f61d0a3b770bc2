package draft

import (
	"testing"

	"github.com/preston-bernstein/diamond-gm/internal/domain/players"
	"github.com/preston-bernstein/diamond-gm/internal/engine/roster"
	"github.com/preston-bernstein/diamond-gm/internal/rng"
	"github.com/preston-bernstein/diamond-gm/internal/testutil"
)

func prospect(id string, rating, potential int) *players.Player {
	p := testutil.Batter(id, rating, rating, rating, rating)
	p.Potential = potential
	return p
}

func TestRetainKeepsTopK(t *testing.T) {
	team := testutil.UniformTeam("A", 60, 60)
	team.Minors = []*players.Player{prospect("m1", 50, 50), prospect("m2", 70, 70)}
	picks := []*players.Player{prospect("d1", 60, 60), prospect("d2", 40, 40), prospect("d3", 80, 80)}

	dropped := Retain(team, picks, 3)
	want := []string{"d3", "m2", "d1"}
	if len(team.Minors) != 3 {
		t.Fatalf("expected 3 kept, got %d", len(team.Minors))
	}
	for i, id := range want {
		if team.Minors[i].ID != id {
			t.Fatalf("slot %d: expected %s, got %s", i, id, team.Minors[i].ID)
		}
	}
	if len(dropped) != 2 {
		t.Fatalf("expected 2 dropped, got %d", len(dropped))
	}
}

func TestRetainUnderLimitKeepsAll(t *testing.T) {
	team := testutil.UniformTeam("A", 60, 60)
	if dropped := Retain(team, []*players.Player{prospect("d1", 60, 60)}, 5); dropped != nil {
		t.Fatalf("expected nothing dropped")
	}
	if len(team.Minors) != 1 {
		t.Fatalf("expected one prospect kept")
	}
}

func TestApplyRetentionAfterFullDraft(t *testing.T) {
	l := testutil.UniformLeague(8, 60, 60)
	gen := roster.NewGenerator(rng.New(21))
	for _, team := range l.Teams {
		for i := 0; i < 4; i++ {
			team.Minors = append(team.Minors, Prospect(gen, players.KindPosition))
		}
	}
	before := map[string][]*players.Player{}
	for _, team := range l.Teams {
		before[team.Name] = append([]*players.Player(nil), team.Minors...)
	}

	s := NewState(Prospects(gen), Order(l, OrderReverseStandings, gen.Source()), DefaultRounds)
	for !s.Done() {
		if _, err := s.AutoSelect(); err != nil {
			t.Fatalf("auto select: %v", err)
		}
	}
	released := ApplyRetention(l, s, DefaultRetention)

	for _, team := range l.Teams {
		if len(team.Minors) > DefaultRetention {
			t.Fatalf("%s kept %d prospects", team.Name, len(team.Minors))
		}
		union := append(before[team.Name], s.PicksFor(team.Name)...)
		if released[team.Name] != len(union)-len(team.Minors) {
			t.Fatalf("%s release count mismatch", team.Name)
		}
		worstKept := Evaluate(team.Minors[len(team.Minors)-1])
		for _, p := range union {
			if players.IndexOf(team.Minors, p.ID) >= 0 {
				continue
			}
			if Evaluate(p) > worstKept {
				t.Fatalf("%s dropped %s who outscores a kept prospect", team.Name, p.ID)
			}
		}
	}
}
