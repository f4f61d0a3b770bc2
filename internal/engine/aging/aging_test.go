package aging

import (
	"testing"

	"github.com/preston-bernstein/diamond-gm/internal/domain/players"
	"github.com/preston-bernstein/diamond-gm/internal/engine/roster"
	"github.com/preston-bernstein/diamond-gm/internal/rng"
	"github.com/preston-bernstein/diamond-gm/internal/testutil"
)

func TestAdjustmentBands(t *testing.T) {
	cases := []struct {
		name      string
		age       int
		potential int
		floats    []float64
		lo, hi    float64
	}{
		{"default drift", 30, 0, []float64{0.0}, -0.03, -0.03},
		{"veteran decline", 34, 0, []float64{0.5, 0.1, 0.0}, -0.04, -0.04},
		{"veteran bounce", 34, 0, []float64{0.5, 0.9, 0.5}, 0.01, 0.01},
		{"young below potential", 24, 90, []float64{0.0, 1.0}, 0.04, 0.04},
		{"young at potential", 24, 50, []float64{0.5}, 0, 0},
	}
	for _, tc := range cases {
		p := testutil.Batter("b", 60, 60, 60, 60)
		p.Age = tc.age
		p.Potential = tc.potential
		src := testutil.NewScriptedSource(1).QueueFloats(tc.floats...)
		got := Adjustment(src, p)
		if got < tc.lo-1e-9 || got > tc.hi+1e-9 {
			t.Fatalf("%s: expected %v..%v, got %v", tc.name, tc.lo, tc.hi, got)
		}
	}
}

func TestApplySnapshotsClampsAndAges(t *testing.T) {
	p := testutil.Batter("b", 94, 60, 31, 50)
	p.Age = 27
	Apply(p, 0.04)
	if p.Previous == nil || p.Previous.Batter.Hitting != 94 {
		t.Fatalf("expected snapshot of previous ratings")
	}
	if p.Batter.Hitting != players.MaxRating {
		t.Fatalf("expected clamp to max, got %d", p.Batter.Hitting)
	}
	if p.Batter.Power != 62 {
		t.Fatalf("expected 62, got %d", p.Batter.Power)
	}
	if p.Age != 28 {
		t.Fatalf("expected age 28, got %d", p.Age)
	}

	q := testutil.Arm("p", 31, 40)
	Apply(q, -0.04)
	if q.Pitcher.Pitching != players.MinRating {
		t.Fatalf("expected clamp to min, got %d", q.Pitcher.Pitching)
	}
}

func TestLeagueInvariant(t *testing.T) {
	src := rng.New(99)
	gen := roster.NewGenerator(src)
	l := testutil.UniformLeague(8, 60, 60)
	l.Teams[0].Minors = append(l.Teams[0].Minors, gen.Replacement(players.KindPosition))

	ages := map[string]int{}
	for _, team := range l.Teams {
		for _, p := range append(append([]*players.Player(nil), team.Roster...), team.Minors...) {
			ages[p.ID] = p.Age
		}
	}

	if n := League(src, l); n != len(ages) {
		t.Fatalf("expected %d players aged, got %d", len(ages), n)
	}
	for _, team := range l.Teams {
		for _, p := range append(append([]*players.Player(nil), team.Roster...), team.Minors...) {
			if p.Age != ages[p.ID]+1 {
				t.Fatalf("%s aged %d -> %d", p.ID, ages[p.ID], p.Age)
			}
			for _, r := range p.Ratings() {
				if *r < players.MinRating || *r > players.MaxRating {
					t.Fatalf("rating %d out of range", *r)
				}
			}
		}
	}
}
