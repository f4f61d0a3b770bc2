package salary

import (
	"errors"
	"testing"

	"github.com/preston-bernstein/diamond-gm/internal/domain/league"
	"github.com/preston-bernstein/diamond-gm/internal/domain/players"
	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
	"github.com/preston-bernstein/diamond-gm/internal/testutil"
)

func TestTierThresholds(t *testing.T) {
	cases := []struct {
		rating int
		want   players.SalaryTier
	}{
		{30, players.TierLow}, {54, players.TierLow},
		{55, players.TierMid}, {64, players.TierMid},
		{65, players.TierHigh}, {74, players.TierHigh},
		{75, players.TierStar}, {95, players.TierStar},
	}
	for _, tc := range cases {
		if got := Tier(testutil.Arm("p", tc.rating, 50)); got != tc.want {
			t.Fatalf("pitching %d: expected %s, got %s", tc.rating, tc.want, got)
		}
		if got := Tier(testutil.Batter("b", tc.rating, tc.rating, tc.rating, tc.rating)); got != tc.want {
			t.Fatalf("overall %d: expected %s, got %s", tc.rating, tc.want, got)
		}
	}
	// 54.75 average is still the lowest tier
	if got := Tier(testutil.Batter("b", 55, 55, 55, 54)); got != players.TierLow {
		t.Fatalf("expected $, got %s", got)
	}
}

func TestEnforceCapCutsMostExpensiveFirst(t *testing.T) {
	team := testutil.UniformTeam("A", 60, 60) // 14 x $$ = 28
	team.Roster[3].Batter.Hitting = 95
	team.Roster[3].Batter.Power = 95
	team.Roster[3].Batter.Speed = 95
	team.Roster[3].Batter.Defense = 95
	team.Roster[10].Pitcher.Pitching = 90
	Assign(team)
	team.SalaryCap = 27 // payroll 32

	cut := EnforceCap(team)
	if len(cut) != 2 {
		t.Fatalf("expected 2 cuts, got %d", len(cut))
	}
	if cut[0].ID != "A-b3" || cut[1].ID != "A-p1" {
		t.Fatalf("unexpected cut order %s, %s", cut[0].ID, cut[1].ID)
	}
	if Payroll(team) > team.SalaryCap {
		t.Fatalf("payroll %d still above cap", Payroll(team))
	}
}

func TestEnforceCapTiesUseRosterOrder(t *testing.T) {
	team := testutil.UniformTeam("A", 60, 60)
	Assign(team)
	team.SalaryCap = 25
	cut := EnforceCap(team)
	if len(cut) != 2 || cut[0].ID != "A-b0" || cut[1].ID != "A-b1" {
		t.Fatalf("expected first two batters cut, got %v", cut)
	}
}

func TestEnforceCapEmptiesRosterIfNeeded(t *testing.T) {
	team := testutil.UniformTeam("A", 60, 60)
	team.SalaryCap = -1
	cut := EnforceCap(team)
	if len(team.Roster) != 0 || len(cut) != teams.RosterSize {
		t.Fatalf("expected empty roster, got %d left", len(team.Roster))
	}
}

func TestFreeAgentPoolTopBySalary(t *testing.T) {
	var cut []*players.Player
	for i := 0; i < 12; i++ {
		p := testutil.Arm(string(rune('a'+i)), 50, 50)
		p.Salary = players.TierLow
		if i == 11 {
			p.Salary = players.TierStar
		}
		cut = append(cut, p)
	}
	pool := FreeAgentPool(cut, DefaultPoolSize)
	if len(pool) != DefaultPoolSize {
		t.Fatalf("expected %d, got %d", DefaultPoolSize, len(pool))
	}
	if pool[0].ID != "l" || pool[1].ID != "a" {
		t.Fatalf("unexpected pool order %s, %s", pool[0].ID, pool[1].ID)
	}
}

func capLeague() *league.League {
	team := testutil.UniformTeam("A", 50, 50) // every player $
	team.Roster[0].Batter.Hitting = 90
	team.Roster[0].Batter.Power = 90
	team.Roster[0].Batter.Speed = 90
	team.Roster[0].Batter.Defense = 90
	Assign(team) // 4 + 13 = 17
	team.SalaryCap = Payroll(team)

	fa := testutil.Batter("fa", 90, 90, 90, 90)
	fa.Salary = players.TierStar
	arm := testutil.Arm("fa-arm", 50, 50)
	arm.Salary = players.TierLow
	return &league.League{Teams: []*teams.Team{team}, FreeAgents: []*players.Player{fa, arm}}
}

func TestSignRejectedOverCapLeavesRosterUnchanged(t *testing.T) {
	l := capLeague()
	before := make([]string, 0, teams.RosterSize)
	for _, p := range l.Teams[0].Roster {
		before = append(before, p.ID)
	}

	_, err := Sign(l, "A", "fa", "A-b5")
	if !errors.Is(err, ErrCapExceeded) {
		t.Fatalf("expected ErrCapExceeded, got %v", err)
	}
	for i, p := range l.Teams[0].Roster {
		if p.ID != before[i] {
			t.Fatalf("roster changed at %d", i)
		}
	}
	if len(l.FreeAgents) != 2 {
		t.Fatalf("free agent pool changed")
	}
}

func TestSignSwapsPlayers(t *testing.T) {
	l := capLeague()
	released, err := Sign(l, "A", "fa-arm", "A-p2")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if released.ID != "A-p2" {
		t.Fatalf("unexpected release %s", released.ID)
	}
	if l.Teams[0].Roster[11].ID != "fa-arm" {
		t.Fatalf("expected signed player in released slot")
	}
	if players.IndexOf(l.FreeAgents, "fa-arm") >= 0 {
		t.Fatalf("signed player still in pool")
	}
	if err := l.Teams[0].ValidateRoster(); err != nil {
		t.Fatalf("roster shape broken: %v", err)
	}
}

func TestSignRejections(t *testing.T) {
	cases := []struct {
		name              string
		team, fa, release string
		want              error
	}{
		{"unknown team", "Z", "fa", "A-b0", ErrUnknownTeam},
		{"unknown agent", "A", "nope", "A-b0", ErrUnknownFreeAgent},
		{"unknown release", "A", "fa", "nope", ErrUnknownRelease},
		{"type mismatch", "A", "fa-arm", "A-b0", ErrTypeMismatch},
	}
	for _, tc := range cases {
		l := capLeague()
		if _, err := Sign(l, tc.team, tc.fa, tc.release); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}
