// Package salary prices players, enforces team caps and runs free agency.
package salary

import (
	"errors"
	"fmt"
	"sort"

	"github.com/preston-bernstein/diamond-gm/internal/domain/league"
	"github.com/preston-bernstein/diamond-gm/internal/domain/players"
	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
)

// DefaultCap is the per-team payroll limit in tier units.
const DefaultCap = 36

// DefaultPoolSize is the number of cut players kept as free agents.
const DefaultPoolSize = 10

var (
	ErrUnknownTeam      = errors.New("team not found")
	ErrUnknownFreeAgent = errors.New("free agent not found")
	ErrUnknownRelease   = errors.New("release candidate not on roster")
	ErrTypeMismatch     = errors.New("free agent and release candidate play different positions")
	ErrCapExceeded      = errors.New("signing would exceed the salary cap")
)

// Tier prices a player from a single rating: pitching for pitchers, the
// four-stat mean for position players.
func Tier(p *players.Player) players.SalaryTier {
	r := p.Overall()
	switch {
	case r < 55:
		return players.TierLow
	case r < 65:
		return players.TierMid
	case r < 75:
		return players.TierHigh
	default:
		return players.TierStar
	}
}

// Cost is the cap value of p, pricing unset tiers on the fly.
func Cost(p *players.Player) int {
	if p.Salary == players.TierUnset {
		return Tier(p).Value()
	}
	return p.Salary.Value()
}

// Payroll sums Cost over the active roster.
func Payroll(t *teams.Team) int {
	total := 0
	for _, p := range t.Roster {
		total += Cost(p)
	}
	return total
}

// Assign reprices every rostered player from current ratings.
func Assign(t *teams.Team) {
	for _, p := range t.Roster {
		p.Salary = Tier(p)
	}
}

// EnforceCap cuts the most expensive player (first in roster order on ties)
// until payroll fits the cap or the roster is empty. Cuts are returned in order.
func EnforceCap(t *teams.Team) []*players.Player {
	var cut []*players.Player
	for len(t.Roster) > 0 && Payroll(t) > t.SalaryCap {
		top := 0
		for i, p := range t.Roster {
			if Cost(p) > Cost(t.Roster[top]) {
				top = i
			}
		}
		cut = append(cut, t.Roster[top])
		t.Roster = append(t.Roster[:top:top], t.Roster[top+1:]...)
	}
	return cut
}

// FreeAgentPool keeps the size most expensive cut players. Equal salaries
// keep cut order.
func FreeAgentPool(cut []*players.Player, size int) []*players.Player {
	pool := append([]*players.Player(nil), cut...)
	sort.SliceStable(pool, func(i, j int) bool {
		return Cost(pool[i]) > Cost(pool[j])
	})
	if size >= 0 && len(pool) > size {
		pool = pool[:size:size]
	}
	return pool
}

// Sign swaps a free agent onto team in place of releaseID. The released
// player leaves the game; the signed player leaves the pool. Nothing changes
// when the swap is rejected.
func Sign(l *league.League, team, freeAgentID, releaseID string) (*players.Player, error) {
	t, ok := l.Team(team)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTeam, team)
	}
	fi := players.IndexOf(l.FreeAgents, freeAgentID)
	if fi < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFreeAgent, freeAgentID)
	}
	ri := players.IndexOf(t.Roster, releaseID)
	if ri < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRelease, releaseID)
	}
	fa, rel := l.FreeAgents[fi], t.Roster[ri]
	if fa.Kind != rel.Kind {
		return nil, ErrTypeMismatch
	}
	if after := Payroll(t) - Cost(rel) + Cost(fa); after > t.SalaryCap {
		return nil, fmt.Errorf("%w: payroll %d, cap %d", ErrCapExceeded, after, t.SalaryCap)
	}

	if fa.Salary == players.TierUnset {
		fa.Salary = Tier(fa)
	}
	t.Roster[ri] = fa
	l.FreeAgents = append(l.FreeAgents[:fi:fi], l.FreeAgents[fi+1:]...)
	return rel, nil
}
