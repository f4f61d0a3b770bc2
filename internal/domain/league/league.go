package league

import (
	"sort"

	"github.com/preston-bernstein/diamond-gm/internal/domain/players"
	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
)

// StartYear is the season year of a freshly generated league.
const StartYear = 2025

// League is the shared universe: fixed team membership, the season year and
// the current free-agent pool.
type League struct {
	Teams      []*teams.Team     `json:"teams"`
	Year       int               `json:"year"`
	FreeAgents []*players.Player `json:"freeAgents"`
}

// Index returns the position of the named team, or -1.
func (l *League) Index(name string) int {
	for i, t := range l.Teams {
		if t != nil && t.Name == name {
			return i
		}
	}
	return -1
}

// Team looks a team up by exact name.
func (l *League) Team(name string) (*teams.Team, bool) {
	if i := l.Index(name); i >= 0 {
		return l.Teams[i], true
	}
	return nil, false
}

// Standings orders teams by winning percentage, best first. Equal
// percentages keep league order.
func (l *League) Standings() []*teams.Team {
	out := make([]*teams.Team, len(l.Teams))
	copy(out, l.Teams)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Record.Pct() > out[j].Record.Pct()
	})
	return out
}

// RecordGame credits a win and a loss. Unknown names leave the league untouched.
func (l *League) RecordGame(winner, loser string) bool {
	w, okW := l.Team(winner)
	lo, okL := l.Team(loser)
	if !okW || !okL {
		return false
	}
	w.Record.Wins++
	lo.Record.Losses++
	return true
}

// ResetRecords zeroes every team's record.
func (l *League) ResetRecords() {
	for _, t := range l.Teams {
		t.Record = teams.Record{}
	}
}

// Names returns team names in league order.
func (l *League) Names() []string {
	out := make([]string, len(l.Teams))
	for i, t := range l.Teams {
		out[i] = t.Name
	}
	return out
}

// Clone deep-copies the league.
func (l *League) Clone() *League {
	if l == nil {
		return nil
	}
	c := &League{Year: l.Year, FreeAgents: players.CloneAll(l.FreeAgents)}
	c.Teams = make([]*teams.Team, len(l.Teams))
	for i, t := range l.Teams {
		c.Teams[i] = t.Clone()
	}
	return c
}
