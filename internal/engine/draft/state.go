package draft

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/diamond-gm/internal/domain/league"
	"github.com/preston-bernstein/diamond-gm/internal/domain/players"
	"github.com/preston-bernstein/diamond-gm/internal/rng"
)

// DefaultRounds is the number of passes through the draft order.
const DefaultRounds = 2

// OrderPolicy decides who picks first.
type OrderPolicy string

const (
	OrderReverseStandings OrderPolicy = "reverse_standings"
	OrderRandom           OrderPolicy = "random"
)

// Valid reports whether the policy is known.
func (p OrderPolicy) Valid() bool {
	return p == OrderReverseStandings || p == OrderRandom
}

var (
	ErrDraftComplete   = errors.New("draft is complete")
	ErrUnknownProspect = errors.New("prospect not available")
)

// Order builds one pass of team names. Reverse standings puts the worst
// record first; random shuffles league order.
func Order(l *league.League, policy OrderPolicy, src rng.Source) []string {
	if policy == OrderRandom {
		names := l.Names()
		for i := len(names) - 1; i > 0; i-- {
			j := src.IntN(i + 1)
			names[i], names[j] = names[j], names[i]
		}
		return names
	}
	standings := l.Standings()
	names := make([]string, len(standings))
	for i, t := range standings {
		names[len(standings)-1-i] = t.Name
	}
	return names
}

// Pick is one selection.
type Pick struct {
	Number int             `json:"number"`
	Round  int             `json:"round"`
	Team   string          `json:"team"`
	Player *players.Player `json:"player"`
}

// State is an in-progress draft.
type State struct {
	Prospects   []*players.Player `json:"prospects"`
	Order       []string          `json:"order"`
	CurrentPick int               `json:"currentPick"`
	Round       int               `json:"round"`
	Rounds      int               `json:"rounds"`
	Picks       []Pick            `json:"picks"`
}

// NewState opens a draft over prospects (already sorted best first).
func NewState(prospects []*players.Player, order []string, rounds int) *State {
	if rounds < 1 {
		rounds = DefaultRounds
	}
	return &State{
		Prospects: prospects,
		Order:     order,
		Round:     1,
		Rounds:    rounds,
	}
}

// TotalPicks is the number of selections the draft will make.
func (s *State) TotalPicks() int {
	return len(s.Order) * s.Rounds
}

// Done reports whether every pick was made or the pool ran dry.
func (s *State) Done() bool {
	return len(s.Order) == 0 || s.CurrentPick >= s.TotalPicks() || len(s.Prospects) == 0
}

// OnClock returns the team making the current pick.
func (s *State) OnClock() (string, bool) {
	if s.Done() {
		return "", false
	}
	return s.Order[s.CurrentPick%len(s.Order)], true
}

// Select drafts the prospect with id for the team on the clock.
func (s *State) Select(prospectID string) (Pick, error) {
	team, ok := s.OnClock()
	if !ok {
		return Pick{}, ErrDraftComplete
	}
	idx := players.IndexOf(s.Prospects, prospectID)
	if idx < 0 {
		return Pick{}, fmt.Errorf("%w: %s", ErrUnknownProspect, prospectID)
	}
	return s.take(team, idx), nil
}

// AutoSelect drafts the best available prospect for the team on the clock.
func (s *State) AutoSelect() (Pick, error) {
	team, ok := s.OnClock()
	if !ok {
		return Pick{}, ErrDraftComplete
	}
	best := 0
	for i, p := range s.Prospects {
		if Evaluate(p) > Evaluate(s.Prospects[best]) {
			best = i
		}
	}
	return s.take(team, best), nil
}

func (s *State) take(team string, idx int) Pick {
	p := s.Prospects[idx]
	s.Prospects = append(s.Prospects[:idx:idx], s.Prospects[idx+1:]...)
	pick := Pick{Number: s.CurrentPick + 1, Round: s.Round, Team: team, Player: p}
	s.Picks = append(s.Picks, pick)
	s.CurrentPick++
	if r := s.CurrentPick/len(s.Order) + 1; r <= s.Rounds {
		s.Round = r
	}
	return pick
}

// PicksFor returns the players drafted by team, in pick order.
func (s *State) PicksFor(team string) []*players.Player {
	var out []*players.Player
	for _, p := range s.Picks {
		if p.Team == team {
			out = append(out, p.Player)
		}
	}
	return out
}

// Clone deep-copies the state.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	c := *s
	c.Prospects = players.CloneAll(s.Prospects)
	c.Order = append([]string(nil), s.Order...)
	c.Picks = make([]Pick, len(s.Picks))
	for i, p := range s.Picks {
		p.Player = p.Player.Clone()
		c.Picks[i] = p
	}
	return &c
}
