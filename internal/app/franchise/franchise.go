package franchise

import (
	"github.com/preston-bernstein/diamond-gm/internal/domain/games"
	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
	"github.com/preston-bernstein/diamond-gm/internal/engine/draft"
)

// Franchise is the user's season: which team they run, where the schedule
// stands, and any playoff or draft in progress.
type Franchise struct {
	Team        string         `json:"team"`
	Year        int            `json:"year"`
	Schedule    games.Schedule `json:"schedule"`
	GamesPlayed int            `json:"gamesPlayed"`
	TotalGames  int            `json:"totalGames"`
	Rotation    int            `json:"rotation"`
	Lineup      teams.Lineup   `json:"lineup"`
	Ended       bool           `json:"seasonEnded"`
	Results     []games.Result `json:"results"`
	Bracket     *games.Bracket `json:"playoffs,omitempty"`
	Draft       *draft.State   `json:"draft,omitempty"`
}

// Clone deep-copies the franchise.
func (f *Franchise) Clone() *Franchise {
	if f == nil {
		return nil
	}
	c := *f
	c.Schedule = make(games.Schedule, len(f.Schedule))
	for i, r := range f.Schedule {
		c.Schedule[i] = append(games.Round(nil), r...)
	}
	c.Lineup = f.Lineup.Clone()
	c.Results = append([]games.Result(nil), f.Results...)
	c.Bracket = cloneBracket(f.Bracket)
	c.Draft = f.Draft.Clone()
	return &c
}

func cloneBracket(b *games.Bracket) *games.Bracket {
	if b == nil {
		return nil
	}
	c := *b
	c.Seeds = append([]string(nil), b.Seeds...)
	c.Games = append([]games.PlayoffGame(nil), b.Games...)
	return &c
}

// Record returns the user's wins and losses from the games played so far.
func (f *Franchise) Record() teams.Record {
	var r teams.Record
	for _, res := range f.Results {
		if res.Winner == f.Team {
			r.Wins++
		} else {
			r.Losses++
		}
	}
	return r
}

// PlayoffsInProgress reports a seeded bracket without a champion.
func (f *Franchise) PlayoffsInProgress() bool {
	return f.Bracket != nil && !f.Bracket.Done()
}

// RoundReport is the outcome of one PlayRound call.
type RoundReport struct {
	Round        int            `json:"round"`
	CPU          []games.Result `json:"cpuGames"`
	User         *games.Result  `json:"userGame,omitempty"`
	Won          bool           `json:"won"`
	PlayerOfGame *PlayerOfGame  `json:"playerOfGame,omitempty"`
	SeasonEnded  bool           `json:"seasonEnded"`
}

// PlayerOfGame is the box-score line credited to one lineup player after a win.
type PlayerOfGame struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Line     string `json:"line"`
}

// Offseason summarizes what the draft-completion pipeline did.
type Offseason struct {
	Year       int            `json:"year"`
	Released   map[string]int `json:"released"`
	CapCuts    map[string]int `json:"capCuts"`
	FreeAgents int            `json:"freeAgents"`
	Promoted   map[string]int `json:"promoted"`
	Generated  map[string]int `json:"generated"`
	Aged       int            `json:"aged"`
}

// DraftReport is the response to a pick: the selection, and the offseason
// summary when that pick closed the draft.
type DraftReport struct {
	Pick      draft.Pick   `json:"pick"`
	Draft     *draft.State `json:"draft"`
	Offseason *Offseason   `json:"offseason,omitempty"`
}
