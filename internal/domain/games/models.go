package games

// Kind separates regular-season games from playoff games.
type Kind string

const (
	KindRegular Kind = "REGULAR"
	KindPlayoff Kind = "PLAYOFF"
)

// TieBreak records how a level score was settled.
type TieBreak string

const (
	TieBreakNone     TieBreak = ""
	TieBreakPitching TieBreak = "PITCHING"
	TieBreakCoin     TieBreak = "COIN"
)

// Matchup pairs two teams by their league index.
type Matchup struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Involves reports whether team index i plays in the matchup.
func (m Matchup) Involves(i int) bool {
	return m.Home == i || m.Away == i
}

// Round is every matchup played on one game day.
type Round []Matchup

// Schedule is the season's list of rounds.
type Schedule []Round

// Find returns the matchup in round r that involves team index i.
func (s Schedule) Find(r, i int) (Matchup, bool) {
	if r < 0 || r >= len(s) {
		return Matchup{}, false
	}
	for _, m := range s[r] {
		if m.Involves(i) {
			return m, true
		}
	}
	return Matchup{}, false
}

// Score captures home and away runs.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Total is the combined run count.
func (s Score) Total() int {
	return s.Home + s.Away
}

// Result is the outcome of one simulated game.
type Result struct {
	Home     string   `json:"home"`
	Away     string   `json:"away"`
	Score    Score    `json:"score"`
	Winner   string   `json:"winner"`
	Loser    string   `json:"loser"`
	TieBreak TieBreak `json:"tieBreak,omitempty"`
	Kind     Kind     `json:"kind"`
}

// Involves reports whether the named team played.
func (r Result) Involves(team string) bool {
	return r.Home == team || r.Away == team
}

// Stage names a playoff round.
type Stage string

const (
	StageSemifinal    Stage = "SEMIFINAL"
	StageChampionship Stage = "CHAMPIONSHIP"
)

// PlayoffGame is a result tagged with its bracket stage.
type PlayoffGame struct {
	Stage  Stage  `json:"stage"`
	Result Result `json:"result"`
}

// Bracket is a four-team single-elimination playoff.
type Bracket struct {
	Seeds    []string      `json:"seeds"`
	Games    []PlayoffGame `json:"games"`
	Champion string        `json:"champion,omitempty"`
}

// Done reports whether a champion has been crowned.
func (b *Bracket) Done() bool {
	return b != nil && b.Champion != ""
}
