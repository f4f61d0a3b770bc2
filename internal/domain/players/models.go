package players

// Kind discriminates the two player variants.
type Kind string

const (
	KindPosition Kind = "position"
	KindPitcher  Kind = "pitcher"
)

// BatterRatings is the rating bundle of a position player.
type BatterRatings struct {
	Hitting int `json:"hitting"`
	Power   int `json:"power"`
	Speed   int `json:"speed"`
	Defense int `json:"defense"`
}

// PitcherRatings is the rating bundle of a pitcher.
type PitcherRatings struct {
	Pitching int `json:"pitching"`
	Defense  int `json:"defense"`
}

// CareerStats accumulates counting stats for position players.
type CareerStats struct {
	Games    int `json:"games"`
	AtBats   int `json:"atBats"`
	Hits     int `json:"hits"`
	HomeRuns int `json:"homeRuns"`
}

// RatingSnapshot holds last season's ratings for delta display.
type RatingSnapshot struct {
	Batter  *BatterRatings  `json:"batter,omitempty"`
	Pitcher *PitcherRatings `json:"pitcher,omitempty"`
}

// Player is either a position player or a pitcher. Exactly one of Batter and
// Pitcher is set, matching Kind; use the constructors to keep that true.
type Player struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Kind      Kind            `json:"type"`
	Batter    *BatterRatings  `json:"batter,omitempty"`
	Pitcher   *PitcherRatings `json:"pitcher,omitempty"`
	Age       int             `json:"age"`
	Trait     *Trait          `json:"trait,omitempty"`
	Potential int             `json:"potential,omitempty"`
	Previous  *RatingSnapshot `json:"previous,omitempty"`
	Salary    SalaryTier      `json:"salary,omitempty"`
	Career    CareerStats     `json:"careerStats"`
}

// NewPositionPlayer builds a position player with clamped ratings.
func NewPositionPlayer(id, name string, ratings BatterRatings, age int) *Player {
	r := ratings
	r.Hitting = Clamp(r.Hitting)
	r.Power = Clamp(r.Power)
	r.Speed = Clamp(r.Speed)
	r.Defense = Clamp(r.Defense)
	return &Player{ID: id, Name: name, Kind: KindPosition, Batter: &r, Age: age}
}

// NewPitcher builds a pitcher with clamped ratings.
func NewPitcher(id, name string, ratings PitcherRatings, age int) *Player {
	r := ratings
	r.Pitching = Clamp(r.Pitching)
	r.Defense = Clamp(r.Defense)
	return &Player{ID: id, Name: name, Kind: KindPitcher, Pitcher: &r, Age: age}
}

// IsPitcher reports whether the player is a pitcher.
func (p *Player) IsPitcher() bool {
	return p != nil && p.Kind == KindPitcher
}

// Overall is the single rating used for salary and growth decisions:
// the mean of the four batting ratings, or the pitching rating.
func (p *Player) Overall() float64 {
	switch {
	case p == nil:
		return 0
	case p.Kind == KindPitcher && p.Pitcher != nil:
		return float64(p.Pitcher.Pitching)
	case p.Batter != nil:
		b := p.Batter
		return float64(b.Hitting+b.Power+b.Speed+b.Defense) / 4
	default:
		return 0
	}
}

// Defense returns the fielding rating for either variant.
func (p *Player) Defense() int {
	switch {
	case p == nil:
		return 0
	case p.Kind == KindPitcher && p.Pitcher != nil:
		return p.Pitcher.Defense
	case p.Batter != nil:
		return p.Batter.Defense
	default:
		return 0
	}
}

// Ratings returns pointers to every rating the variant carries, in display order.
func (p *Player) Ratings() []*int {
	switch {
	case p == nil:
		return nil
	case p.Kind == KindPitcher && p.Pitcher != nil:
		return []*int{&p.Pitcher.Pitching, &p.Pitcher.Defense}
	case p.Batter != nil:
		return []*int{&p.Batter.Hitting, &p.Batter.Power, &p.Batter.Speed, &p.Batter.Defense}
	default:
		return nil
	}
}

// SnapshotRatings copies the current ratings into Previous.
func (p *Player) SnapshotRatings() {
	if p == nil {
		return
	}
	snap := &RatingSnapshot{}
	if p.Batter != nil {
		b := *p.Batter
		snap.Batter = &b
	}
	if p.Pitcher != nil {
		pr := *p.Pitcher
		snap.Pitcher = &pr
	}
	p.Previous = snap
}

// Valid reports whether the rating bundle matches the declared kind.
func (p *Player) Valid() bool {
	if p == nil {
		return false
	}
	switch p.Kind {
	case KindPosition:
		return p.Batter != nil && p.Pitcher == nil
	case KindPitcher:
		return p.Pitcher != nil && p.Batter == nil
	default:
		return false
	}
}

// Clone returns a deep copy.
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	c := *p
	if p.Batter != nil {
		b := *p.Batter
		c.Batter = &b
	}
	if p.Pitcher != nil {
		pr := *p.Pitcher
		c.Pitcher = &pr
	}
	if p.Trait != nil {
		t := *p.Trait
		c.Trait = &t
	}
	if p.Previous != nil {
		prev := RatingSnapshot{}
		if p.Previous.Batter != nil {
			b := *p.Previous.Batter
			prev.Batter = &b
		}
		if p.Previous.Pitcher != nil {
			pr := *p.Previous.Pitcher
			prev.Pitcher = &pr
		}
		c.Previous = &prev
	}
	return &c
}

// CloneAll deep-copies a slice of players.
func CloneAll(items []*Player) []*Player {
	if items == nil {
		return nil
	}
	out := make([]*Player, len(items))
	for i, p := range items {
		out[i] = p.Clone()
	}
	return out
}

// IndexOf returns the index of the player with id, or -1.
func IndexOf(items []*Player, id string) int {
	for i, p := range items {
		if p != nil && p.ID == id {
			return i
		}
	}
	return -1
}
