package players

// Trait is a named gameplay perk.
type Trait struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Trait identifiers referenced by gameplay rules.
const (
	TraitClutch    = "clutch"
	TraitStreaky   = "streaky"
	TraitContact   = "contact"
	TraitPower     = "power"
	TraitLateBloom = "lateBloom"
	TraitAce       = "ace"
	TraitWorkhorse = "workhorse"
	TraitStrikeout = "strikeout"
)

// PositionTraits is the trait pool for position players.
var PositionTraits = []Trait{
	{ID: TraitClutch, Name: "Clutch Gene", Description: "+3 hitting in high-pressure moments"},
	{ID: TraitStreaky, Name: "Streaky", Description: "Hot/cold streaks are more extreme"},
	{ID: TraitContact, Name: "Contact Wizard", Description: "Easier to get singles"},
	{ID: TraitPower, Name: "Power Surge", Description: "Home runs come easier"},
	{ID: TraitLateBloom, Name: "Late Bloomer", Description: "Stats cost less XP to upgrade"},
}

// PitcherTraits is the trait pool for pitchers.
var PitcherTraits = []Trait{
	{ID: TraitAce, Name: "Ace Material"},
	{ID: TraitWorkhorse, Name: "Workhorse"},
	{ID: TraitClutch, Name: "Clutch Gene"},
	{ID: TraitStrikeout, Name: "Strikeout Artist"},
}

// HasTrait reports whether the player carries the trait id.
func (p *Player) HasTrait(id string) bool {
	return p != nil && p.Trait != nil && p.Trait.ID == id
}
