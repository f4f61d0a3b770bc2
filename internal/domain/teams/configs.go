package teams

// Config is the fixed identity of a league franchise.
type Config struct {
	Name   string
	City   string
	Colors Palette
}

// DefaultConfigs are the eight franchises of the league, in league order.
var DefaultConfigs = []Config{
	{Name: "Monarchs", City: "Crown City", Colors: Palette{"#1E3A8A", "#FBBF24"}},
	{Name: "Grays", City: "Steel Harbor", Colors: Palette{"#4B5563", "#E5E7EB"}},
	{Name: "Eagles", City: "Summit Peak", Colors: Palette{"#92400E", "#FCD34D"}},
	{Name: "Aces", City: "Riverside", Colors: Palette{"#DC2626", "#1F2937"}},
	{Name: "Clippers", City: "Harbor Bay", Colors: Palette{"#0C4A6E", "#FFF"}},
	{Name: "Smokies", City: "Mill Town", Colors: Palette{"#374151", "#F59E0B"}},
	{Name: "Stars", City: "Gateway", Colors: Palette{"#581C87", "#FDE047"}},
	{Name: "Barons", City: "Founders Bay", Colors: Palette{"#991B1B", "#F59E0B"}},
}
