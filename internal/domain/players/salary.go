package players

// SalaryTier is a coarse pay band; its numeric value is the cap cost.
type SalaryTier int

const (
	TierUnset SalaryTier = iota
	TierLow
	TierMid
	TierHigh
	TierStar
)

// String renders the tier as dollar signs.
func (t SalaryTier) String() string {
	switch t {
	case TierLow:
		return "$"
	case TierMid:
		return "$$"
	case TierHigh:
		return "$$$"
	case TierStar:
		return "$$$$"
	default:
		return ""
	}
}

// Value is the tier's cap cost (1-4). Unset tiers cost the minimum.
func (t SalaryTier) Value() int {
	if t < TierLow {
		return int(TierLow)
	}
	if t > TierStar {
		return int(TierStar)
	}
	return int(t)
}

// MarshalText encodes the tier as dollar signs.
func (t SalaryTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText accepts one to four dollar signs.
func (t *SalaryTier) UnmarshalText(b []byte) error {
	switch string(b) {
	case "$":
		*t = TierLow
	case "$$":
		*t = TierMid
	case "$$$":
		*t = TierHigh
	case "$$$$":
		*t = TierStar
	default:
		*t = TierUnset
	}
	return nil
}
