package players

// Rating bounds shared by every generated or adjusted stat.
const (
	MinRating = 30
	MaxRating = 95
)

// Clamp bounds a rating to [MinRating, MaxRating].
func Clamp(v int) int {
	if v < MinRating {
		return MinRating
	}
	if v > MaxRating {
		return MaxRating
	}
	return v
}

// Modifier maps a rating to the dice modifier used at the plate.
// It is a step function; the breakpoints are part of game balance.
func Modifier(rating int) int {
	switch {
	case rating >= 90:
		return 5
	case rating >= 80:
		return 4
	case rating >= 70:
		return 3
	case rating >= 60:
		return 2
	case rating >= 50:
		return 1
	default:
		return -1
	}
}
