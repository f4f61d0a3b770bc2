package players

import "testing"

func TestModifierBreakpoints(t *testing.T) {
	cases := []struct {
		rating int
		want   int
	}{
		{30, -1}, {49, -1}, {50, 1}, {59, 1}, {60, 2}, {69, 2},
		{70, 3}, {79, 3}, {80, 4}, {89, 4}, {90, 5}, {95, 5},
	}
	for _, tc := range cases {
		if got := Modifier(tc.rating); got != tc.want {
			t.Fatalf("Modifier(%d) = %d, want %d", tc.rating, got, tc.want)
		}
	}
}

func TestModifierNonDecreasing(t *testing.T) {
	prev := Modifier(MinRating)
	for r := MinRating + 1; r <= MaxRating; r++ {
		cur := Modifier(r)
		if cur < prev {
			t.Fatalf("modifier decreased at %d: %d < %d", r, cur, prev)
		}
		prev = cur
	}
}

func TestClamp(t *testing.T) {
	if Clamp(10) != MinRating || Clamp(100) != MaxRating || Clamp(64) != 64 {
		t.Fatalf("unexpected clamp results")
	}
}

func TestSalaryTierString(t *testing.T) {
	if TierHigh.String() != "$$$" || TierUnset.String() != "" {
		t.Fatalf("unexpected tier strings")
	}
	if TierUnset.Value() != 1 || TierStar.Value() != 4 {
		t.Fatalf("unexpected tier values")
	}
}
