package testutil

import (
	"math/rand/v2"

	"github.com/preston-bernstein/diamond-gm/internal/rng"
)

// ScriptedSource replays queued values, then falls back to a seeded generator.
// Queued ints are returned from IntN as-is (clamped into [0,n)).
type ScriptedSource struct {
	Ints     []int
	Floats   []float64
	fallback *rand.Rand
}

// NewScriptedSource builds a source whose unscripted draws come from seed.
func NewScriptedSource(seed uint64) *ScriptedSource {
	return &ScriptedSource{fallback: rng.New(seed)}
}

// Rolls queues die faces for rng.Int(src, 1, n) style draws.
func (s *ScriptedSource) Rolls(faces ...int) *ScriptedSource {
	for _, f := range faces {
		s.Ints = append(s.Ints, f-1)
	}
	return s
}

// QueueInts queues raw IntN results.
func (s *ScriptedSource) QueueInts(v ...int) *ScriptedSource {
	s.Ints = append(s.Ints, v...)
	return s
}

// QueueFloats queues Float64 results.
func (s *ScriptedSource) QueueFloats(v ...float64) *ScriptedSource {
	s.Floats = append(s.Floats, v...)
	return s
}

func (s *ScriptedSource) IntN(n int) int {
	if len(s.Ints) == 0 {
		return s.fallbackRand().IntN(n)
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < 0 {
		v = 0
	}
	if v >= n {
		v = n - 1
	}
	return v
}

func (s *ScriptedSource) Float64() float64 {
	if len(s.Floats) == 0 {
		return s.fallbackRand().Float64()
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

func (s *ScriptedSource) fallbackRand() *rand.Rand {
	if s.fallback == nil {
		s.fallback = rng.New(1)
	}
	return s.fallback
}

// ConstSource always returns the same fraction of the range.
type ConstSource struct {
	Frac float64
}

func (c ConstSource) IntN(n int) int {
	v := int(c.Frac * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

func (c ConstSource) Float64() float64 {
	return c.Frac
}
