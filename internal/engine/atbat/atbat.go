// Package atbat resolves a single plate appearance from two d20 rolls.
package atbat

import (
	"github.com/preston-bernstein/diamond-gm/internal/domain/players"
	"github.com/preston-bernstein/diamond-gm/internal/rng"
)

// Outcome is the display label of an at-bat result.
type Outcome string

const (
	Strikeout Outcome = "STRIKEOUT!"
	Groundout Outcome = "Groundout"
	Flyout    Outcome = "Flyout"
	Lineout   Outcome = "Line drive - caught"
	Single    Outcome = "SINGLE!"
	Double    Outcome = "DOUBLE!"
	Triple    Outcome = "TRIPLE!"
	HomeRun   Outcome = "HOME RUN!"
)

// HitType is empty for outs.
type HitType string

const (
	HitNone    HitType = ""
	HitSingle  HitType = "single"
	HitDouble  HitType = "double"
	HitTriple  HitType = "triple"
	HitHomeRun HitType = "homerun"
)

// DefaultRating stands in for a missing rating.
const DefaultRating = 50

// Result carries everything the resolver computed.
type Result struct {
	Outcome     Outcome `json:"outcome"`
	IsOut       bool    `json:"isOut"`
	HitType     HitType `json:"hitType,omitempty"`
	BatterRoll  int     `json:"batterRoll"`
	PitcherRoll int     `json:"pitcherRoll"`
	BatterMod   int     `json:"batterMod"`
	PitcherMod  int     `json:"pitcherMod"`
	Momentum    int     `json:"momentum"`
	Margin      int     `json:"margin"`
}

// Resolve rolls the batter's d20 then the pitcher's and classifies the margin.
// Ratings at or below zero are treated as DefaultRating.
func Resolve(src rng.Source, hitting, pitching, momentum int) Result {
	if hitting <= 0 {
		hitting = DefaultRating
	}
	if pitching <= 0 {
		pitching = DefaultRating
	}
	res := Result{
		BatterRoll:  rng.D20(src),
		PitcherRoll: rng.D20(src),
		BatterMod:   players.Modifier(hitting),
		PitcherMod:  players.Modifier(pitching),
		Momentum:    momentum,
	}
	res.Margin = (res.BatterRoll + res.BatterMod + momentum) - (res.PitcherRoll + res.PitcherMod)
	res.Outcome, res.HitType = Classify(res.Margin)
	res.IsOut = res.HitType == HitNone
	return res
}

// Classify maps a margin onto the outcome table. First match wins.
func Classify(margin int) (Outcome, HitType) {
	switch {
	case margin <= -8:
		return Strikeout, HitNone
	case margin <= -3:
		return Groundout, HitNone
	case margin <= 1:
		return Flyout, HitNone
	case margin <= 4:
		return Lineout, HitNone
	case margin <= 10:
		return Single, HitSingle
	case margin <= 14:
		return Double, HitDouble
	case margin == 15:
		return Triple, HitTriple
	default:
		return HomeRun, HitHomeRun
	}
}
