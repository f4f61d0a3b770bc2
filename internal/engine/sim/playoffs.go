package sim

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/diamond-gm/internal/domain/games"
	"github.com/preston-bernstein/diamond-gm/internal/domain/league"
	"github.com/preston-bernstein/diamond-gm/internal/rng"
)

// PlayoffTeams is the number of seeds in the bracket.
const PlayoffTeams = 4

var (
	ErrNotEnoughTeams = errors.New("not enough teams for playoffs")
	ErrBracketDone    = errors.New("playoffs already finished")
	ErrUnknownTeam    = errors.New("unknown team")
)

// Seed builds a bracket from the top of the standings.
func Seed(l *league.League) (*games.Bracket, error) {
	standings := l.Standings()
	if len(standings) < PlayoffTeams {
		return nil, ErrNotEnoughTeams
	}
	b := &games.Bracket{Seeds: make([]string, PlayoffTeams)}
	for i := 0; i < PlayoffTeams; i++ {
		b.Seeds[i] = standings[i].Name
	}
	return b, nil
}

// PlayoffGame simulates a single playoff game with random starters and no lineups.
func PlayoffGame(src rng.Source, l *league.League, home, away string) (games.Result, error) {
	h, ok := l.Team(home)
	if !ok {
		return games.Result{}, fmt.Errorf("%w: %s", ErrUnknownTeam, home)
	}
	a, ok := l.Team(away)
	if !ok {
		return games.Result{}, fmt.Errorf("%w: %s", ErrUnknownTeam, away)
	}
	hs := rng.Int(src, 0, RotationSize-1)
	as := rng.Int(src, 0, RotationSize-1)
	return Game(src, Side{Team: h, Starter: hs}, Side{Team: a, Starter: as}, games.KindPlayoff), nil
}

// Advance plays the next stage of the bracket: both semifinals (1 v 4 and
// 2 v 3), then the championship. Records are not touched.
func Advance(src rng.Source, l *league.League, b *games.Bracket) ([]games.PlayoffGame, error) {
	if b.Done() {
		return nil, ErrBracketDone
	}
	if len(b.Seeds) != PlayoffTeams {
		return nil, ErrNotEnoughTeams
	}
	var played []games.PlayoffGame
	if len(b.Games) == 0 {
		for _, pair := range [][2]int{{0, 3}, {1, 2}} {
			res, err := PlayoffGame(src, l, b.Seeds[pair[0]], b.Seeds[pair[1]])
			if err != nil {
				return nil, err
			}
			played = append(played, games.PlayoffGame{Stage: games.StageSemifinal, Result: res})
		}
	} else {
		res, err := PlayoffGame(src, l, b.Games[0].Result.Winner, b.Games[1].Result.Winner)
		if err != nil {
			return nil, err
		}
		played = append(played, games.PlayoffGame{Stage: games.StageChampionship, Result: res})
		b.Champion = res.Winner
	}
	b.Games = append(b.Games, played...)
	return played, nil
}

// Run plays the whole bracket through to a champion.
func Run(src rng.Source, l *league.League, b *games.Bracket) error {
	for !b.Done() {
		if _, err := Advance(src, l, b); err != nil {
			return err
		}
	}
	return nil
}
