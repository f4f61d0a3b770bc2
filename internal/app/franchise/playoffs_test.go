package franchise

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/diamond-gm/internal/domain/games"
	"github.com/preston-bernstein/diamond-gm/internal/engine/sim"
	"github.com/preston-bernstein/diamond-gm/internal/metrics"
)

func TestPlayoffsFlow(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.start(t, "T0")

	if _, err := f.svc.StartPlayoffs(ctx); !errors.Is(err, ErrSeasonInProgress) {
		t.Fatalf("expected ErrSeasonInProgress, got %v", err)
	}
	if _, err := f.svc.AdvancePlayoffs(ctx); !errors.Is(err, ErrPlayoffsNotStarted) {
		t.Fatalf("expected ErrPlayoffsNotStarted, got %v", err)
	}

	f.playSeason(t)
	before := totalRecords(f)

	bracket, err := f.svc.StartPlayoffs(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	standings := f.store.Standings()
	for i, seed := range bracket.Seeds {
		if seed != standings[i].Name {
			t.Fatalf("seed %d: expected %s, got %s", i+1, standings[i].Name, seed)
		}
	}
	if _, err := f.svc.StartPlayoffs(ctx); !errors.Is(err, ErrPlayoffsStarted) {
		t.Fatalf("expected ErrPlayoffsStarted, got %v", err)
	}
	if _, err := f.svc.StartDraft(ctx); !errors.Is(err, ErrPlayoffsInProgress) {
		t.Fatalf("expected ErrPlayoffsInProgress, got %v", err)
	}

	semis, err := f.svc.AdvancePlayoffs(ctx)
	if err != nil {
		t.Fatalf("semis: %v", err)
	}
	if len(semis.Played) != 2 || semis.Played[0].Stage != games.StageSemifinal {
		t.Fatalf("unexpected semifinals %+v", semis.Played)
	}
	if !semis.Played[0].Result.Involves(bracket.Seeds[0]) || !semis.Played[0].Result.Involves(bracket.Seeds[3]) {
		t.Fatalf("expected 1 v 4 semifinal, got %+v", semis.Played[0].Result)
	}

	final, err := f.svc.AdvancePlayoffs(ctx)
	if err != nil {
		t.Fatalf("final: %v", err)
	}
	if len(final.Played) != 1 || final.Bracket.Champion == "" {
		t.Fatalf("expected a champion, got %+v", final.Bracket)
	}
	if final.Bracket.Champion != final.Played[0].Result.Winner {
		t.Fatalf("champion should be the final's winner")
	}
	if _, err := f.svc.AdvancePlayoffs(ctx); !errors.Is(err, sim.ErrBracketDone) {
		t.Fatalf("expected ErrBracketDone, got %v", err)
	}

	after := totalRecords(f)
	for team, rec := range before {
		if after[team] != rec {
			t.Fatalf("playoffs changed %s's record: %v -> %v", team, rec, after[team])
		}
	}
	if got := f.metrics.Snapshot().Games[metrics.GamePlayoff]; got != 3 {
		t.Fatalf("expected 3 playoff games recorded, got %d", got)
	}
}

func totalRecords(f fixture) map[string][2]int {
	out := map[string][2]int{}
	for _, t := range f.store.Snapshot().Teams {
		out[t.Name] = [2]int{t.Record.Wins, t.Record.Losses}
	}
	return out
}
