package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/diamond-gm/internal/engine/draft"
	"github.com/preston-bernstein/diamond-gm/internal/engine/salary"
	"github.com/preston-bernstein/diamond-gm/internal/engine/schedule"
)

// Rules are the league parameters that vary between rule sets.
type Rules struct {
	MinorLeagueSize   int               `yaml:"minor_league_size" json:"minorLeagueSize"`
	DraftOrder        draft.OrderPolicy `yaml:"draft_order" json:"draftOrder"`
	SalaryCap         int               `yaml:"salary_cap" json:"salaryCap"`
	SeasonGames       int               `yaml:"season_games" json:"seasonGames"`
	DraftRounds       int               `yaml:"draft_rounds" json:"draftRounds"`
	FreeAgentPoolSize int               `yaml:"free_agent_pool_size" json:"freeAgentPoolSize"`
	MedianSims        int               `yaml:"median_sims" json:"medianSims"`
}

// DefaultRules is the standard rule set.
func DefaultRules() Rules {
	return Rules{
		MinorLeagueSize:   draft.DefaultRetention,
		DraftOrder:        draft.OrderReverseStandings,
		SalaryCap:         salary.DefaultCap,
		SeasonGames:       schedule.DefaultRounds,
		DraftRounds:       draft.DefaultRounds,
		FreeAgentPoolSize: salary.DefaultPoolSize,
		MedianSims:        3,
	}
}

var ErrInvalidRules = errors.New("invalid league rules")

// LoadRules reads a YAML rules file over the defaults. An empty path yields
// the defaults; keys missing from the file keep their default value.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules: %w", err)
	}
	if err := yaml.Unmarshal(b, &rules); err != nil {
		return Rules{}, fmt.Errorf("parse rules %s: %w", path, err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// Validate rejects rule sets the engine cannot run.
func (r Rules) Validate() error {
	switch {
	case r.MinorLeagueSize < 1:
		return fmt.Errorf("%w: minor_league_size must be positive", ErrInvalidRules)
	case !r.DraftOrder.Valid():
		return fmt.Errorf("%w: draft_order %q", ErrInvalidRules, r.DraftOrder)
	case r.SalaryCap < 1:
		return fmt.Errorf("%w: salary_cap must be positive", ErrInvalidRules)
	case r.SeasonGames < 1:
		return fmt.Errorf("%w: season_games must be positive", ErrInvalidRules)
	case r.DraftRounds < 1:
		return fmt.Errorf("%w: draft_rounds must be positive", ErrInvalidRules)
	case r.FreeAgentPoolSize < 0:
		return fmt.Errorf("%w: free_agent_pool_size must not be negative", ErrInvalidRules)
	case r.MedianSims < 1 || r.MedianSims%2 == 0:
		return fmt.Errorf("%w: median_sims must be a positive odd number", ErrInvalidRules)
	}
	return nil
}
