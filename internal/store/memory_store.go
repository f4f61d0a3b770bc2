package store

import (
	"sync"

	"github.com/preston-bernstein/diamond-gm/internal/domain/league"
	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
)

// Generator builds a fresh league.
type Generator func() *league.League

// MemoryStore owns the shared league. Reads return deep copies; writes go
// through RecordGame, Regenerate or Mutate.
type MemoryStore struct {
	mu       sync.RWMutex
	league   *league.League
	generate Generator
}

// NewMemoryStore generates the initial league with gen.
func NewMemoryStore(gen Generator) *MemoryStore {
	return &MemoryStore{
		league:   gen(),
		generate: gen,
	}
}

// Snapshot returns a copy of the whole league.
func (s *MemoryStore) Snapshot() *league.League {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.league.Clone()
}

// Team returns a copy of the named team.
func (s *MemoryStore) Team(name string) (*teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.league.Team(name)
	if !ok {
		return nil, false
	}
	return t.Clone(), true
}

// Standings returns copies of every team, best record first.
func (s *MemoryStore) Standings() []*teams.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	standings := s.league.Standings()
	out := make([]*teams.Team, len(standings))
	for i, t := range standings {
		out[i] = t.Clone()
	}
	return out
}

// Year returns the current season year.
func (s *MemoryStore) Year() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.league.Year
}

// RecordGame credits winner and loser; unknown names are ignored.
func (s *MemoryStore) RecordGame(winner, loser string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.league.RecordGame(winner, loser)
}

// Regenerate discards the league and builds a new one.
func (s *MemoryStore) Regenerate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.league = s.generate()
}

// Mutate applies fn to a copy of the league and commits the copy only when
// fn succeeds, so a rejected operation leaves no trace.
func (s *MemoryStore) Mutate(fn func(*league.League) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.league.Clone()
	if err := fn(draft); err != nil {
		return err
	}
	s.league = draft
	return nil
}
