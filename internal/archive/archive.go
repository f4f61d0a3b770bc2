// Package archive persists finished-season summaries.
package archive

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Drivers accepted by Open.
const (
	DriverNone   = "none"
	DriverFS     = "fs"
	DriverSQLite = "sqlite"
)

var (
	ErrNotFound      = errors.New("season not archived")
	ErrUnknownDriver = errors.New("unknown archive driver")
)

// Standing is one team's final regular-season line.
type Standing struct {
	Team   string `json:"team"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// Pick is a draft selection, flattened for storage.
type Pick struct {
	Number int    `json:"number"`
	Round  int    `json:"round"`
	Team   string `json:"team"`
	Player string `json:"player"`
}

// Season is everything worth remembering about a finished season.
type Season struct {
	Year       int        `json:"year"`
	Franchise  string     `json:"franchise"`
	Standings  []Standing `json:"standings"`
	Champion   string     `json:"champion,omitempty"`
	Picks      []Pick     `json:"picks"`
	FreeAgents []string   `json:"freeAgents"`
	ArchivedAt time.Time  `json:"archivedAt"`
}

// Summary is the listing view of an archived season.
type Summary struct {
	Year       int       `json:"year"`
	Franchise  string    `json:"franchise"`
	Champion   string    `json:"champion,omitempty"`
	ArchivedAt time.Time `json:"archivedAt"`
}

func (s Season) Summary() Summary {
	return Summary{Year: s.Year, Franchise: s.Franchise, Champion: s.Champion, ArchivedAt: s.ArchivedAt}
}

// Archive stores seasons keyed by year. Saving a year twice replaces it.
type Archive interface {
	Save(ctx context.Context, season Season) error
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, year int) (Season, error)
	Close() error
}

// Open builds the archive for driver rooted at path.
func Open(driver, path string) (Archive, error) {
	switch driver {
	case "", DriverNone:
		return Nop{}, nil
	case DriverFS:
		return NewFSArchive(path), nil
	case DriverSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

// Nop discards saves and reports an empty history.
type Nop struct{}

func (Nop) Save(context.Context, Season) error       { return nil }
func (Nop) List(context.Context) ([]Summary, error)  { return []Summary{}, nil }
func (Nop) Get(context.Context, int) (Season, error) { return Season{}, ErrNotFound }
func (Nop) Close() error                             { return nil }
