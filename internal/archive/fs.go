package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// FSArchive writes one JSON file per season plus a manifest.
type FSArchive struct {
	mu       sync.Mutex
	basePath string
}

// NewFSArchive constructs an archive rooted at basePath.
func NewFSArchive(basePath string) *FSArchive {
	return &FSArchive{basePath: basePath}
}

// BasePath exposes the archive root (primarily for testing).
func (a *FSArchive) BasePath() string {
	if a == nil {
		return ""
	}
	return a.basePath
}

func (a *FSArchive) Save(ctx context.Context, season Season) error {
	if a == nil {
		return errors.New("archive not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if season.Year <= 0 {
		return fmt.Errorf("season year required")
	}
	if season.ArchivedAt.IsZero() {
		season.ArchivedAt = time.Now().UTC()
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	target := SeasonPath(a.basePath, season.Year)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	if err := writeJSONAtomic(target, season); err != nil {
		return err
	}
	return a.updateManifest(season.Summary())
}

func (a *FSArchive) updateManifest(s Summary) error {
	m, _ := readManifest(manifestPath(a.basePath))
	replaced := false
	for i := range m.Seasons {
		if m.Seasons[i].Year == s.Year {
			m.Seasons[i] = s
			replaced = true
		}
	}
	if !replaced {
		m.Seasons = append(m.Seasons, s)
	}
	sort.Slice(m.Seasons, func(i, j int) bool {
		return m.Seasons[i].Year < m.Seasons[j].Year
	})
	return writeManifest(a.basePath, m)
}

func (a *FSArchive) List(ctx context.Context) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	m, err := readManifest(manifestPath(a.basePath))
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return m.Seasons, nil
}

func (a *FSArchive) Get(ctx context.Context, year int) (Season, error) {
	if err := ctx.Err(); err != nil {
		return Season{}, err
	}
	f, err := os.Open(SeasonPath(a.basePath, year))
	if err != nil {
		if os.IsNotExist(err) {
			return Season{}, fmt.Errorf("%w: %d", ErrNotFound, year)
		}
		return Season{}, err
	}
	defer f.Close()

	var s Season
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return Season{}, err
	}
	return s, nil
}

func (a *FSArchive) Close() error { return nil }
