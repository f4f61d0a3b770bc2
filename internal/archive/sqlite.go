package archive

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// SQLiteArchive keeps seasons in a single SQLite table. The full season is
// stored as JSON; year, franchise and champion are columns for listing.
type SQLiteArchive struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and applies the schema.
func OpenSQLite(path string) (*SQLiteArchive, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("archive path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create archive dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", cleanPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteArchive{db: db}, nil
}

func (a *SQLiteArchive) Save(ctx context.Context, season Season) error {
	if a == nil || a.db == nil {
		return errors.New("archive not configured")
	}
	if season.Year <= 0 {
		return fmt.Errorf("season year required")
	}
	if season.ArchivedAt.IsZero() {
		season.ArchivedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(season)
	if err != nil {
		return err
	}
	_, err = a.db.ExecContext(ctx,
		`INSERT INTO seasons (year, franchise, champion, archived_at, payload)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(year) DO UPDATE SET
		   franchise = excluded.franchise,
		   champion = excluded.champion,
		   archived_at = excluded.archived_at,
		   payload = excluded.payload`,
		season.Year,
		season.Franchise,
		season.Champion,
		season.ArchivedAt.UTC().UnixMilli(),
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("save season %d: %w", season.Year, err)
	}
	return nil
}

func (a *SQLiteArchive) List(ctx context.Context) ([]Summary, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT year, franchise, champion, archived_at FROM seasons ORDER BY year`)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		var (
			s  Summary
			at int64
		)
		if err := rows.Scan(&s.Year, &s.Franchise, &s.Champion, &at); err != nil {
			return nil, err
		}
		s.ArchivedAt = time.UnixMilli(at).UTC()
		out = append(out, s)
	}
	return out, rows.Err()
}

func (a *SQLiteArchive) Get(ctx context.Context, year int) (Season, error) {
	var payload string
	err := a.db.QueryRowContext(ctx, `SELECT payload FROM seasons WHERE year = ?`, year).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Season{}, fmt.Errorf("%w: %d", ErrNotFound, year)
	}
	if err != nil {
		return Season{}, fmt.Errorf("get season %d: %w", year, err)
	}
	var s Season
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return Season{}, err
	}
	return s, nil
}

func (a *SQLiteArchive) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}
