package archive

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFSArchiveWritesSeasonAndManifest(t *testing.T) {
	dir := t.TempDir()
	a := NewFSArchive(dir)

	if err := a.Save(context.Background(), sampleSeason(2025, "Monarchs")); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "seasons", "2025.json")); err != nil {
		t.Fatalf("expected season file, got err %v", err)
	}
	m, err := readManifest(filepath.Join(dir, "manifest.json"))
	if err != nil {
		t.Fatalf("expected manifest, got err %v", err)
	}
	if len(m.Seasons) != 1 || m.Seasons[0].Champion != "Monarchs" {
		t.Fatalf("unexpected manifest %+v", m)
	}
	if _, err := os.Stat(filepath.Join(dir, "manifest.json.tmp")); !os.IsNotExist(err) {
		t.Fatalf("expected temp manifest to be renamed away")
	}
}

func TestFSArchiveListWithoutManifest(t *testing.T) {
	a := NewFSArchive(t.TempDir())
	list, err := a.List(context.Background())
	if err != nil {
		t.Fatalf("expected missing manifest to read as empty, got %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no seasons, got %+v", list)
	}
}

func TestFSArchiveRespectsCanceledContext(t *testing.T) {
	a := NewFSArchive(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.Save(ctx, sampleSeason(2025, "")); err == nil {
		t.Fatalf("expected canceled context to abort save")
	}
}

func TestSeasonPath(t *testing.T) {
	if got := SeasonPath("/tmp/a", 2030); got != filepath.Join("/tmp/a", "seasons", "2030.json") {
		t.Fatalf("unexpected path %s", got)
	}
}
