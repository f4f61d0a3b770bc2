package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/diamond-gm/internal/archive"
	"github.com/preston-bernstein/diamond-gm/internal/testutil"
)

func TestHealth(t *testing.T) {
	h := NewHandler(Services{}, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := NewHandler(Services{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req.WithContext(ctx))

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestReadyRequiresServices(t *testing.T) {
	h := NewHandler(Services{}, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func archiveRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/archive/seasons", h.ArchivedSeasons)
	r.Get("/archive/seasons/{year}", h.ArchivedSeason)
	return r
}

func TestArchiveHandlersWithoutArchive(t *testing.T) {
	r := archiveRouter(NewHandler(Services{}, nil))

	rr := testutil.Serve(r, http.MethodGet, "/archive/seasons", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if body := rr.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty list, got %q", body)
	}
	testutil.AssertStatus(t, testutil.Serve(r, http.MethodGet, "/archive/seasons/2025", nil), http.StatusNotFound)
}

func TestArchiveHandlersServeSeasons(t *testing.T) {
	arc := archive.NewFSArchive(t.TempDir())
	season := archive.Season{
		Year:       2025,
		Franchise:  "Aces",
		Champion:   "Grays",
		Standings:  []archive.Standing{{Team: "Grays", Wins: 14, Losses: 6}},
		ArchivedAt: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := arc.Save(context.Background(), season); err != nil {
		t.Fatalf("save: %v", err)
	}
	r := archiveRouter(NewHandler(Services{Archive: arc}, nil))

	rr := testutil.Serve(r, http.MethodGet, "/archive/seasons/2025", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var got archive.Season
	testutil.DecodeJSON(t, rr, &got)
	if got.Champion != "Grays" || len(got.Standings) != 1 {
		t.Fatalf("unexpected season %+v", got)
	}

	testutil.AssertStatus(t, testutil.Serve(r, http.MethodGet, "/archive/seasons/0", nil), http.StatusBadRequest)
	testutil.AssertStatus(t, testutil.Serve(r, http.MethodGet, "/archive/seasons/2024", nil), http.StatusNotFound)
}
