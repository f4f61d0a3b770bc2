package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
)

func TestScriptedSourceReplaysQueue(t *testing.T) {
	src := NewScriptedSource(1)
	src.Rolls(20, 1)
	src.QueueFloats(0.25)

	if got := src.IntN(20); got != 19 {
		t.Fatalf("expected face 20 (19), got %d", got)
	}
	if got := src.IntN(20); got != 0 {
		t.Fatalf("expected face 1 (0), got %d", got)
	}
	if got := src.Float64(); got != 0.25 {
		t.Fatalf("expected queued float, got %v", got)
	}
	// Exhausted queues fall back to the seeded source.
	if got := src.IntN(5); got < 0 || got >= 5 {
		t.Fatalf("expected fallback in range, got %d", got)
	}
}

func TestScriptedSourceClampsOutOfRange(t *testing.T) {
	src := NewScriptedSource(1)
	src.QueueInts(99, -3)
	if got := src.IntN(10); got != 9 {
		t.Fatalf("expected clamp to 9, got %d", got)
	}
	if got := src.IntN(10); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
}

func TestFixtures(t *testing.T) {
	team := UniformTeam("Aces", 60, 70)
	if err := team.ValidateRoster(); err != nil {
		t.Fatalf("expected valid roster, got %v", err)
	}
	if p := team.Pitchers()[0]; p.Pitcher.Pitching != 70 || p.Pitcher.Defense != 60 {
		t.Fatalf("unexpected pitcher %+v", p.Pitcher)
	}

	l := UniformLeague(4, 50, 50)
	if len(l.Teams) != 4 || l.Teams[3].Name != "T3" {
		t.Fatalf("unexpected league %+v", l.Names())
	}
	pos, pitch := l.Teams[0].Counts()
	if pos != teams.RosterPositionPlayers || pitch != teams.RosterPitchers {
		t.Fatalf("unexpected counts %d/%d", pos, pitch)
	}

	next := SequentialIDs("x")
	if next() != "x-1" || next() != "x-2" {
		t.Fatalf("expected sequential ids")
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	AssertStatus(t, ServeRequest(handler, req), http.StatusCreated)
}

func TestServeJSONEncodesPayload(t *testing.T) {
	var got map[string]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	})

	rr := ServeJSON(t, handler, http.MethodPost, "/x", map[string]string{"team": "Aces"})
	AssertStatus(t, rr, http.StatusOK)
	if got["team"] != "Aces" {
		t.Fatalf("expected payload to reach handler, got %+v", got)
	}
}

func TestServerStubs(t *testing.T) {
	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	sh.HandlerVal = http.NewServeMux()
	_ = sh.ListenAndServe()
	_ = sh.Shutdown(context.Background())
	_ = sh.Handler()
	_ = sh.Addr()
	if sh.ListenCalls != 1 || sh.ShutdownCalls != 1 {
		t.Fatalf("expected listen/shutdown calls, got %+v", sh)
	}

	b := &BlockingHTTPServer{Unblock: make(chan struct{}), HandlerVal: http.NewServeMux()}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}

	e := &ErrHTTPServer{}
	if err := e.ListenAndServe(); err == nil {
		t.Fatalf("expected listen failure")
	}
	c := &CloseableHTTPServer{}
	if err := c.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed, got %v", err)
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}
