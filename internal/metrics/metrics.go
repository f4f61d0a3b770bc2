package metrics

import (
	"sync"
	"time"
)

// Recorder captures in-memory counters for simulation activity and mirrors
// them to OpenTelemetry instruments when Setup enabled them.
type Recorder struct {
	mu       sync.Mutex
	games    map[string]int
	signings map[string]int
	rounds   int
	picks    int
	capCuts  int
	requests int
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		games:    make(map[string]int),
		signings: make(map[string]int),
		otel:     otel,
	}
}

// Snapshot is a point-in-time copy of the in-memory counters.
type Snapshot struct {
	Games    map[string]int
	Signings map[string]int
	Rounds   int
	Picks    int
	CapCuts  int
	Requests int
}

// RecordGames counts n simulated games of the given kind.
func (r *Recorder) RecordGames(kind string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.mu.Lock()
	r.games[kind] += n
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordGames(kind, n)
	}
}

// RecordRound counts a completed franchise round and how long it took.
func (r *Recorder) RecordRound(duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.rounds++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordRound(duration)
	}
}

// RecordDraftPick counts one draft selection.
func (r *Recorder) RecordDraftPick() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.picks++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCounter(r.otel.draftPicks, 1)
	}
}

// RecordCapCuts counts players released by salary-cap enforcement.
func (r *Recorder) RecordCapCuts(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.mu.Lock()
	r.capCuts += n
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCounter(r.otel.capCuts, int64(n))
	}
}

// RecordSigning counts a free-agent signing attempt by outcome.
func (r *Recorder) RecordSigning(outcome string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.signings[outcome]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordSigning(outcome)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.requests++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{Games: map[string]int{}, Signings: map[string]int{}}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	games := make(map[string]int, len(r.games))
	for k, v := range r.games {
		games[k] = v
	}
	signings := make(map[string]int, len(r.signings))
	for k, v := range r.signings {
		signings[k] = v
	}
	return Snapshot{
		Games:    games,
		Signings: signings,
		Rounds:   r.rounds,
		Picks:    r.picks,
		CapCuts:  r.capCuts,
		Requests: r.requests,
	}
}
