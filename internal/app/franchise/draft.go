package franchise

import (
	"context"

	"github.com/preston-bernstein/diamond-gm/internal/archive"
	"github.com/preston-bernstein/diamond-gm/internal/domain/games"
	"github.com/preston-bernstein/diamond-gm/internal/domain/league"
	"github.com/preston-bernstein/diamond-gm/internal/domain/players"
	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
	"github.com/preston-bernstein/diamond-gm/internal/engine/aging"
	"github.com/preston-bernstein/diamond-gm/internal/engine/draft"
	"github.com/preston-bernstein/diamond-gm/internal/engine/salary"
	"github.com/preston-bernstein/diamond-gm/internal/engine/schedule"
	"github.com/preston-bernstein/diamond-gm/internal/logging"
)

// StartDraft opens the draft once the season (and any playoffs) is over.
func (s *Service) StartDraft(ctx context.Context) (*draft.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.active()
	if err != nil {
		return nil, err
	}
	switch {
	case !f.Ended:
		return nil, ErrSeasonInProgress
	case f.PlayoffsInProgress():
		return nil, ErrPlayoffsInProgress
	case f.Draft != nil:
		return nil, ErrDraftStarted
	}

	order := draft.Order(s.store.Snapshot(), s.rules.DraftOrder, s.gen.Source())
	f.Draft = draft.NewState(draft.Prospects(s.gen), order, s.rules.DraftRounds)
	logging.Info(s.log(ctx), "draft opened",
		logging.FieldYear, f.Year,
		logging.FieldCount, len(f.Draft.Prospects),
		"order", order,
	)
	return f.Draft.Clone(), nil
}

// Pick drafts prospectID for the team on the clock.
func (s *Service) Pick(ctx context.Context, prospectID string) (DraftReport, error) {
	return s.pick(ctx, func(st *draft.State) (draft.Pick, error) {
		return st.Select(prospectID)
	})
}

// AutoPick drafts the best available prospect for the team on the clock.
func (s *Service) AutoPick(ctx context.Context) (DraftReport, error) {
	return s.pick(ctx, (*draft.State).AutoSelect)
}

func (s *Service) pick(ctx context.Context, choose func(*draft.State) (draft.Pick, error)) (DraftReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.active()
	if err != nil {
		return DraftReport{}, err
	}
	if f.Draft == nil {
		return DraftReport{}, ErrDraftNotStarted
	}

	st := f.Draft.Clone()
	pick, err := choose(st)
	if err != nil {
		s.reject(ctx, "draft pick", err, logging.FieldYear, f.Year)
		return DraftReport{}, err
	}
	s.metrics.RecordDraftPick()
	logging.Info(s.log(ctx), "draft pick",
		logging.FieldTeam, pick.Team,
		logging.FieldPlayer, pick.Player.ID,
		"number", pick.Number,
	)

	report := DraftReport{Pick: pick, Draft: st.Clone()}
	if !st.Done() {
		f.Draft = st
		return report, nil
	}

	off, err := s.offseason(ctx, f, st)
	if err != nil {
		return DraftReport{}, err
	}
	report.Offseason = off
	return report, nil
}

// offseason runs the draft-completion pipeline and rolls the franchise into
// the next year. Nothing is committed if any step fails.
func (s *Service) offseason(ctx context.Context, f *Franchise, st *draft.State) (*Offseason, error) {
	final := s.store.Snapshot()
	src := s.gen.Source()
	off := &Offseason{
		CapCuts:   map[string]int{},
		Promoted:  map[string]int{},
		Generated: map[string]int{},
	}
	var sched games.Schedule
	var pool []string

	err := s.store.Mutate(func(l *league.League) error {
		off.Released = draft.ApplyRetention(l, st, s.rules.MinorLeagueSize)
		l.ResetRecords()

		var cut []*players.Player
		for _, t := range l.Teams {
			salary.Assign(t)
			c := salary.EnforceCap(t)
			off.CapCuts[t.Name] = len(c)
			cut = append(cut, c...)
		}
		l.FreeAgents = salary.FreeAgentPool(cut, s.rules.FreeAgentPoolSize)
		off.FreeAgents = len(l.FreeAgents)

		for _, t := range l.Teams {
			off.Promoted[t.Name], off.Generated[t.Name] = s.backfill(t)
		}

		off.Aged = aging.League(src, l)
		l.Year++
		off.Year = l.Year

		var err error
		sched, err = schedule.RoundRobin(len(l.Teams), s.rules.SeasonGames)
		if err != nil {
			return err
		}
		for _, p := range l.FreeAgents {
			pool = append(pool, p.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cuts := 0
	for _, n := range off.CapCuts {
		cuts += n
	}
	s.metrics.RecordCapCuts(cuts)
	s.archiveSeason(ctx, f, final, st, pool)

	f.Year = off.Year
	f.Schedule = sched
	f.TotalGames = len(sched)
	f.GamesPlayed = 0
	f.Rotation = 0
	f.Ended = false
	f.Results = nil
	f.Bracket = nil
	f.Draft = nil
	s.pruneLineup(f)

	logging.Info(s.log(ctx), "offseason complete",
		logging.FieldYear, off.Year,
		logging.FieldCount, off.Aged,
		"cap_cuts", cuts,
		"free_agents", off.FreeAgents,
	)
	return off, nil
}

// backfill refills vacated roster slots to 9/5, best minor leaguer of the
// needed type first, then generated replacement-level players.
func (s *Service) backfill(t *teams.Team) (promoted, generated int) {
	fill := func(kind players.Kind, want int) {
		for count(t.Roster, kind) < want {
			if p := takeBestProspect(t, kind); p != nil {
				p.Potential = 0
				p.Salary = salary.Tier(p)
				t.Roster = append(t.Roster, p)
				promoted++
				continue
			}
			t.Roster = append(t.Roster, s.gen.Replacement(kind))
			generated++
		}
	}
	fill(players.KindPosition, teams.RosterPositionPlayers)
	fill(players.KindPitcher, teams.RosterPitchers)
	return promoted, generated
}

func count(roster []*players.Player, kind players.Kind) int {
	n := 0
	for _, p := range roster {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

func takeBestProspect(t *teams.Team, kind players.Kind) *players.Player {
	best := -1
	for i, p := range t.Minors {
		if p.Kind != kind {
			continue
		}
		if best < 0 || draft.Evaluate(p) > draft.Evaluate(t.Minors[best]) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	p := t.Minors[best]
	t.Minors = append(t.Minors[:best:best], t.Minors[best+1:]...)
	return p
}

// archiveSeason writes the finished season. Failures are logged, not returned:
// the league has already moved on.
func (s *Service) archiveSeason(ctx context.Context, f *Franchise, final *league.League, st *draft.State, pool []string) {
	season := archive.Season{
		Year:       f.Year,
		Franchise:  f.Team,
		Picks:      make([]archive.Pick, 0, len(st.Picks)),
		FreeAgents: pool,
	}
	if season.FreeAgents == nil {
		season.FreeAgents = []string{}
	}
	for _, t := range final.Standings() {
		season.Standings = append(season.Standings, archive.Standing{
			Team: t.Name, Wins: t.Record.Wins, Losses: t.Record.Losses,
		})
	}
	if f.Bracket != nil && f.Bracket.Done() {
		season.Champion = f.Bracket.Champion
	}
	for _, p := range st.Picks {
		season.Picks = append(season.Picks, archive.Pick{
			Number: p.Number, Round: p.Round, Team: p.Team, Player: p.Player.Name,
		})
	}
	if err := s.archive.Save(ctx, season); err != nil {
		logging.Error(s.log(ctx), "archive season failed", err, logging.FieldYear, f.Year)
	}
}
