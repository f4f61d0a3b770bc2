// Command leaguegen generates a league from a seed and prints its rosters.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/preston-bernstein/diamond-gm/internal/config"
	"github.com/preston-bernstein/diamond-gm/internal/domain/league"
	"github.com/preston-bernstein/diamond-gm/internal/domain/players"
	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
	"github.com/preston-bernstein/diamond-gm/internal/engine/roster"
	"github.com/preston-bernstein/diamond-gm/internal/engine/salary"
	"github.com/preston-bernstein/diamond-gm/internal/engine/strength"
	"github.com/preston-bernstein/diamond-gm/internal/rng"
)

var errUnknownTeam = errors.New("unknown team")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("leaguegen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		seed      uint64
		rulesFile string
		team      string
		asJSON    bool
	)
	fs.Uint64Var(&seed, "seed", 0, "random seed (0 = random)")
	fs.StringVar(&rulesFile, "rules", "", "YAML rules file")
	fs.StringVar(&team, "team", "", "print only this team")
	fs.BoolVar(&asJSON, "json", false, "print the league as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rules, err := config.LoadRules(rulesFile)
	if err != nil {
		return err
	}
	if seed == 0 {
		if seed, err = rng.NewSeed(); err != nil {
			return err
		}
	}

	l := roster.NewGenerator(rng.New(seed)).League(teams.DefaultConfigs, rules.SalaryCap)
	for _, t := range l.Teams {
		salary.Assign(t)
	}
	if team != "" {
		t, ok := l.Team(team)
		if !ok {
			return fmt.Errorf("%w: %s", errUnknownTeam, team)
		}
		l = &league.League{Year: l.Year, Teams: []*teams.Team{t}}
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(l)
	}
	return printLeague(out, l, seed)
}

func printLeague(out io.Writer, l *league.League, seed uint64) error {
	fmt.Fprintf(out, "Season %d (seed %d)\n", l.Year, seed)
	for _, t := range l.Teams {
		fmt.Fprintf(out, "\n%s %s  payroll %d/%d  offense %.1f  staff %d\n",
			t.City, t.Name, salary.Payroll(t), t.SalaryCap, strength.Offense(t), strength.StaffPitching(t))

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTYPE\tAGE\tRATINGS\tTRAIT\tSALARY")
		for _, p := range t.Roster {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n", p.Name, p.Kind, p.Age, ratings(p), traitName(p), p.Salary)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func ratings(p *players.Player) string {
	if p.IsPitcher() {
		return fmt.Sprintf("PIT %d DEF %d", p.Pitcher.Pitching, p.Pitcher.Defense)
	}
	b := p.Batter
	return strings.Join([]string{
		fmt.Sprintf("HIT %d", b.Hitting),
		fmt.Sprintf("POW %d", b.Power),
		fmt.Sprintf("SPD %d", b.Speed),
		fmt.Sprintf("DEF %d", b.Defense),
	}, " ")
}

func traitName(p *players.Player) string {
	if p.Trait == nil {
		return "-"
	}
	return p.Trait.Name
}
