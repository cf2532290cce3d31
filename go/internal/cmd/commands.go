package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/leaguekeeper/go/internal/league"
	"github.com/mcdev12/leaguekeeper/go/internal/store"
	"github.com/rs/zerolog"
)

const startLayout = "01/02/2006 15:04"

// runCommand dispatches one subcommand against the store. It reports
// whether the store was mutated, so main knows to write the snapshot back.
// Every command is a thin call into the model; no rule is enforced here.
func runCommand(st *store.Store, mail league.Mailer, clock clockwork.Clock, logger zerolog.Logger, name string, args []string) (bool, error) {
	switch name {
	case "leagues":
		for _, l := range st.Leagues() {
			fmt.Println(l)
		}
		return false, nil

	case "league-add":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: league-add <name>")
		}
		st.AddLeague(league.NewLeague(st.NextOID(), args[0]))
		return true, nil

	case "league-remove":
		l, err := leagueNamed(st, args, 1)
		if err != nil {
			return false, err
		}
		st.RemoveLeague(l)
		return true, nil

	case "teams":
		l, err := leagueNamed(st, args, 1)
		if err != nil {
			return false, err
		}
		for _, t := range l.Teams() {
			fmt.Println(t)
			for _, m := range t.Members() {
				fmt.Printf("  %s\n", m)
			}
		}
		for _, c := range l.Competitions() {
			fmt.Println(c)
		}
		return false, nil

	case "team-add":
		l, err := leagueNamed(st, args, 2)
		if err != nil {
			return false, err
		}
		return true, l.AddTeam(league.NewTeam(st.NextOID(), args[1]))

	case "team-remove":
		l, t, err := teamNamed(st, args, 2)
		if err != nil {
			return false, err
		}
		return true, l.RemoveTeam(t)

	case "member-add":
		_, t, err := teamNamed(st, args, 4)
		if err != nil {
			return false, err
		}
		return true, t.AddMember(league.NewTeamMember(st.NextOID(), args[2], args[3]))

	case "member-remove":
		_, t, err := teamNamed(st, args, 3)
		if err != nil {
			return false, err
		}
		t.RemoveMember(t.MemberNamed(args[2]))
		return true, nil

	case "competition-add":
		// competition-add <league> <location> <start|-> <team>...
		if len(args) < 4 {
			return false, fmt.Errorf("usage: competition-add <league> <location> <start|-> <team>...")
		}
		l, err := leagueNamed(st, args, len(args))
		if err != nil {
			return false, err
		}
		var teams []*league.Team
		for _, teamName := range args[3:] {
			t := l.TeamNamed(teamName)
			if t == nil {
				return false, fmt.Errorf("no team named %q in league %q", teamName, l.Name)
			}
			teams = append(teams, t)
		}
		// An unparseable start value rides through as the raw string and
		// the competition comes out unscheduled.
		var start any
		if args[2] != "-" {
			if at, err := time.Parse(startLayout, args[2]); err == nil {
				start = at
			} else {
				start = args[2]
			}
		}
		c := league.NewCompetition(st.NextOID(), teams, args[1], start)
		if err := l.AddCompetition(c); err != nil {
			return false, err
		}
		fmt.Println(c)
		return true, nil

	case "import":
		l, err := leagueNamed(st, args, 2)
		if err != nil {
			return false, err
		}
		return true, st.ImportLeagueTeams(l, args[1])

	case "export":
		l, err := leagueNamed(st, args, 2)
		if err != nil {
			return false, err
		}
		return false, st.ExportLeagueTeams(l, args[1])

	case "email-team":
		_, t, err := teamNamed(st, args, 4)
		if err != nil {
			return false, err
		}
		return false, t.SendEmail(mail, args[2], args[3])

	case "email-competition":
		// email-competition <league> <location> <subject> <body>
		l, err := leagueNamed(st, args, 4)
		if err != nil {
			return false, err
		}
		for _, c := range l.Competitions() {
			if c.Location == args[1] {
				return false, c.SendEmail(mail, args[2], args[3])
			}
		}
		return false, fmt.Errorf("no competition at %q in league %q", args[1], l.Name)

	case "save":
		return true, nil

	case "load":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: load <file>")
		}
		loaded, err := store.Load(args[0], clock, logger)
		if err != nil {
			return false, err
		}
		store.SetDefault(loaded)
		for _, l := range loaded.Leagues() {
			fmt.Println(l)
		}
		return false, nil

	case "demo":
		return false, runDemo(mail, clock, logger)

	default:
		usage()
		return false, fmt.Errorf("unknown command %q", name)
	}
}

// runDemo walks a scripted season on a scratch store: build a league,
// roster a member, schedule a competition, show that a competing team
// cannot be removed, then mail the participants. Nothing is persisted.
func runDemo(mail league.Mailer, clock clockwork.Clock, logger zerolog.Logger) error {
	scratch := store.New(clock, logger)
	l := league.NewLeague(scratch.NextOID(), "X")
	scratch.AddLeague(l)

	t1 := league.NewTeam(scratch.NextOID(), "A")
	t2 := league.NewTeam(scratch.NextOID(), "B")
	if err := t1.AddMember(league.NewTeamMember(scratch.NextOID(), "Fred", "fred@x.com")); err != nil {
		return err
	}
	if err := l.AddTeam(t1); err != nil {
		return err
	}
	if err := l.AddTeam(t2); err != nil {
		return err
	}

	comp := league.NewCompetition(scratch.NextOID(), []*league.Team{t1}, "Park", nil)
	if err := l.AddCompetition(comp); err != nil {
		return err
	}
	fmt.Println(l)
	fmt.Println(comp)

	err := l.RemoveTeam(t1)
	if err == nil {
		return fmt.Errorf("removing team %s should have been blocked", t1.Name)
	}
	fmt.Printf("removing team %s: %v\n", t1.Name, err)

	return comp.SendEmail(mail, "Game day", "See you at Park")
}

func leagueNamed(st *store.Store, args []string, want int) (*league.League, error) {
	if len(args) < want {
		return nil, fmt.Errorf("missing arguments")
	}
	l := st.LeagueNamed(args[0])
	if l == nil {
		return nil, fmt.Errorf("no league named %q", args[0])
	}
	return l, nil
}

func teamNamed(st *store.Store, args []string, want int) (*league.League, *league.Team, error) {
	l, err := leagueNamed(st, args, want)
	if err != nil {
		return nil, nil, err
	}
	t := l.TeamNamed(args[1])
	if t == nil {
		return nil, nil, fmt.Errorf("no team named %q in league %q", args[1], l.Name)
	}
	return l, t, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: leaguekeeper <command> [args]

commands:
  leagues
  league-add <name>
  league-remove <name>
  teams <league>
  team-add <league> <team>
  team-remove <league> <team>
  member-add <league> <team> <member> <email>
  member-remove <league> <team> <member>
  competition-add <league> <location> <start|-> <team>...
  import <league> <file.csv>
  export <league> <file.csv>
  email-team <league> <team> <subject> <body>
  email-competition <league> <location> <subject> <body>
  save
  load <file>
  demo`)
}
