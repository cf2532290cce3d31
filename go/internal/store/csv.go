package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mcdev12/leaguekeeper/go/internal/league"
)

var csvHeader = []string{"Team name", "Member name", "Member email"}

// ImportLeagueTeams loads teams and members into l from the CSV file at
// path. The first row is a header and is skipped; each remaining row is
// (team name, member name, member email). Rows sharing a team name land on
// the same team, created on first sight with a fresh OID; every member
// gets a fresh OID too. A row that violates a roster invariant (a
// duplicate email, say) aborts the import with that domain error; file
// errors are logged and returned without finishing the file.
func (s *Store) ImportLeagueTeams(l *league.League, path string) error {
	f, err := os.Open(path)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("import failed")
		return fmt.Errorf("import %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		s.log.Error().Err(err).Str("path", path).Msg("import failed")
		return fmt.Errorf("import %s: %w", path, err)
	}

	rows := 0
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.log.Error().Err(err).Str("path", path).Msg("import failed")
			return fmt.Errorf("import %s: %w", path, err)
		}

		team := l.TeamNamed(row[0])
		if team == nil {
			team = league.NewTeam(s.NextOID(), row[0])
			if err := l.AddTeam(team); err != nil {
				return err
			}
		}
		if err := team.AddMember(league.NewTeamMember(s.NextOID(), row[1], row[2])); err != nil {
			return err
		}
		rows++
	}

	s.log.Info().Str("path", path).Str("league", l.Name).Int("rows", rows).Msg("league imported")
	return nil
}

// ExportLeagueTeams writes l's teams and members to a CSV file at path:
// a header row, then one row per (team, member) pair in league, team,
// roster order. File errors are logged and returned; a partial file is
// left as-is.
func (s *Store) ExportLeagueTeams(l *league.League, path string) error {
	f, err := os.Create(path)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("export failed")
		return fmt.Errorf("export %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("export failed")
		return fmt.Errorf("export %s: %w", path, err)
	}
	rows := 0
	for _, team := range l.Teams() {
		for _, member := range team.Members() {
			if err := w.Write([]string{team.Name, member.Name, member.Email}); err != nil {
				s.log.Error().Err(err).Str("path", path).Msg("export failed")
				return fmt.Errorf("export %s: %w", path, err)
			}
			rows++
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("export failed")
		return fmt.Errorf("export %s: %w", path, err)
	}

	s.log.Info().Str("path", path).Str("league", l.Name).Int("rows", rows).Msg("league exported")
	return nil
}
