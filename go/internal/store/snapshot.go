package store

import (
	"encoding/gob"
	"fmt"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/leaguekeeper/go/internal/league"
	"github.com/rs/zerolog"
)

// BackupSuffix is appended to a snapshot path to name its backup.
const BackupSuffix = ".backup"

// The gob stream carries flat records keyed by OID rather than the live
// object graph. Members are listed once per league and teams reference
// them by OID, so a member shared across rosters decodes back to a single
// instance; competitions reference teams the same way.
type snapshot struct {
	SavedAt time.Time
	LastOID league.OID
	Leagues []leagueRecord
}

type leagueRecord struct {
	OID          league.OID
	Name         string
	Members      []memberRecord
	Teams        []teamRecord
	Competitions []competitionRecord
}

type memberRecord struct {
	OID   league.OID
	Name  string
	Email string
}

type teamRecord struct {
	OID     league.OID
	Name    string
	Members []league.OID
}

type competitionRecord struct {
	OID      league.OID
	Location string
	StartsAt *time.Time
	Teams    []league.OID
}

// Save writes the whole store to path. An existing file at path is first
// renamed to path+BackupSuffix, clobbering any prior backup. The rename
// happens before the write, so a crash in between leaves only the backup.
func (s *Store) Save(path string) error {
	if _, err := os.Stat(path); err == nil {
		if err := os.Rename(path, path+BackupSuffix); err != nil {
			return fmt.Errorf("rotate backup for %s: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(s.encode()); err != nil {
		return fmt.Errorf("encode snapshot %s: %w", path, err)
	}

	s.log.Info().
		Str("path", path).
		Int("leagues", len(s.leagues)).
		Int64("last_oid", int64(s.lastOID)).
		Msg("snapshot saved")
	return nil
}

// Load reads the snapshot at path into a new store. When path cannot be
// read or decoded it logs the failure and falls back to path+BackupSuffix;
// when the backup fails too it returns an error and the caller's current
// store stays as it was.
func Load(path string, clock clockwork.Clock, logger zerolog.Logger) (*Store, error) {
	s, err := readSnapshot(path, clock, logger)
	if err == nil {
		return s, nil
	}
	logger.Warn().Err(err).Str("path", path).Msg("snapshot unreadable, trying backup")

	s, backupErr := readSnapshot(path+BackupSuffix, clock, logger)
	if backupErr != nil {
		logger.Error().Err(backupErr).Str("path", path+BackupSuffix).Msg("backup unreadable")
		return nil, fmt.Errorf("load snapshot %s: %w", path, err)
	}
	return s, nil
}

func readSnapshot(path string, clock clockwork.Clock, logger zerolog.Logger) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot %s: %w", path, err)
	}
	defer f.Close()

	var snap snapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}

	s := New(clock, logger)
	if err := s.restore(snap); err != nil {
		return nil, fmt.Errorf("restore snapshot %s: %w", path, err)
	}
	logger.Info().
		Str("path", path).
		Int("leagues", len(s.leagues)).
		Time("saved_at", snap.SavedAt).
		Msg("snapshot loaded")
	return s, nil
}

func (s *Store) encode() snapshot {
	snap := snapshot{
		SavedAt: s.clock.Now(),
		LastOID: s.lastOID,
	}
	for _, l := range s.leagues {
		rec := leagueRecord{OID: l.OID(), Name: l.Name}
		listed := make(map[league.OID]bool)
		for _, t := range l.Teams() {
			teamRec := teamRecord{OID: t.OID(), Name: t.Name}
			for _, m := range t.Members() {
				teamRec.Members = append(teamRec.Members, m.OID())
				if !listed[m.OID()] {
					listed[m.OID()] = true
					rec.Members = append(rec.Members, memberRecord{
						OID:   m.OID(),
						Name:  m.Name,
						Email: m.Email,
					})
				}
			}
			rec.Teams = append(rec.Teams, teamRec)
		}
		for _, c := range l.Competitions() {
			compRec := competitionRecord{
				OID:      c.OID(),
				Location: c.Location,
				StartsAt: c.StartsAt(),
			}
			for _, t := range c.TeamsCompeting() {
				compRec.Teams = append(compRec.Teams, t.OID())
			}
			rec.Competitions = append(rec.Competitions, compRec)
		}
		snap.Leagues = append(snap.Leagues, rec)
	}
	return snap
}

// restore rebuilds the object graph through the domain constructors and
// mutators, so a snapshot that somehow violates an invariant is rejected
// rather than materialized.
func (s *Store) restore(snap snapshot) error {
	s.lastOID = snap.LastOID
	for _, rec := range snap.Leagues {
		l := league.NewLeague(rec.OID, rec.Name)

		members := make(map[league.OID]*league.TeamMember, len(rec.Members))
		for _, mr := range rec.Members {
			members[mr.OID] = league.NewTeamMember(mr.OID, mr.Name, mr.Email)
		}

		teams := make(map[league.OID]*league.Team, len(rec.Teams))
		for _, tr := range rec.Teams {
			t := league.NewTeam(tr.OID, tr.Name)
			for _, oid := range tr.Members {
				m, ok := members[oid]
				if !ok {
					return fmt.Errorf("league %s: team %s references unknown member %d", rec.Name, tr.Name, oid)
				}
				if err := t.AddMember(m); err != nil {
					return fmt.Errorf("league %s: %w", rec.Name, err)
				}
			}
			teams[tr.OID] = t
			if err := l.AddTeam(t); err != nil {
				return fmt.Errorf("league %s: %w", rec.Name, err)
			}
		}

		for _, cr := range rec.Competitions {
			var competing []*league.Team
			for _, oid := range cr.Teams {
				t, ok := teams[oid]
				if !ok {
					return fmt.Errorf("league %s: competition at %s references unknown team %d", rec.Name, cr.Location, oid)
				}
				competing = append(competing, t)
			}
			c := league.NewCompetition(cr.OID, competing, cr.Location, cr.StartsAt)
			if err := l.AddCompetition(c); err != nil {
				return fmt.Errorf("league %s: %w", rec.Name, err)
			}
		}

		s.leagues = append(s.leagues, l)
	}
	return nil
}
