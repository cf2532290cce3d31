package store

import (
	"slices"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/leaguekeeper/go/internal/league"
	"github.com/rs/zerolog"
)

// Store is the in-memory database: the ordered list of leagues being
// managed plus the allocator that mints OIDs for new entities. One store
// serves a whole session; Load builds a replacement from a snapshot.
//
// Leagues are not checked for duplicate OIDs on add. That asymmetry with
// League and Team is retained deliberately; unifying it is a product
// decision, not a code fix.
type Store struct {
	leagues []*league.League
	lastOID league.OID
	clock   clockwork.Clock
	log     zerolog.Logger
}

// New creates an empty store. The clock stamps snapshots at save time.
func New(clock clockwork.Clock, logger zerolog.Logger) *Store {
	return &Store{
		clock: clock,
		log:   logger,
	}
}

// NextOID mints the next identifier. The first call on a fresh store
// returns 1; values are never reused within the store's lifetime, and a
// loaded store resumes from the counter the snapshot carried.
func (s *Store) NextOID() league.OID {
	s.lastOID++
	return s.lastOID
}

// Leagues returns the managed leagues in insertion order. The slice is a
// copy.
func (s *Store) Leagues() []*league.League {
	return slices.Clone(s.leagues)
}

// AddLeague appends l to the managed leagues. Adding nil is a no-op.
func (s *Store) AddLeague(l *league.League) {
	if l == nil {
		return
	}
	s.leagues = append(s.leagues, l)
}

// RemoveLeague drops l from the managed leagues, matching by OID. Removing
// nil or an absent league does nothing.
func (s *Store) RemoveLeague(l *league.League) {
	if l == nil {
		return
	}
	for i, existing := range s.leagues {
		if existing.OID() == l.OID() {
			s.leagues = slices.Delete(s.leagues, i, i+1)
			return
		}
	}
}

// LeagueNamed returns the first league whose name equals name exactly, or
// nil.
func (s *Store) LeagueNamed(name string) *league.League {
	for _, l := range s.leagues {
		if l.Name == name {
			return l
		}
	}
	return nil
}
