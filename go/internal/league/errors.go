package league

import "errors"

// Domain invariant violations. They are returned straight to the caller;
// nothing in this package recovers from them. Match with errors.Is.
var (
	// ErrDuplicateID is returned when an OID collides inside a collection
	// that requires uniqueness (teams in a league, competitions in a
	// league, members on a roster).
	ErrDuplicateID = errors.New("duplicate oid")

	// ErrDuplicateEmail is returned when a member's email address matches
	// an existing roster member's, ignoring case. Members without an email
	// are exempt.
	ErrDuplicateEmail = errors.New("duplicate email address")

	// ErrTeamInCompetition is returned when removing a team that is still
	// listed by one of the league's competitions.
	ErrTeamInCompetition = errors.New("team is competing")

	// ErrUnknownTeam is returned when a competition references a team that
	// is not part of the league.
	ErrUnknownTeam = errors.New("team is not in the league")
)
