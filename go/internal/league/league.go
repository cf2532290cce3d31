package league

import (
	"fmt"
	"slices"
)

// League owns a collection of teams and a collection of competitions.
// Both are unique by OID and ordered, and the league guards the relation
// between them: a competition may only list teams the league holds, and a
// team listed by a competition cannot be removed.
type League struct {
	entity
	Name         string
	teams        []*Team
	competitions []*Competition
}

// NewLeague creates an empty league.
func NewLeague(oid OID, name string) *League {
	return &League{
		entity: entity{oid: oid},
		Name:   name,
	}
}

// Equal reports whether both leagues carry the same OID.
func (l *League) Equal(other *League) bool {
	if l == other {
		return true
	}
	return l != nil && other != nil && l.oid == other.oid
}

// Teams returns the league's teams in insertion order. The slice is a copy.
func (l *League) Teams() []*Team {
	return slices.Clone(l.teams)
}

// Competitions returns the league's competitions in insertion order. The
// slice is a copy.
func (l *League) Competitions() []*Competition {
	return slices.Clone(l.competitions)
}

// AddTeam appends team to the league. Adding nil is a no-op; a team whose
// OID is already taken fails with ErrDuplicateID, even when it is the same
// instance.
func (l *League) AddTeam(team *Team) error {
	if team == nil {
		return nil
	}
	for _, existing := range l.teams {
		if existing.oid == team.oid {
			return fmt.Errorf("add team %s: %w", team, ErrDuplicateID)
		}
	}
	l.teams = append(l.teams, team)
	return nil
}

// RemoveTeam drops team from the league. A team still listed by any of the
// league's competitions fails with ErrTeamInCompetition and stays put.
// Removing nil or an absent team does nothing.
func (l *League) RemoveTeam(team *Team) error {
	if team == nil {
		return nil
	}
	for _, c := range l.competitions {
		if c.hasTeam(team) {
			return fmt.Errorf("remove team %s: %w", team, ErrTeamInCompetition)
		}
	}
	for i, existing := range l.teams {
		if existing.oid == team.oid {
			l.teams = slices.Delete(l.teams, i, i+1)
			return nil
		}
	}
	return nil
}

// TeamNamed returns the first team whose name equals name exactly, or nil.
func (l *League) TeamNamed(name string) *Team {
	for _, team := range l.teams {
		if team.Name == name {
			return team
		}
	}
	return nil
}

// AddCompetition appends competition to the league. Adding nil is a no-op.
// Every team the competition lists must already be in the league; the
// first one that is not fails with ErrUnknownTeam, checked in the
// competition's team order and before the OID uniqueness check. A
// competition whose OID is already taken fails with ErrDuplicateID.
func (l *League) AddCompetition(competition *Competition) error {
	if competition == nil {
		return nil
	}
	for _, team := range competition.teams {
		if l.teamByOID(team.oid) == nil {
			return fmt.Errorf("add competition %s: team %s: %w", competition, team, ErrUnknownTeam)
		}
	}
	for _, existing := range l.competitions {
		if existing.oid == competition.oid {
			return fmt.Errorf("add competition %s: %w", competition, ErrDuplicateID)
		}
	}
	l.competitions = append(l.competitions, competition)
	return nil
}

// TeamsForMember returns every team whose roster holds member, in league
// order.
func (l *League) TeamsForMember(member *TeamMember) []*Team {
	var teams []*Team
	for _, team := range l.teams {
		if team.hasMember(member) {
			teams = append(teams, team)
		}
	}
	return teams
}

// CompetitionsForTeam returns every competition listing team, in league
// order.
func (l *League) CompetitionsForTeam(team *Team) []*Competition {
	var competitions []*Competition
	for _, c := range l.competitions {
		if c.hasTeam(team) {
			competitions = append(competitions, c)
		}
	}
	return competitions
}

// CompetitionsForMember returns every competition where at least one
// competing team holds member, in league order. A competition appears once
// even when several of its teams hold the member.
func (l *League) CompetitionsForMember(member *TeamMember) []*Competition {
	var competitions []*Competition
	for _, c := range l.competitions {
		for _, team := range c.teams {
			if team.hasMember(member) {
				competitions = append(competitions, c)
				break
			}
		}
	}
	return competitions
}

func (l *League) String() string {
	return fmt.Sprintf("%s: %d teams, %d competitions", l.Name, len(l.teams), len(l.competitions))
}

func (l *League) teamByOID(oid OID) *Team {
	for _, team := range l.teams {
		if team.oid == oid {
			return team
		}
	}
	return nil
}
