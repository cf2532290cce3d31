package league

import (
	"fmt"
	"slices"
	"time"
)

// Competition is a scheduled event between teams at a location. It does
// not own its teams; it points into a league's team collection, and the
// league keeps that relation consistent.
type Competition struct {
	entity
	Location string
	startsAt *time.Time
	teams    []*Team
}

// NewCompetition creates a competition among teams at location. startsAt
// may be a time.Time, a *time.Time or nil; any other value (a raw string,
// say) is quietly treated as "no start time". That coercion is part of the
// contract, not a validation gap to close.
func NewCompetition(oid OID, teams []*Team, location string, startsAt any) *Competition {
	c := &Competition{
		entity:   entity{oid: oid},
		Location: location,
		teams:    slices.Clone(teams),
	}
	switch v := startsAt.(type) {
	case time.Time:
		c.startsAt = &v
	case *time.Time:
		c.startsAt = v
	}
	return c
}

// Equal reports whether both competitions carry the same OID.
func (c *Competition) Equal(other *Competition) bool {
	if c == other {
		return true
	}
	return c != nil && other != nil && c.oid == other.oid
}

// StartsAt returns the start time, or nil when the competition is
// unscheduled.
func (c *Competition) StartsAt() *time.Time {
	return c.startsAt
}

// TeamsCompeting returns the competing teams in order. The slice is a copy.
func (c *Competition) TeamsCompeting() []*Team {
	return slices.Clone(c.teams)
}

// SendEmail sends one email to the union of all members across the
// competing teams. A member on several of the teams is included once; the
// recipient list keeps first-seen order. Members without an address are
// skipped.
func (c *Competition) SendEmail(mailer Mailer, subject, body string) error {
	seen := make(map[string]bool)
	var recipients []string
	for _, team := range c.teams {
		for _, member := range team.members {
			if seen[member.Email] {
				continue
			}
			seen[member.Email] = true
			if member.Email != "" {
				recipients = append(recipients, member.Email)
			}
		}
	}
	return mailer.SendPlainEmail(recipients, subject, body)
}

func (c *Competition) String() string {
	if c.startsAt == nil {
		return fmt.Sprintf("Competition at %s with %d teams", c.Location, len(c.teams))
	}
	return fmt.Sprintf("Competition at %s on %s with %d teams",
		c.Location, c.startsAt.Format("01/02/2006 15:04"), len(c.teams))
}

func (c *Competition) hasTeam(team *Team) bool {
	if team == nil {
		return false
	}
	for _, existing := range c.teams {
		if existing.oid == team.oid {
			return true
		}
	}
	return false
}
