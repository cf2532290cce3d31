package league

import (
	"fmt"
	"slices"
	"strings"
)

// Team is a named roster of members. The roster preserves insertion order
// and is only reachable through a copied view, so every mutation runs
// through the methods that enforce uniqueness.
type Team struct {
	entity
	Name    string
	members []*TeamMember
}

// NewTeam creates an empty team.
func NewTeam(oid OID, name string) *Team {
	return &Team{
		entity: entity{oid: oid},
		Name:   name,
	}
}

// Equal reports whether both teams carry the same OID.
func (t *Team) Equal(other *Team) bool {
	if t == other {
		return true
	}
	return t != nil && other != nil && t.oid == other.oid
}

// Members returns the roster in insertion order. The slice is a copy.
func (t *Team) Members() []*TeamMember {
	return slices.Clone(t.members)
}

// AddMember appends member to the roster. Adding nil or a member already
// on the roster is a no-op. A distinct member whose OID is already taken
// fails with ErrDuplicateID. A member without an email is admitted
// unconditionally; otherwise a case-insensitive email collision fails with
// ErrDuplicateEmail.
func (t *Team) AddMember(member *TeamMember) error {
	if member == nil {
		return nil
	}
	for _, existing := range t.members {
		if existing == member {
			return nil
		}
		if existing.oid == member.oid {
			return fmt.Errorf("add member %s to %s: %w", member, t, ErrDuplicateID)
		}
	}
	if member.Email != "" {
		for _, existing := range t.members {
			if existing.Email != "" && strings.EqualFold(existing.Email, member.Email) {
				return fmt.Errorf("add member %s to %s: %w", member, t, ErrDuplicateEmail)
			}
		}
	}
	t.members = append(t.members, member)
	return nil
}

// RemoveMember drops member from the roster if present, matching by OID.
// Removing nil or an absent member does nothing.
func (t *Team) RemoveMember(member *TeamMember) {
	if member == nil {
		return
	}
	for i, existing := range t.members {
		if existing.oid == member.oid {
			t.members = slices.Delete(t.members, i, i+1)
			return
		}
	}
}

// MemberNamed returns the first roster member whose name equals name
// exactly, or nil.
func (t *Team) MemberNamed(name string) *TeamMember {
	for _, member := range t.members {
		if member.Name == name {
			return member
		}
	}
	return nil
}

// SendEmail sends one email to every member that has an address, in roster
// order.
func (t *Team) SendEmail(mailer Mailer, subject, body string) error {
	var recipients []string
	for _, member := range t.members {
		if member.Email != "" {
			recipients = append(recipients, member.Email)
		}
	}
	return mailer.SendPlainEmail(recipients, subject, body)
}

func (t *Team) String() string {
	return fmt.Sprintf("%s: %d members", t.Name, len(t.members))
}

func (t *Team) hasMember(member *TeamMember) bool {
	if member == nil {
		return false
	}
	for _, existing := range t.members {
		if existing.oid == member.oid {
			return true
		}
	}
	return false
}
