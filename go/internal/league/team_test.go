package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamAddMember(t *testing.T) {
	team := NewTeam(1, "Sharks")
	fred := NewTeamMember(1, "Fred", "fred@example.com")

	require.NoError(t, team.AddMember(fred))
	require.Len(t, team.Members(), 1)

	t.Run("nil is a no-op", func(t *testing.T) {
		require.NoError(t, team.AddMember(nil))
		assert.Len(t, team.Members(), 1)
	})

	t.Run("re-adding the same member is a no-op", func(t *testing.T) {
		require.NoError(t, team.AddMember(fred))
		assert.Len(t, team.Members(), 1)
	})

	t.Run("distinct member with a taken oid fails", func(t *testing.T) {
		err := team.AddMember(NewTeamMember(1, "Imposter", "imposter@example.com"))
		require.ErrorIs(t, err, ErrDuplicateID)
		assert.Len(t, team.Members(), 1)
	})

	t.Run("taken oid wins over taken email", func(t *testing.T) {
		err := team.AddMember(NewTeamMember(1, "Imposter", "fred@example.com"))
		require.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("email collision is case-insensitive", func(t *testing.T) {
		err := team.AddMember(NewTeamMember(2, "Freddy", "FRED@Example.COM"))
		require.ErrorIs(t, err, ErrDuplicateEmail)
		assert.Len(t, team.Members(), 1)
	})

	t.Run("members without email are always admitted", func(t *testing.T) {
		require.NoError(t, team.AddMember(NewTeamMember(3, "Ghost", "")))
		require.NoError(t, team.AddMember(NewTeamMember(4, "Shadow", "")))
		assert.Len(t, team.Members(), 3)
	})
}

func TestTeamRosterOrder(t *testing.T) {
	team := NewTeam(1, "Sharks")
	names := []string{"Fred", "Barb", "Ann"}
	for i, name := range names {
		require.NoError(t, team.AddMember(NewTeamMember(OID(i+1), name, name+"@example.com")))
	}

	members := team.Members()
	require.Len(t, members, 3)
	for i, name := range names {
		assert.Equal(t, name, members[i].Name)
	}
}

func TestTeamMembersViewIsACopy(t *testing.T) {
	team := NewTeam(1, "Sharks")
	require.NoError(t, team.AddMember(NewTeamMember(1, "Fred", "fred@example.com")))

	view := team.Members()
	view[0] = NewTeamMember(99, "Mallory", "mallory@example.com")

	assert.Equal(t, "Fred", team.Members()[0].Name)
}

func TestTeamRemoveMember(t *testing.T) {
	team := NewTeam(1, "Sharks")
	fred := NewTeamMember(1, "Fred", "fred@example.com")
	barb := NewTeamMember(2, "Barb", "barb@example.com")
	require.NoError(t, team.AddMember(fred))
	require.NoError(t, team.AddMember(barb))

	team.RemoveMember(fred)
	require.Len(t, team.Members(), 1)
	assert.Equal(t, "Barb", team.Members()[0].Name)

	// absent and nil are no-ops, never errors
	team.RemoveMember(fred)
	team.RemoveMember(nil)
	assert.Len(t, team.Members(), 1)

	// matching is by oid, not instance
	team.RemoveMember(NewTeamMember(2, "someone else", ""))
	assert.Empty(t, team.Members())
}

func TestTeamMemberNamed(t *testing.T) {
	team := NewTeam(1, "Sharks")
	first := NewTeamMember(1, "Fred", "fred@example.com")
	second := NewTeamMember(2, "Fred", "fred2@example.com")
	require.NoError(t, team.AddMember(first))
	require.NoError(t, team.AddMember(second))

	got := team.MemberNamed("Fred")
	require.NotNil(t, got)
	assert.Equal(t, OID(1), got.OID(), "first match in roster order")

	assert.Nil(t, team.MemberNamed("fred"), "lookup is case-sensitive")
	assert.Nil(t, team.MemberNamed("Barb"))
}

func TestTeamSendEmail(t *testing.T) {
	team := NewTeam(1, "Sharks")
	require.NoError(t, team.AddMember(NewTeamMember(1, "Fred", "fred@example.com")))
	require.NoError(t, team.AddMember(NewTeamMember(2, "Ghost", "")))
	require.NoError(t, team.AddMember(NewTeamMember(3, "Barb", "barb@example.com")))

	mail := &fakeMailer{}
	require.NoError(t, team.SendEmail(mail, "Practice", "Saturday at 9"))

	require.Len(t, mail.sends, 1, "one send for the whole team")
	assert.Equal(t, []string{"fred@example.com", "barb@example.com"}, mail.sends[0].recipients)
}

func TestTeamString(t *testing.T) {
	team := NewTeam(1, "Sharks")
	assert.Equal(t, "Sharks: 0 members", team.String())
	require.NoError(t, team.AddMember(NewTeamMember(1, "Fred", "fred@example.com")))
	assert.Equal(t, "Sharks: 1 members", team.String())
}
