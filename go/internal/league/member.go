package league

// TeamMember is a participant. Members are shared references: the same
// member may sit on multiple rosters, and no team owns it. An empty Email
// means the member cannot receive mail.
type TeamMember struct {
	entity
	Name  string
	Email string
}

// NewTeamMember creates a member with the given identifier, display name
// and email address. An empty email is allowed.
func NewTeamMember(oid OID, name, email string) *TeamMember {
	return &TeamMember{
		entity: entity{oid: oid},
		Name:   name,
		Email:  email,
	}
}

// Equal reports whether both members carry the same OID.
func (m *TeamMember) Equal(other *TeamMember) bool {
	if m == other {
		return true
	}
	return m != nil && other != nil && m.oid == other.oid
}

// SendEmail mails exactly this member. The address is passed through as-is;
// it is the caller's job not to mail a member without one.
func (m *TeamMember) SendEmail(mailer Mailer, subject, body string) error {
	return mailer.SendPlainEmail([]string{m.Email}, subject, body)
}

func (m *TeamMember) String() string {
	return m.Name + "<" + m.Email + ">"
}
