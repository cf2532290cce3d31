package league

// Mailer is the one collaborator the domain model needs from the outside
// world. Implementations live in the mailer package; the model only ever
// hands over a flat recipient list and plain text.
type Mailer interface {
	SendPlainEmail(recipients []string, subject, body string) error
}
