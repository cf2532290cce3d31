package mailer

import "github.com/rs/zerolog"

// Console is a mailer that only reports what it would send. It backs dry
// runs and local development, where wiring real SMTP credentials is more
// trouble than it is worth.
type Console struct {
	log zerolog.Logger
}

// NewConsole creates a console mailer writing through logger.
func NewConsole(logger zerolog.Logger) *Console {
	return &Console{log: logger}
}

// SendPlainEmail logs one line per recipient and delivers nothing.
func (c *Console) SendPlainEmail(recipients []string, subject, body string) error {
	for _, recipient := range recipients {
		c.log.Info().
			Str("to", recipient).
			Str("subject", subject).
			Msg("sending mail")
	}
	return nil
}
