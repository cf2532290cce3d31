package mailer

import (
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// SMTP delivers plain-text mail through a single SMTP endpoint. It is the
// production counterpart of Console; the domain model sees neither, only
// the Mailer interface.
type SMTP struct {
	addr   string
	sender string
	auth   smtp.Auth
	clock  clockwork.Clock
	log    zerolog.Logger
}

// NewSMTP creates a mailer for the server at addr (host:port), sending as
// sender. An empty password skips authentication.
func NewSMTP(addr, sender, password string, clock clockwork.Clock, logger zerolog.Logger) *SMTP {
	var auth smtp.Auth
	if password != "" {
		host := addr
		if h, _, err := net.SplitHostPort(addr); err == nil {
			host = h
		}
		auth = smtp.PlainAuth("", sender, password, host)
	}
	return &SMTP{
		addr:   addr,
		sender: sender,
		auth:   auth,
		clock:  clock,
		log:    logger,
	}
}

// SendPlainEmail sends one message to all recipients. An empty recipient
// list is a no-op.
func (m *SMTP) SendPlainEmail(recipients []string, subject, body string) error {
	if len(recipients) == 0 {
		return nil
	}

	msg := m.message(recipients, subject, body)
	if err := smtp.SendMail(m.addr, m.auth, m.sender, recipients, msg); err != nil {
		return fmt.Errorf("send mail via %s: %w", m.addr, err)
	}

	for _, recipient := range recipients {
		m.log.Info().
			Str("to", recipient).
			Str("subject", subject).
			Msg("sending mail")
	}
	return nil
}

func (m *SMTP) message(recipients []string, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.sender)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(recipients, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	fmt.Fprintf(&b, "Date: %s\r\n", m.clock.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&b, "Message-ID: <%s@leaguekeeper>\r\n", uuid.NewString())
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
