package storeconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigFromEnvDefaults(t *testing.T) {
	cfg := NewConfigFromEnv()

	assert.Equal(t, "leagues.db", cfg.SnapshotPath)
	assert.Equal(t, "localhost", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.True(t, cfg.ConsoleMail)
}

func TestNewConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("LEAGUE_SNAPSHOT", "/var/lib/leagues.db")
	t.Setenv("LEAGUE_SMTP_HOST", "mail.example.com")
	t.Setenv("LEAGUE_SMTP_PORT", "2525")
	t.Setenv("LEAGUE_SMTP_SENDER", "league@example.com")
	t.Setenv("LEAGUE_MAIL_CONSOLE", "false")

	cfg := NewConfigFromEnv()

	assert.Equal(t, "/var/lib/leagues.db", cfg.SnapshotPath)
	assert.Equal(t, "mail.example.com:2525", cfg.SMTPAddr())
	assert.Equal(t, "league@example.com", cfg.SMTPSender)
	assert.False(t, cfg.ConsoleMail)
}

func TestNewConfigFromEnvBadPort(t *testing.T) {
	t.Setenv("LEAGUE_SMTP_PORT", "not-a-port")

	cfg := NewConfigFromEnv()
	assert.Equal(t, 587, cfg.SMTPPort)
}
