package storeconfig

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds snapshot and mail settings.
type Config struct {
	SnapshotPath string
	SMTPHost     string
	SMTPPort     int
	SMTPSender   string
	SMTPPassword string
	ConsoleMail  bool
}

// NewConfigFromEnv reads LEAGUE_* environment variables (with defaults).
func NewConfigFromEnv() Config {
	port, err := strconv.Atoi(getEnv("LEAGUE_SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}

	return Config{
		SnapshotPath: getEnv("LEAGUE_SNAPSHOT", "leagues.db"),
		SMTPHost:     getEnv("LEAGUE_SMTP_HOST", "localhost"),
		SMTPPort:     port,
		SMTPSender:   getEnv("LEAGUE_SMTP_SENDER", ""),
		SMTPPassword: getEnv("LEAGUE_SMTP_PASSWORD", ""),
		ConsoleMail:  getEnv("LEAGUE_MAIL_CONSOLE", "true") == "true",
	}
}

// SMTPAddr returns the SMTP endpoint as host:port.
func (c Config) SMTPAddr() string {
	return fmt.Sprintf("%s:%d", c.SMTPHost, c.SMTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
