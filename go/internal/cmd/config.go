package main

import (
	"fmt"
	"os"

	"github.com/mcdev12/leaguekeeper/go/internal/storeconfig"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the optional yaml config file. Anything it leaves unset falls
// back to the LEAGUE_* environment variables.
type Config struct {
	Snapshot string `yaml:"snapshot"`
	Mail     struct {
		Console bool   `yaml:"console"`
		Host    string `yaml:"host"`
		Port    int    `yaml:"port"`
		Sender  string `yaml:"sender"`
	} `yaml:"mail"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// resolveConfig layers the yaml file (when present) over the environment.
func resolveConfig(logger zerolog.Logger) storeconfig.Config {
	cfg := storeconfig.NewConfigFromEnv()

	path := os.Getenv("LEAGUE_CONFIG")
	if path == "" {
		path = "leaguekeeper.yaml"
	}
	fileCfg, err := loadConfig(path)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("no config file, using environment")
		return cfg
	}

	if fileCfg.Snapshot != "" {
		cfg.SnapshotPath = fileCfg.Snapshot
	}
	if fileCfg.Mail.Host != "" {
		cfg.SMTPHost = fileCfg.Mail.Host
	}
	if fileCfg.Mail.Port != 0 {
		cfg.SMTPPort = fileCfg.Mail.Port
	}
	if fileCfg.Mail.Sender != "" {
		cfg.SMTPSender = fileCfg.Mail.Sender
	}
	cfg.ConsoleMail = fileCfg.Mail.Console
	logger.Info().Str("path", path).Msg("configuration loaded")
	return cfg
}
