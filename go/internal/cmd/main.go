package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/leaguekeeper/go/internal/league"
	"github.com/mcdev12/leaguekeeper/go/internal/mailer"
	"github.com/mcdev12/leaguekeeper/go/internal/store"
	"github.com/mcdev12/leaguekeeper/go/internal/storeconfig"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := resolveConfig(logger)
	clock := clockwork.NewRealClock()

	store.SetDefault(openStore(cfg, clock, logger))

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	changed, err := runCommand(store.Default(), mailerFor(cfg, clock, logger), clock, logger, os.Args[1], os.Args[2:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if changed {
		// save whatever store is current; a load command may have
		// swapped in a different one
		if err := store.Default().Save(cfg.SnapshotPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// openStore loads the snapshot when one exists, otherwise starts empty.
func openStore(cfg storeconfig.Config, clock clockwork.Clock, logger zerolog.Logger) *store.Store {
	if _, err := os.Stat(cfg.SnapshotPath); err != nil {
		logger.Info().Str("path", cfg.SnapshotPath).Msg("no snapshot, starting empty")
		return store.New(clock, logger)
	}
	st, err := store.Load(cfg.SnapshotPath, clock, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return st
}

func mailerFor(cfg storeconfig.Config, clock clockwork.Clock, logger zerolog.Logger) league.Mailer {
	if cfg.ConsoleMail {
		return mailer.NewConsole(logger)
	}
	return mailer.NewSMTP(cfg.SMTPAddr(), cfg.SMTPSender, cfg.SMTPPassword, clock, logger)
}
