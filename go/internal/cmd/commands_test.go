package main

import (
	"path/filepath"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/leaguekeeper/go/internal/league"
	"github.com/mcdev12/leaguekeeper/go/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMailer keeps what the front end asked to send.
type recordingMailer struct {
	recipients []string
	subject    string
}

func (r *recordingMailer) SendPlainEmail(recipients []string, subject, body string) error {
	r.recipients = recipients
	r.subject = subject
	return nil
}

func TestLoadCommand(t *testing.T) {
	t.Cleanup(store.ResetDefault)
	clock := clockwork.NewFakeClock()
	logger := zerolog.Nop()

	path := filepath.Join(t.TempDir(), "leagues.db")
	saved := store.New(clock, logger)
	saved.AddLeague(league.NewLeague(saved.NextOID(), "City League"))
	require.NoError(t, saved.Save(path))

	st := store.New(clock, logger)
	store.SetDefault(st)

	changed, err := runCommand(st, &recordingMailer{}, clock, logger, "load", []string{path})
	require.NoError(t, err)
	assert.False(t, changed, "loading replaces the store, it does not dirty it")

	// the loaded snapshot is installed as the process-wide store
	require.NotSame(t, st, store.Default())
	require.Len(t, store.Default().Leagues(), 1)
	assert.Equal(t, "City League", store.Default().Leagues()[0].Name)
}

func TestLoadCommandBadPath(t *testing.T) {
	t.Cleanup(store.ResetDefault)
	clock := clockwork.NewFakeClock()
	logger := zerolog.Nop()

	st := store.New(clock, logger)
	store.SetDefault(st)

	_, err := runCommand(st, &recordingMailer{}, clock, logger, "load", []string{filepath.Join(t.TempDir(), "nope.db")})
	require.Error(t, err)
	assert.Same(t, st, store.Default(), "a failed load leaves the current store installed")
}

func TestDemoCommand(t *testing.T) {
	clock := clockwork.NewFakeClock()
	logger := zerolog.Nop()
	st := store.New(clock, logger)
	mail := &recordingMailer{}

	changed, err := runCommand(st, mail, clock, logger, "demo", nil)
	require.NoError(t, err)
	assert.False(t, changed, "the demo runs on a scratch store")
	assert.Empty(t, st.Leagues(), "the session store is untouched")

	assert.Equal(t, []string{"fred@x.com"}, mail.recipients)
	assert.Equal(t, "Game day", mail.subject)
}

func TestUnknownCommand(t *testing.T) {
	clock := clockwork.NewFakeClock()
	logger := zerolog.Nop()

	_, err := runCommand(store.New(clock, logger), &recordingMailer{}, clock, logger, "frobnicate", nil)
	require.Error(t, err)
}
