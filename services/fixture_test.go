package services

import (
	"echosphere/repositories"
	"echosphere/search"
	"echosphere/storage"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	at time.Time
}

func (c *fakeClock) Now() time.Time { return c.at }

func (c *fakeClock) Advance(d time.Duration) { c.at = c.at.Add(d) }

type fixture struct {
	store         storage.Store
	fs            afero.Fs
	clock         *fakeClock
	directory     *DirectoryService
	conversations *ConversationService
	session       *SessionService
}

// newFixture wires every service on an in-memory filesystem, with an
// optional in-memory search index.
func newFixture(t *testing.T, withIndex bool) *fixture {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	fs := afero.NewMemMapFs()
	store, err := storage.NewFileStore(fs, "/data", log)
	require.NoError(t, err)

	clock := &fakeClock{at: time.UnixMilli(1700000000000)}
	directory := NewDirectoryService(repositories.NewUserRepository(store), log, clock.Now)

	var index MessageIndex
	if withIndex {
		idx, err := search.OpenInMemory(log)
		require.NoError(t, err)
		t.Cleanup(func() { _ = idx.Close() })
		index = idx
	}

	conversations := NewConversationService(
		repositories.NewChatRepository(store),
		directory,
		storage.NewMediaStore(fs, "/media"),
		index,
		log,
		clock.Now,
	)
	session := NewSessionService(repositories.NewSessionRepository(store), directory, log)

	return &fixture{
		store:         store,
		fs:            fs,
		clock:         clock,
		directory:     directory,
		conversations: conversations,
		session:       session,
	}
}
