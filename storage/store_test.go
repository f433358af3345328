package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func newBackends(t *testing.T) map[string]Store {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	badgerStore, err := OpenBadger(t.TempDir(), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = badgerStore.Close() })

	fileStore, err := NewFileStore(afero.NewMemMapFs(), "/data", log)
	require.NoError(t, err)

	return map[string]Store{
		"badger": badgerStore,
		"file":   fileStore,
	}
}

func TestStore_GetMissingKey(t *testing.T) {
	for name, store := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(context.Background(), "chat_users")
			require.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStore_PutOverwritesWholeRecord(t *testing.T) {
	for name, store := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			ctx := context.Background()

			req.NoError(store.Put(ctx, "chat_chats", []byte(`[{"id":"a--b"},{"id":"a--c"}]`)))
			req.NoError(store.Put(ctx, "chat_chats", []byte(`[]`)))

			value, err := store.Get(ctx, "chat_chats")
			req.NoError(err)
			req.Equal(`[]`, string(value))
		})
	}
}

func TestStore_DeleteAndKeys(t *testing.T) {
	for name, store := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			ctx := context.Background()

			req.NoError(store.Put(ctx, "currentUser", []byte("alice@echosphere")))
			req.NoError(store.Put(ctx, "chat_users", []byte(`[]`)))

			keys, err := store.Keys(ctx)
			req.NoError(err)
			req.Equal([]string{"chat_users", "currentUser"}, keys)

			req.NoError(store.Delete(ctx, "currentUser"))
			req.NoError(store.Delete(ctx, "currentUser"))
			_, err = store.Get(ctx, "currentUser")
			req.ErrorIs(err, ErrNotFound)

			keys, err = store.Keys(ctx)
			req.NoError(err)
			req.Equal([]string{"chat_users"}, keys)
		})
	}
}

func TestStore_CancelledContext(t *testing.T) {
	for name, store := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			require.ErrorIs(t, store.Put(ctx, "chat_users", []byte(`[]`)), context.Canceled)
		})
	}
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	req := require.New(t)
	store, err := NewFileStore(afero.NewMemMapFs(), "/data", slog.Default())
	req.NoError(err)

	req.Error(store.Put(context.Background(), "../escape", []byte("x")))
	req.Error(store.Put(context.Background(), "", []byte("x")))
}

func TestMediaStore_SaveAndOpen(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	media := NewMediaStore(fs, "/media")

	ref, err := media.Save(ctx, "msg-1-abcd0123", "../../report.pdf", []byte("%PDF-1.4"))
	req.NoError(err)
	req.Equal("media://msg-1-abcd0123/report.pdf", ref)
	req.True(IsMediaRef(ref))

	exists, err := afero.Exists(fs, "/media/msg-1-abcd0123/report.pdf")
	req.NoError(err)
	req.True(exists)

	rc, err := media.Open(ctx, ref)
	req.NoError(err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	req.NoError(err)
	req.Equal("%PDF-1.4", string(data))

	_, err = media.Open(ctx, "media://msg-2/missing.pdf")
	req.ErrorIs(err, ErrNotFound)
	_, err = media.Open(ctx, "blob:http://localhost/123")
	req.Error(err)
}

func TestMediaStore_Remove(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	media := NewMediaStore(fs, "/media")

	kept, err := media.Save(ctx, "msg-1-aaaa0000", "keep.pdf", []byte("keep"))
	req.NoError(err)
	dropped, err := media.Save(ctx, "msg-2-bbbb1111", "drop.pdf", []byte("drop"))
	req.NoError(err)

	req.NoError(media.Remove(ctx, dropped))
	req.NoError(media.Remove(ctx, dropped))

	exists, err := afero.DirExists(fs, "/media/msg-2-bbbb1111")
	req.NoError(err)
	req.False(exists)
	_, err = media.Open(ctx, kept)
	req.NoError(err)

	req.Error(media.Remove(ctx, "media://"))
	req.Error(media.Remove(ctx, "media://../etc/passwd"))
}
