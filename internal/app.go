package internal

import (
	"context"
	"echosphere/repositories"
	"echosphere/search"
	"echosphere/services"
	"echosphere/storage"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
)

// App holds every opened resource and the services built on top of them.
type App struct {
	Store         storage.Store
	Media         *storage.MediaStore
	Index         *search.Index
	Directory     *services.DirectoryService
	Conversations *services.ConversationService
	Session       *services.SessionService
	log           *slog.Logger
}

// Open opens the configured store, media directory and search index, seeds
// the directory on first run and restores the saved session.
func Open(ctx context.Context, config Config, fs afero.Fs, log *slog.Logger) (*App, error) {
	// 1. Local store
	store, err := openStore(config, fs, log)
	if err != nil {
		return nil, err
	}
	app := &App{Store: store, Media: storage.NewMediaStore(fs, config.MediaDir), log: log}

	// 2. Search index
	var index services.MessageIndex
	if config.SearchEnabled() {
		app.Index, err = search.Open(config.BlugeFilepath, log)
		if err != nil {
			_ = app.Close()
			return nil, err
		}
		index = app.Index
	}

	// 3. Services
	app.Directory = services.NewDirectoryService(repositories.NewUserRepository(store), log, nil)
	chatRepository := repositories.NewChatRepository(store)
	app.Conversations = services.NewConversationService(chatRepository, app.Directory, app.Media, index, log, nil).
		WithSearchLimit(config.SearchLimit)
	app.Session = services.NewSessionService(repositories.NewSessionRepository(store), app.Directory, log)

	// 4. First run & session
	if err = app.Directory.EnsureSeeded(ctx); err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("seed users: %w", err)
	}
	if _, err = app.Session.Restore(ctx); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

// Reindex rebuilds the search index from the chats record.
func (a *App) Reindex(ctx context.Context) error {
	if a.Index == nil {
		return nil
	}
	chats, err := repositories.NewChatRepository(a.Store).GetChats(ctx)
	if err != nil {
		return fmt.Errorf("load chats: %w", err)
	}
	return a.Index.Rebuild(chats)
}

func (a *App) Close() error {
	var firstErr error
	if a.Index != nil {
		if err := a.Index.Close(); err != nil {
			firstErr = err
		}
	}
	if err := a.Store.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

func openStore(config Config, fs afero.Fs, log *slog.Logger) (storage.Store, error) {
	switch config.StoreBackend {
	case BackendFile:
		return storage.NewFileStore(fs, config.DataDir, log)
	case BackendBadger:
		return storage.OpenBadger(config.BadgerFilepath, log)
	default:
		return nil, fmt.Errorf("unknown store backend %q", config.StoreBackend)
	}
}
