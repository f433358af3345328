//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session_repository.go -package=mocks
package repositories

import (
	"context"
	"echosphere/storage"
	stderrors "errors"
	"strings"
)

// ISessionRepository persists only a reference to the current user, never the user itself.
type ISessionRepository interface {
	GetCurrentUserID(ctx context.Context) (string, error)
	SetCurrentUserID(ctx context.Context, userID string) error
	ClearCurrentUserID(ctx context.Context) error
}

type SessionRepository struct {
	store storage.Store
}

func NewSessionRepository(store storage.Store) ISessionRepository {
	return &SessionRepository{store: store}
}

// GetCurrentUserID returns "" when no session was saved.
func (r *SessionRepository) GetCurrentUserID(ctx context.Context) (string, error) {
	raw, err := r.store.Get(ctx, CurrentUserKey)
	if stderrors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (r *SessionRepository) SetCurrentUserID(ctx context.Context, userID string) error {
	return r.store.Put(ctx, CurrentUserKey, []byte(userID))
}

func (r *SessionRepository) ClearCurrentUserID(ctx context.Context) error {
	return r.store.Delete(ctx, CurrentUserKey)
}
