package services

import (
	"context"
	"echosphere/domain"
	"echosphere/errors"
	"echosphere/repositories"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
)

type ISessionService interface {
	Restore(ctx context.Context) (*domain.User, error)
	Login(ctx context.Context, userID string) (domain.User, error)
	Logout(ctx context.Context) error
	Current() (domain.User, bool)
}

// SessionService tracks who is using the application. Only the user id is
// persisted; the user itself is always re-resolved through the directory.
type SessionService struct {
	sessionRepository repositories.ISessionRepository
	directory         IDirectoryService
	log               *slog.Logger

	mu      sync.RWMutex
	current *domain.User
}

func NewSessionService(repo repositories.ISessionRepository, directory IDirectoryService, log *slog.Logger) *SessionService {
	return &SessionService{sessionRepository: repo, directory: directory, log: log}
}

// Restore rehydrates the saved session. A reference that no longer resolves
// leaves the session unauthenticated without error.
func (s *SessionService) Restore(ctx context.Context) (*domain.User, error) {
	userID, err := s.sessionRepository.GetCurrentUserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if userID == "" {
		return nil, nil
	}

	user, err := s.directory.GetUser(ctx, userID)
	if stderrors.Is(err, errors.ErrUserNotFound) {
		s.log.Warn("Saved session does not match any user", "id", userID)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.current = &user
	return &user, nil
}

func (s *SessionService) Login(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.directory.GetUser(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if err = s.sessionRepository.SetCurrentUserID(ctx, user.ID); err != nil {
		return domain.User{}, fmt.Errorf("save session: %w", err)
	}

	s.mu.Lock()
	s.current = &user
	s.mu.Unlock()
	s.log.Info("Logged in", "id", user.ID)
	return user, nil
}

func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.sessionRepository.ClearCurrentUserID(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return nil
}

func (s *SessionService) Current() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.User{}, false
	}
	return *s.current, true
}

// CurrentID returns "" when nobody is logged in.
func (s *SessionService) CurrentID() string {
	user, _ := s.Current()
	return user.ID
}
