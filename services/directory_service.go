package services

import (
	"context"
	"echosphere/domain"
	"echosphere/errors"
	"echosphere/repositories"
	"echosphere/storage"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
)

type IDirectoryService interface {
	EnsureSeeded(ctx context.Context) error
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
	CreateUser(ctx context.Context, name string) (domain.User, error)
}

type DirectoryService struct {
	userRepository repositories.IUserRepository
	log            *slog.Logger
	now            func() time.Time
	mu             sync.Mutex
}

func NewDirectoryService(repo repositories.IUserRepository, log *slog.Logger, now func() time.Time) *DirectoryService {
	if now == nil {
		now = time.Now
	}
	return &DirectoryService{userRepository: repo, log: log, now: now}
}

// EnsureSeeded persists the demo users when the directory was never written.
func (s *DirectoryService) EnsureSeeded(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.loadLocked(ctx)
	return err
}

// ListUsers returns the directory in insertion order.
func (s *DirectoryService) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *DirectoryService) GetUser(ctx context.Context, id string) (domain.User, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return domain.User{}, err
	}
	user, ok := lo.Find(users, func(u domain.User) bool { return u.ID == id })
	if !ok {
		return domain.User{}, fmt.Errorf("%w: %s", errors.ErrUserNotFound, id)
	}
	return user, nil
}

// CreateUser registers a new user under a trimmed name that no existing user
// shares, ignoring case.
func (s *DirectoryService) CreateUser(ctx context.Context, name string) (domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.User{}, errors.ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadLocked(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if lo.ContainsBy(users, func(u domain.User) bool { return domain.SameName(u.Name, name) }) {
		s.log.Warn("Duplicate user name rejected", "name", name)
		return domain.User{}, fmt.Errorf("%w: %s", errors.ErrDuplicateName, name)
	}

	// Names that differ only by whitespace share a slug; move to the next
	// millisecond until the id is free.
	taken := lo.SliceToMap(users, func(u domain.User) (string, struct{}) { return u.ID, struct{}{} })
	at := s.now()
	user := domain.NewUser(name, at)
	for {
		if _, exists := taken[user.ID]; !exists {
			break
		}
		at = at.Add(time.Millisecond)
		user = domain.NewUser(name, at)
	}

	if err = s.userRepository.SaveUsers(ctx, append(users, user)); err != nil {
		return domain.User{}, fmt.Errorf("save users: %w", err)
	}
	s.log.Info("User created", "id", user.ID, "name", user.Name)
	return user, nil
}

func (s *DirectoryService) loadLocked(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if stderrors.Is(err, storage.ErrNotFound) {
		seeds := append([]domain.User{}, domain.SeedUsers...)
		if err = s.userRepository.SaveUsers(ctx, seeds); err != nil {
			return nil, fmt.Errorf("seed users: %w", err)
		}
		s.log.Info("Directory seeded", "users", len(seeds))
		return seeds, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}
