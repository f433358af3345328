package services

import (
	"context"
	"echosphere/domain"
	"echosphere/errors"
	"echosphere/mocks"
	"echosphere/repositories"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSessionService(t *testing.T) {
	t.Run("should start unauthenticated", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, false)

		user, err := f.session.Restore(context.Background())

		req.NoError(err)
		req.Nil(user)
		_, ok := f.session.Current()
		req.False(ok)
	})

	t.Run("should persist the login across restarts", func(t *testing.T) {
		req := require.New(t)
		ctx := context.Background()
		f := newFixture(t, false)

		logged, err := f.session.Login(ctx, bob)
		req.NoError(err)
		req.Equal("Bob", logged.Name)
		req.Equal(bob, f.session.CurrentID())

		restarted := NewSessionService(repositories.NewSessionRepository(f.store), f.directory, slog.Default())
		restored, err := restarted.Restore(ctx)
		req.NoError(err)
		req.NotNil(restored)
		req.Equal(logged, *restored)
		current, ok := restarted.Current()
		req.True(ok)
		req.Equal(bob, current.ID)
	})

	t.Run("should refuse an unknown user", func(t *testing.T) {
		req := require.New(t)
		ctx := context.Background()
		f := newFixture(t, false)

		_, err := f.session.Login(ctx, "ghost@echosphere")

		req.ErrorIs(err, errors.ErrUserNotFound)
		req.Empty(f.session.CurrentID())
		saved, err := repositories.NewSessionRepository(f.store).GetCurrentUserID(ctx)
		req.NoError(err)
		req.Empty(saved)
	})

	t.Run("should ignore a dangling reference", func(t *testing.T) {
		req := require.New(t)
		ctx := context.Background()
		f := newFixture(t, false)
		req.NoError(repositories.NewSessionRepository(f.store).SetCurrentUserID(ctx, "ghost@echosphere"))

		user, err := f.session.Restore(ctx)

		req.NoError(err)
		req.Nil(user)
		req.Empty(f.session.CurrentID())
	})

	t.Run("should forget the user on logout", func(t *testing.T) {
		req := require.New(t)
		ctx := context.Background()
		f := newFixture(t, false)
		_, err := f.session.Login(ctx, alice)
		req.NoError(err)

		req.NoError(f.session.Logout(ctx))

		req.Empty(f.session.CurrentID())
		user, err := f.session.Restore(ctx)
		req.NoError(err)
		req.Nil(user)
	})
}

func TestSessionService_Repository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSession := mocks.NewMockISessionRepository(ctrl)
	mockUsers := mocks.NewMockIUserRepository(ctrl)
	mockUsers.EXPECT().GetUsers(gomock.Any()).Return(domain.SeedUsers, nil).AnyTimes()
	svc := NewSessionService(mockSession, NewDirectoryService(mockUsers, slog.Default(), nil), slog.Default())

	t.Run("should stay logged out when the reference cannot be saved", func(t *testing.T) {
		req := require.New(t)
		mockSession.EXPECT().SetCurrentUserID(gomock.Any(), alice).Return(fmt.Errorf("read-only")).Times(1)

		_, err := svc.Login(context.Background(), alice)

		req.ErrorContains(err, "read-only")
		_, ok := svc.Current()
		req.False(ok)
	})

	t.Run("should surface a failed read", func(t *testing.T) {
		mockSession.EXPECT().GetCurrentUserID(gomock.Any()).Return("", fmt.Errorf("corrupted")).Times(1)

		_, err := svc.Restore(context.Background())

		require.ErrorContains(t, err, "corrupted")
	})
}
