//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"context"
	"echosphere/domain"
	"echosphere/storage"
)

type IUserRepository interface {
	// GetUsers returns storage.ErrNotFound when the directory was never written.
	GetUsers(ctx context.Context) ([]domain.User, error)
	SaveUsers(ctx context.Context, users []domain.User) error
}

type UserRepository struct {
	store storage.Store
}

func NewUserRepository(store storage.Store) IUserRepository {
	return &UserRepository{store: store}
}

// GetUsers decodes the whole directory, keeping insertion order.
func (r *UserRepository) GetUsers(ctx context.Context) ([]domain.User, error) {
	users, err := readJSON[[]domain.User](ctx, r.store, UsersKey)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// SaveUsers replaces the whole directory record.
func (r *UserRepository) SaveUsers(ctx context.Context, users []domain.User) error {
	if users == nil {
		users = []domain.User{}
	}
	return writeJSON(ctx, r.store, UsersKey, users)
}
