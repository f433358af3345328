//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat_repository.go -package=mocks
package repositories

import (
	"context"
	"echosphere/domain"
	"echosphere/storage"
	stderrors "errors"
)

type IChatRepository interface {
	GetChats(ctx context.Context) ([]domain.Chat, error)
	SaveChats(ctx context.Context, chats []domain.Chat) error
}

type ChatRepository struct {
	store storage.Store
}

func NewChatRepository(store storage.Store) IChatRepository {
	return &ChatRepository{store: store}
}

// GetChats decodes every chat in storage order. A missing record is an empty collection.
func (r *ChatRepository) GetChats(ctx context.Context) ([]domain.Chat, error) {
	chats, err := readJSON[[]domain.Chat](ctx, r.store, ChatsKey)
	if stderrors.Is(err, storage.ErrNotFound) {
		return []domain.Chat{}, nil
	}
	if err != nil {
		return nil, err
	}
	if chats == nil {
		chats = []domain.Chat{}
	}
	for i := range chats {
		if chats[i].Messages == nil {
			chats[i].Messages = []domain.Message{}
		}
	}
	return chats, nil
}

func (r *ChatRepository) SaveChats(ctx context.Context, chats []domain.Chat) error {
	if chats == nil {
		chats = []domain.Chat{}
	}
	return writeJSON(ctx, r.store, ChatsKey, chats)
}
