package repositories

import (
	"context"
	"echosphere/storage"
	"encoding/json"
	"fmt"
)

// Record keys, identical to the ones the browser client used in localStorage.
const (
	UsersKey       = "chat_users"
	ChatsKey       = "chat_chats"
	CurrentUserKey = "currentUser"
)

func readJSON[T any](ctx context.Context, store storage.Store, key string) (T, error) {
	var value T
	raw, err := store.Get(ctx, key)
	if err != nil {
		return value, err
	}
	if err = json.Unmarshal(raw, &value); err != nil {
		return value, fmt.Errorf("decode %s: %w", key, err)
	}
	return value, nil
}

func writeJSON[T any](ctx context.Context, store storage.Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return store.Put(ctx, key, raw)
}
