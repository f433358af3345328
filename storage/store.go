// Package storage holds the local persistence backends. Every record is a
// whole text value addressed by a key; callers read it fully and write it fully.
package storage

import (
	"context"
	"echosphere/errors"
)

// ErrNotFound is returned by Get when no record exists for the key.
var ErrNotFound = errors.ErrNotFound

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}
