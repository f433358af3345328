package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

const tmpSuffix = ".tmp"

var _ Store = (*FileStore)(nil)

// FileStore keeps one text file per key under a root directory.
// Writes go to a temporary file that is renamed over the record.
type FileStore struct {
	fs   afero.Fs
	root string
	log  *slog.Logger
}

func NewFileStore(fs afero.Fs, root string, log *slog.Logger) (*FileStore, error) {
	if err := fs.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %q: %w", root, err)
	}
	return &FileStore{fs: fs, root: root, log: log}, nil
}

func (s *FileStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasSuffix(key, tmpSuffix) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.root, key), nil
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	value, err := afero.ReadFile(s.fs, path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

func (s *FileStore) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(key)
	if err != nil {
		return err
	}
	tmp := path + tmpSuffix
	if err = afero.WriteFile(s.fs, tmp, value, 0o644); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	if err = s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("put %q: %w", key, err)
	}
	s.log.Debug("Record written", "key", key, "bytes", len(value))
	return nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err = s.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	infos, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, info := range infos {
		if info.IsDir() || strings.HasSuffix(info.Name(), tmpSuffix) {
			continue
		}
		keys = append(keys, info.Name())
	}
	slices.Sort(keys)
	return keys, nil
}

func (s *FileStore) Close() error { return nil }
