package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// MediaScheme prefixes every reference handed out by MediaStore.
const MediaScheme = "media://"

// MediaStore keeps attachment payloads on a filesystem and hands back
// opaque local references to store in message content.
type MediaStore struct {
	fs   afero.Fs
	root string
}

func NewMediaStore(fs afero.Fs, root string) *MediaStore {
	return &MediaStore{fs: fs, root: root}
}

// Save writes the payload under <root>/<owner>/<file name> and returns its reference.
func (s *MediaStore) Save(ctx context.Context, owner, fileName string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := filepath.Base(fileName)
	if owner == "" || strings.ContainsAny(owner, `/\`) || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid media location %q/%q", owner, fileName)
	}
	rel := owner + "/" + name
	path := filepath.Join(s.root, owner, name)
	if err := s.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	f, err := s.fs.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err = io.Copy(f, bytes.NewReader(data)); err != nil {
		return "", err
	}
	return MediaScheme + rel, nil
}

// Open returns the payload behind a reference produced by Save.
func (s *MediaStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rel, err := relative(ref)
	if err != nil {
		return nil, err
	}
	f, err := s.fs.OpenFile(filepath.Join(s.root, filepath.FromSlash(rel)), os.O_RDONLY, 0)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return f, err
}

// Remove deletes the payload behind a reference together with its owner directory.
// Removing a missing payload is not an error.
func (s *MediaStore) Remove(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rel, err := relative(ref)
	if err != nil {
		return err
	}
	owner, _, _ := strings.Cut(rel, "/")
	return s.fs.RemoveAll(filepath.Join(s.root, owner))
}

func relative(ref string) (string, error) {
	rel, ok := strings.CutPrefix(ref, MediaScheme)
	owner, name, found := strings.Cut(rel, "/")
	if !ok || !found || owner == "" || name == "" || strings.Contains(rel, "..") {
		return "", fmt.Errorf("invalid media reference %q", ref)
	}
	return rel, nil
}

func IsMediaRef(content string) bool {
	return strings.HasPrefix(content, MediaScheme)
}
