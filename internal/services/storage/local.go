package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes objects to a directory on disk and serves them
// under a base URL. It is the development stand-in for the hosted
// bucket.
type LocalStore struct {
	dir     string
	baseURL string
}

var _ ObjectStore = (*LocalStore)(nil)

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *LocalStore) Put(ctx context.Context, key string, contentType string, data io.Reader) (string, error) {
	path := filepath.Join(s.dir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating object directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating object file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return "", fmt.Errorf("writing object %s: %w", key, err)
	}

	return s.baseURL + "/" + key, nil
}

// Dir returns the directory objects are written to, for serving them
// back over HTTP.
func (s *LocalStore) Dir() string {
	return s.dir
}
