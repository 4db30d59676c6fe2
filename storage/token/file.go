// Package token persists the client's single durable key: the session
// token string. It is the local-storage analog of the platform's browser
// client, backed by one file.
package token

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/dhamakuldeep-lab/sukhverse-core/core/session"
)

type FileStorage struct {
	path string
	mu   sync.Mutex
}

var _ session.TokenStorage = (*FileStorage)(nil)

func NewFileStorage(path string) (*FileStorage, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("token file path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrap(err, "creating token dir")
	}
	return &FileStorage{path: path}, nil
}

// Read returns the persisted token, or "" when none is stored.
func (s *FileStorage) Read() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrap(err, "reading token file")
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *FileStorage) Write(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return errors.Wrap(err, "writing token file")
	}
	return nil
}

// Clear removes the stored token; clearing an absent token is not an error.
func (s *FileStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing token file")
	}
	return nil
}
