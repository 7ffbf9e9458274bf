package session

import (
	"os"
	"path/filepath"
	"strings"
)

// TokenStore is a single named slot of durable key-value storage holding the
// bearer token as a raw string.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in one file under the user's config
// directory, the terminal analog of browser local storage.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore returns a store writing to path. When path is empty the
// default location under the user config dir is used.
func NewFileTokenStore(path string) (*FileTokenStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "shop-console", "token")
	}
	return &FileTokenStore{path: path}, nil
}

func (f *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (f *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.path, []byte(token), 0o600)
}

func (f *FileTokenStore) Clear() error {
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
