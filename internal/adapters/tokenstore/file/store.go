package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/minitwitter-cli/internal/domain"
	"github.com/bnema/minitwitter-cli/internal/ports"
)

const (
	storeDirMode   = 0o700
	tokenFileMode  = 0o600
	tempFilePrefix = ".token-*.tmp"
)

type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.TokenStore = (*Store)(nil)

func NewStore(root string, key string) (*Store, error) {
	path, err := pathForKey(filepath.Clean(root), key)
	if err != nil {
		return nil, err
	}

	return &Store{path: path}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("token file %q: %w", s.path, domain.ErrTokenNotFound)
		}
		return "", fmt.Errorf("read token file %q: %w", s.path, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %q is empty: %w", s.path, domain.ErrTokenNotFound)
	}

	return token, nil
}

func (s *Store) Save(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(token) == "" {
		return errors.New("refusing to save an empty token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, storeDirMode); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePrefix)
	if err != nil {
		return fmt.Errorf("create temp token file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if err := tempFile.Chmod(tokenFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp token file: %w", err)
	}

	if _, err := tempFile.WriteString(token); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp token file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp token file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace token file: %w", err)
	}

	cleanup = false
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete token file %q: %w", s.path, err)
	}

	return nil
}

func pathForKey(root string, key string) (string, error) {
	cleaned, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	return filepath.Join(root, cleaned), nil
}

// ValidateKey reports whether key names a file inside the store directory.
func ValidateKey(key string) error {
	_, err := cleanKey(key)
	return err
}

func cleanKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("token key is empty")
	}

	cleaned := filepath.Clean(trimmed)
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") || cleaned == "." {
		return "", fmt.Errorf("invalid token key %q", key)
	}

	return cleaned, nil
}
