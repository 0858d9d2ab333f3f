package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/minitwitter-cli/internal/adapters/tokenstore/file"
	"github.com/bnema/minitwitter-cli/internal/adapters/tokenstore/pass"
	"github.com/bnema/minitwitter-cli/internal/domain"
	"github.com/bnema/minitwitter-cli/internal/ports"
)

// Store reads and writes through primary, falling back to the secondary
// backend. Clear always reaches both so a logout cannot be undone by a token
// left behind in the other backend.
type Store struct {
	primary  ports.TokenStore
	fallback ports.TokenStore
}

var _ ports.TokenStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary token store is nil")
	errNilFallbackStore = errors.New("fallback token store is nil")
)

func NewStore(primary ports.TokenStore, fallback ports.TokenStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewPassFirstWithFileFallback(passEntry string, fileRoot string, fileKey string) (*Store, error) {
	fileStore, err := file.NewStore(fileRoot, fileKey)
	if err != nil {
		return nil, err
	}

	return NewStore(pass.NewStore(passEntry), fileStore)
}

func (s *Store) Load(ctx context.Context) (string, error) {
	token, err := s.primary.Load(ctx)
	if err == nil {
		return token, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackToken, fallbackErr := s.fallback.Load(ctx)
	if fallbackErr == nil {
		return fallbackToken, nil
	}

	if errors.Is(err, domain.ErrTokenNotFound) && errors.Is(fallbackErr, domain.ErrTokenNotFound) {
		return "", domain.ErrTokenNotFound
	}

	return "", fmt.Errorf("primary backend load failed: %w; fallback backend load failed: %w", err, fallbackErr)
}

func (s *Store) Save(ctx context.Context, token string) error {
	err := s.primary.Save(ctx, token)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Save(ctx, token)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend save failed: %w; fallback backend save failed: %w", err, fallbackErr)
}

func (s *Store) Clear(ctx context.Context) error {
	err := s.primary.Clear(ctx)
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Clear(ctx)
	if err == nil && fallbackErr == nil {
		return nil
	}
	if err != nil && errors.Is(err, pass.ErrUnavailable) && fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("clear token: %w", errors.Join(err, fallbackErr))
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
