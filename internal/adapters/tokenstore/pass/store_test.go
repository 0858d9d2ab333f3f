package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/minitwitter-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const entry = "minitwitter/token"

func TestStoreSaveUsesPassInsert(t *testing.T) {
	t.Parallel()

	called := false
	store := &Store{
		entry: entry,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			called = true
			assert.Equal(t, []string{"insert", "-m", "-f", entry}, args)
			assert.Equal(t, "jwt-value\n", input)
			return "", "", nil
		},
	}

	err := store.Save(context.Background(), "jwt-value")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestStoreLoadUsesPassShowAndTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	store := &Store{
		entry: entry,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"show", entry}, args)
			assert.Empty(t, input)
			return "jwt-value\r\n", "", nil
		},
	}

	value, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "jwt-value", value)
}

func TestStoreLoadMapsMissingEntryToNotFound(t *testing.T) {
	t.Parallel()

	store := &Store{
		entry: entry,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "Error: minitwitter/token is not in the password store.", errors.New("exit status 1")
		},
	}

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestStoreLoadReturnsClearError(t *testing.T) {
	t.Parallel()

	store := &Store{
		entry: entry,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "gpg: decryption failed", errors.New("exit status 2")
		},
	}

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTokenNotFound)
	assert.ErrorContains(t, err, "pass show")
	assert.ErrorContains(t, err, entry)
	assert.ErrorContains(t, err, "gpg: decryption failed")
}

func TestStoreClearUsesPassRemoveAndIgnoresMissingEntry(t *testing.T) {
	t.Parallel()

	calls := 0
	store := &Store{
		entry: entry,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			calls++
			assert.Equal(t, []string{"rm", "-f", entry}, args)
			if calls == 1 {
				return "", "", nil
			}
			return "", "Error: minitwitter/token is not in the password store.", errors.New("exit status 1")
		},
	}

	require.NoError(t, store.Clear(context.Background()))
	require.NoError(t, store.Clear(context.Background()))
	assert.Equal(t, 2, calls)
}

func TestStoreSurfacesUnavailableBinary(t *testing.T) {
	t.Parallel()

	store := &Store{
		entry: entry,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "", ErrUnavailable
		},
	}

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}
