package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/minitwitter-cli/internal/adapters/tokenstore/pass"
	"github.com/bnema/minitwitter-cli/internal/domain"
	portmocks "github.com/bnema/minitwitter-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewStoreRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore(nil, portmocks.NewMockTokenStore(t))
	require.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStore(portmocks.NewMockTokenStore(t), nil)
	require.ErrorIs(t, err, errNilFallbackStore)
}

func newChain(t *testing.T, primary, fallback *portmocks.MockTokenStore) *Store {
	t.Helper()

	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	return store
}

func TestStoreLoadUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockTokenStore(t)
	fallback := portmocks.NewMockTokenStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Load(mock.Anything).Return("from-pass", nil).Once()

	value, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreLoadFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockTokenStore(t)
	fallback := portmocks.NewMockTokenStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Load(mock.Anything).Return("", pass.ErrUnavailable).Once()
	fallback.EXPECT().Load(mock.Anything).Return("from-file", nil).Once()

	value, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreLoadReturnsNotFoundWhenNeitherBackendHasToken(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockTokenStore(t)
	fallback := portmocks.NewMockTokenStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Load(mock.Anything).Return("", domain.ErrTokenNotFound).Once()
	fallback.EXPECT().Load(mock.Anything).Return("", domain.ErrTokenNotFound).Once()

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestStoreLoadReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockTokenStore(t)
	fallback := portmocks.NewMockTokenStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Load(mock.Anything).Return("", errors.New("pass failed")).Once()
	fallback.EXPECT().Load(mock.Anything).Return("", errors.New("file failed")).Once()

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "fallback backend")
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorContains(t, err, "file failed")
}

func TestStoreLoadDoesNotFallbackOnCanceledContextError(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockTokenStore(t)
	fallback := portmocks.NewMockTokenStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Load(mock.Anything).Return("", context.Canceled).Once()

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, context.Canceled)
}

func TestStoreSaveFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockTokenStore(t)
	fallback := portmocks.NewMockTokenStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Save(mock.Anything, "jwt").Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Save(mock.Anything, "jwt").Return(nil).Once()

	require.NoError(t, store.Save(context.Background(), "jwt"))
}

func TestStoreSaveDoesNotCallFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockTokenStore(t)
	fallback := portmocks.NewMockTokenStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Save(mock.Anything, "jwt").Return(nil).Once()

	require.NoError(t, store.Save(context.Background(), "jwt"))
}

func TestStoreClearReachesBothBackends(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockTokenStore(t)
	fallback := portmocks.NewMockTokenStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Clear(mock.Anything).Return(nil).Once()
	fallback.EXPECT().Clear(mock.Anything).Return(nil).Once()

	require.NoError(t, store.Clear(context.Background()))
}

func TestStoreClearToleratesUnavailablePrimary(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockTokenStore(t)
	fallback := portmocks.NewMockTokenStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Clear(mock.Anything).Return(pass.ErrUnavailable).Once()
	fallback.EXPECT().Clear(mock.Anything).Return(nil).Once()

	require.NoError(t, store.Clear(context.Background()))
}

func TestStoreClearReportsBackendFailures(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockTokenStore(t)
	fallback := portmocks.NewMockTokenStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Clear(mock.Anything).Return(nil).Once()
	fallback.EXPECT().Clear(mock.Anything).Return(errors.New("permission denied")).Once()

	err := store.Clear(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "permission denied")
}
