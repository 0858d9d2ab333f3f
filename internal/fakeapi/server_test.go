package fakeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/minitwitter-cli/internal/adapters/api/rest"
	"github.com/bnema/minitwitter-cli/internal/domain"
)

func newTestServer(t *testing.T, cfg Config) (*Server, rest.Client) {
	t.Helper()

	srv := New(cfg)
	httpServer := httptest.NewServer(srv.Handler())
	t.Cleanup(httpServer.Close)

	return srv, rest.Client{BaseURL: httpServer.URL + "/api", HTTPClient: httpServer.Client()}
}

func TestRegisterLoginAndProfile(t *testing.T) {
	_, client := newTestServer(t, Config{})
	ctx := context.Background()

	registered, err := client.Register(ctx, domain.Registration{Username: "ana", Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, registered.Token)
	assert.Equal(t, "ana", registered.User.Username)

	loggedIn, err := client.Login(ctx, domain.Credentials{Email: "ANA@example.com", Password: "secret1"})
	require.NoError(t, err)

	profile, err := client.GetProfile(ctx, loggedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User, profile)

	updated, err := client.UpdateProfile(ctx, loggedIn.Token, domain.ProfileUpdate{Username: "ana.s", Email: "ana.s@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "ana.s", updated.Username)
	assert.Equal(t, profile.ID, updated.ID)
}

func TestRegisterRejectsDuplicatesAndShortPasswords(t *testing.T) {
	_, client := newTestServer(t, Config{})
	ctx := context.Background()

	_, err := client.Register(ctx, domain.Registration{Username: "ana", Email: "ana@example.com", Password: "123"})
	require.ErrorIs(t, err, domain.ErrAPI)
	assert.Contains(t, domain.Message(err), "at least 6")

	_, err = client.Register(ctx, domain.Registration{Username: "ana", Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = client.Register(ctx, domain.Registration{Username: "other", Email: "ana@example.com", Password: "secret1"})
	require.ErrorIs(t, err, domain.ErrAPI)
	assert.Equal(t, "email already registered", domain.Message(err))
}

func TestLoginWithWrongPasswordIsNotUnauthorized(t *testing.T) {
	srv, client := newTestServer(t, Config{})
	_, _, err := srv.SeedUser("ana", "ana@example.com", "secret1")
	require.NoError(t, err)

	_, err = client.Login(context.Background(), domain.Credentials{Email: "ana@example.com", Password: "wrong-pass"})

	require.ErrorIs(t, err, domain.ErrAPI)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, "invalid email or password", domain.Message(err))
}

func TestPostsLifecycle(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	srv, client := newTestServer(t, Config{Now: func() time.Time { return now }})
	ctx := context.Background()

	anaID, anaToken, err := srv.SeedUser("ana", "ana@example.com", "secret1")
	require.NoError(t, err)
	brunoID, brunoToken, err := srv.SeedUser("bruno", "bruno@example.com", "secret1")
	require.NoError(t, err)
	_, err = srv.SeedPost(brunoID, "from bruno", now.Add(-time.Hour))
	require.NoError(t, err)

	created, err := client.CreatePost(ctx, anaToken, "hello")
	require.NoError(t, err)
	assert.Equal(t, domain.UserID(anaID), created.AuthorID)
	assert.Equal(t, "ana", created.AuthorUsername)
	assert.True(t, now.Equal(created.CreatedAt))

	all, err := client.ListPosts(ctx, brunoToken)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, created.ID, all[0].ID)

	own, err := client.ListOwnPosts(ctx, anaToken)
	require.NoError(t, err)
	require.Len(t, own, 1)

	err = client.DeletePost(ctx, brunoToken, created.ID)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	require.NoError(t, client.DeletePost(ctx, anaToken, created.ID))
	err = client.DeletePost(ctx, anaToken, created.ID)
	require.ErrorIs(t, err, domain.ErrAPI)
	assert.Equal(t, "post not found", domain.Message(err))
}

func TestCreatePostValidatesContent(t *testing.T) {
	srv, client := newTestServer(t, Config{})
	_, token, err := srv.SeedUser("ana", "ana@example.com", "secret1")
	require.NoError(t, err)

	_, err = client.CreatePost(context.Background(), token, strings.Repeat("a", 281))
	require.ErrorIs(t, err, domain.ErrAPI)

	_, err = client.CreatePost(context.Background(), token, strings.Repeat("é", 280))
	require.NoError(t, err)
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	secret := []byte("test-secret")
	srv, client := newTestServer(t, Config{Secret: secret, Now: func() time.Time { return now }})
	id, _, err := srv.SeedUser("ana", "ana@example.com", "secret1")
	require.NoError(t, err)

	_, err = client.GetProfile(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, "invalid token", domain.Message(err))

	expired, err := generateToken(id, secret, now.Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)
	_, err = client.ListPosts(context.Background(), expired)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokensFromAnotherSecretAreRejected(t *testing.T) {
	other := New(Config{Secret: []byte("other")})
	_, foreign, err := other.SeedUser("ana", "ana@example.com", "secret1")
	require.NoError(t, err)

	_, client := newTestServer(t, Config{Secret: []byte("mine")})
	_, err = client.GetProfile(context.Background(), foreign)

	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRejectsNonJSONBodies(t *testing.T) {
	srv := New(Config{})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("email=a"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestTokenRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token, err := generateToken("u1", []byte("k"), now, time.Minute)
	require.NoError(t, err)

	id, err := userIDFromToken(token, []byte("k"), func() time.Time { return now })
	require.NoError(t, err)
	assert.Equal(t, "u1", id)

	_, err = userIDFromToken(token, []byte("k"), func() time.Time { return now.Add(time.Hour) })
	require.Error(t, err)
}
