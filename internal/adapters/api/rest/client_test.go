package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/minitwitter-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return Client{
		BaseURL:      server.URL + "/api",
		HTTPClient:   server.Client(),
		UserAgent:    "mt/test",
		NewRequestID: func() string { return "req-1" },
	}
}

func TestLoginPostsCredentialsAndDecodesSession(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		assert.Equal(t, "mt/test", r.Header.Get("User-Agent"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"email": "ana@example.com", "password": "secret1"}, body)

		_, _ = w.Write([]byte(`{"token":"jwt-1","user":{"_id":"u1","username":"ana","email":"ana@example.com"}}`))
	})

	result, err := client.Login(context.Background(), domain.Credentials{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, domain.AuthResult{
		Token: "jwt-1",
		User:  domain.User{ID: "u1", Username: "ana", Email: "ana@example.com"},
	}, result)
}

func TestRegisterSurfacesServerMessage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Email already registered"}`))
	})

	_, err := client.Register(context.Background(), domain.Registration{Username: "ana", Email: "ana@example.com", Password: "secret1"})
	require.ErrorIs(t, err, domain.ErrAPI)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, "Email already registered", domain.Message(err))

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "register", apiErr.Op)
}

func TestErrorWithoutMessageUsesFallback(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})

	_, err := client.Login(context.Background(), domain.Credentials{Email: "a", Password: "b"})
	require.ErrorIs(t, err, domain.ErrAPI)
	assert.Equal(t, "unknown error while logging in", domain.Message(err))
}

func TestLoginWithoutTokenInResponseFails(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"_id":"u1"}}`))
	})

	_, err := client.Login(context.Background(), domain.Credentials{Email: "a", Password: "b"})
	require.ErrorIs(t, err, domain.ErrAPI)
	assert.Equal(t, "response missing token", domain.Message(err))
}

func TestGetProfileSendsBearerAndMaps401ToUnauthorized(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/users/profile", r.URL.Path)
		assert.Equal(t, "Bearer stale-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Token inválido"}`))
	})

	_, err := client.GetProfile(context.Background(), "stale-token")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
	assert.Equal(t, "Token inválido", domain.Message(err))
}

func TestAuthenticatedCallsFailFastWithoutToken(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})
	ctx := context.Background()

	_, err := client.GetProfile(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = client.UpdateProfile(ctx, " ", domain.ProfileUpdate{Username: "a", Email: "b"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = client.ListPosts(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = client.ListOwnPosts(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = client.CreatePost(ctx, "", "hello")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.ErrorIs(t, client.DeletePost(ctx, "", "p1"), domain.ErrUnauthorized)

	assert.Zero(t, hits.Load())
}

func TestListPostsDecodesAuthorAndTimestamps(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/posts", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"_id":"p1","content":"first","author":{"_id":"u1","username":"ana"},"createdAt":"2026-03-01T12:00:00.000Z"},
			{"id":"p2","content":"second","author":{"id":"u2","username":"bruno"},"createdAt":"2026-03-01T13:30:00Z"}
		]`))
	})

	posts, err := client.ListPosts(context.Background(), "jwt-1")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, domain.Post{
		ID:             "p1",
		AuthorID:       "u1",
		AuthorUsername: "ana",
		Content:        "first",
		CreatedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}, posts[0])
	assert.Equal(t, domain.PostID("p2"), posts[1].ID)
	assert.Equal(t, domain.UserID("u2"), posts[1].AuthorID)
}

func TestListOwnPostsUsesMyPostsPath(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/posts/my-posts", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	})

	posts, err := client.ListOwnPosts(context.Background(), "jwt-1")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestCreatePostSendsContent(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/posts", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hello world", body["content"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"p9","content":"hello world","author":{"_id":"u1","username":"ana"},"createdAt":"2026-03-01T12:00:00Z"}`))
	})

	post, err := client.CreatePost(context.Background(), "jwt-1", "hello world")
	require.NoError(t, err)
	assert.Equal(t, domain.PostID("p9"), post.ID)
}

func TestDeletePostTargetsID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/posts/p1", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"Post deleted"}`))
	})

	require.NoError(t, client.DeletePost(context.Background(), "jwt-1", "p1"))
}

func TestDeletePostForbiddenIsUnauthorized(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Not allowed"}`))
	})

	err := client.DeletePost(context.Background(), "jwt-1", "p1")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUpdateProfileReturnsServerRecord(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/users/profile", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"ok","user":{"_id":"u1","username":"ana.b","email":"ana.b@example.com"}}`))
	})

	user, err := client.UpdateProfile(context.Background(), "jwt-1", domain.ProfileUpdate{Username: "ana.b", Email: "ana.b@example.com"})
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: "u1", Username: "ana.b", Email: "ana.b@example.com"}, user)
}

func TestUnreachableServerIsNetworkFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := Client{BaseURL: baseURL}
	_, err := client.ListPosts(context.Background(), "jwt-1")
	require.ErrorIs(t, err, domain.ErrNetwork)
	assert.Equal(t, "unknown error while loading posts", domain.Message(err))
}

func TestRequestTimesOutWithoutCallerDeadline(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	})
	client.RequestTimeout = 20 * time.Millisecond

	_, err := client.ListPosts(context.Background(), "jwt-1")
	require.ErrorIs(t, err, domain.ErrNetwork)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBuildAPIURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
		path    string
		want    string
		wantErr string
	}{
		{name: "keeps base path", baseURL: "https://example.com/api", path: "posts", want: "https://example.com/api/posts"},
		{name: "trailing slash", baseURL: "https://example.com/api/", path: "auth/login", want: "https://example.com/api/auth/login"},
		{name: "no base path", baseURL: "http://localhost:3000", path: "posts/my-posts", want: "http://localhost:3000/posts/my-posts"},
		{name: "empty base", baseURL: "", path: "posts", wantErr: "api base url is required"},
		{name: "bad scheme", baseURL: "ftp://example.com", path: "posts", wantErr: "must use http or https"},
		{name: "missing host", baseURL: "http://", path: "posts", wantErr: "host is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildAPIURL(tt.baseURL, tt.path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
