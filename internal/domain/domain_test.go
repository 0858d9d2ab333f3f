package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsValidate(t *testing.T) {
	tests := []struct {
		name    string
		creds   Credentials
		wantErr bool
	}{
		{name: "complete", creds: Credentials{Email: "ana@example.com", Password: "secret"}},
		{name: "empty email", creds: Credentials{Password: "secret"}, wantErr: true},
		{name: "blank email", creds: Credentials{Email: "   ", Password: "secret"}, wantErr: true},
		{name: "empty password", creds: Credentials{Email: "ana@example.com"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, "please fill in all fields", Message(err))

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, FormLogin, validationErr.Form)
		})
	}
}

func TestRegistrationValidateRequiresSixCharacterPassword(t *testing.T) {
	err := Registration{Username: "ana", Email: "ana@example.com", Password: "abc12"}.Validate()
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, Message(err), "minimum 6 characters")

	require.NoError(t, Registration{Username: "ana", Email: "ana@example.com", Password: "abc123"}.Validate())
}

func TestRegistrationValidateCountsRunes(t *testing.T) {
	require.NoError(t, Registration{Username: "ana", Email: "ana@example.com", Password: "ãéíõúç"}.Validate())
}

func TestRegistrationValidateChecksEmptyFieldsFirst(t *testing.T) {
	err := Registration{Username: "", Email: "ana@example.com", Password: "abc"}.Validate()
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "please fill in all fields", Message(err))
}

func TestProfileUpdateValidate(t *testing.T) {
	require.NoError(t, ProfileUpdate{Username: "ana", Email: "ana@example.com"}.Validate())

	err := ProfileUpdate{Username: "ana"}.Validate()
	require.ErrorIs(t, err, ErrValidation)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, FormProfile, validationErr.Form)
}

func TestValidatePostContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{name: "single character", content: "a"},
		{name: "exactly at limit", content: strings.Repeat("a", MaxPostLength)},
		{name: "multibyte at limit", content: strings.Repeat("é", MaxPostLength)},
		{name: "surrounding whitespace is trimmed", content: "  " + strings.Repeat("a", MaxPostLength) + "  "},
		{name: "empty", content: "", wantMsg: "post cannot be empty"},
		{name: "whitespace only", content: " \n\t ", wantMsg: "post cannot be empty"},
		{name: "one over the limit", content: strings.Repeat("a", MaxPostLength+1), wantMsg: "post exceeds the 280 character limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePostContent(tt.content)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.wantMsg, Message(err))
		})
	}
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	posts := []Post{
		{ID: "old", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "tie-a", CreatedAt: base.Add(time.Hour)},
		{ID: "tie-b", CreatedAt: base.Add(time.Hour)},
	}

	sorted := SortNewestFirst(posts)

	ids := make([]PostID, 0, len(sorted))
	for _, post := range sorted {
		ids = append(ids, post.ID)
	}
	assert.Equal(t, []PostID{"new", "tie-a", "tie-b", "old"}, ids)
	assert.Equal(t, PostID("old"), posts[0].ID, "input must not be reordered")

	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			assert.False(t, sorted[j].CreatedAt.After(sorted[i].CreatedAt))
		}
	}
}

func TestFilterByAuthor(t *testing.T) {
	posts := []Post{
		{ID: "1", AuthorID: "u1"},
		{ID: "2", AuthorID: "u2"},
		{ID: "3", AuthorID: "u1"},
	}

	got := FilterByAuthor(posts, "u1")
	require.Len(t, got, 2)
	assert.Equal(t, PostID("1"), got[0].ID)
	assert.Equal(t, PostID("3"), got[1].ID)

	assert.Empty(t, FilterByAuthor(posts, ""))
}

func TestAPIErrorClassification(t *testing.T) {
	unauthorized := fmt.Errorf("get profile: %w", &APIError{Op: "get profile", Status: http.StatusUnauthorized, Message: "invalid token"})
	forbidden := &APIError{Op: "delete post", Status: http.StatusForbidden, Message: "not yours"}
	conflict := &APIError{Op: "register", Status: http.StatusConflict, Message: "email already in use"}

	assert.ErrorIs(t, unauthorized, ErrUnauthorized)
	assert.ErrorIs(t, unauthorized, ErrAPI)
	assert.Equal(t, KindUnauthorized, KindOf(unauthorized))
	assert.Equal(t, "invalid token", Message(unauthorized))

	assert.Equal(t, KindUnauthorized, KindOf(forbidden))

	assert.NotErrorIs(t, conflict, ErrUnauthorized)
	assert.Equal(t, KindAPI, KindOf(conflict))
	assert.Equal(t, "email already in use", Message(conflict))
}

func TestNetworkErrorUnwrapsTransportError(t *testing.T) {
	transport := errors.New("connection refused")
	err := fmt.Errorf("list posts: %w", &NetworkError{Op: "list posts", Message: "unknown error while loading posts", Err: transport})

	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, transport)
	assert.Equal(t, KindNetwork, KindOf(err))
	assert.Equal(t, "unknown error while loading posts", Message(err))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNone, KindOf(nil))
	assert.Equal(t, KindValidation, KindOf(ValidatePostContent("")))
	assert.Equal(t, KindUnauthorized, KindOf(fmt.Errorf("create post: %w", ErrUnauthorized)))
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, "login required", Message(fmt.Errorf("create post: %w", ErrUnauthorized)))
}

func TestViewHelpers(t *testing.T) {
	assert.Equal(t, []View{ViewLogin, ViewRegister, ViewFeed, ViewProfile}, AllViews())
	assert.False(t, ViewLogin.RequiresSession())
	assert.False(t, ViewRegister.RequiresSession())
	assert.True(t, ViewFeed.RequiresSession())
	assert.True(t, ViewProfile.RequiresSession())

	view, err := ParseView(" Profile ")
	require.NoError(t, err)
	assert.Equal(t, ViewProfile, view)

	_, err = ParseView("settings")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown view")
}

func TestSessionActive(t *testing.T) {
	var missing *Session
	assert.False(t, missing.Active())
	assert.False(t, (&Session{}).Active())
	assert.True(t, (&Session{Token: "t"}).Active())
}
