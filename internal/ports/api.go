package ports

import (
	"context"

	"github.com/bnema/minitwitter-cli/internal/domain"
)

// MiniTwitterAPI is the remote service. Authenticated calls take the bearer
// token explicitly and must fail with domain.ErrUnauthorized when it is empty.
type MiniTwitterAPI interface {
	Register(ctx context.Context, registration domain.Registration) (domain.AuthResult, error)
	Login(ctx context.Context, credentials domain.Credentials) (domain.AuthResult, error)
	GetProfile(ctx context.Context, token string) (domain.User, error)
	UpdateProfile(ctx context.Context, token string, update domain.ProfileUpdate) (domain.User, error)
	ListPosts(ctx context.Context, token string) ([]domain.Post, error)
	ListOwnPosts(ctx context.Context, token string) ([]domain.Post, error)
	CreatePost(ctx context.Context, token string, content string) (domain.Post, error)
	DeletePost(ctx context.Context, token string, id domain.PostID) error
}
