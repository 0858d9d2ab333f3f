package rest

import (
	"time"

	"github.com/bnema/minitwitter-cli/internal/domain"
)

type userPayload struct {
	MongoID  string `json:"_id"`
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (p userPayload) toDomain() domain.User {
	id := p.MongoID
	if id == "" {
		id = p.ID
	}

	return domain.User{ID: domain.UserID(id), Username: p.Username, Email: p.Email}
}

type authorPayload struct {
	MongoID  string `json:"_id"`
	ID       string `json:"id"`
	Username string `json:"username"`
}

type postPayload struct {
	MongoID   string        `json:"_id"`
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Author    authorPayload `json:"author"`
	CreatedAt time.Time     `json:"createdAt"`
}

func (p postPayload) toDomain() domain.Post {
	id := p.MongoID
	if id == "" {
		id = p.ID
	}
	authorID := p.Author.MongoID
	if authorID == "" {
		authorID = p.Author.ID
	}

	return domain.Post{
		ID:             domain.PostID(id),
		AuthorID:       domain.UserID(authorID),
		AuthorUsername: p.Author.Username,
		Content:        p.Content,
		CreatedAt:      p.CreatedAt,
	}
}

func postsToDomain(payloads []postPayload) []domain.Post {
	posts := make([]domain.Post, 0, len(payloads))
	for _, payload := range payloads {
		posts = append(posts, payload.toDomain())
	}

	return posts
}

type authResponse struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

type userEnvelope struct {
	User userPayload `json:"user"`
}

type errorResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type createPostRequest struct {
	Content string `json:"content"`
}
