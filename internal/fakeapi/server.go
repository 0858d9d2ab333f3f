// Package fakeapi is an in-memory MiniTwitter server. It speaks the same REST
// contract as the real backend and backs the dev-server command and the
// end-to-end tests.
package fakeapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultTokenTTL = 24 * time.Hour

	maxPostLength     = 280
	minPasswordLength = 6
	maxBodyBytes      = 1 << 20
)

type Config struct {
	// Secret signs issued tokens. Empty means a fixed development secret.
	Secret   []byte
	TokenTTL time.Duration
	Logger   *zap.Logger
	Now      func() time.Time
	// BcryptCost defaults to bcrypt.MinCost to keep tests fast.
	BcryptCost int
}

type Server struct {
	store    *store
	secret   []byte
	tokenTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

func New(cfg Config) *Server {
	if len(cfg.Secret) == 0 {
		cfg.Secret = []byte("minitwitter-dev-secret")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.MinCost
	}

	return &Server{
		store:    newStore(cfg.BcryptCost),
		secret:   cfg.Secret,
		tokenTTL: cfg.TokenTTL,
		logger:   cfg.Logger,
		now:      cfg.Now,
	}
}

// Handler mounts every route under /api.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(s.requestLogging)
	r.Use(chiMiddleware.AllowContentType("application/json"))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Get("/users/profile", s.handleGetProfile)
			r.Put("/users/profile", s.handleUpdateProfile)
			r.Get("/posts", s.handleListPosts)
			r.Get("/posts/my-posts", s.handleListOwnPosts)
			r.Post("/posts", s.handleCreatePost)
			r.Delete("/posts/{id}", s.handleDeletePost)
		})
	})

	return r
}

// SeedUser registers a user directly and returns a token for it.
func (s *Server) SeedUser(username, email, password string) (string, string, error) {
	u, err := s.store.createUser(username, email, password)
	if err != nil {
		return "", "", err
	}

	token, err := generateToken(u.ID, s.secret, s.now(), s.tokenTTL)
	if err != nil {
		return "", "", err
	}

	return u.ID, token, nil
}

// SeedPost stores a post for an existing user at the given time.
func (s *Server) SeedPost(authorID, content string, createdAt time.Time) (string, error) {
	if _, err := s.store.user(authorID); err != nil {
		return "", err
	}

	return s.store.createPost(authorID, content, createdAt).ID, nil
}

type ctxKey string

const userIDKey ctxKey = "user_id"

func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			writeError(w, http.StatusUnauthorized, "missing token")
			return
		}

		userID, err := userIDFromToken(strings.TrimSpace(token), s.secret, s.now)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		if _, err := s.store.user(userID); err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

func (s *Server) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := s.now()
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.String("request_id", chiMiddleware.GetReqID(r.Context())),
			zap.Duration("duration", s.now().Sub(started)),
		)
	})
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

type postRequest struct {
	Content string `json:"content"`
}

type userResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type authorResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

type postResponse struct {
	ID        string         `json:"_id"`
	Content   string         `json:"content"`
	Author    authorResponse `json:"author"`
	CreatedAt time.Time      `json:"createdAt"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type userEnvelope struct {
	User userResponse `json:"user"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if blank(req.Username) || blank(req.Email) || blank(req.Password) {
		writeError(w, http.StatusBadRequest, "username, email and password are required")
		return
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "password must have at least 6 characters")
		return
	}

	u, err := s.store.createUser(req.Username, req.Email, req.Password)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	s.writeAuth(w, http.StatusCreated, u)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if blank(req.Email) || blank(req.Password) {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	u, err := s.store.authenticate(req.Email, req.Password)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	s.writeAuth(w, http.StatusOK, u)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	u, err := s.store.user(userIDFromContext(r.Context()))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if blank(req.Username) || blank(req.Email) {
		writeError(w, http.StatusBadRequest, "username and email are required")
		return
	}

	u, err := s.store.updateUser(userIDFromContext(r.Context()), req.Username, req.Email)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userEnvelope{User: toUserResponse(u)})
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.toPostResponses(s.store.listPosts("")))
}

func (s *Server) handleListOwnPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.toPostResponses(s.store.listPosts(userIDFromContext(r.Context()))))
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}
	if utf8.RuneCountInString(content) > maxPostLength {
		writeError(w, http.StatusBadRequest, "content exceeds 280 characters")
		return
	}

	p := s.store.createPost(userIDFromContext(r.Context()), content, s.now())
	writeJSON(w, http.StatusCreated, s.toPostResponse(p))
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	if err := s.store.deletePost(chi.URLParam(r, "id"), userIDFromContext(r.Context())); err != nil {
		s.writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}

func (s *Server) writeAuth(w http.ResponseWriter, status int, u user) {
	token, err := generateToken(u.ID, s.secret, s.now(), s.tokenTTL)
	if err != nil {
		s.logger.Error("sign token", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	writeJSON(w, status, authResponse{Token: token, User: toUserResponse(u)})
}

func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errEmailTaken):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, errInvalidCredentials):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errUserNotFound), errors.Is(err, errPostNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errNotPostOwner):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		s.logger.Error("unexpected store error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) toPostResponses(posts []post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, s.toPostResponse(p))
	}

	return out
}

func (s *Server) toPostResponse(p post) postResponse {
	return postResponse{
		ID:        p.ID,
		Content:   p.Content,
		Author:    authorResponse{ID: p.AuthorID, Username: s.store.username(p.AuthorID)},
		CreatedAt: p.CreatedAt,
	}
}

func toUserResponse(u user) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}
