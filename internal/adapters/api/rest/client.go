// Package rest is the HTTP client for the mini-twitter API. Every failure is
// reported once, as a domain.APIError, a domain.NetworkError or
// domain.ErrUnauthorized; nothing is retried.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/minitwitter-cli/internal/domain"
	"github.com/bnema/minitwitter-cli/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxResponseBytes      = 1 << 20
	defaultRequestTimeout = 30 * time.Second
	requestIDHeader       = "X-Request-Id"
)

type operation struct {
	name     string
	fallback string
}

var (
	opRegister      = operation{name: "register", fallback: "unknown error while registering"}
	opLogin         = operation{name: "login", fallback: "unknown error while logging in"}
	opGetProfile    = operation{name: "get profile", fallback: "unknown error while loading profile"}
	opUpdateProfile = operation{name: "update profile", fallback: "unknown error while updating profile"}
	opListPosts     = operation{name: "list posts", fallback: "unknown error while loading posts"}
	opListOwnPosts  = operation{name: "list own posts", fallback: "unknown error while loading your posts"}
	opCreatePost    = operation{name: "create post", fallback: "unknown error while creating post"}
	opDeletePost    = operation{name: "delete post", fallback: "unknown error while deleting post"}
)

type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	UserAgent      string
	Logger         *zap.Logger
	NewRequestID   func() string
}

var _ ports.MiniTwitterAPI = Client{}

func (c Client) Register(ctx context.Context, registration domain.Registration) (domain.AuthResult, error) {
	var payload authResponse
	err := c.do(ctx, opRegister, http.MethodPost, "auth/register", "", registerRequest{
		Username: registration.Username,
		Email:    registration.Email,
		Password: registration.Password,
	}, &payload)
	if err != nil {
		return domain.AuthResult{}, err
	}

	return payload.toDomain(opRegister)
}

func (c Client) Login(ctx context.Context, credentials domain.Credentials) (domain.AuthResult, error) {
	var payload authResponse
	err := c.do(ctx, opLogin, http.MethodPost, "auth/login", "", loginRequest{
		Email:    credentials.Email,
		Password: credentials.Password,
	}, &payload)
	if err != nil {
		return domain.AuthResult{}, err
	}

	return payload.toDomain(opLogin)
}

func (c Client) GetProfile(ctx context.Context, token string) (domain.User, error) {
	if err := requireToken(opGetProfile, token); err != nil {
		return domain.User{}, err
	}

	var payload userPayload
	if err := c.do(ctx, opGetProfile, http.MethodGet, "users/profile", token, nil, &payload); err != nil {
		return domain.User{}, err
	}

	return payload.toDomain(), nil
}

func (c Client) UpdateProfile(ctx context.Context, token string, update domain.ProfileUpdate) (domain.User, error) {
	if err := requireToken(opUpdateProfile, token); err != nil {
		return domain.User{}, err
	}

	var payload userEnvelope
	err := c.do(ctx, opUpdateProfile, http.MethodPut, "users/profile", token, profileRequest{
		Username: update.Username,
		Email:    update.Email,
	}, &payload)
	if err != nil {
		return domain.User{}, err
	}

	return payload.User.toDomain(), nil
}

func (c Client) ListPosts(ctx context.Context, token string) ([]domain.Post, error) {
	return c.listPosts(ctx, opListPosts, "posts", token)
}

func (c Client) ListOwnPosts(ctx context.Context, token string) ([]domain.Post, error) {
	return c.listPosts(ctx, opListOwnPosts, "posts/my-posts", token)
}

func (c Client) CreatePost(ctx context.Context, token string, content string) (domain.Post, error) {
	if err := requireToken(opCreatePost, token); err != nil {
		return domain.Post{}, err
	}

	var payload postPayload
	if err := c.do(ctx, opCreatePost, http.MethodPost, "posts", token, createPostRequest{Content: content}, &payload); err != nil {
		return domain.Post{}, err
	}

	return payload.toDomain(), nil
}

func (c Client) DeletePost(ctx context.Context, token string, id domain.PostID) error {
	if err := requireToken(opDeletePost, token); err != nil {
		return err
	}
	if strings.TrimSpace(string(id)) == "" {
		return errors.New("delete post: post id is required")
	}

	return c.do(ctx, opDeletePost, http.MethodDelete, "posts/"+url.PathEscape(string(id)), token, nil, nil)
}

func (c Client) listPosts(ctx context.Context, op operation, path string, token string) ([]domain.Post, error) {
	if err := requireToken(op, token); err != nil {
		return nil, err
	}

	var payload []postPayload
	if err := c.do(ctx, op, http.MethodGet, path, token, nil, &payload); err != nil {
		return nil, err
	}

	return postsToDomain(payload), nil
}

func (r authResponse) toDomain(op operation) (domain.AuthResult, error) {
	if strings.TrimSpace(r.Token) == "" {
		return domain.AuthResult{}, &domain.APIError{Op: op.name, Status: http.StatusOK, Message: "response missing token"}
	}

	return domain.AuthResult{Token: r.Token, User: r.User.toDomain()}, nil
}

func requireToken(op operation, token string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("%s: token not available: %w", op.name, domain.ErrUnauthorized)
	}

	return nil
}

func (c Client) do(ctx context.Context, op operation, method string, path string, token string, body any, out any) error {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return fmt.Errorf("%s: %w", op.name, err)
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op.name, err)
		}
		reader = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op.name, err)
	}

	requestID := c.requestID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger := c.logger().With(
		zap.String("op", op.name),
		zap.String("method", method),
		zap.String("path", req.URL.Path),
		zap.String("request_id", requestID),
	)
	started := time.Now()

	resp, err := c.httpClient().Do(req)
	if err != nil {
		logger.Warn("request failed", zap.Error(err))
		return &domain.NetworkError{Op: op.name, Message: op.fallback, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		logger.Warn("read response failed", zap.Int("status", resp.StatusCode), zap.Error(err))
		return &domain.NetworkError{Op: op.name, Message: op.fallback, Err: fmt.Errorf("read response: %w", err)}
	}

	logger.Debug("request completed", zap.Int("status", resp.StatusCode), zap.Duration("elapsed", time.Since(started)))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &domain.APIError{Op: op.name, Status: resp.StatusCode, Message: errorMessage(data, op.fallback)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &domain.APIError{Op: op.name, Status: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
	}

	return nil
}

func errorMessage(body []byte, fallback string) string {
	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallback
	}
	if message := strings.TrimSpace(payload.Message); message != "" {
		return message
	}

	return fallback
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}

func (c Client) requestID() string {
	if c.NewRequestID != nil {
		return c.NewRequestID()
	}
	return uuid.NewString()
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return parsed.JoinPath(path).String(), nil
}
