package fakeapi

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	errEmailTaken         = errors.New("email already registered")
	errInvalidCredentials = errors.New("invalid email or password")
	errUserNotFound       = errors.New("user not found")
	errPostNotFound       = errors.New("post not found")
	errNotPostOwner       = errors.New("you can only delete your own posts")
)

type user struct {
	ID           string
	Username     string
	Email        string
	PasswordHash []byte
}

type post struct {
	ID        string
	AuthorID  string
	Content   string
	CreatedAt time.Time
}

// store keeps users and posts in memory. Emails are matched case-insensitively.
type store struct {
	mu         sync.RWMutex
	users      map[string]user
	emails     map[string]string
	posts      map[string]post
	bcryptCost int
}

func newStore(bcryptCost int) *store {
	return &store{
		users:      make(map[string]user),
		emails:     make(map[string]string),
		posts:      make(map[string]post),
		bcryptCost: bcryptCost,
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *store) createUser(username, email, password string) (user, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return user{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := emailKey(email)
	if _, taken := s.emails[key]; taken {
		return user{}, errEmailTaken
	}

	u := user{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(username),
		Email:        strings.TrimSpace(email),
		PasswordHash: hash,
	}
	s.users[u.ID] = u
	s.emails[key] = u.ID

	return u, nil
}

func (s *store) authenticate(email, password string) (user, error) {
	s.mu.RLock()
	id, ok := s.emails[emailKey(email)]
	u := s.users[id]
	s.mu.RUnlock()

	if !ok {
		return user{}, errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return user{}, errInvalidCredentials
	}

	return u, nil
}

func (s *store) user(id string) (user, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return user{}, errUserNotFound
	}

	return u, nil
}

func (s *store) updateUser(id, username, email string) (user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return user{}, errUserNotFound
	}

	newKey := emailKey(email)
	if owner, taken := s.emails[newKey]; taken && owner != id {
		return user{}, errEmailTaken
	}

	delete(s.emails, emailKey(u.Email))
	u.Username = strings.TrimSpace(username)
	u.Email = strings.TrimSpace(email)
	s.users[id] = u
	s.emails[newKey] = id

	return u, nil
}

func (s *store) createPost(authorID, content string, now time.Time) post {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := post{
		ID:        uuid.NewString(),
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: now.UTC(),
	}
	s.posts[p.ID] = p

	return p
}

func (s *store) deletePost(id, requesterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return errPostNotFound
	}
	if p.AuthorID != requesterID {
		return errNotPostOwner
	}
	delete(s.posts, id)

	return nil
}

// listPosts returns posts newest first, optionally restricted to one author.
func (s *store) listPosts(authorID string) []post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]post, 0, len(s.posts))
	for _, p := range s.posts {
		if authorID != "" && p.AuthorID != authorID {
			continue
		}
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID < posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	return posts
}

func (s *store) username(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.users[id].Username
}
