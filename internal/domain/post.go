package domain

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

const MaxPostLength = 280

type PostID string

type Post struct {
	ID             PostID
	AuthorID       UserID
	AuthorUsername string
	Content        string
	CreatedAt      time.Time
}

func (p Post) OwnedBy(id UserID) bool {
	return id != "" && p.AuthorID == id
}

// ContentLength counts characters, not bytes.
func ContentLength(content string) int {
	return utf8.RuneCountInString(content)
}

func ValidatePostContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return &ValidationError{Form: FormPost, Message: msgEmptyPost}
	}
	if ContentLength(trimmed) > MaxPostLength {
		return &ValidationError{Form: FormPost, Message: msgPostTooLong}
	}

	return nil
}

// SortNewestFirst orders posts by CreatedAt descending. Equal timestamps keep
// the order the server returned them in.
func SortNewestFirst(posts []Post) []Post {
	sorted := make([]Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	return sorted
}

func FilterByAuthor(posts []Post, id UserID) []Post {
	filtered := make([]Post, 0, len(posts))
	for _, post := range posts {
		if post.OwnedBy(id) {
			filtered = append(filtered, post)
		}
	}

	return filtered
}
