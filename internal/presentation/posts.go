package presentation

import (
	"time"

	"github.com/bnema/minitwitter-cli/internal/domain"
)

const (
	DefaultTimeLayout     = "02/01/2006 15:04"
	EmptyPostsPlaceholder = "No posts found."
)

type Format struct {
	Layout   string
	Location *time.Location
}

func DefaultFormat() Format {
	return Format{Layout: DefaultTimeLayout, Location: time.Local}
}

func (f Format) Timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	layout := f.Layout
	if layout == "" {
		layout = DefaultTimeLayout
	}
	loc := f.Location
	if loc == nil {
		loc = time.Local
	}

	return t.In(loc).Format(layout)
}

type PostCard struct {
	ID        domain.PostID
	Author    string
	Timestamp string
	Content   string
	Deletable bool
}

// PostList is a complete rendering of one post container. Placeholder is set
// only when there are no cards.
type PostList struct {
	Cards       []PostCard
	Placeholder string
}

func (l PostList) Empty() bool {
	return len(l.Cards) == 0
}

// RenderPosts builds a fresh list for posts in the given order. The delete
// control is offered only on posts authored by viewer.
func RenderPosts(posts []domain.Post, viewer domain.UserID, format Format) PostList {
	if len(posts) == 0 {
		return PostList{Placeholder: EmptyPostsPlaceholder}
	}

	cards := make([]PostCard, 0, len(posts))
	for _, post := range posts {
		cards = append(cards, PostCard{
			ID:        post.ID,
			Author:    "@" + post.AuthorUsername,
			Timestamp: format.Timestamp(post.CreatedAt),
			Content:   post.Content,
			Deletable: post.OwnedBy(viewer),
		})
	}

	return PostList{Cards: cards}
}
