package application

import (
	"github.com/bnema/minitwitter-cli/internal/domain"
	"github.com/bnema/minitwitter-cli/internal/presentation"
)

// Nav holds the visibility of the navigation entries.
type Nav struct {
	Login    bool
	Register bool
	Feed     bool
	Profile  bool
	Logout   bool
}

func navFor(signedIn bool) Nav {
	return Nav{
		Login:    !signedIn,
		Register: !signedIn,
		Feed:     signedIn,
		Profile:  signedIn,
		Logout:   signedIn,
	}
}

type EditForm struct {
	Visible  bool
	Username string
	Email    string
}

type Compose struct {
	Content string
	Counter presentation.Counter
}

func emptyCompose() Compose {
	return Compose{Counter: presentation.CharCount(0, domain.MaxPostLength)}
}

// Screen is everything a renderer needs to draw the client. Values returned
// by Orchestrator.Snapshot share no memory with the orchestrator.
type Screen struct {
	Views         []presentation.ViewState
	State         domain.SessionState
	Nav           Nav
	Viewer        domain.User
	LoginError    string
	RegisterError string
	Notice        string
	Feed          presentation.PostList
	OwnPosts      presentation.PostList
	Profile       domain.User
	Edit          EditForm
	Compose       Compose
}

func newScreen() Screen {
	return Screen{
		Views:    presentation.ShowView(domain.ViewLogin, domain.AllViews()),
		State:    domain.StateAnonymous,
		Nav:      navFor(false),
		Feed:     presentation.PostList{Placeholder: presentation.EmptyPostsPlaceholder},
		OwnPosts: presentation.PostList{Placeholder: presentation.EmptyPostsPlaceholder},
		Compose:  emptyCompose(),
	}
}

// ActiveView reports the single active view. A fresh screen starts on Login.
func (s Screen) ActiveView() domain.View {
	view, ok := presentation.ActiveView(s.Views)
	if !ok {
		return domain.ViewLogin
	}

	return view
}

func (s Screen) SignedIn() bool {
	return s.Nav.Logout
}

func (s Screen) clone() Screen {
	out := s
	out.Views = append([]presentation.ViewState(nil), s.Views...)
	out.Feed.Cards = append([]presentation.PostCard(nil), s.Feed.Cards...)
	out.OwnPosts.Cards = append([]presentation.PostCard(nil), s.OwnPosts.Cards...)

	return out
}
