package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/minitwitter-cli/internal/application"
	"github.com/bnema/minitwitter-cli/internal/domain"
	"github.com/bnema/minitwitter-cli/internal/presentation"
)

type RenderOptions struct {
	// ShowIDs prints post ids next to each card so they can be typed back.
	ShowIDs bool
	// Width wraps post content when positive.
	Width int
}

func renderView(screen application.Screen, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("MiniTwitter"),
		renderNav(screen, s),
		s.header.Render(sessionLine(screen)),
	}

	if screen.Notice != "" {
		lines = append(lines, s.notice.Render(screen.Notice))
	}

	var body string
	switch screen.ActiveView() {
	case domain.ViewRegister:
		body = renderRegister(screen, s)
	case domain.ViewFeed:
		body = renderFeed(screen, opts, s)
	case domain.ViewProfile:
		body = renderProfile(screen, opts, s)
	default:
		body = renderLogin(screen, s)
	}
	lines = append(lines, s.section.Render(body))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderNav(screen application.Screen, s styles) string {
	entries := []struct {
		label   string
		visible bool
		view    domain.View
	}{
		{label: "login", visible: screen.Nav.Login, view: domain.ViewLogin},
		{label: "register", visible: screen.Nav.Register, view: domain.ViewRegister},
		{label: "feed", visible: screen.Nav.Feed, view: domain.ViewFeed},
		{label: "profile", visible: screen.Nav.Profile, view: domain.ViewProfile},
	}

	active := screen.ActiveView()
	parts := make([]string, 0, len(entries)+1)
	for _, entry := range entries {
		if !entry.visible {
			continue
		}
		if entry.view == active {
			parts = append(parts, s.navActive.Render(entry.label))
			continue
		}
		parts = append(parts, s.navInactive.Render(entry.label))
	}
	if screen.Nav.Logout {
		parts = append(parts, s.navInactive.Render("logout"))
	}

	return strings.Join(parts, s.navInactive.Render(" | "))
}

func sessionLine(screen application.Screen) string {
	if screen.SignedIn() {
		return fmt.Sprintf("signed in as @%s", screen.Viewer.Username)
	}

	return fmt.Sprintf("session: %s", screen.State)
}

func renderLogin(screen application.Screen, s styles) string {
	lines := []string{
		s.heading.Render("Log in"),
		s.hint.Render("email and password"),
	}
	if screen.LoginError != "" {
		lines = append(lines, s.formError.Render(screen.LoginError))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRegister(screen application.Screen, s styles) string {
	lines := []string{
		s.heading.Render("Create account"),
		s.hint.Render(fmt.Sprintf("username, email and password (at least %d characters)", domain.MinPasswordLength)),
	}
	if screen.RegisterError != "" {
		lines = append(lines, s.formError.Render(screen.RegisterError))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderFeed(screen application.Screen, opts RenderOptions, s styles) string {
	lines := []string{
		s.heading.Render("Feed"),
		renderCompose(screen.Compose, s),
		s.section.Render(renderPostList(screen.Feed, opts, s)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCompose(compose application.Compose, s styles) string {
	counter := counterStyle(compose.Counter, s).Render(compose.Counter.Text)
	if compose.Content == "" {
		return s.hint.Render("what's happening? ") + counter
	}

	return s.field.Render(compose.Content) + " " + counter
}

func counterStyle(counter presentation.Counter, s styles) lipgloss.Style {
	if counter.AtLimit {
		return s.counterLimit
	}

	return s.counter
}

func renderProfile(screen application.Screen, opts RenderOptions, s styles) string {
	lines := []string{
		s.heading.Render("Profile"),
		s.field.Render("username: " + screen.Profile.Username),
		s.field.Render("email: " + screen.Profile.Email),
	}

	if screen.Edit.Visible {
		lines = append(lines,
			s.section.Render(s.heading.Render("Edit profile")),
			s.field.Render("new username: "+screen.Edit.Username),
			s.field.Render("new email: "+screen.Edit.Email),
		)
	}

	lines = append(lines,
		s.section.Render(s.heading.Render("Your posts")),
		renderPostList(screen.OwnPosts, opts, s),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPostList(list presentation.PostList, opts RenderOptions, s styles) string {
	if list.Empty() {
		placeholder := list.Placeholder
		if placeholder == "" {
			placeholder = presentation.EmptyPostsPlaceholder
		}
		return s.empty.Render(placeholder)
	}

	cards := make([]string, 0, len(list.Cards))
	for i, card := range list.Cards {
		rendered := renderCard(card, opts, s)
		if i > 0 {
			rendered = s.section.Render(rendered)
		}
		cards = append(cards, rendered)
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func renderCard(card presentation.PostCard, opts RenderOptions, s styles) string {
	header := []string{s.author.Render(card.Author)}
	if card.Timestamp != "" {
		header = append(header, s.timestamp.Render(card.Timestamp))
	}
	if opts.ShowIDs {
		header = append(header, s.postID.Render("#"+string(card.ID)))
	}
	if card.Deletable {
		header = append(header, s.deletable.Render("[delete]"))
	}

	content := s.content
	if opts.Width > 2 {
		content = content.Width(opts.Width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(header, " "),
		content.Render(card.Content),
	)
}
