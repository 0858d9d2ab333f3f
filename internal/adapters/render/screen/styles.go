package screen

import "github.com/charmbracelet/lipgloss"

const (
	counterLimitColor  = lipgloss.Color("#e0245e")
	counterNormalColor = lipgloss.Color("#555555")
)

type styles struct {
	title        lipgloss.Style
	header       lipgloss.Style
	navActive    lipgloss.Style
	navInactive  lipgloss.Style
	notice       lipgloss.Style
	formError    lipgloss.Style
	section      lipgloss.Style
	heading      lipgloss.Style
	hint         lipgloss.Style
	author       lipgloss.Style
	timestamp    lipgloss.Style
	postID       lipgloss.Style
	content      lipgloss.Style
	deletable    lipgloss.Style
	empty        lipgloss.Style
	counter      lipgloss.Style
	counterLimit lipgloss.Style
	field        lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		header:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		navActive:    lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("39")),
		navInactive:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		notice:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		formError:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:      lipgloss.NewStyle().MarginTop(1),
		heading:      lipgloss.NewStyle().Bold(true),
		hint:         lipgloss.NewStyle().Faint(true),
		author:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		timestamp:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		postID:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		content:      lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("252")),
		deletable:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		empty:        lipgloss.NewStyle().Faint(true),
		counter:      lipgloss.NewStyle().Foreground(counterNormalColor),
		counterLimit: lipgloss.NewStyle().Foreground(counterLimitColor),
		field:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}
