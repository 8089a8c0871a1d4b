package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/natter/internal/presence"
)

// Styles holds all the lipgloss styles for the application
type Styles struct {
	// Line prefix
	Time lipgloss.Style

	// Startup
	Splash lipgloss.Style

	// Presence
	Online  lipgloss.Style
	Away    lipgloss.Style
	XA      lipgloss.Style
	DND     lipgloss.Style
	Offline lipgloss.Style

	// Bars
	TitleBar      lipgloss.Style
	StatusBar     lipgloss.Style
	StatusActive  lipgloss.Style
	StatusNew     lipgloss.Style
	StatusCurrent lipgloss.Style

	// Chat
	Me   lipgloss.Style
	Peer lipgloss.Style

	// General
	Muted lipgloss.Style
	Bold  lipgloss.Style
}

// NewStyles creates a new Styles instance with the given colors
func NewStyles(c Colors) Styles {
	return Styles{
		Time: lipgloss.NewStyle().
			Foreground(c.Time),

		Splash: lipgloss.NewStyle().
			Foreground(c.Splash).
			Bold(true),

		Online:  lipgloss.NewStyle().Foreground(c.Online),
		Away:    lipgloss.NewStyle().Foreground(c.Away),
		XA:      lipgloss.NewStyle().Foreground(c.XA),
		DND:     lipgloss.NewStyle().Foreground(c.DND),
		Offline: lipgloss.NewStyle().Foreground(c.Offline),

		TitleBar: lipgloss.NewStyle().
			Background(c.TitleBar).
			Foreground(c.BarText).
			Bold(true),
		StatusBar: lipgloss.NewStyle().
			Background(c.StatusBar).
			Foreground(c.BarText),
		StatusActive: lipgloss.NewStyle().
			Background(c.StatusBar).
			Foreground(c.Text),
		StatusNew: lipgloss.NewStyle().
			Background(c.StatusBar).
			Foreground(c.StatusNew).
			Bold(true),
		StatusCurrent: lipgloss.NewStyle().
			Background(c.StatusBar).
			Foreground(c.Text).
			Underline(true),

		Me: lipgloss.NewStyle().
			Foreground(c.Online).
			Bold(true),
		Peer: lipgloss.NewStyle().
			Foreground(c.Splash).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(c.Muted),
		Bold: lipgloss.NewStyle().
			Bold(true),
	}
}

// Presence returns the style for a presence
func (s Styles) Presence(p presence.Presence) lipgloss.Style {
	switch p {
	case presence.Online, presence.Chat:
		return s.Online
	case presence.Away:
		return s.Away
	case presence.XA:
		return s.XA
	case presence.DND:
		return s.DND
	default:
		return s.Offline
	}
}

// DefaultStyles returns styles with the default color palette
var DefaultStyles = NewStyles(DefaultColors)

// Stamp renders the time-of-day prefix written before every line
func (s Styles) Stamp(t time.Time, marker rune) string {
	return s.Time.Render(t.Format("15:04:05")) + " " + string(marker) + " "
}
