package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/natter/internal/config"
)

// Colors defines the color palette for the application
type Colors struct {
	Time      lipgloss.Color
	Splash    lipgloss.Color
	Online    lipgloss.Color
	Away      lipgloss.Color
	XA        lipgloss.Color
	DND       lipgloss.Color
	Offline   lipgloss.Color
	TitleBar  lipgloss.Color
	StatusBar lipgloss.Color
	StatusNew lipgloss.Color
	BarText   lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
}

// DefaultColors returns the default color palette
var DefaultColors = ColorsFromConfig(config.Default.Colors)

// ColorsFromConfig builds a palette from the colors section of the config
func ColorsFromConfig(c config.ColorConfig) Colors {
	return Colors{
		Time:      lipgloss.Color(c.Time),
		Splash:    lipgloss.Color(c.Splash),
		Online:    lipgloss.Color(c.Online),
		Away:      lipgloss.Color(c.Away),
		XA:        lipgloss.Color(c.XA),
		DND:       lipgloss.Color(c.DND),
		Offline:   lipgloss.Color(c.Offline),
		TitleBar:  lipgloss.Color(c.TitleBar),
		StatusBar: lipgloss.Color(c.StatusBar),
		StatusNew: lipgloss.Color(c.StatusNew),
		BarText:   lipgloss.Color("#cdd6f4"),
		Muted:     lipgloss.Color("#6c7086"),
		Text:      lipgloss.Color("#cdd6f4"),
	}
}
