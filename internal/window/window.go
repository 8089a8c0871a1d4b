package window

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/natter/internal/ui"
)

// Kind identifies what a window shows
type Kind int

const (
	KindConsole Kind = iota
	KindChat
	KindPrivate
	KindRoom
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindConsole:
		return "console"
	case KindChat:
		return "chat"
	case KindPrivate:
		return "private"
	case KindRoom:
		return "room"
	default:
		return "other"
	}
}

// Window defines the interface for all window types
type Window interface {
	// Update handles input when focused
	Update(msg tea.Msg) (Window, tea.Cmd)

	// View renders the window content
	View(width, height int) string

	// Focus state
	Focused() bool
	SetFocus(bool)

	// Identity
	Name() string
	Kind() Kind

	// SetStyles applies a new palette
	SetStyles(ui.Styles)
}

// Conversation is a window with a peer and unread messages
type Conversation interface {
	Window
	Peer() string
	Unread() int
}
