package window

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/kmacinski/natter/internal/keys"
	"github.com/kmacinski/natter/internal/ui"
)

const maxChatLines = 1000

// Chat shows a one-to-one, private or room conversation
type Chat struct {
	Base
	peer   string
	lines  []string
	unread int
	yPos   int  // first visible row
	follow bool // keep the newest line in view
	height int
}

// NewChat creates a chat window with a contact
func NewChat(peer string, styles ui.Styles) *Chat {
	return newConversation(peer, KindChat, styles)
}

// NewPrivate creates a private window with a room occupant
func NewPrivate(peer string, styles ui.Styles) *Chat {
	return newConversation(peer, KindPrivate, styles)
}

// NewRoom creates a group chat window
func NewRoom(room string, styles ui.Styles) *Chat {
	return newConversation(room, KindRoom, styles)
}

// NewConversation creates a window of the given kind
func NewConversation(peer string, kind Kind, styles ui.Styles) *Chat {
	return newConversation(peer, ConversationKind(kind), styles)
}

// ConversationKind maps kind to the kind of window a conversation opens in.
// Anything other than private or room is a chat.
func ConversationKind(kind Kind) Kind {
	if kind != KindPrivate && kind != KindRoom {
		return KindChat
	}
	return kind
}

func newConversation(peer string, kind Kind, styles ui.Styles) *Chat {
	return &Chat{
		Base:   NewBase(peer, kind, styles),
		peer:   peer,
		follow: true,
	}
}

// Peer returns the identifier of the other side
func (c *Chat) Peer() string {
	return c.peer
}

// Unread returns messages received while the window was not focused
func (c *Chat) Unread() int {
	return c.unread
}

// SetFocus sets the focus state; focusing marks the window read
func (c *Chat) SetFocus(focused bool) {
	c.Base.SetFocus(focused)
	if focused {
		c.unread = 0
	}
}

// Incoming appends a message from the peer
func (c *Chat) Incoming(at time.Time, from, body string) {
	c.append(c.styles.Stamp(at, '-') + c.styles.Peer.Render(from) + ": " + body)
	if !c.focused {
		c.unread++
	}
}

// Outgoing appends a message we sent
func (c *Chat) Outgoing(at time.Time, body string) {
	c.append(c.styles.Stamp(at, '-') + c.styles.Me.Render("me") + ": " + body)
}

// Lines returns a copy of the buffer
func (c *Chat) Lines() []string {
	return append([]string(nil), c.lines...)
}

func (c *Chat) append(line string) {
	c.lines = append(c.lines, line)
	if over := len(c.lines) - maxChatLines; over > 0 {
		c.lines = c.lines[over:]
		c.yPos = max(0, c.yPos-over)
	}
}

func (c *Chat) maxY() int {
	return max(0, len(c.lines)-c.height)
}

// Update handles scrolling
func (c *Chat) Update(msg tea.Msg) (Window, tea.Cmd) {
	if !c.focused {
		return c, nil
	}

	page := max(1, c.height-1)
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.PageUp):
			if c.follow {
				c.yPos = c.maxY()
			}
			c.yPos = max(0, c.yPos-page)
			c.follow = c.yPos >= c.maxY()
		case key.Matches(msg, keys.DefaultKeyMap.PageDown):
			c.yPos = min(c.maxY(), c.yPos+page)
			c.follow = c.yPos >= c.maxY()
		}
	}
	return c, nil
}

// View renders the visible rows; the tail while following, otherwise the
// position last scrolled to
func (c *Chat) View(width, height int) string {
	c.height = height
	if width < 1 || height < 1 {
		return ""
	}

	if c.follow {
		c.yPos = c.maxY()
	}
	start := min(c.yPos, c.maxY())
	end := min(len(c.lines), start+height)

	rows := make([]string, 0, height)
	for _, line := range c.lines[start:end] {
		rows = append(rows, ansi.Truncate(line, width, ""))
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}
