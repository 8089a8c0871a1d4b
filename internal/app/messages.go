package app

import (
	"time"

	"github.com/kmacinski/natter/internal/presence"
	"github.com/kmacinski/natter/internal/window"
)

// LoginSuccessMsg is sent by a transport when an account has logged in
type LoginSuccessMsg struct {
	Account string
}

// IncomingMsg is sent by a transport when a message arrives
type IncomingMsg struct {
	Kind window.Kind // chat, private or room
	From string      // conversation the message belongs to
	Nick string      // sender shown in the window; From when empty
	Body string
}

// PresenceMsg is sent by a transport when a contact's presence changes
type PresenceMsg struct {
	JID      string
	Name     string
	Presence presence.Presence
}

// ReleaseCheckedMsg carries the result of a release fetch
type ReleaseCheckedMsg struct {
	Version  string
	Err      error
	Explicit bool // requested by /vercheck rather than at startup
}

// ConfigChangedMsg is sent when the config file changes on disk
type ConfigChangedMsg struct{}

// TickMsg updates the status bar clock
type TickMsg time.Time
