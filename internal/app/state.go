package app

import (
	"github.com/kmacinski/natter/internal/account"
	"github.com/kmacinski/natter/internal/presence"
)

// State holds session data shown outside the windows
type State struct {
	Account  account.Account
	Presence presence.Presence
	LoggedIn bool
}

// NewState creates a logged-out state
func NewState() *State {
	return &State{Presence: presence.Offline}
}

// Login records a successful login
func (s *State) Login(acct account.Account, p presence.Presence) {
	s.Account = acct
	s.Presence = p
	s.LoggedIn = true
}

// Identity returns the title bar text for the session
func (s *State) Identity() string {
	if !s.LoggedIn {
		return "not connected"
	}
	return s.Account.JID + " (" + s.Presence.String() + ")"
}
