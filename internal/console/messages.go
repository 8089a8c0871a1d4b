package console

import (
	"fmt"

	"github.com/kmacinski/natter/internal/account"
	"github.com/kmacinski/natter/internal/release"
	"github.com/kmacinski/natter/internal/window"
)

var splashLogo = []string{
	`             _   _            `,
	` _ __   __ _| |_| |_ ___ _ __ `,
	`| '_ \ / _' | __| __/ _ \ '__|`,
	`| | | | (_| | |_| ||  __/ |   `,
	`|_| |_|\__,_|\__|\__\___|_|   `,
}

// About prints the startup banner
func (s *Surface) About() {
	if s.d.Prefs.Splash() {
		s.splash()
	} else {
		s.write(fmt.Sprintf("Welcome to %s, version %s", s.d.Build.Name, s.d.Build))
	}

	s.write("Copyright (C) 2026 the natter authors.")
	s.write("License GPLv3+: GNU GPL version 3 or later <https://www.gnu.org/licenses/gpl.html>")
	s.write("")
	s.write("This is free software; you are free to change and redistribute it.")
	s.write("There is NO WARRANTY, to the extent permitted by law.")
	s.write("")
	s.write("Type '/help' to show complete help.")
	s.write("")

	if s.d.Prefs.VersionCheck() {
		s.CheckVersion(false)
	}

	s.notify()
}

func (s *Surface) splash() {
	s.write("Welcome to")
	for _, row := range splashLogo {
		s.write(s.Styles().Splash.Render(row))
	}
	s.write("")
	s.write(fmt.Sprintf("Version %s", s.d.Build))
}

// CheckVersion reports a newer release if the provider knows one.
// Unknown or malformed versions are ignored. notAvailableMsg asks for an
// explicit answer when the running build is current.
func (s *Surface) CheckVersion(notAvailableMsg bool) {
	latest, ok := s.d.Releases.Latest()
	if !ok || !release.Valid(latest) {
		return
	}

	if release.IsNew(latest, s.d.Build.Version) {
		s.write(fmt.Sprintf("A new version of %s is available: %s", s.d.Build.Name, latest))
		s.write(fmt.Sprintf("Check <%s> for details.", s.d.Prefs.ReleaseSite()))
		s.write("")
	} else if notAvailableMsg {
		s.write("No new version available.")
		s.write("")
	}

	s.notify()
}

// ShowLoginSuccess confirms a login with the presence it was made with
func (s *Surface) ShowLoginSuccess(acct account.Account) {
	p := s.d.Accounts.LoginPresence(acct.Name)
	s.write(fmt.Sprintf("%s logged in successfully, %s (priority %d).",
		acct.JID,
		s.Styles().Presence(p).Render(p.String()),
		s.d.Accounts.Priority(acct.Name, p),
	))
}

// ShowWins lists open windows in slot order
func (s *Surface) ShowWins() {
	s.write("")
	s.write("Active windows:")
	s.write("1: Console")

	s.d.Windows.Each(func(slot int, w window.Window) {
		s.write(s.winSummary(slot, w))
	})

	s.write("")
	s.notify()
}

func (s *Surface) winSummary(slot int, w window.Window) string {
	conv, ok := w.(window.Conversation)
	if !ok {
		return ""
	}

	var line string
	switch w.Kind() {
	case window.KindChat:
		line = fmt.Sprintf("%d: chat %s", slot+1, conv.Peer())
		if c, found := s.d.Contacts.Get(conv.Peer()); found {
			if c.Name != "" {
				line += fmt.Sprintf(" (%s)", c.Name)
			}
			line += fmt.Sprintf(" - %s", c.Presence)
		}
	case window.KindPrivate:
		line = fmt.Sprintf("%d: private %s", slot+1, conv.Peer())
	case window.KindRoom:
		line = fmt.Sprintf("%d: room %s", slot+1, conv.Peer())
	default:
		return ""
	}

	if n := conv.Unread(); n > 0 {
		line += fmt.Sprintf(", %d unread", n)
	}
	return line
}
