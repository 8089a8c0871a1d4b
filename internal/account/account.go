package account

import (
	"github.com/kmacinski/natter/internal/config"
	"github.com/kmacinski/natter/internal/presence"
)

// Account is a configured login
type Account struct {
	Name string
	JID  string
}

// Provider resolves an account to its login presence and priorities
type Provider interface {
	// LoginPresence returns the presence requested when the account logs in
	LoginPresence(name string) presence.Presence

	// Priority returns the priority sent with the given presence
	Priority(name string, p presence.Presence) int
}

type entry struct {
	account    Account
	login      presence.Presence
	priorities map[presence.Presence]int
}

// Store is a Provider backed by the accounts section of the config
type Store struct {
	accounts map[string]entry
	order    []string
}

// NewStore builds a Store from account configs
func NewStore(cfgs []config.AccountConfig) *Store {
	s := &Store{}
	s.Load(cfgs)
	return s
}

// Load replaces every account with cfgs. Later duplicates win.
func (s *Store) Load(cfgs []config.AccountConfig) {
	s.accounts = make(map[string]entry, len(cfgs))
	s.order = nil
	for _, c := range cfgs {
		login, ok := presence.Parse(c.Presence)
		if !ok {
			login = presence.Online
		}
		if _, seen := s.accounts[c.Name]; !seen {
			s.order = append(s.order, c.Name)
		}
		s.accounts[c.Name] = entry{
			account: Account{Name: c.Name, JID: c.JID},
			login:   login,
			priorities: map[presence.Presence]int{
				presence.Online: c.Priority.Online,
				presence.Chat:   c.Priority.Chat,
				presence.Away:   c.Priority.Away,
				presence.XA:     c.Priority.XA,
				presence.DND:    c.Priority.DND,
			},
		}
	}
}

// Get looks up an account by name
func (s *Store) Get(name string) (Account, bool) {
	e, ok := s.accounts[name]
	return e.account, ok
}

// Names returns account names in config order
func (s *Store) Names() []string {
	return append([]string(nil), s.order...)
}

// LoginPresence implements Provider. Unknown accounts log in online.
func (s *Store) LoginPresence(name string) presence.Presence {
	if e, ok := s.accounts[name]; ok {
		return e.login
	}
	return presence.Online
}

// Priority implements Provider. Unknown accounts and presences give 0.
func (s *Store) Priority(name string, p presence.Presence) int {
	if e, ok := s.accounts[name]; ok {
		return e.priorities[p]
	}
	return 0
}
