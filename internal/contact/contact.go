package contact

import (
	"sort"

	"github.com/kmacinski/natter/internal/config"
	"github.com/kmacinski/natter/internal/presence"
)

// Contact is a roster entry
type Contact struct {
	JID      string
	Name     string // empty when the contact has no display name
	Presence presence.Presence
}

// Directory resolves a peer identifier to a contact
type Directory interface {
	Get(jid string) (Contact, bool)
}

// Roster is an in-memory Directory
type Roster struct {
	contacts map[string]Contact
	seeded   map[string]bool // JIDs that came from the config
	live     map[string]bool // JIDs with a presence seen at runtime
}

// NewRoster creates an empty roster
func NewRoster() *Roster {
	return &Roster{
		contacts: make(map[string]Contact),
		seeded:   make(map[string]bool),
		live:     make(map[string]bool),
	}
}

// FromConfig seeds a roster from the contacts section of the config
func FromConfig(cfgs []config.ContactConfig) *Roster {
	r := NewRoster()
	r.Seed(cfgs)
	return r
}

// Seed applies the contacts section of the config. Names always follow the
// config; a presence seen at runtime is kept over the configured one.
// Contacts dropped from the config are removed unless seen at runtime.
func (r *Roster) Seed(cfgs []config.ContactConfig) {
	next := make(map[string]bool, len(cfgs))
	for _, c := range cfgs {
		next[c.JID] = true
		if r.live[c.JID] {
			cur := r.contacts[c.JID]
			cur.Name = c.Name
			r.contacts[c.JID] = cur
			continue
		}
		p, ok := presence.Parse(c.Presence)
		if !ok || c.Presence == "" {
			p = presence.Offline
		}
		r.Set(Contact{JID: c.JID, Name: c.Name, Presence: p})
	}

	for jid := range r.seeded {
		if !next[jid] && !r.live[jid] {
			r.Remove(jid)
		}
	}
	r.seeded = next
}

// Get implements Directory
func (r *Roster) Get(jid string) (Contact, bool) {
	c, ok := r.contacts[jid]
	return c, ok
}

// Set adds or replaces a contact
func (r *Roster) Set(c Contact) {
	r.contacts[c.JID] = c
}

// UpdatePresence changes a contact's presence, adding the contact if unknown.
// A non-empty name replaces the stored one.
func (r *Roster) UpdatePresence(jid, name string, p presence.Presence) {
	c, ok := r.contacts[jid]
	if !ok {
		c = Contact{JID: jid}
	}
	if name != "" {
		c.Name = name
	}
	c.Presence = p
	r.contacts[jid] = c
	r.live[jid] = true
}

// Remove drops a contact
func (r *Roster) Remove(jid string) {
	delete(r.contacts, jid)
	delete(r.live, jid)
}

// All returns contacts sorted by JID
func (r *Roster) All() []Contact {
	out := make([]Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JID < out[j].JID })
	return out
}
