package presence

import "strings"

// Presence is an availability state of an account or contact
type Presence int

const (
	Online Presence = iota
	Chat
	Away
	XA
	DND
	Offline
)

func (p Presence) String() string {
	switch p {
	case Online:
		return "online"
	case Chat:
		return "chat"
	case Away:
		return "away"
	case XA:
		return "xa"
	case DND:
		return "dnd"
	case Offline:
		return "offline"
	default:
		return "unknown"
	}
}

// Parse converts a display string back to a Presence.
// Unknown strings report false.
func Parse(s string) (Presence, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "online", "":
		return Online, true
	case "chat":
		return Chat, true
	case "away":
		return Away, true
	case "xa":
		return XA, true
	case "dnd":
		return DND, true
	case "offline":
		return Offline, true
	default:
		return Online, false
	}
}
