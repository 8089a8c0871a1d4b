package window

import (
	"errors"
	"fmt"
)

// NumWins is the fixed number of window slots. Slot 0 is the console.
const NumWins = 10

var (
	ErrRegistryFull = errors.New("no free window slot")
	ErrConsoleClose = errors.New("the console window cannot be closed")
	ErrBadSlot      = errors.New("no window in slot")
)

// Registry is the fixed-capacity table of open windows
type Registry struct {
	wins    [NumWins]Window
	current int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// SetConsole installs the console in slot 0. The first console installed
// stays; later calls return it unchanged.
func (r *Registry) SetConsole(w Window) Window {
	if r.wins[0] == nil {
		r.wins[0] = w
		w.SetFocus(r.current == 0)
	}
	return r.wins[0]
}

// Console returns the window in slot 0
func (r *Registry) Console() Window {
	return r.wins[0]
}

// Open places w in the first free slot after the console
func (r *Registry) Open(w Window) (int, error) {
	for i := 1; i < NumWins; i++ {
		if r.wins[i] == nil {
			r.wins[i] = w
			return i, nil
		}
	}
	return 0, ErrRegistryFull
}

// Get returns the window in slot, or nil
func (r *Registry) Get(slot int) Window {
	if slot < 0 || slot >= NumWins {
		return nil
	}
	return r.wins[slot]
}

// Find returns the slot of the conversation of the given kind with peer
func (r *Registry) Find(peer string, kind Kind) (int, bool) {
	for i := 1; i < NumWins; i++ {
		if c, ok := r.wins[i].(Conversation); ok && c.Peer() == peer && c.Kind() == kind {
			return i, true
		}
	}
	return 0, false
}

// Close empties a slot. Closing the current window focuses the console.
func (r *Registry) Close(slot int) error {
	if slot == 0 {
		return ErrConsoleClose
	}
	if r.Get(slot) == nil {
		return fmt.Errorf("close %d: %w", slot+1, ErrBadSlot)
	}
	r.wins[slot].SetFocus(false)
	r.wins[slot] = nil
	if r.current == slot {
		return r.Focus(0)
	}
	return nil
}

// Focus makes slot the current window
func (r *Registry) Focus(slot int) error {
	w := r.Get(slot)
	if w == nil {
		return fmt.Errorf("focus %d: %w", slot+1, ErrBadSlot)
	}
	if prev := r.wins[r.current]; prev != nil {
		prev.SetFocus(false)
	}
	r.current = slot
	w.SetFocus(true)
	return nil
}

// Current returns the slot of the focused window
func (r *Registry) Current() int {
	return r.current
}

// CurrentWindow returns the focused window
func (r *Registry) CurrentWindow() Window {
	return r.wins[r.current]
}

// CurrentIsConsole reports whether the console has focus
func (r *Registry) CurrentIsConsole() bool {
	return r.current == 0
}

// Each calls fn for every occupied slot after the console, in slot order
func (r *Registry) Each(fn func(slot int, w Window)) {
	for i := 1; i < NumWins; i++ {
		if r.wins[i] != nil {
			fn(i, r.wins[i])
		}
	}
}

// Occupied returns the occupied slots including the console
func (r *Registry) Occupied() []int {
	var slots []int
	for i, w := range r.wins {
		if w != nil {
			slots = append(slots, i)
		}
	}
	return slots
}

// Cycle focuses the next (or previous) occupied slot
func (r *Registry) Cycle(reverse bool) {
	slots := r.Occupied()
	if len(slots) == 0 {
		return
	}
	idx := 0
	for i, s := range slots {
		if s == r.current {
			idx = i
			break
		}
	}
	if reverse {
		idx = (idx - 1 + len(slots)) % len(slots)
	} else {
		idx = (idx + 1) % len(slots)
	}
	_ = r.Focus(slots[idx])
}
