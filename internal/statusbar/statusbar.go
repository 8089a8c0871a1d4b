package statusbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/natter/internal/ui"
	"github.com/kmacinski/natter/internal/window"
)

// State is the activity indicator of one slot
type State int

const (
	Inactive State = iota
	Active
	New
)

// Bar tracks per-slot activity and renders the status line
type Bar struct {
	slots   [window.NumWins]State
	current int
	message string
	styles  ui.Styles
	now     func() time.Time
}

// NewBar creates a status bar with the console active and current
func NewBar(styles ui.Styles, now func() time.Time) *Bar {
	if now == nil {
		now = time.Now
	}
	b := &Bar{styles: styles, now: now}
	b.slots[0] = Active
	return b
}

// New marks unread activity at slot, unless slot is current
func (b *Bar) New(slot int) {
	if !valid(slot) {
		return
	}
	if slot == b.current {
		b.slots[slot] = Active
		return
	}
	b.slots[slot] = New
}

// Active marks slot occupied with nothing new
func (b *Bar) Active(slot int) {
	if valid(slot) {
		b.slots[slot] = Active
	}
}

// Inactive marks slot empty
func (b *Bar) Inactive(slot int) {
	if valid(slot) && slot != 0 {
		b.slots[slot] = Inactive
	}
}

// Current records the focused slot and clears its new marker
func (b *Bar) Current(slot int) {
	if !valid(slot) {
		return
	}
	b.current = slot
	b.slots[slot] = Active
}

// State returns the indicator state of slot
func (b *Bar) State(slot int) State {
	if !valid(slot) {
		return Inactive
	}
	return b.slots[slot]
}

// SetStyles replaces the palette used by View
func (b *Bar) SetStyles(styles ui.Styles) {
	b.styles = styles
}

// SetMessage sets a transient note shown after the indicators
func (b *Bar) SetMessage(msg string) {
	b.message = msg
}

// View renders the bar padded to width
func (b *Bar) View(width int) string {
	base := b.styles.StatusBar

	var parts []string
	parts = append(parts, base.Render(fmt.Sprintf(" [%s]", b.now().Format("15:04"))))

	var wins []string
	for i, st := range b.slots {
		if st == Inactive {
			continue
		}
		label := fmt.Sprintf("[%d]", slotLabel(i))
		style := b.styles.StatusActive
		switch {
		case i == b.current:
			style = b.styles.StatusCurrent
		case st == New:
			style = b.styles.StatusNew
		}
		wins = append(wins, style.Render(label))
	}
	if len(wins) > 0 {
		parts = append(parts, base.Render(" "), strings.Join(wins, ""))
	}
	if b.message != "" {
		parts = append(parts, base.Render("  "+b.message))
	}

	line := strings.Join(parts, "")
	if pad := width - lipgloss.Width(line); pad > 0 {
		line += base.Render(strings.Repeat(" ", pad))
	}
	return line
}

func valid(slot int) bool {
	return slot >= 0 && slot < window.NumWins
}

// slotLabel is the number a user types for slot: 1..9 then 0
func slotLabel(slot int) int {
	return (slot + 1) % 10
}
