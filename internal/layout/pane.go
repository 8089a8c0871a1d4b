package layout

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/x/ansi"
)

// Pane is the on-screen copy of a scrollback buffer. Composite replaces
// what it shows; View returns it.
type Pane struct {
	vp         viewport.Model
	composites int
}

// NewPane creates an empty pane
func NewPane() *Pane {
	return &Pane{vp: viewport.New(0, 0)}
}

// Composite copies lines into the pane starting at offset, clipped to r
func (p *Pane) Composite(lines []string, offset int, r Region) {
	w := r.Width()
	p.vp.Width = w
	p.vp.Height = r.Height()

	rows := make([]string, len(lines))
	for i, line := range lines {
		rows[i] = ansi.Truncate(line, w, "")
	}
	p.vp.SetContent(strings.Join(rows, "\n"))
	p.vp.SetYOffset(offset)
	p.composites++
}

// View returns the last composited content
func (p *Pane) View() string {
	return p.vp.View()
}

// Composites returns how many times the pane was redrawn
func (p *Pane) Composites() int {
	return p.composites
}
