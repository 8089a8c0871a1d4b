package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rows taken by the bars around the main region
const (
	titleRows  = 1
	bottomRows = 2 // status bar and input line
)

// Region is a rectangle of screen cells, bounds inclusive
type Region struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// Width returns the number of columns in the region
func (r Region) Width() int {
	return max(0, r.Right-r.Left+1)
}

// Height returns the number of rows in the region
func (r Region) Height() int {
	return max(0, r.Bottom-r.Top+1)
}

// MainRegion returns the area between the title row and the bottom bars
func MainRegion(rows, cols int) Region {
	return Region{
		Top:    titleRows,
		Left:   0,
		Bottom: rows - bottomRows - 1,
		Right:  cols - 1,
	}
}

// Manager handles layout rendering
type Manager struct {
	width  int
	height int
}

// NewManager creates a new layout manager
func NewManager() *Manager {
	return &Manager{}
}

// Resize updates the layout dimensions
func (m *Manager) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Width returns the terminal width
func (m *Manager) Width() int {
	return m.width
}

// Main returns the region for the current window
func (m *Manager) Main() Region {
	return MainRegion(m.height, m.width)
}

// Render stacks title, main content, status bar and input line
func (m *Manager) Render(title, main, status, input string) string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	h := m.Main().Height()
	content := lipgloss.NewStyle().
		Width(m.width).
		Height(h).
		MaxHeight(h).
		Render(main)

	return lipgloss.JoinVertical(lipgloss.Left, title, content, status, input)
}

// Fit pads s with spaces to width cells; longer strings are left alone
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	if w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
