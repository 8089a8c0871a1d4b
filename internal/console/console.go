// Package console implements the scrollback window that shows startup,
// version, login and window-list messages. Writes only mark the surface
// dirty; Refresh composites it onto the screen once per dirty period.
package console

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/kmacinski/natter/internal/account"
	"github.com/kmacinski/natter/internal/contact"
	"github.com/kmacinski/natter/internal/keys"
	"github.com/kmacinski/natter/internal/layout"
	"github.com/kmacinski/natter/internal/release"
	"github.com/kmacinski/natter/internal/ui"
	"github.com/kmacinski/natter/internal/window"
)

// Title is the window name of the console
const Title = "_cons"

// maxLines bounds the scrollback
const maxLines = 1000

// ErrNoTerminal is returned when the terminal size cannot be read
var ErrNoTerminal = errors.New("cannot determine terminal size")

// Screen is the physical terminal region the console is copied to
type Screen interface {
	Composite(lines []string, offset int, r layout.Region)
	View() string
}

// Preferences are the settings the console reads
type Preferences interface {
	Splash() bool
	VersionCheck() bool
	ReleaseSite() string
}

// WindowLister enumerates open windows for /wins
type WindowLister interface {
	Each(fn func(slot int, w window.Window))
	CurrentIsConsole() bool
}

// StatusNotifier is told when the console gets output while unfocused
type StatusNotifier interface {
	New(slot int)
}

// Build describes the running program
type Build struct {
	Name        string
	Version     string
	Development bool
}

// String returns the version as shown to users
func (b Build) String() string {
	if b.Development {
		return b.Version + "dev"
	}
	return b.Version
}

// Deps are the collaborators a Surface queries
type Deps struct {
	Screen   Screen
	Prefs    Preferences
	Releases release.Provider
	Accounts account.Provider
	Contacts contact.Directory
	Windows  WindowLister
	Status   StatusNotifier
	Build    Build
	Styles   ui.Styles // initial palette; see SetStyles
	Now      func() time.Time
}

// Surface is the console window
type Surface struct {
	window.Base
	d Deps

	cols, rows int
	lines      []string
	yPos       int
	follow     bool // keep the newest line in view
	dirty      bool
}

// Create sizes a new console to the terminal
func Create(term Terminal, d Deps) (*Surface, error) {
	cols, rows, err := term.Size()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoTerminal, err)
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Build.Name == "" {
		d.Build.Name = "natter"
	}

	return &Surface{
		Base:   window.NewBase(Title, window.KindConsole, d.Styles),
		d:      d,
		cols:   cols,
		rows:   rows,
		follow: true,
	}, nil
}

// Show writes a timestamped line
func (s *Surface) Show(msg string) {
	s.write(msg)
}

// Refresh copies the buffer to the screen if anything changed since the
// last call. It reports whether a composite happened.
func (s *Surface) Refresh() bool {
	if !s.dirty {
		return false
	}
	s.d.Screen.Composite(s.lines, s.yPos, layout.MainRegion(s.rows, s.cols))
	s.dirty = false
	return true
}

// Dirty reports whether the screen is behind the buffer
func (s *Surface) Dirty() bool {
	return s.dirty
}

// Resize records new terminal dimensions
func (s *Surface) Resize(cols, rows int) {
	s.cols, s.rows = cols, rows
	s.clampScroll()
	s.dirty = true
}

// Clear empties the scrollback
func (s *Surface) Clear() {
	s.lines = nil
	s.yPos = 0
	s.follow = true
	s.dirty = true
}

// PageUp scrolls back one screen
func (s *Surface) PageUp() {
	s.yPos = max(0, s.yPos-s.pageHeight())
	s.follow = s.yPos >= s.maxY()
	s.dirty = true
}

// PageDown scrolls forward one screen; reaching the end follows new output
func (s *Surface) PageDown() {
	s.yPos = min(s.maxY(), s.yPos+s.pageHeight())
	s.follow = s.yPos >= s.maxY()
	s.dirty = true
}

// Lines returns a copy of the buffer rows
func (s *Surface) Lines() []string {
	return append([]string(nil), s.lines...)
}

// Text returns the buffer without styling
func (s *Surface) Text() string {
	rows := make([]string, len(s.lines))
	for i, l := range s.lines {
		rows[i] = ansi.Strip(l)
	}
	return strings.Join(rows, "\n")
}

// Update handles scrolling keys when the console is focused
func (s *Surface) Update(msg tea.Msg) (window.Window, tea.Cmd) {
	if !s.Focused() {
		return s, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.PageUp):
			s.PageUp()
		case key.Matches(msg, keys.DefaultKeyMap.PageDown):
			s.PageDown()
		}
	}
	return s, nil
}

// View returns what was last composited
func (s *Surface) View(width, height int) string {
	return s.d.Screen.View()
}

func (s *Surface) write(text string) {
	line := s.Styles().Stamp(s.d.Now(), '-') + text
	if s.cols > 0 {
		line = ansi.Hardwrap(line, s.cols, true)
	}
	s.lines = append(s.lines, strings.Split(line, "\n")...)

	if over := len(s.lines) - maxLines; over > 0 {
		s.lines = s.lines[over:]
		s.yPos = max(0, s.yPos-over)
	}
	s.clampScroll()
	s.dirty = true
}

// notify marks the surface dirty and flags unread output when unfocused
func (s *Surface) notify() {
	s.dirty = true
	if !s.d.Windows.CurrentIsConsole() {
		s.d.Status.New(0)
	}
}

func (s *Surface) pageHeight() int {
	return max(1, layout.MainRegion(s.rows, s.cols).Height())
}

func (s *Surface) maxY() int {
	return max(0, len(s.lines)-s.pageHeight())
}

func (s *Surface) clampScroll() {
	if s.follow {
		s.yPos = s.maxY()
		return
	}
	s.yPos = min(s.yPos, s.maxY())
}

// Size returns the terminal dimensions the surface was laid out for
func (s *Surface) Size() (cols, rows int) {
	return s.cols, s.rows
}
