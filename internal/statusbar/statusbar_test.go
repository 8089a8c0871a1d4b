package statusbar

import (
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/natter/internal/ui"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 4, 21, 7, 0, 0, time.UTC)
}

func TestNewSuppressedForCurrent(t *testing.T) {
	b := NewBar(ui.DefaultStyles, fixedClock)
	b.New(0)
	assert.Equal(t, Active, b.State(0))

	b.Active(2)
	b.New(2)
	assert.Equal(t, New, b.State(2))

	b.Current(2)
	assert.Equal(t, Active, b.State(2))

	b.New(0)
	assert.Equal(t, New, b.State(0))
}

func TestInactive(t *testing.T) {
	b := NewBar(ui.DefaultStyles, fixedClock)
	b.Active(3)
	b.Inactive(3)
	b.Inactive(0)
	assert.Equal(t, Inactive, b.State(3))
	assert.Equal(t, Active, b.State(0))
	assert.Equal(t, Inactive, b.State(42))
	b.New(42)
}

func TestView(t *testing.T) {
	b := NewBar(ui.DefaultStyles, fixedClock)
	b.Active(1)
	b.New(9)
	b.SetMessage("Copied 3 lines")

	out := b.View(60)
	assert.Contains(t, out, "[21:07]")
	assert.Contains(t, out, "[1][2][0]")
	assert.Contains(t, out, "Copied 3 lines")
	assert.Equal(t, 60, lipgloss.Width(out))
}
