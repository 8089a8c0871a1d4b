package layout

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestMainRegionReservesBars(t *testing.T) {
	r := MainRegion(24, 80)
	assert.Equal(t, 1, r.Top)
	assert.Equal(t, 21, r.Bottom)
	assert.Equal(t, 79, r.Right)
	assert.Equal(t, 21, r.Height())
	assert.Equal(t, 80, r.Width())

	tiny := MainRegion(2, 5)
	assert.Equal(t, 0, tiny.Height())
}

func TestRenderStacksRows(t *testing.T) {
	m := NewManager()
	assert.Empty(t, m.Render("t", "m", "s", "i"))

	m.Resize(20, 6)
	out := m.Render("title", "line one\nline two", "status", "> ")
	rows := strings.Split(out, "\n")
	require.Len(t, rows, 6)
	assert.True(t, strings.HasPrefix(rows[0], "title"))
	assert.True(t, strings.HasPrefix(rows[1], "line one"))
	assert.True(t, strings.HasPrefix(rows[4], "status"))
	assert.True(t, strings.HasPrefix(rows[5], "> "))
}

func TestPaneComposite(t *testing.T) {
	p := NewPane()
	lines := []string{"a", "b", "c", "d", "e"}
	p.Composite(lines, 3, Region{Top: 1, Bottom: 2, Right: 9})

	assert.Equal(t, 1, p.Composites())
	view := p.View()
	assert.Contains(t, view, "d")
	assert.Contains(t, view, "e")
	assert.NotContains(t, view, "c")
}

func TestPaneClipsWidth(t *testing.T) {
	p := NewPane()
	p.Composite([]string{"abcdefghij"}, 0, Region{Top: 1, Bottom: 1, Right: 3})
	assert.Equal(t, "abcd", strings.TrimRight(p.View(), " "))
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab  ", Fit("ab", 4))
	assert.Equal(t, "abcdef", Fit("abcdef", 4))
	assert.Equal(t, "", Fit("x", 0))
}
