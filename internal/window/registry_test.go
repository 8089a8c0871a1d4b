package window

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/natter/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConsole struct {
	Base
}

func (s *stubConsole) Update(msg tea.Msg) (Window, tea.Cmd) { return s, nil }
func (s *stubConsole) View(width, height int) string        { return "" }

func newStub() *stubConsole {
	return &stubConsole{Base: NewBase("_cons", KindConsole, ui.DefaultStyles)}
}

func TestSetConsoleKeepsFirst(t *testing.T) {
	r := NewRegistry()
	first := newStub()
	second := newStub()

	assert.Same(t, first, r.SetConsole(first))
	assert.Same(t, first, r.SetConsole(second))
	assert.Same(t, first, r.Console())
	assert.True(t, first.Focused())
	assert.False(t, second.Focused())
}

func TestOpenFillsFirstFreeSlot(t *testing.T) {
	r := NewRegistry()
	r.SetConsole(newStub())

	slot, err := r.Open(NewChat("bob@example.com", ui.DefaultStyles))
	require.NoError(t, err)
	assert.Equal(t, 1, slot)

	slot, err = r.Open(NewRoom("lounge@conference.example.com", ui.DefaultStyles))
	require.NoError(t, err)
	assert.Equal(t, 2, slot)

	require.NoError(t, r.Close(1))
	slot, err = r.Open(NewPrivate("lounge@conference.example.com/carol", ui.DefaultStyles))
	require.NoError(t, err)
	assert.Equal(t, 1, slot)

	found, ok := r.Find("lounge@conference.example.com", KindRoom)
	assert.True(t, ok)
	assert.Equal(t, 2, found)
}

func TestFindMatchesKind(t *testing.T) {
	r := NewRegistry()
	r.SetConsole(newStub())

	chat, err := r.Open(NewChat("lounge@conference.example.com", ui.DefaultStyles))
	require.NoError(t, err)

	_, ok := r.Find("lounge@conference.example.com", KindRoom)
	assert.False(t, ok)

	room, err := r.Open(NewRoom("lounge@conference.example.com", ui.DefaultStyles))
	require.NoError(t, err)

	found, ok := r.Find("lounge@conference.example.com", KindRoom)
	require.True(t, ok)
	assert.Equal(t, room, found)

	found, ok = r.Find("lounge@conference.example.com", KindChat)
	require.True(t, ok)
	assert.Equal(t, chat, found)
}

func TestOpenFull(t *testing.T) {
	r := NewRegistry()
	for i := 1; i < NumWins; i++ {
		_, err := r.Open(NewChat("peer", ui.DefaultStyles))
		require.NoError(t, err)
	}
	_, err := r.Open(NewChat("one-too-many", ui.DefaultStyles))
	assert.ErrorIs(t, err, ErrRegistryFull)
}

func TestCloseRules(t *testing.T) {
	r := NewRegistry()
	r.SetConsole(newStub())
	assert.ErrorIs(t, r.Close(0), ErrConsoleClose)
	assert.ErrorIs(t, r.Close(4), ErrBadSlot)

	slot, _ := r.Open(NewChat("bob@example.com", ui.DefaultStyles))
	require.NoError(t, r.Focus(slot))
	assert.False(t, r.CurrentIsConsole())

	require.NoError(t, r.Close(slot))
	assert.True(t, r.CurrentIsConsole())
	assert.True(t, r.Console().Focused())
}

func TestFocusMarksRead(t *testing.T) {
	r := NewRegistry()
	r.SetConsole(newStub())
	chat := NewChat("bob@example.com", ui.DefaultStyles)
	slot, _ := r.Open(chat)

	chat.Incoming(time.Now(), "bob", "hi")
	chat.Incoming(time.Now(), "bob", "there")
	assert.Equal(t, 2, chat.Unread())

	require.NoError(t, r.Focus(slot))
	assert.Equal(t, 0, chat.Unread())
	assert.False(t, r.Console().Focused())

	chat.Incoming(time.Now(), "bob", "focused now")
	assert.Equal(t, 0, chat.Unread())

	assert.ErrorIs(t, r.Focus(7), ErrBadSlot)
}

func TestEachInSlotOrder(t *testing.T) {
	r := NewRegistry()
	r.SetConsole(newStub())
	r.Open(NewChat("a", ui.DefaultStyles))
	r.Open(NewChat("b", ui.DefaultStyles))
	r.Open(NewChat("c", ui.DefaultStyles))
	require.NoError(t, r.Close(2))

	var seen []int
	r.Each(func(slot int, w Window) { seen = append(seen, slot) })
	assert.Equal(t, []int{1, 3}, seen)
	assert.Equal(t, []int{0, 1, 3}, r.Occupied())
}

func TestCycle(t *testing.T) {
	r := NewRegistry()
	r.SetConsole(newStub())
	r.Open(NewChat("a", ui.DefaultStyles))
	r.Open(NewChat("b", ui.DefaultStyles))

	r.Cycle(false)
	assert.Equal(t, 1, r.Current())
	r.Cycle(false)
	assert.Equal(t, 2, r.Current())
	r.Cycle(false)
	assert.Equal(t, 0, r.Current())
	r.Cycle(true)
	assert.Equal(t, 2, r.Current())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "chat", KindChat.String())
	assert.Equal(t, "room", KindRoom.String())
	assert.Equal(t, "other", KindOther.String())
	assert.Equal(t, KindChat, NewConversation("x", KindConsole, ui.DefaultStyles).Kind())
}
