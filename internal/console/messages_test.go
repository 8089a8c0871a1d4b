package console

import (
	"strings"
	"testing"

	"github.com/kmacinski/natter/internal/account"
	"github.com/kmacinski/natter/internal/contact"
	"github.com/kmacinski/natter/internal/presence"
	"github.com/kmacinski/natter/internal/release"
	"github.com/kmacinski/natter/internal/statusbar"
	"github.com/kmacinski/natter/internal/ui"
	"github.com/kmacinski/natter/internal/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var licenceBlock = []string{
	"Copyright (C) 2026 the natter authors.",
	"License GPLv3+: GNU GPL version 3 or later <https://www.gnu.org/licenses/gpl.html>",
	"",
	"This is free software; you are free to change and redistribute it.",
	"There is NO WARRANTY, to the extent permitted by law.",
	"",
	"Type '/help' to show complete help.",
	"",
}

func TestAboutWithoutSplash(t *testing.T) {
	f := newFixture(t, prefs{}, unknownRelease())
	f.surface.About()

	want := append([]string{"Welcome to natter, version 1.2.2"}, licenceBlock...)
	assert.Equal(t, want, texts(f.surface))
	assert.True(t, f.surface.Dirty())
}

func TestAboutWithSplash(t *testing.T) {
	f := newFixture(t, prefs{splash: true}, unknownRelease())
	f.surface.About()

	got := texts(f.surface)
	assert.Equal(t, "Welcome to", got[0])
	assert.NotContains(t, got, "Welcome to natter, version 1.2.2")
	assert.Contains(t, got, "Version 1.2.2")
	assert.Equal(t, licenceBlock, got[len(got)-len(licenceBlock):])
	for _, row := range splashLogo {
		assert.Contains(t, got, row)
	}
}

func TestAboutDevelopmentBuild(t *testing.T) {
	f := newFixture(t, prefs{}, unknownRelease())
	f.surface.d.Build.Development = true
	f.surface.About()
	assert.Equal(t, "Welcome to natter, version 1.2.2dev", texts(f.surface)[0])
}

func TestAboutChecksVersionWhenEnabled(t *testing.T) {
	f := newFixture(t, prefs{vercheck: true}, release.Static{Version: "1.2.3", Known: true})
	f.surface.About()

	got := texts(f.surface)
	assert.Contains(t, got, "A new version of natter is available: 1.2.3")

	off := newFixture(t, prefs{}, release.Static{Version: "1.2.3", Known: true})
	off.surface.About()
	assert.NotContains(t, texts(off.surface), "A new version of natter is available: 1.2.3")
}

func TestAboutNotifiesStatusBarWhenUnfocused(t *testing.T) {
	f := newFixture(t, prefs{}, unknownRelease())
	slot, err := f.registry.Open(window.NewChat("bob@example.com", ui.DefaultStyles))
	require.NoError(t, err)
	require.NoError(t, f.registry.Focus(slot))
	f.bar.Current(slot)

	f.surface.About()
	assert.Equal(t, statusbar.New, f.bar.State(0))
}

func TestAboutFocusedLeavesStatusBar(t *testing.T) {
	f := newFixture(t, prefs{}, unknownRelease())
	f.surface.About()
	assert.Equal(t, statusbar.Active, f.bar.State(0))
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		name     string
		provider release.Provider
		explicit bool
		want     []string
	}{
		{
			name:     "newer release",
			provider: release.Static{Version: "1.2.3", Known: true},
			want: []string{
				"A new version of natter is available: 1.2.3",
				"Check <https://natter.im> for details.",
				"",
			},
		},
		{
			name:     "newer release explicit",
			provider: release.Static{Version: "2.0.0", Known: true},
			explicit: true,
			want: []string{
				"A new version of natter is available: 2.0.0",
				"Check <https://natter.im> for details.",
				"",
			},
		},
		{
			name:     "same version silent",
			provider: release.Static{Version: "1.2.2", Known: true},
			want:     []string{},
		},
		{
			name:     "same version explicit",
			provider: release.Static{Version: "1.2.2", Known: true},
			explicit: true,
			want:     []string{"No new version available.", ""},
		},
		{
			name:     "older release explicit",
			provider: release.Static{Version: "1.0.0", Known: true},
			explicit: true,
			want:     []string{"No new version available.", ""},
		},
		{
			name:     "malformed",
			provider: release.Static{Version: "abc", Known: true},
			explicit: true,
			want:     []string{},
		},
		{
			name:     "unknown",
			provider: release.Static{},
			explicit: true,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, prefs{}, tt.provider)
			f.surface.CheckVersion(tt.explicit)
			assert.Equal(t, tt.want, texts(f.surface))
		})
	}
}

func TestCheckVersionMalformedLeavesSurfaceClean(t *testing.T) {
	f := newFixture(t, prefs{}, release.Static{Version: "abc", Known: true})
	slot, _ := f.registry.Open(window.NewChat("bob@example.com", ui.DefaultStyles))
	require.NoError(t, f.registry.Focus(slot))
	f.bar.Current(slot)

	f.surface.CheckVersion(true)
	assert.False(t, f.surface.Dirty())
	assert.Equal(t, statusbar.Active, f.bar.State(0))
}

func TestCheckVersionCurrentSilentStillDirty(t *testing.T) {
	f := newFixture(t, prefs{}, release.Static{Version: "1.2.2", Known: true})
	f.surface.CheckVersion(false)
	assert.Empty(t, f.surface.Lines())
	assert.True(t, f.surface.Dirty())
}

func TestShowLoginSuccess(t *testing.T) {
	f := newFixture(t, prefs{}, unknownRelease())
	f.surface.ShowLoginSuccess(account.Account{Name: "work", JID: "alice@example.com"})

	got := texts(f.surface)
	require.Len(t, got, 1)
	assert.Equal(t, "alice@example.com logged in successfully, online (priority 5).", got[0])
	assert.Contains(t, got[0], "(priority 5)")
	assert.True(t, f.surface.Dirty())
}

func TestShowWinsConsoleOnly(t *testing.T) {
	f := newFixture(t, prefs{}, unknownRelease())
	f.surface.ShowWins()

	assert.Equal(t, []string{"", "Active windows:", "1: Console", ""}, texts(f.surface))
	assert.True(t, f.surface.Dirty())
}

func TestShowWinsListsSlotsInOrder(t *testing.T) {
	f := newFixture(t, prefs{}, unknownRelease())
	f.roster.Set(contact.Contact{JID: "bob@example.com", Name: "Bob", Presence: presence.Away})
	f.roster.Set(contact.Contact{JID: "carol@example.com", Presence: presence.Online})

	bob := window.NewChat("bob@example.com", ui.DefaultStyles)
	carol := window.NewChat("carol@example.com", ui.DefaultStyles)
	stranger := window.NewChat("dave@example.com", ui.DefaultStyles)
	room := window.NewRoom("lounge@conference.example.com", ui.DefaultStyles)
	private := window.NewPrivate("lounge@conference.example.com/eve", ui.DefaultStyles)

	for _, w := range []window.Window{bob, carol, stranger, room, private} {
		_, err := f.registry.Open(w)
		require.NoError(t, err)
	}
	require.NoError(t, f.registry.Close(3))

	for i := 0; i < 3; i++ {
		bob.Incoming(clock(), "bob", "hi")
	}
	room.Incoming(clock(), "eve", "hello room")

	f.surface.ShowWins()

	assert.Equal(t, []string{
		"",
		"Active windows:",
		"1: Console",
		"2: chat bob@example.com (Bob) - away, 3 unread",
		"3: chat carol@example.com - online",
		"5: room lounge@conference.example.com, 1 unread",
		"6: private lounge@conference.example.com/eve",
		"",
	}, texts(f.surface))
}

func TestShowWinsChatUnreadAtSlot(t *testing.T) {
	f := newFixture(t, prefs{}, unknownRelease())
	chat := window.NewChat("bob@example.com", ui.DefaultStyles)
	_, err := f.registry.Open(chat)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		chat.Incoming(clock(), "bob", "ping")
	}

	f.surface.ShowWins()

	var listing []string
	for _, l := range texts(f.surface) {
		if strings.Contains(l, ": ") {
			listing = append(listing, l)
		}
	}
	require.Len(t, listing, 2)
	assert.Equal(t, "1: Console", listing[0])
	assert.Contains(t, listing[1], "bob@example.com")
	assert.Contains(t, listing[1], "3 unread")
}
