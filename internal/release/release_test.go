package release

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	assert.True(t, Valid("1.2.3"))
	assert.True(t, Valid("10.20.300"))
	assert.False(t, Valid("abc"))
	assert.False(t, Valid("1.2"))
	assert.False(t, Valid("1.2.3.4"))
	assert.False(t, Valid("v1.2.3"))
	assert.False(t, Valid("1.2.3\n"))
	assert.False(t, Valid(""))
}

func TestIsNew(t *testing.T) {
	tests := []struct {
		latest, current string
		want            bool
	}{
		{"1.2.3", "1.2.2", true},
		{"1.2.3", "1.2.3", false},
		{"1.2.3", "1.3.0", false},
		{"2.0.0", "1.9.9", true},
		{"1.10.0", "1.9.0", true},
		{"abc", "1.0.0", false},
		{"1.2.3", "dev", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNew(tt.latest, tt.current), "%s vs %s", tt.latest, tt.current)
	}
}

func TestFeedFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "0.5.1\n")
	}))
	defer srv.Close()

	f := NewFeed(srv.URL)
	_, known := f.Latest()
	assert.False(t, known)

	v, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.5.1", v)

	f.Store(v)
	got, known := f.Latest()
	assert.True(t, known)
	assert.Equal(t, "0.5.1", got)
}

func TestFeedFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewFeed(srv.URL).Fetch(context.Background())
	assert.Error(t, err)
}

func TestFeedStoreEmptyIsUnknown(t *testing.T) {
	f := NewFeed("http://example.invalid")
	f.Store("")
	_, known := f.Latest()
	assert.False(t, known)
}

func TestStatic(t *testing.T) {
	v, ok := Static{Version: "1.0.0", Known: true}.Latest()
	assert.True(t, ok)
	assert.Equal(t, "1.0.0", v)
}

func TestFeedFetchRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "1.2.3"+strings.Repeat(" ", 70)+"not-a-version")
	}))
	defer srv.Close()

	v, err := NewFeed(srv.URL).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Empty(t, v)
}

func TestFeedFetchAcceptsBodyAtLimit(t *testing.T) {
	body := "1.2.3" + strings.Repeat(" ", maxBody-5)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	v, err := NewFeed(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v)
}

func TestFeedSetURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "3.0.0\n")
	}))
	defer srv.Close()

	f := NewFeed("http://example.invalid")
	f.SetURL(srv.URL)
	v, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", v)
}

func TestFeedUsesEnvironmentProxy(t *testing.T) {
	f := NewFeed("http://example.invalid")
	tr, ok := f.client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.NotNil(t, tr.Proxy)
}
