package release

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

// maxBody is the longest version file accepted
const maxBody = 64

// ErrTooLarge is returned when the version file exceeds maxBody
var ErrTooLarge = errors.New("version file too large")

var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Provider reports the latest known release
type Provider interface {
	// Latest returns the latest version string, or false when unknown
	Latest() (string, bool)
}

// Valid reports whether v is a strict major.minor.patch triplet
func Valid(v string) bool {
	return versionPattern.MatchString(v)
}

// IsNew reports whether latest is newer than current.
// Either side failing to parse means no.
func IsNew(latest, current string) bool {
	l, ok := parse(latest)
	if !ok {
		return false
	}
	c, ok := parse(current)
	if !ok {
		return false
	}
	for i := range l {
		if l[i] != c[i] {
			return l[i] > c[i]
		}
	}
	return false
}

func parse(v string) ([3]int, bool) {
	var out [3]int
	parts := strings.Split(v, ".")
	if len(parts) != 3 {
		return out, false
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return out, false
		}
		out[i] = n
	}
	return out, true
}

// Static is a Provider with a fixed answer
type Static struct {
	Version string
	Known   bool
}

// Latest implements Provider
func (s Static) Latest() (string, bool) {
	return s.Version, s.Known
}

// Feed fetches the latest version from a plain text URL and caches it
type Feed struct {
	client *http.Client

	mu  sync.Mutex // Fetch runs off the update loop
	url string

	latest string
	known  bool
}

// NewFeed creates a feed for url with a short-timeout client
func NewFeed(url string) *Feed {
	return &Feed{
		url: url,
		client: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				TLSHandshakeTimeout:   5 * time.Second,
				ResponseHeaderTimeout: 5 * time.Second,
				IdleConnTimeout:       30 * time.Second,
				MaxIdleConns:          2,
			},
		},
	}
}

// SetURL points the feed at a new version file
func (f *Feed) SetURL(url string) {
	f.mu.Lock()
	f.url = url
	f.mu.Unlock()
}

// Fetch downloads the version file. The body is trimmed but not validated;
// that is left to the caller. A body longer than maxBody is an error rather
// than being cut to a prefix. It does not touch the cache.
func (f *Feed) Fetch(ctx context.Context) (string, error) {
	f.mu.Lock()
	url := f.url
	f.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build release request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch release: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		return "", fmt.Errorf("read release: %w", err)
	}
	if len(body) > maxBody {
		return "", fmt.Errorf("read release: %w", ErrTooLarge)
	}
	return strings.TrimSpace(string(body)), nil
}

// Store caches a fetched version for Latest
func (f *Feed) Store(v string) {
	f.latest = v
	f.known = v != ""
}

// Latest implements Provider
func (f *Feed) Latest() (string, bool) {
	return f.latest, f.known
}
