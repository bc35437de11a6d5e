package marvel

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/lepinkainen/marvelgo/internal/testutil"
)

const (
	testBaseURL    = "http://marvel.test/v1/public"
	testPublicKey  = "public-key"
	testPrivateKey = "private-key"
)

var testNow = time.Date(2024, 3, 5, 7, 8, 9, 0, time.UTC)

func newTestSession(t *testing.T, opts ...Option) (*Session, *httpmock.MockTransport) {
	t.Helper()

	transport := httpmock.NewMockTransport()
	base := []Option{
		WithBaseURL(testBaseURL),
		WithHTTPClient(&http.Client{Transport: transport}),
		WithClock(func() time.Time { return testNow }),
	}
	s, err := New(testPublicKey, testPrivateKey, append(base, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, transport
}

// fixtureWith loads a fixture and applies edits to the decoded object.
func fixtureWith(t *testing.T, name string, edit func(obj map[string]any)) string {
	t.Helper()

	obj := testutil.Object(t, name)
	if edit != nil {
		edit(obj)
	}
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return string(data)
}

// mapCache is a minimal cache exposing both capabilities.
type mapCache struct {
	mu      sync.Mutex
	entries map[string]string
	gets    int
	stores  int
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string]string{}}
}

func (c *mapCache) Get(key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *mapCache) Store(key, payload string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stores++
	c.entries[key] = payload
	return nil
}

// storeOnlyCache lacks the Get capability.
type storeOnlyCache struct {
	stored map[string]string
}

func (c *storeOnlyCache) Store(key, payload string) error {
	if c.stored == nil {
		c.stored = map[string]string{}
	}
	c.stored[key] = payload
	return nil
}

// getOnlyCache lacks the Store capability.
type getOnlyCache struct{}

func (getOnlyCache) Get(string) (string, bool, error) { return "", false, nil }

// failingCache returns err from both operations.
type failingCache struct {
	err error
}

func (c failingCache) Get(string) (string, bool, error) { return "", false, c.err }
func (c failingCache) Store(string, string) error      { return c.err }
