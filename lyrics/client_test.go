package lyrics

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	values map[string]string
	sets   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string]string)}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	return c.values[key], nil
}

func (c *memoryCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.values[key] = value
	c.sets++
	return nil
}

const testLyricsPage = `<html><body>
<div data-lyrics-container="true">Is this the real life?<br>Is this just fantasy?</div>
<div data-lyrics-container="true">Caught in a landslide<br>No escape from reality</div>
</body></html>`

func newTestClient(t *testing.T, cache Cache) *Client {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	mux.HandleFunc("/api/search/multi", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "Unknown Song Unknown Artist" {
			fmt.Fprint(w, `{"response":{"sections":[{"type":"song","hits":[]}]}}`)
			return
		}
		fmt.Fprintf(w, `{"response":{"sections":[{"type":"artist","hits":[{"result":{"url":"%s/wrong"}}]},{"type":"song","hits":[{"result":{"url":"%s/song"}}]}]}}`, server.URL, server.URL)
	})
	mux.HandleFunc("/song", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, testLyricsPage)
	})

	return &Client{
		httpClient: server.Client(),
		searchURL:  server.URL + "/api/search/multi",
		cache:      cache,
		cacheTTL:   time.Hour,
	}
}

func TestClient_Fetch(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, nil)

	lyrics, err := client.Fetch(context.Background(), "Queen", "Bohemian Rhapsody")
	require.NoError(t, err)

	assert.Contains(t, lyrics, "Is this the real life?")
	assert.Contains(t, lyrics, "Is this just fantasy?")
	assert.Contains(t, lyrics, "No escape from reality")
	assert.NotContains(t, lyrics, "<br>")
}

func TestClient_Fetch_NotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, nil)

	_, err := client.Fetch(context.Background(), "Unknown Artist", "Unknown Song")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_Fetch_CachesResult(t *testing.T) {
	t.Parallel()

	cache := newMemoryCache()
	client := newTestClient(t, cache)

	first, err := client.Fetch(context.Background(), "Queen", "Bohemian Rhapsody")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	second, err := client.Fetch(context.Background(), "Queen", "Bohemian Rhapsody")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets, "second fetch should come from cache")
}
