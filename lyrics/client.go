package lyrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

const defaultSearchURL = "https://genius.com/api/search/multi"

// ErrNotFound is returned when no lyrics page exists for a track
var ErrNotFound = errors.New("lyrics not found")

// Cache stores fetched lyrics keyed by track
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Client fetches song lyrics by searching Genius and scraping the song page
type Client struct {
	httpClient *http.Client
	searchURL  string
	cache      Cache
	cacheTTL   time.Duration
}

// NewClient creates a lyrics client. The cache is optional and may be nil.
func NewClient(cache Cache) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		searchURL:  defaultSearchURL,
		cache:      cache,
		cacheTTL:   24 * time.Hour,
	}
}

type searchResponse struct {
	Response struct {
		Sections []struct {
			Type string `json:"type"`
			Hits []struct {
				Result struct {
					URL string `json:"url"`
				} `json:"result"`
			} `json:"hits"`
		} `json:"sections"`
	} `json:"response"`
}

// Fetch returns the lyrics for a track, hitting the cache first
func (c *Client) Fetch(ctx context.Context, artist, title string) (string, error) {
	key := cacheKey(artist, title)

	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, key); err == nil && cached != "" {
			return cached, nil
		}
	}

	pageURL, err := c.search(ctx, artist, title)
	if err != nil {
		return "", err
	}

	lyrics, err := c.scrape(ctx, pageURL)
	if err != nil {
		return "", err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, lyrics, c.cacheTTL); err != nil {
			log.Warnf("Failed to cache lyrics for %s: %v", key, err)
		}
	}

	return lyrics, nil
}

// search queries the Genius search API and returns the URL of the first song hit
func (c *Client) search(ctx context.Context, artist, title string) (string, error) {
	query := url.Values{"q": {fmt.Sprintf("%s %s", title, artist)}}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("lyrics search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("lyrics search returned status %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode search response: %w", err)
	}

	for _, section := range result.Response.Sections {
		if section.Type != "song" {
			continue
		}
		if len(section.Hits) == 0 {
			break
		}
		return section.Hits[0].Result.URL, nil
	}

	return "", ErrNotFound
}

// scrape extracts the lyrics text from a Genius song page
func (c *Client) scrape(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build page request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("lyrics page fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("lyrics page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse lyrics page: %w", err)
	}

	var parts []string
	doc.Find(`div[data-lyrics-container="true"]`).Each(func(_ int, sel *goquery.Selection) {
		if text := textWithNewlines(sel); text != "" {
			parts = append(parts, text)
		}
	})

	if len(parts) == 0 {
		return "", ErrNotFound
	}

	return Scrub(strings.Join(parts, "\n")), nil
}

// textWithNewlines extracts text from a selection, turning <br> tags into
// line breaks before stripping the remaining markup.
func textWithNewlines(sel *goquery.Selection) string {
	html, err := sel.Html()
	if err != nil {
		return strings.TrimSpace(sel.Text())
	}

	html = strings.ReplaceAll(html, "<br/>", "\n")
	html = strings.ReplaceAll(html, "<br>", "\n")

	stripped, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(sel.Text())
	}
	return strings.TrimSpace(stripped.Text())
}

func cacheKey(artist, title string) string {
	return fmt.Sprintf("lyrics:%s:%s", strings.ToLower(artist), strings.ToLower(title))
}
