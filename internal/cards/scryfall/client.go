// Package scryfall provides a rate-limited client for the Scryfall API,
// used to populate the local card catalog.
package scryfall

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	baseURL        = "https://api.scryfall.com"
	rateLimitDelay = 100 * time.Millisecond // 10 req/sec per Scryfall guidance
	requestTimeout = 30 * time.Second
)

// Client is a Scryfall API client with rate limiting.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	userAgent   string
}

// NewClient creates a new Scryfall API client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(rateLimitDelay), 1),
		userAgent:   "manalysis/1.0",
	}
}

// GetCardByName retrieves a card by exact name.
func (c *Client) GetCardByName(ctx context.Context, name string) (*Card, error) {
	u := fmt.Sprintf("%s/cards/named?exact=%s", baseURL, url.QueryEscape(name))

	var card Card
	if err := c.doRequest(ctx, u, &card); err != nil {
		return nil, fmt.Errorf("failed to get card %q: %w", name, err)
	}
	return &card, nil
}

// GetBulkData retrieves the bulk data download listing.
func (c *Client) GetBulkData(ctx context.Context) (*BulkDataList, error) {
	u := fmt.Sprintf("%s/bulk-data", baseURL)

	var list BulkDataList
	if err := c.doRequest(ctx, u, &list); err != nil {
		return nil, fmt.Errorf("failed to get bulk data listing: %w", err)
	}
	return &list, nil
}

// DownloadBulk streams a bulk data file (a JSON array of card objects)
// and returns the decoded cards. Bulk downloads are exempt from the
// API rate limit but still honor the context.
func (c *Client) DownloadBulk(ctx context.Context, downloadURI string) ([]*Card, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURI, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create bulk request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bulk download failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bulk download returned status %d", resp.StatusCode)
	}

	return DecodeCards(resp.Body)
}

// DecodeCards decodes a JSON array of Scryfall card objects from r,
// streaming one element at a time to keep memory bounded.
func DecodeCards(r io.Reader) ([]*Card, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read bulk data: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("bulk data is not a JSON array")
	}

	var out []*Card
	for dec.More() {
		var card Card
		if err := dec.Decode(&card); err != nil {
			return nil, fmt.Errorf("failed to decode card: %w", err)
		}
		out = append(out, &card)
	}
	return out, nil
}

// doRequest performs a rate-limited GET and decodes the JSON response.
func (c *Client) doRequest(ctx context.Context, url string, v any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("not found")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("scryfall returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
