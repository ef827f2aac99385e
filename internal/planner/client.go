package planner

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/triptide/go-trip-timeline/internal/core/model"
	"github.com/triptide/go-trip-timeline/internal/data/parser"
	"github.com/triptide/go-trip-timeline/internal/util"
)

const fetchTimeout = 30 * time.Second

// Client fetches itinerary payloads from a remote planner service.
// A fetch failure is returned to the caller for display; there is no
// automatic retry.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	parser     *parser.Parser
	cache      *ResponseCache
}

// NewClient creates a planner client. cache may be nil to disable the
// on-disk response cache.
func NewClient(baseURL, apiKey string, cache *ResponseCache) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
		parser: parser.NewParser(1),
		cache:  cache,
	}
}

// FetchItinerary retrieves the raw payload from the planner service.
// With refresh false, a fresh enough cached response is served without a
// network round trip; with refresh true the cache is bypassed (and
// repopulated on success).
func (c *Client) FetchItinerary(ctx context.Context, refresh bool) (*model.RawItinerary, error) {
	if !refresh && c.cache != nil {
		if data, ok := c.cache.Load(c.baseURL); ok {
			raw, err := c.parser.ParseBytes(data)
			if err == nil {
				util.LogDebug("Serving itinerary payload from response cache")
				return raw, nil
			}
			util.LogWarnf("Discarding undecodable cached payload: %v", err)
		}
	}

	data, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := c.parser.ParseBytes(data)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Store(c.baseURL, data); err != nil {
			util.LogWarnf("Failed to cache planner response: %v", err)
		}
	}

	return raw, nil
}

func (c *Client) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid planner URL: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("planner request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("planner returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read planner response: %w", err)
	}

	util.LogDebugf("Fetched %d bytes from planner in %v", len(data), time.Since(start))
	return data, nil
}
