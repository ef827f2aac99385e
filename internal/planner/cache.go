package planner

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/triptide/go-trip-timeline/internal/util"
)

// cacheTTL bounds how long a planner response is served without refetching.
const cacheTTL = 24 * time.Hour

// ResponseCache stores raw planner responses on disk so the tool keeps
// working offline between refreshes.
type ResponseCache struct {
	mu      sync.RWMutex
	baseDir string
}

type cachedResponse struct {
	URL       string    `json:"url"`
	FetchedAt time.Time `json:"fetched_at"`
	Payload   []byte    `json:"payload"`
}

// NewResponseCache creates the cache directory if needed.
func NewResponseCache(baseDir string) (*ResponseCache, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &ResponseCache{baseDir: baseDir}, nil
}

// Load returns the cached payload for a URL when present and fresh.
func (rc *ResponseCache) Load(url string) ([]byte, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	data, err := os.ReadFile(rc.pathFor(url))
	if err != nil {
		return nil, false
	}

	var cached cachedResponse
	if err := sonic.Unmarshal(data, &cached); err != nil {
		util.LogDebugf("Discarding unreadable response cache entry: %v", err)
		return nil, false
	}

	if cached.URL != url || time.Since(cached.FetchedAt) > cacheTTL {
		return nil, false
	}

	return cached.Payload, true
}

// Store writes a payload to the cache. The write is atomic so a crashed
// run never leaves a truncated entry behind.
func (rc *ResponseCache) Store(url string, payload []byte) error {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	data, err := sonic.Marshal(cachedResponse{
		URL:       url,
		FetchedAt: time.Now(),
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	path := rc.pathFor(url)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to finalize cache entry: %w", err)
	}

	return nil
}

// Clear removes every cached response.
func (rc *ResponseCache) Clear() error {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	entries, err := os.ReadDir(rc.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(rc.baseDir, entry.Name())); err != nil {
			return err
		}
	}

	return nil
}

func (rc *ResponseCache) pathFor(url string) string {
	sum := sha256.Sum256([]byte(url))
	return filepath.Join(rc.baseDir, fmt.Sprintf("planner_%x.json", sum[:8]))
}
