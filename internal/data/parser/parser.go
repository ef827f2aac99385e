package parser

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/triptide/go-trip-timeline/internal/core/model"
	"github.com/triptide/go-trip-timeline/internal/util"
)

// Parser decodes saved itinerary payload files. Parsed payloads are cached
// per path for the lifetime of the parser, so repeated renders of the same
// trip do not touch the disk again.
type Parser struct {
	concurrency int
	mu          sync.Mutex
	cache       map[string]*model.RawItinerary
}

// ParseResult represents the result of parsing a single file.
type ParseResult struct {
	File      string
	Itinerary *model.RawItinerary
	Error     error
}

// NewParser creates a new Parser instance.
func NewParser(concurrency int) *Parser {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Parser{
		concurrency: concurrency,
		cache:       make(map[string]*model.RawItinerary),
	}
}

// ParseBytes decodes one itinerary payload. Only a structurally invalid
// document is an error; missing or wrong-typed fields inside it decode to
// zero values and are defaulted later by the assembler.
func (p *Parser) ParseBytes(data []byte) (*model.RawItinerary, error) {
	var raw model.RawItinerary
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid itinerary payload: %w", err)
	}
	return &raw, nil
}

// ParseFile reads and decodes the itinerary file at the specified path.
func (p *Parser) ParseFile(path string) (*model.RawItinerary, error) {
	p.mu.Lock()
	if cached, ok := p.cache[path]; ok {
		p.mu.Unlock()
		return cached, nil
	}
	p.mu.Unlock()

	util.LogDebug(fmt.Sprintf("Start parsing trip file: %s", path))

	data, err := os.ReadFile(path)
	if err != nil {
		util.LogDebug(fmt.Sprintf("Failed to read trip file: %s - %v", path, err))
		return nil, err
	}

	raw, err := p.ParseBytes(data)
	if err != nil {
		util.LogDebug(fmt.Sprintf("Failed to decode trip file: %s - %v", path, err))
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	p.mu.Lock()
	p.cache[path] = raw
	p.mu.Unlock()

	util.LogWithFields("Trip file parsed", map[string]interface{}{
		"file": path,
		"size": len(data),
	})

	return raw, nil
}

// Invalidate drops the cached payload for a path, forcing the next
// ParseFile to re-read it. Used by watch mode when the file changes.
func (p *Parser) Invalidate(path string) {
	p.mu.Lock()
	delete(p.cache, path)
	p.mu.Unlock()
}

// ParseFiles parses multiple files concurrently and returns a channel of ParseResult.
func (p *Parser) ParseFiles(files []string) <-chan ParseResult {
	start := time.Now()
	results := make(chan ParseResult, len(files))
	var wg sync.WaitGroup

	util.LogDebug(fmt.Sprintf("Start concurrent parsing of %d trip files, concurrency: %d", len(files), p.concurrency))

	semaphore := make(chan struct{}, p.concurrency)

	for _, file := range files {
		wg.Add(1)
		go func(f string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			raw, err := p.ParseFile(f)
			results <- ParseResult{
				File:      f,
				Itinerary: raw,
				Error:     err,
			}
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
		util.LogDebug(fmt.Sprintf("Concurrent parsing finished, total duration: %v", time.Since(start)))
	}()

	return results
}
