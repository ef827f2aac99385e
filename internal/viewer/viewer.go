package viewer

import (
	"context"
	"fmt"
	"runtime"

	"github.com/triptide/go-trip-timeline/internal/core/model"
	"github.com/triptide/go-trip-timeline/internal/core/schedule"
	"github.com/triptide/go-trip-timeline/internal/data/parser"
	"github.com/triptide/go-trip-timeline/internal/data/scanner"
	"github.com/triptide/go-trip-timeline/internal/planner"
	"github.com/triptide/go-trip-timeline/internal/presentation/formatter"
	"github.com/triptide/go-trip-timeline/internal/util"
)

// SourceKind tells the caller where the itinerary payload came from, so
// watch mode knows what to watch.
type SourceKind int

const (
	SourceNone SourceKind = iota
	SourceFile
	SourceRemote
)

type Config struct {
	// Payload sources, in precedence order: FilePath, PlannerURL, TripsDir.
	FilePath   string
	PlannerURL string
	PlannerKey string
	TripsDir   string

	CacheDir     string
	OutputFormat string
	Timezone     string
	Refresh      bool
	Concurrency  int
}

// Viewer loads an itinerary payload from the configured source and renders
// it. It is the glue between the data plane and the presentation plane.
type Viewer struct {
	config  *Config
	scanner *scanner.TripScanner
	parser  *parser.Parser
	remote  *planner.Client

	sourceKind SourceKind
	sourcePath string
}

func New(config *Config) *Viewer {
	if config.Concurrency == 0 {
		config.Concurrency = runtime.NumCPU()
	}

	v := &Viewer{
		config:  config,
		scanner: scanner.NewTripScanner(config.TripsDir),
		parser:  parser.NewParser(config.Concurrency),
	}

	if config.PlannerURL != "" {
		cache, err := planner.NewResponseCache(config.CacheDir)
		if err != nil {
			util.LogWarnf("Planner response cache unavailable: %v", err)
			cache = nil
		}
		v.remote = planner.NewClient(config.PlannerURL, config.PlannerKey, cache)
	}

	return v
}

// LoadItinerary resolves the payload source, parses it and assembles the
// immutable itinerary. No payload anywhere is not an error: the sentinel
// itinerary comes back and the caller renders the empty state.
func (v *Viewer) LoadItinerary(ctx context.Context) (model.Itinerary, error) {
	raw, err := v.loadRaw(ctx)
	if err != nil {
		return model.Itinerary{}, err
	}

	itinerary := schedule.AssembleItinerary(raw)
	if v.sourceKind != SourceNone {
		util.LogInfof("Loaded itinerary %q with %d day(s) from %s",
			itinerary.Title, len(itinerary.Days), v.sourcePath)
	}
	return itinerary, nil
}

func (v *Viewer) loadRaw(ctx context.Context) (*model.RawItinerary, error) {
	if v.config.FilePath != "" {
		v.sourceKind, v.sourcePath = SourceFile, v.config.FilePath
		raw, err := v.parser.ParseFile(v.config.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load trip file: %w", err)
		}
		return raw, nil
	}

	if v.remote != nil {
		v.sourceKind, v.sourcePath = SourceRemote, v.config.PlannerURL
		raw, err := v.remote.FetchItinerary(ctx, v.config.Refresh)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch itinerary: %w", err)
		}
		return raw, nil
	}

	latest, err := v.scanner.Latest()
	if err != nil {
		return nil, fmt.Errorf("failed to scan trips directory: %w", err)
	}
	if latest == "" {
		util.LogInfo("No saved trips found")
		v.sourceKind, v.sourcePath = SourceNone, ""
		return nil, nil
	}

	v.sourceKind, v.sourcePath = SourceFile, latest
	raw, err := v.parser.ParseFile(latest)
	if err != nil {
		return nil, fmt.Errorf("failed to load trip file: %w", err)
	}
	return raw, nil
}

// TripListing is one saved payload found in the trips directory.
type TripListing struct {
	Path  string
	Title string
	Days  int
	Err   error
}

// ListTrips scans the trips directory and parses every saved payload
// concurrently. Listings come back most recently modified first; a payload
// that fails to parse is listed with its error rather than hiding the file.
func (v *Viewer) ListTrips() ([]TripListing, error) {
	files, err := v.scanner.Scan()
	if err != nil {
		return nil, fmt.Errorf("failed to scan trips directory: %w", err)
	}
	if len(files) == 0 {
		return nil, nil
	}

	byPath := make(map[string]parser.ParseResult, len(files))
	for result := range v.parser.ParseFiles(files) {
		byPath[result.File] = result
	}

	listings := make([]TripListing, 0, len(files))
	for _, file := range files {
		result := byPath[file]
		listing := TripListing{Path: file, Err: result.Error}
		if result.Error == nil {
			itinerary := schedule.AssembleItinerary(result.Itinerary)
			listing.Title = itinerary.Title
			listing.Days = len(itinerary.Days)
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

// Reload drops any cached parse of the current file source and loads the
// itinerary again. Watch mode calls it on file change events.
func (v *Viewer) Reload(ctx context.Context) (model.Itinerary, error) {
	if v.sourceKind == SourceFile && v.sourcePath != "" {
		v.parser.Invalidate(v.sourcePath)
	}
	return v.LoadItinerary(ctx)
}

// Source reports where the last LoadItinerary found its payload.
func (v *Viewer) Source() (SourceKind, string) {
	return v.sourceKind, v.sourcePath
}

// Run loads the itinerary and renders the per-day report in the configured
// output format.
func (v *Viewer) Run(ctx context.Context) error {
	itinerary, err := v.LoadItinerary(ctx)
	if err != nil {
		return err
	}

	if v.sourceKind == SourceNone {
		fmt.Println("No itinerary found.")
		fmt.Printf("Save a trip JSON file under %s, or pass --file or --url.\n", v.config.TripsDir)
		return nil
	}

	report := formatter.BuildTripReport(itinerary)
	return v.format(report)
}

func (v *Viewer) format(report formatter.TripReport) error {
	switch v.config.OutputFormat {
	case "json":
		return formatter.NewJSONFormatter().Format(report)
	case "csv":
		return formatter.NewCSVFormatter().Format(report)
	case "summary":
		return formatter.NewSummaryFormatter().Format(report)
	default:
		return formatter.NewTableFormatter().Format(report)
	}
}
