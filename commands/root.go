package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/triptide/go-trip-timeline/internal/planner"
	"github.com/triptide/go-trip-timeline/internal/util"
	"github.com/triptide/go-trip-timeline/internal/viewer"
)

var (
	// Logging related
	debug bool

	// Payload sources
	tripFile   string
	plannerURL string
	tripsDir   string

	// Output related
	outputFormat string
	timezone     string

	// Cache control
	refresh bool
	reset   bool

	rootCmd = &cobra.Command{
		Use:   "go-trip-timeline [flags]",
		Short: "Travel itinerary timeline viewer",
		Long: `go-trip-timeline renders saved travel itineraries as per-day summaries
and hourly timelines in the terminal.

It loads an itinerary JSON payload from a file, a remote planner service, or
the most recently saved trip in the trips directory, normalizes it into an
immutable day-by-day model, and prints trip statistics (places, meals, route).

Examples:
  go-trip-timeline                                  # Most recent saved trip
  go-trip-timeline --file trip.json                 # A specific payload file
  go-trip-timeline --url https://planner.example/v1/trips/42
  go-trip-timeline --output json                    # Machine-readable output
  go-trip-timeline timeline --day 2                 # Hourly grid for day 2
  go-trip-timeline timeline --watch                 # Live view, follows file changes`,
		RunE: runTrip,
	}
)

const (
	defaultLogFile  = "~/.go-trip-timeline/logs/app.log"
	defaultCacheDir = "~/.go-trip-timeline/cache"
	defaultTripsDir = "~/.go-trip-timeline/trips"
)

func init() {
	// Optional .env with planner settings; flags still win.
	godotenv.Load()

	// Input data configuration
	rootCmd.PersistentFlags().StringVarP(&tripFile, "file", "f", "",
		"Itinerary payload file to load")
	rootCmd.PersistentFlags().StringVarP(&plannerURL, "url", "u", envOr("PLANNER_URL", ""),
		"Planner service URL to fetch the payload from")
	rootCmd.PersistentFlags().StringVar(&tripsDir, "dir", envOr("TRIPS_DIR", defaultTripsDir),
		"Saved trips directory (most recent .json is loaded)")

	// Output configuration
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv, summary)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Local",
		"Timezone setting (e.g., Asia/Tokyo, UTC)")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().BoolVar(&refresh, "refresh", false,
		"Bypass the planner response cache")
	rootCmd.PersistentFlags().BoolVarP(&reset, "reset", "r", false,
		"Clear the planner response cache before loading")
}

func runTrip(cmd *cobra.Command, args []string) error {
	config, err := buildConfig()
	if err != nil {
		return err
	}
	config.OutputFormat = outputFormat

	return viewer.New(config).Run(cmd.Context())
}

// buildConfig performs the shared startup work for every command: logging,
// time provider, cache directory, reset handling.
func buildConfig() (*viewer.Config, error) {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	logFile := expandPath(defaultLogFile)
	if err := util.InitLogger(logLevel, logFile, debug); err != nil {
		return nil, err
	}
	if err := util.InitializeTimeProvider(timezone); err != nil {
		return nil, err
	}

	cacheDir := expandPath(defaultCacheDir)
	if err := ensureDir(cacheDir); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	if reset {
		cache, err := planner.NewResponseCache(cacheDir)
		if err == nil {
			err = cache.Clear()
		}
		if err != nil {
			return nil, fmt.Errorf("failed to clear cache: %w", err)
		}
		util.LogInfo("Planner response cache cleared")
	}

	return &viewer.Config{
		FilePath:   expandIfSet(tripFile),
		PlannerURL: plannerURL,
		PlannerKey: os.Getenv("PLANNER_API_KEY"),
		TripsDir:   expandPath(tripsDir),
		CacheDir:   cacheDir,
		Timezone:   timezone,
		Refresh:    refresh,
	}, nil
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func expandIfSet(path string) string {
	if path == "" {
		return ""
	}
	return expandPath(path)
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
