package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/triptide/go-trip-timeline/internal/util"
)

// TripScanner finds saved itinerary files in the trips directory.
type TripScanner struct {
	baseDir string
}

// NewTripScanner creates a new TripScanner instance.
func NewTripScanner(baseDir string) *TripScanner {
	return &TripScanner{baseDir: baseDir}
}

// Scan walks the trips directory and returns all .json file paths, most
// recently modified first. A missing directory is not an error; it just
// means no trips have been saved yet.
func (s *TripScanner) Scan() ([]string, error) {
	start := time.Now()

	if _, err := os.Stat(s.baseDir); os.IsNotExist(err) {
		util.LogDebug(fmt.Sprintf("Trips directory does not exist: %s", s.baseDir))
		return nil, nil
	}

	type tripFile struct {
		path    string
		modTime time.Time
	}
	var found []tripFile

	err := filepath.Walk(s.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			util.LogDebug(fmt.Sprintf("Skip path (error): %s - %v", path, err))
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(path), ".json") {
			found = append(found, tripFile{path: path, modTime: info.ModTime()})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].modTime.After(found[j].modTime)
	})

	files := make([]string, 0, len(found))
	for _, f := range found {
		files = append(files, f.path)
	}

	util.LogDebug(fmt.Sprintf("Scanned %s: %d trip files, duration %v", s.baseDir, len(files), time.Since(start)))
	return files, nil
}

// Latest returns the most recently modified trip file, or "" when the
// directory holds none.
func (s *TripScanner) Latest() (string, error) {
	files, err := s.Scan()
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", nil
	}
	return files[0], nil
}
