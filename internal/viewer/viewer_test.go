package viewer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/triptide/go-trip-timeline/internal/core/model"
)

const tripJSON = `{
	"title": "Weekend in Kyoto",
	"daily_plans": [
		{
			"day": 1,
			"date": "2026-04-04",
			"activities": [
				{"title": "Fushimi Inari", "start_time": "08:00", "end_time": "11:00",
				 "location_name": "Kyoto, Japan", "category": "culture"}
			]
		}
	]
}`

func writeTrip(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(tripJSON), 0644))
	return path
}

func TestLoadItineraryFromFile(t *testing.T) {
	path := writeTrip(t, t.TempDir(), "kyoto.json")

	v := New(&Config{FilePath: path})
	itinerary, err := v.LoadItinerary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Weekend in Kyoto", itinerary.Title)
	require.Len(t, itinerary.Days, 1)
	assert.Equal(t, "Fushimi Inari", itinerary.Days[0].Events[0].Title)

	kind, source := v.Source()
	assert.Equal(t, SourceFile, kind)
	assert.Equal(t, path, source)
}

func TestLoadItineraryFromTripsDir(t *testing.T) {
	dir := t.TempDir()
	writeTrip(t, dir, "kyoto.json")

	v := New(&Config{TripsDir: dir})
	itinerary, err := v.LoadItinerary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Weekend in Kyoto", itinerary.Title)
}

func TestLoadItineraryNoSource(t *testing.T) {
	v := New(&Config{TripsDir: filepath.Join(t.TempDir(), "missing")})
	itinerary, err := v.LoadItinerary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.EmptyTripTitle, itinerary.Title)
	assert.True(t, itinerary.IsEmpty())

	kind, _ := v.Source()
	assert.Equal(t, SourceNone, kind)
}

func TestLoadItineraryFromPlanner(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tripJSON))
	}))
	defer server.Close()

	v := New(&Config{PlannerURL: server.URL, CacheDir: t.TempDir()})
	itinerary, err := v.LoadItinerary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Weekend in Kyoto", itinerary.Title)
	kind, _ := v.Source()
	assert.Equal(t, SourceRemote, kind)
}

func TestFilePrecedesTripsDir(t *testing.T) {
	dir := t.TempDir()
	writeTrip(t, dir, "other.json")
	path := writeTrip(t, t.TempDir(), "kyoto.json")

	v := New(&Config{FilePath: path, TripsDir: dir})
	_, err := v.LoadItinerary(context.Background())
	require.NoError(t, err)

	kind, source := v.Source()
	assert.Equal(t, SourceFile, kind)
	assert.Equal(t, path, source)
}

func TestReloadPicksUpFileChanges(t *testing.T) {
	dir := t.TempDir()
	path := writeTrip(t, dir, "kyoto.json")

	v := New(&Config{FilePath: path})
	itinerary, err := v.LoadItinerary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Weekend in Kyoto", itinerary.Title)

	require.NoError(t, os.WriteFile(path, []byte(`{"title": "Revised Trip", "daily_plans": []}`), 0644))

	itinerary, err = v.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Revised Trip", itinerary.Title)
}

func TestListTrips(t *testing.T) {
	dir := t.TempDir()
	writeTrip(t, dir, "kyoto.json")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644))

	listings, err := New(&Config{TripsDir: dir}).ListTrips()
	require.NoError(t, err)
	require.Len(t, listings, 2)

	byName := make(map[string]TripListing, len(listings))
	for _, listing := range listings {
		byName[filepath.Base(listing.Path)] = listing
	}

	kyoto := byName["kyoto.json"]
	require.NoError(t, kyoto.Err)
	assert.Equal(t, "Weekend in Kyoto", kyoto.Title)
	assert.Equal(t, 1, kyoto.Days)

	assert.Error(t, byName["broken.json"].Err)
}

func TestListTripsEmptyDir(t *testing.T) {
	listings, err := New(&Config{TripsDir: filepath.Join(t.TempDir(), "missing")}).ListTrips()
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestLoadItineraryBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	v := New(&Config{FilePath: path})
	_, err := v.LoadItinerary(context.Background())
	assert.Error(t, err)
}
