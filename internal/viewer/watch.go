package viewer

import (
	"context"
	"fmt"
	"time"

	"github.com/triptide/go-trip-timeline/internal/core/model"
	"github.com/triptide/go-trip-timeline/internal/data/scanner"
	"github.com/triptide/go-trip-timeline/internal/presentation/display"
	"github.com/triptide/go-trip-timeline/internal/presentation/interaction"
	"github.com/triptide/go-trip-timeline/internal/presentation/layout"
	"github.com/triptide/go-trip-timeline/internal/util"
)

// defaultRefreshInterval re-renders the grid even without input or file
// changes, so the "today" highlight tracks the clock.
const defaultRefreshInterval = 30 * time.Second

// WatchSession runs the interactive hourly timeline: alternate screen,
// raw-mode keyboard for day switching, fsnotify reloads on file change.
type WatchSession struct {
	viewer   *Viewer
	display  *display.TerminalDisplay
	renderer *layout.TimelineRenderer

	itinerary model.Itinerary
	dayIndex  int
}

// NewWatchSession prepares a session starting on the given 1-based day
// ordinal; 0 means the first day.
func NewWatchSession(v *Viewer, startDay int) *WatchSession {
	ws := &WatchSession{
		viewer:   v,
		display:  display.NewTerminalDisplay(),
		renderer: layout.NewTimelineRenderer(),
	}
	if startDay > 0 {
		ws.dayIndex = startDay - 1
	}
	return ws
}

// Run drives the session until the user quits or the context ends.
func (ws *WatchSession) Run(ctx context.Context) error {
	itinerary, err := ws.viewer.LoadItinerary(ctx)
	if err != nil {
		return err
	}
	ws.itinerary = itinerary
	ws.clampDayIndex()

	var fileEvents <-chan scanner.FileEvent
	if kind, path := ws.viewer.Source(); kind == SourceFile {
		watcher, err := scanner.NewFileWatcher([]string{path})
		if err != nil {
			util.LogWarnf("File watching unavailable: %v", err)
		} else {
			defer watcher.Close()
			fileEvents = watcher.Events()
		}
	}

	keyboard, err := interaction.NewKeyboardReader()
	if err != nil {
		return fmt.Errorf("failed to open keyboard: %w", err)
	}
	defer keyboard.Close()

	ws.display.EnterAlternateScreen()
	defer ws.display.ExitAlternateScreen()

	ticker := time.NewTicker(defaultRefreshInterval)
	defer ticker.Stop()

	ws.render()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-keyboard.Events():
			if quit := ws.handleKey(event); quit {
				return nil
			}
			ws.render()

		case fileEvent := <-fileEvents:
			util.LogDebugf("Trip file changed: %s (%s)", fileEvent.Path, fileEvent.Operation)
			if err := ws.reload(ctx); err != nil {
				util.LogWarnf("Reload failed, keeping last good itinerary: %v", err)
			}
			ws.render()

		case <-ticker.C:
			ws.render()
		}
	}
}

// handleKey processes one key event and reports whether to quit.
func (ws *WatchSession) handleKey(event interaction.KeyEvent) bool {
	switch event.Action {
	case interaction.ActionQuit:
		return true
	case interaction.ActionPrevDay:
		ws.previousDay()
	case interaction.ActionNextDay:
		ws.nextDay()
	case interaction.ActionRune:
		switch event.Rune {
		case 'q':
			return true
		case 'h':
			ws.previousDay()
		case 'l':
			ws.nextDay()
		default:
			if event.Rune >= '1' && event.Rune <= '9' {
				ws.jumpToDay(int(event.Rune - '0'))
			}
		}
	}
	return false
}

func (ws *WatchSession) previousDay() {
	if ws.dayIndex > 0 {
		ws.dayIndex--
	}
}

func (ws *WatchSession) nextDay() {
	if ws.dayIndex < len(ws.itinerary.Days)-1 {
		ws.dayIndex++
	}
}

func (ws *WatchSession) jumpToDay(ordinal int) {
	if ordinal >= 1 && ordinal <= len(ws.itinerary.Days) {
		ws.dayIndex = ordinal - 1
	}
}

func (ws *WatchSession) clampDayIndex() {
	if ws.dayIndex < 0 {
		ws.dayIndex = 0
	}
	if last := len(ws.itinerary.Days) - 1; last >= 0 && ws.dayIndex > last {
		ws.dayIndex = last
	}
}

func (ws *WatchSession) reload(ctx context.Context) error {
	itinerary, err := ws.viewer.Reload(ctx)
	if err != nil {
		return err
	}
	ws.itinerary = itinerary
	ws.clampDayIndex()
	return nil
}

func (ws *WatchSession) render() {
	if ws.itinerary.IsEmpty() {
		ws.display.RenderFrame([]string{
			util.FormatHeaderTitle(ws.itinerary.Title),
			"",
			"No days to show. Press q to quit.",
		})
		return
	}

	day := ws.itinerary.Days[ws.dayIndex]
	ws.display.RenderFrame(ws.renderer.RenderDay(day))
	ws.display.RenderStatusBar(ws.footer())
}

func (ws *WatchSession) footer() string {
	return fmt.Sprintf("Day %d/%d   ←/→ or h/l switch day   1-9 jump   q quit",
		ws.dayIndex+1, len(ws.itinerary.Days))
}
