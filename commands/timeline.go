package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/triptide/go-trip-timeline/internal/presentation/layout"
	"github.com/triptide/go-trip-timeline/internal/viewer"
)

var (
	timelineDay   int
	timelineWatch bool
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Render one day as a 24-hour grid",
	Long: `Renders the selected day of the itinerary as a fixed 24-hour timeline.

Each event appears as a card at its start hour; the card's height follows the
event's duration. With --watch the grid stays on screen, reloads when the
trip file changes, and the arrow keys switch between days.`,
	RunE: runTimeline,
}

func init() {
	rootCmd.AddCommand(timelineCmd)

	timelineCmd.Flags().IntVarP(&timelineDay, "day", "d", 1,
		"Day ordinal to render (1-based)")
	timelineCmd.Flags().BoolVarP(&timelineWatch, "watch", "w", false,
		"Stay on screen and follow trip file changes")
}

func runTimeline(cmd *cobra.Command, args []string) error {
	config, err := buildConfig()
	if err != nil {
		return err
	}

	v := viewer.New(config)

	if timelineWatch {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt)
		go func() {
			<-sigChan
			cancel()
		}()

		return viewer.NewWatchSession(v, timelineDay).Run(ctx)
	}

	itinerary, err := v.LoadItinerary(cmd.Context())
	if err != nil {
		return err
	}

	if itinerary.IsEmpty() {
		fmt.Println(itinerary.Title)
		fmt.Printf("Save a trip JSON file under %s, or pass --file or --url.\n", config.TripsDir)
		return nil
	}

	if timelineDay < 1 || timelineDay > len(itinerary.Days) {
		return fmt.Errorf("day %d is out of range: the trip has %d day(s)", timelineDay, len(itinerary.Days))
	}

	for _, line := range layout.NewTimelineRenderer().RenderDay(itinerary.Days[timelineDay-1]) {
		fmt.Println(line)
	}

	return nil
}
