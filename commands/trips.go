package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/triptide/go-trip-timeline/internal/util"
	"github.com/triptide/go-trip-timeline/internal/viewer"
)

var tripsCmd = &cobra.Command{
	Use:   "trips",
	Short: "List the saved trips",
	Long: `Lists every itinerary payload saved under the trips directory, most
recently modified first, with its title and day count. Payloads that fail to
decode are listed with the decode error.`,
	RunE: runTrips,
}

func init() {
	rootCmd.AddCommand(tripsCmd)
}

func runTrips(cmd *cobra.Command, args []string) error {
	config, err := buildConfig()
	if err != nil {
		return err
	}

	listings, err := viewer.New(config).ListTrips()
	if err != nil {
		return err
	}

	if len(listings) == 0 {
		fmt.Printf("No saved trips under %s.\n", config.TripsDir)
		return nil
	}

	for _, listing := range listings {
		name := filepath.Base(listing.Path)
		if listing.Err != nil {
			fmt.Printf("%-32s %s\n", name, util.FormatMuted(fmt.Sprintf("unreadable: %v", listing.Err)))
			continue
		}
		fmt.Printf("%-32s %s  %s\n", name, listing.Title,
			util.FormatMuted(util.FormatCount(listing.Days, "day")))
	}

	return nil
}
