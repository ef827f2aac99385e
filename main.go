package main

import (
	"os"

	"github.com/triptide/go-trip-timeline/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
