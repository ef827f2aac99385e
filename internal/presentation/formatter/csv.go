package formatter

import (
	"encoding/csv"
	"fmt"
	"os"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(report TripReport) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	headers := []string{
		"Day", "Date", "Title", "Events", "Meals", "Start", "End",
	}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, row := range report.Days {
		record := []string{
			fmt.Sprintf("%d", row.Day),
			row.Date,
			row.Title,
			fmt.Sprintf("%d", row.Events),
			fmt.Sprintf("%d", row.Meals),
			row.FirstStart,
			row.LastEnd,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}
