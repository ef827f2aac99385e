package formatter

import (
	"fmt"
	"strings"

	"github.com/triptide/go-trip-timeline/internal/util"
)

type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{
			"Day", "Date", "Title", "Events", "Meals", "Start", "End",
		},
	}
}

func (f *TableFormatter) Format(report TripReport) error {
	fmt.Println(util.FormatHeaderTitle(report.Title))

	widths := f.calculateColumnWidths(report)

	f.printBorder(widths, "top")
	f.printRow(f.headers, widths)
	f.printBorder(widths, "middle")

	for _, row := range report.Days {
		f.printRow(f.rowValues(row), widths)
	}

	f.printBorder(widths, "middle")
	f.printRow([]string{
		"Total", "", "",
		fmt.Sprintf("%d", report.TotalPlaces),
		fmt.Sprintf("%d", report.TotalMeals),
		"", "",
	}, widths)
	f.printBorder(widths, "bottom")

	if report.RouteString != "" {
		fmt.Printf("Route: %s\n", report.RouteString)
	}

	return nil
}

func (f *TableFormatter) rowValues(row DayRow) []string {
	return []string{
		fmt.Sprintf("%d", row.Day),
		row.Date,
		row.Title,
		fmt.Sprintf("%d", row.Events),
		fmt.Sprintf("%d", row.Meals),
		row.FirstStart,
		row.LastEnd,
	}
}

// calculateColumnWidths determines the width of each column from its
// content, using display width so emoji or CJK titles stay aligned.
func (f *TableFormatter) calculateColumnWidths(report TripReport) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}

	update := func(values []string) {
		for i, value := range values {
			if w := util.GetDisplayWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for _, row := range report.Days {
		update(f.rowValues(row))
	}
	update([]string{"Total", "", "", fmt.Sprintf("%d", report.TotalPlaces), fmt.Sprintf("%d", report.TotalMeals), "", ""})

	return widths
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	fmt.Print(left)
	for i, width := range widths {
		fmt.Print(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			fmt.Print(middle)
		}
	}
	fmt.Println(right)
}

// printRow prints a data row. Day/date/title columns are left-aligned,
// numeric and clock columns right-aligned.
func (f *TableFormatter) printRow(values []string, widths []int) {
	fmt.Print("│")
	for i, value := range values {
		pad := widths[i] - util.GetDisplayWidth(value)
		if pad < 0 {
			pad = 0
		}
		if i <= 2 {
			fmt.Printf(" %s%s │", value, strings.Repeat(" ", pad))
		} else {
			fmt.Printf(" %s%s │", strings.Repeat(" ", pad), value)
		}
	}
	fmt.Println()
}
