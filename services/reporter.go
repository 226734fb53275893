package services

import (
	"fmt"
	"io"

	"autoria-scraper/models"

	"github.com/jedib0t/go-pretty/v6/table"
)

// PrintRunSummary renders the exported records as a table
func PrintRunSummary(w io.Writer, run models.Run, records []models.ListingRecord) {
	c := run.Criteria
	fmt.Fprintf(w, "\n Run %s: %s %s %s, %s, %s-%s, %s-%s\n",
		run.ID, c.TransportType, c.Brand, c.Model, c.Region, c.YearFrom, c.YearTo, c.PriceFrom, c.PriceTo)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Title", "Phone Number", "Description"})

	for i, r := range records {
		t.AppendRow(table.Row{i + 1, truncate(r.Title, 40), r.PhoneNumber, truncate(r.Description, 60)})
	}

	t.AppendFooter(table.Row{"", "Total", len(records), ""})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
