// Package agenda renders the stored events as a printable PDF schedule.
package agenda

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/plannerpal/plannerpal/internal/event"
)

const stampLayout = "2006-01-02T15:04:05"

// WritePDF renders a chronological agenda grouped by day. The layout is
// intentionally simple: a date heading per day, one line per event.
func WritePDF(w io.Writer, events []event.Event) error {
	sorted := append([]event.Event(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.AddPage()
	pdf.CellFormat(0, 10, "Academic Deadlines", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	lastDay := ""
	for _, e := range sorted {
		day, clock := splitStamp(e.Start)
		if day != lastDay {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 8, day, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			lastDay = day
		}
		when := "all day"
		if !e.AllDay && clock != "" {
			when = clock
		}
		line := fmt.Sprintf("%s  %s (%s)", when, e.Title, e.Type)
		pdf.MultiCell(0, 6, line, "", "L", false)
		if e.Description != "" {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.MultiCell(0, 5, e.Description, "", "L", false)
			pdf.SetFont("Helvetica", "", 11)
		}
	}

	return pdf.Output(w)
}

// splitStamp turns an ISO local datetime string into a human date heading
// and a clock string. Unparseable stamps fall back to the raw text so a bad
// record never breaks the whole export.
func splitStamp(s string) (day, clock string) {
	t, err := time.ParseInLocation(stampLayout, s, time.Local)
	if err != nil {
		return s, ""
	}
	return t.Format("Monday, January 2, 2006"), t.Format("15:04")
}
