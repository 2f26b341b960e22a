// Package ics serializes stored events into an iCalendar feed consumable by
// Google Calendar, Outlook, and Apple Calendar.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/rs/zerolog/log"

	"github.com/plannerpal/plannerpal/internal/event"
)

const (
	prodID  = "-//Planner Pal//Academic Calendar//EN"
	calName = "Planner Pal Academic Calendar"
	calDesc = "Academic events and deadlines extracted from syllabi"
)

// Export renders one VEVENT per stored event. Records whose start or end
// stamp cannot be parsed are logged and skipped rather than corrupting the
// feed.
func Export(events []event.Event) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)
	cal.SetVersion("2.0")
	cal.SetCalscale("GREGORIAN")
	cal.SetXWRCalName(calName)
	cal.SetXWRCalDesc(calDesc)

	now := time.Now()
	for _, e := range events {
		start, err := parseStamp(e.Start)
		if err != nil {
			log.Warn().Err(err).Int("id", e.ID).Msg("skipping event with bad start stamp")
			continue
		}
		end, err := parseStamp(e.End)
		if err != nil {
			log.Warn().Err(err).Int("id", e.ID).Msg("skipping event with bad end stamp")
			continue
		}

		ve := cal.AddEvent(fmt.Sprintf("plannerpal-%d@plannerpal.local", e.ID))
		ve.SetSummary(e.Title)
		ve.SetDescription(e.Description)
		ve.SetLocation(e.Course)
		ve.SetDtStampTime(now)
		ve.SetProperty(ical.ComponentPropertyCategories, string(e.Type))
		if e.AllDay {
			ve.SetAllDayStartAt(start)
			ve.SetAllDayEndAt(end)
		} else {
			ve.SetStartAt(start)
			ve.SetEndAt(end)
		}
	}
	return cal.Serialize()
}

// parseStamp accepts the engine's local ISO form plus the common variants a
// manual client may submit.
func parseStamp(s string) (time.Time, error) {
	for _, layout := range []string{
		"2006-01-02T15:04:05",
		time.RFC3339,
		"2006-01-02",
	} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", s)
}
