// Package deadline scans syllabus text for dated academic events. The
// extractor is a pure function over an in-memory string: it locates calendar
// dates, derives a title and category for each, attaches nearby time-of-day
// information, and deduplicates the results.
package deadline

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/plannerpal/plannerpal/internal/event"
	"github.com/plannerpal/plannerpal/internal/normalize"
)

// Event is the engine output prior to persistence. The store assigns IDs and
// provenance downstream.
type Event struct {
	Title         string
	Type          event.Category
	Start         string
	End           string
	AllDay        bool
	ExtractedFrom string
}

const (
	// contextWindow is how far around a date match, in bytes, the engine
	// looks for a title (before) and time-of-day information (after).
	contextWindow = 120

	defaultTitle = "Assignment"

	isoLayout = "2006-01-02T15:04:05"
)

// Extract returns every deadline found in text, ordered by date occurrence
// and, within one occurrence, by title-split order. It never fails: any
// input, including empty or adversarial text, yields a valid (possibly
// empty) slice. Safe for concurrent callers; no shared state.
func Extract(text string) []Event {
	cleaned := prepare(text)

	results := make([]Event, 0)
	seen := make(map[string]struct{})

	for _, loc := range dateRe.FindAllStringIndex(cleaned, -1) {
		dateText := cleaned[loc[0]:loc[1]]

		// A match that does not survive the lenient parser is a false
		// positive (e.g. "Feb 31"); skip it and keep scanning.
		dateBase, err := parseDate(dateText)
		if err != nil {
			continue
		}

		winStart := loc[0] - contextWindow
		if winStart < 0 {
			winStart = 0
		}
		winEnd := loc[1] + contextWindow
		if winEnd > len(cleaned) {
			winEnd = len(cleaned)
		}
		snippet := strings.TrimSpace(cleaned[winStart:winEnd])

		titleRaw := deriveTitle(cleaned[winStart:loc[0]])

		// Only text strictly after the date and inside the trailing window
		// may contribute times, and never past the next date occurrence: a
		// later date's times must not attach here.
		after := cleaned[loc[1]:winEnd]
		if next := dateRe.FindStringIndex(after); next != nil {
			after = after[:next[0]]
		}
		startISO, endISO, allDay := detectTimes(dateText, dateBase, after)

		for _, title := range splitTitles(titleRaw) {
			title = whitespaceRe.ReplaceAllString(title, " ")
			key := strings.ToLower(title) + "_" + startISO[:10]
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			results = append(results, Event{
				Title:         title,
				Type:          Classify(title),
				Start:         startISO,
				End:           endISO,
				AllDay:        allDay,
				ExtractedFrom: snippet,
			})
		}
	}
	return results
}

// prepare normalizes the input and erases section headings that would
// otherwise bleed into titles.
func prepare(text string) string {
	return ignoredSectionsRe.ReplaceAllString(normalize.Normalize(text), " ")
}

// deriveTitle takes the text preceding a date match and reduces it to a raw
// title candidate: the last sentence-like segment, with grade weights and
// template words stripped.
func deriveTitle(before string) string {
	before = strings.TrimSpace(before)
	raw := before
	if segments := titleSplitRe.Split(before, -1); len(segments) > 0 {
		raw = segments[len(segments)-1]
	}
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSpace(percentRe.ReplaceAllString(raw, ""))
	raw = strings.TrimSpace(boilerplateRe.ReplaceAllString(raw, ""))
	if raw == "" {
		return defaultTitle
	}
	return raw
}

// splitTitles expands a candidate that names several events on one line
// ("Quiz 1, Quiz 2") into separate titles. Fragments of three characters or
// fewer are treated as punctuation noise; if nothing survives, the unsplit
// candidate stands.
func splitTitles(raw string) []string {
	parts := multiTitleSplitRe.Split(raw, -1)
	titles := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(strings.TrimSpace(p)) <= 2 {
			continue
		}
		titles = append(titles, strings.Trim(p, " -:"))
	}
	if len(titles) == 0 {
		return []string{raw}
	}
	return titles
}

// detectTimes inspects the text following a date for a time range, then a
// single time. Without either, the event is all-day at midnight of the
// parsed date.
func detectTimes(dateText string, dateBase time.Time, after string) (startISO, endISO string, allDay bool) {
	if m := timeRangeRe.FindString(after); m != "" {
		parts := rangeSplitRe.Split(m, 2)
		start, err1 := parseDateTime(dateText, strings.TrimSpace(parts[0]))
		end, err2 := parseDateTime(dateText, strings.TrimSpace(parts[1]))
		if err1 == nil && err2 == nil {
			if end.Before(start) {
				start, end = end, start
			}
			return start.Format(isoLayout), end.Format(isoLayout), false
		}
	}
	if m := singleTimeRe.FindString(after); m != "" {
		if t, err := parseDateTime(dateText, m); err == nil {
			iso := t.Format(isoLayout)
			return iso, iso, false
		}
	}
	midnight := time.Date(dateBase.Year(), dateBase.Month(), dateBase.Day(), 0, 0, 0, 0, dateBase.Location())
	iso := midnight.Format(isoLayout)
	return iso, iso, true
}

// canonicalDate folds the matched date text into a shape the lenient parser
// accepts: ordinal suffixes dropped, abbreviation periods removed, "Sept"
// reduced to "Sep".
func canonicalDate(dateText string) string {
	s := ordinalRe.ReplaceAllString(dateText, "$1")
	s = strings.ReplaceAll(s, ".", "")
	return septRe.ReplaceAllString(s, "Sep")
}

func parseDate(dateText string) (time.Time, error) {
	return dateparse.ParseLocal(canonicalDate(dateText))
}

func parseDateTime(dateText, timeText string) (time.Time, error) {
	return dateparse.ParseLocal(canonicalDate(dateText) + " " + timeText)
}
