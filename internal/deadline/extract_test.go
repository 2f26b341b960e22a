package deadline

import (
	"strings"
	"testing"

	"github.com/plannerpal/plannerpal/internal/event"
)

func TestExtract_TitleAndMultiTitleExpansion(t *testing.T) {
	events := Extract("Midterm Exam: March 5th, 2024. Quiz 1, Quiz 2: March 10, 2024")
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d: %+v", len(events), events)
	}

	first := events[0]
	if first.Title != "Midterm Exam" {
		t.Fatalf("expected title 'Midterm Exam', got %q", first.Title)
	}
	if first.Type != event.CategoryMidterm {
		t.Fatalf("expected Midterm, got %q", first.Type)
	}
	if !first.AllDay {
		t.Fatalf("expected all-day event")
	}
	if !strings.HasPrefix(first.Start, "2024-03-05") {
		t.Fatalf("expected start on 2024-03-05, got %q", first.Start)
	}

	if events[1].Title != "Quiz 1" || events[2].Title != "Quiz 2" {
		t.Fatalf("expected 'Quiz 1' and 'Quiz 2', got %q and %q", events[1].Title, events[2].Title)
	}
	for _, e := range events[1:] {
		if e.Type != event.CategoryQuiz {
			t.Fatalf("expected Quiz, got %q", e.Type)
		}
		if !strings.HasPrefix(e.Start, "2024-03-10") {
			t.Fatalf("expected start on 2024-03-10, got %q", e.Start)
		}
	}
}

func TestExtract_TimeRange(t *testing.T) {
	events := Extract("Final exam on December 12, 2024 7:00 PM - 9:00 PM in the main hall")
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d: %+v", len(events), events)
	}
	e := events[0]
	if e.Type != event.CategoryExam {
		t.Fatalf("expected Exam, got %q", e.Type)
	}
	if e.AllDay {
		t.Fatalf("expected timed event")
	}
	if e.Start != "2024-12-12T19:00:00" {
		t.Fatalf("expected start 2024-12-12T19:00:00, got %q", e.Start)
	}
	if e.End != "2024-12-12T21:00:00" {
		t.Fatalf("expected end 2024-12-12T21:00:00, got %q", e.End)
	}
}

func TestExtract_SingleTime(t *testing.T) {
	events := Extract("Quiz 3 on April 2, 2025 10:00 AM in room 5")
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	if e.AllDay {
		t.Fatalf("expected timed event")
	}
	if e.Start != "2025-04-02T10:00:00" || e.End != e.Start {
		t.Fatalf("expected start == end == 2025-04-02T10:00:00, got %q / %q", e.Start, e.End)
	}
}

func TestExtract_TimeOutsideWindowIgnored(t *testing.T) {
	text := "Seminar on January 9, 2025 " + strings.Repeat("filler ", 20) + "dinner at 8:00 PM"
	events := Extract(text)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if !events[0].AllDay {
		t.Fatalf("time beyond the trailing window must not attach; got start %q", events[0].Start)
	}
}

func TestExtract_LaterDatesTimeDoesNotAttach(t *testing.T) {
	events := Extract("Lecture on March 5, 2024. Exam on March 6, 2024 10:00 AM.")
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d: %+v", len(events), events)
	}
	if !events[0].AllDay {
		t.Fatalf("the later date's time attached to the earlier event: %+v", events[0])
	}
	if events[1].AllDay || events[1].Start != "2024-03-06T10:00:00" {
		t.Fatalf("expected timed second event at 10:00, got %+v", events[1])
	}
}

func TestExtract_IgnoredHeadingDoesNotLeakIntoTitle(t *testing.T) {
	events := Extract("Office Hours: discuss project, May 1, 2024")
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d: %+v", len(events), events)
	}
	if strings.Contains(events[0].Title, "Office Hours") {
		t.Fatalf("heading leaked into title: %q", events[0].Title)
	}
	if events[0].Title != "discuss project" {
		t.Fatalf("expected 'discuss project', got %q", events[0].Title)
	}
	if events[0].Type != event.CategoryProject {
		t.Fatalf("expected Project, got %q", events[0].Type)
	}
}

func TestExtract_BoilerplateStrippedToDefaultTitle(t *testing.T) {
	events := Extract("Component Weight 25% October 3, 2024")
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Title != "Assignment" {
		t.Fatalf("expected default title 'Assignment', got %q", events[0].Title)
	}
}

func TestExtract_ImpossibleDateSkipped(t *testing.T) {
	events := Extract("Homework due Feb 31, 2024. Lab 5 due Mar 1, 2024.")
	if len(events) != 1 {
		t.Fatalf("expected the Feb 31 occurrence skipped, got %d events: %+v", len(events), events)
	}
	if !strings.HasPrefix(events[0].Start, "2024-03-01") {
		t.Fatalf("expected surviving event on 2024-03-01, got %q", events[0].Start)
	}
}

func TestExtract_NoYearNoDate(t *testing.T) {
	events := Extract("Quiz every Friday, and a midterm on March 5 at some point")
	if len(events) != 0 {
		t.Fatalf("bare month-day without a year must not produce events, got %+v", events)
	}
}

func TestExtract_EmptyAndAdversarialInput(t *testing.T) {
	for _, in := range []string{"", "   ", "%%%%(((", strings.Repeat("9999 ", 50)} {
		events := Extract(in)
		if len(events) != 0 {
			t.Fatalf("expected no events for %q, got %+v", in, events)
		}
	}
}

func TestExtract_Deduplication(t *testing.T) {
	events := Extract("Assignment 1 due September 10, 2024. Assignment 1 due September 10, 2024.")
	if len(events) != 1 {
		t.Fatalf("expected duplicate collapsed to 1 event, got %d", len(events))
	}

	seen := map[string]struct{}{}
	for _, e := range events {
		key := strings.ToLower(e.Title) + "_" + e.Start[:10]
		if _, dup := seen[key]; dup {
			t.Fatalf("duplicate key %q emitted", key)
		}
		seen[key] = struct{}{}
	}
}

func TestExtract_StartNeverAfterEnd(t *testing.T) {
	text := "Review on June 3, 2024 9:00 PM - 7:00 PM. Exam on June 4, 2024 1:00 PM - 3:00 PM."
	for _, e := range Extract(text) {
		if e.Start > e.End {
			t.Fatalf("start %q after end %q for %q", e.Start, e.End, e.Title)
		}
	}
}

func TestExtract_OrderFollowsDateOccurrences(t *testing.T) {
	events := Extract("Lab 1: January 10, 2025. Lab 2: February 10, 2025. Lab 3: March 10, 2025.")
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	want := []string{"Lab 1", "Lab 2", "Lab 3"}
	for i, e := range events {
		if e.Title != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], e.Title)
		}
	}
}

func TestExtract_SnippetFoundInPreparedText(t *testing.T) {
	text := "Course Description: widgets. Midterm Exam: March 5th, 2024. Quiz 1: March 10, 2024 11:00 AM."
	prepared := prepare(text)
	for _, e := range Extract(text) {
		if e.ExtractedFrom == "" {
			t.Fatalf("empty extracted_from for %q", e.Title)
		}
		if !strings.Contains(prepared, e.ExtractedFrom) {
			t.Fatalf("snippet %q not found in prepared text %q", e.ExtractedFrom, prepared)
		}
	}
}
