// Package store holds events in process memory. Persistence across restarts
// is deliberately out of scope; the store's job is ordered CRUD with
// monotonic IDs behind a single lock.
package store

import (
	"errors"
	"sync"

	"github.com/plannerpal/plannerpal/internal/event"
)

// ErrNotFound reports a lookup for an ID the store does not hold.
var ErrNotFound = errors.New("event not found")

// Store owns an ordered collection of events and the ID counter. All access
// goes through its methods; one mutex serializes readers and writers so
// concurrent handlers cannot corrupt iteration or lose updates.
type Store struct {
	mu     sync.Mutex
	events []event.Event
	nextID int
}

func New() *Store {
	return &Store{nextID: 1}
}

// Add assigns the next ID to e and appends it. IDs increase monotonically
// across the process lifetime regardless of deletions.
func (s *Store) Add(e event.Event) event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.nextID
	s.nextID++
	s.events = append(s.events, e)
	return e
}

// List returns every event in insertion order. The slice is a copy; callers
// may not mutate stored records through it.
func (s *Store) List() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.Event(nil), s.events...)
}

func (s *Store) Get(id int) (event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e.ID == id {
			return e, nil
		}
	}
	return event.Event{}, ErrNotFound
}

// Patch carries a field-level update; nil fields are left untouched. The ID
// is not patchable.
type Patch struct {
	Title       *string `json:"title"`
	Type        *string `json:"type"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
	AllDay      *bool   `json:"allDay"`
	Description *string `json:"description"`
	Course      *string `json:"course"`
}

// Update applies p to the event with the given ID in place and returns the
// updated record. A Type value outside the allowed category set is rejected
// before any field is touched.
func (s *Store) Update(id int, p Patch) (event.Event, error) {
	var typ event.Category
	if p.Type != nil {
		var err error
		typ, err = event.ParseCategory(*p.Type)
		if err != nil {
			return event.Event{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}
		e := &s.events[i]
		if p.Title != nil {
			e.Title = *p.Title
		}
		if p.Type != nil {
			e.Type = typ
		}
		if p.Start != nil {
			e.Start = *p.Start
		}
		if p.End != nil {
			e.End = *p.End
		}
		if p.AllDay != nil {
			e.AllDay = *p.AllDay
		}
		if p.Description != nil {
			e.Description = *p.Description
		}
		if p.Course != nil {
			e.Course = *p.Course
		}
		return *e, nil
	}
	return event.Event{}, ErrNotFound
}

func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
