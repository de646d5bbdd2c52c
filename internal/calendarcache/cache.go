// Package calendarcache keeps normalized calendar events in day buckets and
// remembers which time ranges have been fully loaded.
package calendarcache

import (
	"sort"
	"time"

	"scheduling-intelligence/internal/model"
	"scheduling-intelligence/pkg/datemath"
)

// Store is a range-indexed, day-bucketed event cache.
// It is not safe for concurrent use; Session serializes access to it.
type Store struct {
	days        *datemath.Parser
	eventsByDay map[string][]model.CalendarEvent
	dayOf       map[string]string // event id -> bucket key
	loaded      []Range
}

// DayEvents is one day of a week view.
type DayEvents struct {
	Day    time.Time
	Key    string
	Events []model.CalendarEvent
}

// NewStore creates an empty Store with day buckets in days' timezone.
func NewStore(days *datemath.Parser) *Store {
	return &Store{
		days:        days,
		eventsByDay: make(map[string][]model.CalendarEvent),
		dayOf:       make(map[string]string),
	}
}

// AddRange stores events in the bucket of their start day, replacing any
// cached copy with the same id, and marks r as loaded.
func (s *Store) AddRange(r Range, events []model.CalendarEvent) {
	touched := make(map[string]struct{})
	for _, ev := range events {
		touched[s.put(ev)] = struct{}{}
	}
	for key := range touched {
		s.sortBucket(key)
	}
	if r.Valid() {
		s.loaded = mergeRanges(append(s.loaded, r))
	}
}

// IsRangeLoaded reports whether a single loaded interval contains r.
func (s *Store) IsRangeLoaded(r Range) bool {
	for _, l := range s.loaded {
		if l.Contains(r) {
			return true
		}
	}
	return false
}

// InvalidateRange drops events starting inside r and cuts r out of the
// loaded intervals. Invalidating an unloaded range is a no-op.
func (s *Store) InvalidateRange(r Range) {
	if !r.Valid() {
		return
	}
	for key, bucket := range s.eventsByDay {
		kept := bucket[:0]
		for _, ev := range bucket {
			if r.Includes(ev.Start) {
				delete(s.dayOf, ev.ID)
				continue
			}
			kept = append(kept, ev)
		}
		if len(kept) == 0 {
			delete(s.eventsByDay, key)
			continue
		}
		s.eventsByDay[key] = kept
	}
	s.loaded = subtractRange(s.loaded, r)
}

// UpdateEvent replaces the cached event with the same id, moving it to the
// bucket of its new start day. Unknown ids are inserted.
func (s *Store) UpdateEvent(ev model.CalendarEvent) {
	s.sortBucket(s.put(ev))
}

// RemoveEvent deletes an event by id. It reports whether the id was cached.
func (s *Store) RemoveEvent(id string) bool {
	key, ok := s.dayOf[id]
	if !ok {
		return false
	}
	s.removeFromBucket(key, id)
	delete(s.dayOf, id)
	return true
}

// GetEventsForDay returns a copy of the bucket for day, ordered by start.
func (s *Store) GetEventsForDay(day time.Time) []model.CalendarEvent {
	bucket := s.eventsByDay[s.days.DayKey(day)]
	return append([]model.CalendarEvent(nil), bucket...)
}

// GetEventsForRange returns cached events starting inside r, de-duplicated by id
// and ordered by start.
func (s *Store) GetEventsForRange(r Range) []model.CalendarEvent {
	seen := make(map[string]struct{})
	var out []model.CalendarEvent
	for _, bucket := range s.eventsByDay {
		for _, ev := range bucket {
			if !r.Includes(ev.Start) {
				continue
			}
			if _, dup := seen[ev.ID]; dup {
				continue
			}
			seen[ev.ID] = struct{}{}
			out = append(out, ev)
		}
	}
	sortEvents(out)
	return out
}

// GetEventsForWeek returns seven buckets, Monday first, for the week containing day.
func (s *Store) GetEventsForWeek(day time.Time) []DayEvents {
	monday := s.days.WeekStart(day)
	week := make([]DayEvents, 7)
	for i := range week {
		d := s.days.StartOfDay(monday.AddDate(0, 0, i))
		week[i] = DayEvents{
			Day:    d,
			Key:    s.days.DayKey(d),
			Events: s.GetEventsForDay(d),
		}
	}
	return week
}

// WeekRange is the half-open range covering the week containing day.
func (s *Store) WeekRange(day time.Time) Range {
	monday := s.days.WeekStart(day)
	return Range{Start: monday, End: s.days.StartOfDay(monday.AddDate(0, 0, 7))}
}

// LoadedRanges returns a copy of the loaded intervals.
func (s *Store) LoadedRanges() []Range {
	return append([]Range(nil), s.loaded...)
}

// put moves ev into its start-day bucket and returns that bucket's key.
// The caller sorts the bucket.
func (s *Store) put(ev model.CalendarEvent) string {
	key := s.days.DayKey(ev.Start)
	if prev, ok := s.dayOf[ev.ID]; ok {
		s.removeFromBucket(prev, ev.ID)
	}
	s.eventsByDay[key] = append(s.eventsByDay[key], ev)
	s.dayOf[ev.ID] = key
	return key
}

func (s *Store) removeFromBucket(key, id string) {
	bucket := s.eventsByDay[key]
	for i, ev := range bucket {
		if ev.ID == id {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(s.eventsByDay, key)
		return
	}
	s.eventsByDay[key] = bucket
}

func (s *Store) sortBucket(key string) {
	sortEvents(s.eventsByDay[key])
}

func sortEvents(events []model.CalendarEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Start.Equal(events[j].Start) {
			return events[i].Start.Before(events[j].Start)
		}
		return events[i].ID < events[j].ID
	})
}
