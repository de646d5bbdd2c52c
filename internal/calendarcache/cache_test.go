package calendarcache

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduling-intelligence/internal/model"
	"scheduling-intelligence/pkg/datemath"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	days, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	return NewStore(days)
}

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func event(id string, d, hour int) model.CalendarEvent {
	start := time.Date(2025, 3, d, hour, 0, 0, 0, time.UTC)
	return model.CalendarEvent{ID: id, Title: id, Start: start, End: start.Add(time.Hour)}
}

func ids(events []model.CalendarEvent) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.ID
	}
	return out
}

func TestAddRange_MergesRanges(t *testing.T) {
	s := newTestStore(t)

	s.AddRange(Range{day(1), day(3)}, nil)
	s.AddRange(Range{day(5), day(7)}, nil)
	assert.Len(t, s.LoadedRanges(), 2)

	s.AddRange(Range{day(3), day(5)}, nil) // adjacent on both sides
	assert.Equal(t, []Range{{day(1), day(7)}}, s.LoadedRanges())

	s.AddRange(Range{day(2), day(4)}, nil) // already covered
	assert.Equal(t, []Range{{day(1), day(7)}}, s.LoadedRanges())

	s.AddRange(Range{day(6), day(9)}, nil) // overlapping tail
	assert.Equal(t, []Range{{day(1), day(9)}}, s.LoadedRanges())
}

func TestAddRange_LastWriteWins(t *testing.T) {
	s := newTestStore(t)
	first := event("a", 2, 9)
	second := first
	second.Title = "renamed"

	s.AddRange(Range{day(1), day(5)}, []model.CalendarEvent{first})
	s.AddRange(Range{day(1), day(5)}, []model.CalendarEvent{second})

	got := s.GetEventsForDay(day(2))
	require.Len(t, got, 1)
	assert.Equal(t, "renamed", got[0].Title)
}

func TestAddRange_MovesIDAcrossBuckets(t *testing.T) {
	s := newTestStore(t)
	s.AddRange(Range{day(1), day(5)}, []model.CalendarEvent{event("a", 2, 9)})
	s.AddRange(Range{day(1), day(5)}, []model.CalendarEvent{event("a", 3, 9)})

	assert.Empty(t, s.GetEventsForDay(day(2)))
	assert.Equal(t, []string{"a"}, ids(s.GetEventsForDay(day(3))))
}

func TestIsRangeLoaded_SingleInterval(t *testing.T) {
	s := newTestStore(t)
	s.AddRange(Range{day(1), day(3)}, nil)
	s.AddRange(Range{day(4), day(6)}, nil)

	assert.True(t, s.IsRangeLoaded(Range{day(1), day(3)}))
	assert.True(t, s.IsRangeLoaded(Range{day(4), day(5)}))
	assert.False(t, s.IsRangeLoaded(Range{day(2), day(5)}), "gap on day 3 is not loaded")
	assert.False(t, s.IsRangeLoaded(Range{day(10), day(11)}))
}

func TestInvalidateRange_SplitsIntervals(t *testing.T) {
	s := newTestStore(t)
	s.AddRange(Range{day(1), day(10)}, []model.CalendarEvent{
		event("a", 2, 9),
		event("b", 5, 9),
		event("c", 8, 9),
	})

	s.InvalidateRange(Range{day(4), day(6)})

	assert.Equal(t, []Range{{day(1), day(4)}, {day(6), day(10)}}, s.LoadedRanges())
	assert.Equal(t, []string{"a", "c"}, ids(s.GetEventsForRange(Range{day(1), day(10)})))
	assert.False(t, s.IsRangeLoaded(Range{day(3), day(7)}))
	assert.True(t, s.IsRangeLoaded(Range{day(6), day(9)}))
}

func TestInvalidateRange_Edges(t *testing.T) {
	s := newTestStore(t)
	s.AddRange(Range{day(1), day(5)}, []model.CalendarEvent{event("a", 2, 9)})

	s.InvalidateRange(Range{day(20), day(21)})
	assert.Equal(t, []Range{{day(1), day(5)}}, s.LoadedRanges(), "unloaded range is a no-op")

	s.InvalidateRange(Range{day(3), day(2)})
	assert.Equal(t, []Range{{day(1), day(5)}}, s.LoadedRanges(), "inverted range is a no-op")

	s.InvalidateRange(Range{day(3), day(8)})
	assert.Equal(t, []Range{{day(1), day(3)}}, s.LoadedRanges(), "right side cut keeps left remainder")

	s.InvalidateRange(Range{day(1), day(3)})
	assert.Empty(t, s.LoadedRanges())
	assert.Empty(t, s.GetEventsForDay(day(2)))
}

func TestUpdateEvent(t *testing.T) {
	s := newTestStore(t)
	s.AddRange(Range{day(1), day(5)}, []model.CalendarEvent{
		event("a", 2, 9),
		event("b", 2, 11),
		event("c", 3, 9),
	})

	moved := event("b", 3, 8)
	s.UpdateEvent(moved)

	assert.Equal(t, []string{"a"}, ids(s.GetEventsForDay(day(2))))
	assert.Equal(t, []string{"b", "c"}, ids(s.GetEventsForDay(day(3))))

	earlier := event("a", 2, 7)
	earlier.Title = "earlier"
	s.UpdateEvent(earlier)
	got := s.GetEventsForDay(day(2))
	require.Len(t, got, 1)
	assert.Equal(t, "earlier", got[0].Title)

	s.UpdateEvent(event("new", 4, 9))
	assert.Equal(t, []string{"new"}, ids(s.GetEventsForDay(day(4))))
}

func TestRemoveEvent(t *testing.T) {
	s := newTestStore(t)
	s.AddRange(Range{day(1), day(5)}, []model.CalendarEvent{event("a", 2, 9), event("b", 2, 10)})

	assert.True(t, s.RemoveEvent("a"))
	assert.False(t, s.RemoveEvent("a"))
	assert.Equal(t, []string{"b"}, ids(s.GetEventsForDay(day(2))))

	assert.True(t, s.RemoveEvent("b"))
	assert.Empty(t, s.GetEventsForDay(day(2)))
	assert.True(t, s.IsRangeLoaded(Range{day(1), day(5)}), "removal keeps the range loaded")
}

func TestGetEventsForWeek(t *testing.T) {
	s := newTestStore(t)
	// 2025-03-10 is a Monday.
	s.AddRange(Range{day(10), day(17)}, []model.CalendarEvent{
		event("mon", 10, 9),
		event("wed", 12, 9),
		event("sun", 16, 9),
	})

	week := s.GetEventsForWeek(day(13))
	require.Len(t, week, 7)
	assert.Equal(t, "2025-03-10", week[0].Key)
	assert.Equal(t, []string{"mon"}, ids(week[0].Events))
	assert.Equal(t, []string{"wed"}, ids(week[2].Events))
	assert.Equal(t, []string{"sun"}, ids(week[6].Events))
	assert.Empty(t, week[1].Events)

	assert.Equal(t, Range{day(10), day(17)}, s.WeekRange(day(16)))
}

func TestGetEventsForDay_ReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	s.AddRange(Range{day(1), day(5)}, []model.CalendarEvent{event("a", 2, 9)})

	got := s.GetEventsForDay(day(2))
	got[0].Title = "mutated"

	assert.Equal(t, "a", s.GetEventsForDay(day(2))[0].Title)
}

func randomEvents(rng *rand.Rand, n int) []model.CalendarEvent {
	events := make([]model.CalendarEvent, n)
	for i := range events {
		events[i] = event(fmt.Sprintf("e%d", rng.Intn(n*2)), rng.Intn(14)+1, rng.Intn(24))
	}
	return events
}

// TestAddRange_Property_Idempotent adds the same batch twice and compares state.
func TestAddRange_Property_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 100; trial++ {
		events := randomEvents(rng, rng.Intn(20)+1)
		r := Range{day(rng.Intn(5) + 1), day(rng.Intn(5) + 10)}

		once := newTestStore(t)
		once.AddRange(r, events)
		twice := newTestStore(t)
		twice.AddRange(r, events)
		twice.AddRange(r, events)

		assert.Equal(t, once.eventsByDay, twice.eventsByDay, "trial %d", trial)
		assert.Equal(t, once.LoadedRanges(), twice.LoadedRanges(), "trial %d", trial)
	}
}

// TestAddRange_Property_RangeCoverage loads a wide range and queries a sub-range.
func TestAddRange_Property_RangeCoverage(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for trial := 0; trial < 100; trial++ {
		events := make([]model.CalendarEvent, rng.Intn(30)+1)
		for i := range events {
			events[i] = event(fmt.Sprintf("e%d", i), rng.Intn(9)+1, rng.Intn(24))
		}

		s := newTestStore(t)
		s.AddRange(Range{day(1), day(10)}, events)

		sub := Range{day(3), day(7)}
		require.True(t, s.IsRangeLoaded(sub))

		var want []string
		for _, ev := range events {
			if sub.Includes(ev.Start) {
				want = append(want, ev.ID)
			}
		}
		got := s.GetEventsForRange(sub)
		assert.ElementsMatch(t, want, ids(got), "trial %d", trial)
		for i := 1; i < len(got); i++ {
			assert.False(t, got[i].Start.Before(got[i-1].Start), "trial %d: range results ordered by start", trial)
		}
	}
}
