package calendarcache

import (
	"sort"
	"time"
)

// Range is a half-open time interval [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether the range is non-empty.
func (r Range) Valid() bool {
	return r.End.After(r.Start)
}

// Contains reports whether o lies entirely inside r.
func (r Range) Contains(o Range) bool {
	return !o.Start.Before(r.Start) && !o.End.After(r.End)
}

// Includes reports whether t falls inside r.
func (r Range) Includes(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

func (r Range) overlaps(o Range) bool {
	return r.Start.Before(o.End) && r.End.After(o.Start)
}

// mergeRanges sorts ranges and joins overlapping or adjacent ones.
func mergeRanges(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}
	sorted := append([]Range(nil), ranges...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []Range{sorted[0]}
	for _, next := range sorted[1:] {
		cur := &merged[len(merged)-1]
		if !next.Start.After(cur.End) {
			if next.End.After(cur.End) {
				cur.End = next.End
			}
			continue
		}
		merged = append(merged, next)
	}
	return merged
}

// subtractRange removes cut from every range, keeping left and right remainders.
func subtractRange(ranges []Range, cut Range) []Range {
	out := make([]Range, 0, len(ranges)+1)
	for _, r := range ranges {
		if !r.overlaps(cut) {
			out = append(out, r)
			continue
		}
		if r.Start.Before(cut.Start) {
			out = append(out, Range{Start: r.Start, End: cut.Start})
		}
		if r.End.After(cut.End) {
			out = append(out, Range{Start: cut.End, End: r.End})
		}
	}
	return out
}
