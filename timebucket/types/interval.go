package types

import "time"

// Interval is a span of time from Start to End.
// The core treats it as half-open: [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// IntervalOf returns the interval starting at start and lasting d
func IntervalOf(start time.Time, d time.Duration) Interval {
	return Interval{
		Start: start,
		End:   start.Add(d),
	}
}

// Valid reports whether the interval does not end before it starts
func (r Interval) Valid() bool {
	return !r.End.Before(r.Start)
}

func (r Interval) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

func (r Interval) Empty() bool {
	return !r.Start.Before(r.End)
}

func (r Interval) ContainsRange(other Interval) bool {
	return !other.Start.Before(r.Start) && !other.End.After(r.End)
}

func (r Interval) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Overlaps reports whether both intervals share at least one instant.
// Intervals that only touch at a boundary do not overlap
func (r Interval) Overlaps(other Interval) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Touches reports whether the intervals overlap or are back-to-back
func (r Interval) Touches(other Interval) bool {
	return !r.Start.After(other.End) && !other.Start.After(r.End)
}

func (r Interval) String() string {
	return r.Start.Format(time.RFC3339) + "/" + r.End.Format(time.RFC3339)
}
