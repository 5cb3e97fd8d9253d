package timebucket

import (
	"time"
)

// nextGridPoint returns the grid point following current, ok is false once end is reached
func nextGridPoint(current time.Time, delta time.Duration, end time.Time) (time.Time, bool) {
	next := current.Add(delta)
	if !next.Before(end) {
		return time.Time{}, false
	}
	return next, true
}

// Cursor walks the points start, start+delta, ... that lie before end.
// A cursor can only be consumed once
type Cursor struct {
	current time.Time
	end     time.Time
	delta   time.Duration
	started bool
	done    bool
}

// NewCursor returns a cursor positioned before the first grid point
func NewCursor(start, end time.Time, delta time.Duration) (*Cursor, error) {
	if err := checkGranularity(delta); err != nil {
		return nil, err
	}
	return &Cursor{
		current: start,
		end:     end,
		delta:   delta,
	}, nil
}

// Next advances the cursor, it returns false when no points are left
func (c *Cursor) Next() bool {
	if c.done {
		return false
	}

	if !c.started {
		c.started = true
		if !c.current.Before(c.end) {
			c.done = true
			return false
		}
		return true
	}

	next, ok := nextGridPoint(c.current, c.delta, c.end)
	if !ok {
		c.done = true
		return false
	}
	c.current = next
	return true
}

// Time returns the point the cursor is positioned on
func (c *Cursor) Time() time.Time {
	return c.current
}

// Range returns all grid points from start (inclusive) to end (exclusive)
func Range(start, end time.Time, delta time.Duration) ([]time.Time, error) {
	c, err := NewCursor(start, end, delta)
	if err != nil {
		return nil, err
	}

	points := make([]time.Time, 0, gridLen(start, end, delta))
	for c.Next() {
		points = append(points, c.Time())
	}
	return points, nil
}

func gridLen(start, end time.Time, delta time.Duration) int {
	if !start.Before(end) {
		return 0
	}
	span := end.Sub(start)
	n := span / delta
	if span%delta != 0 {
		n++
	}
	return int(n)
}
