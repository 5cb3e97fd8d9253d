package timebucket

import (
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/martin2250/timebucket/timebucket/types"
)

const (
	edgeStart = iota
	edgeEnd
)

type edge struct {
	time time.Time
	kind int
}

// Merge returns the windows covered by at least one interval, ordered by start.
// Intervals sharing only a boundary are merged into one window
func Merge(intervals []types.Interval) ([]types.Interval, error) {
	edges := make([]edge, 0, 2*len(intervals))
	for i, r := range intervals {
		if !r.Valid() {
			return nil, errors.Wrapf(ErrInvalidInterval, "interval %d (%v)", i, r)
		}
		edges = append(edges, edge{r.Start, edgeStart}, edge{r.End, edgeEnd})
	}

	// starts sort before ends at the same instant
	sort.Slice(edges, func(i, j int) bool {
		if !edges[i].time.Equal(edges[j].time) {
			return edges[i].time.Before(edges[j].time)
		}
		return edges[i].kind < edges[j].kind
	})

	var windows []types.Interval
	var windowStart time.Time
	open := 0
	for _, e := range edges {
		switch e.kind {
		case edgeStart:
			if open == 0 {
				windowStart = e.time
			}
			open++
		case edgeEnd:
			open--
			if open == 0 && e.time.After(windowStart) {
				windows = append(windows, types.Interval{Start: windowStart, End: e.time})
			}
		}
	}
	return windows, nil
}

// Union returns the total time covered by intervals, overlapping time counts once
func Union(intervals []types.Interval) (time.Duration, error) {
	windows, err := Merge(intervals)
	if err != nil {
		return 0, err
	}
	var total time.Duration
	for _, w := range windows {
		total += w.Duration()
	}
	return total, nil
}

// UnionSeconds is Union expressed in seconds
func UnionSeconds(intervals []types.Interval) (float64, error) {
	total, err := Union(intervals)
	return total.Seconds(), err
}
