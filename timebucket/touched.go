package timebucket

import (
	"time"

	"github.com/pkg/errors"
)

// Touched returns the starts of all buckets overlapped by the event [start, start+duration).
// A bucket beginning exactly where the event ends is not touched,
// an event of zero length touches the bucket it starts in
func Touched(start time.Time, duration, granularity time.Duration) ([]time.Time, error) {
	if duration < 0 {
		return nil, errors.Wrapf(ErrInvalidInterval, "negative duration %v", duration)
	}

	first, err := Floor(start, granularity)
	if err != nil {
		return nil, err
	}
	end := start.Add(duration)
	last, err := Floor(end, granularity)
	if err != nil {
		return nil, err
	}

	buckets, err := Range(first, last, granularity)
	if err != nil {
		return nil, err
	}
	if !last.Equal(end) {
		buckets = append(buckets, last)
	}
	if len(buckets) == 0 {
		buckets = append(buckets, first)
	}
	return buckets, nil
}
