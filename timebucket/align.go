package timebucket

import (
	"time"

	"github.com/pkg/errors"

	"github.com/martin2250/timebucket/timebucket/types"
	"github.com/martin2250/timebucket/util"
)

type rounding func(value, modulo int64) int64

func align(t time.Time, granularity time.Duration, round rounding) (time.Time, error) {
	if err := checkGranularity(granularity); err != nil {
		return time.Time{}, err
	}
	bucket := round(int64(sinceMidnight(t)), int64(granularity))
	return atDayOffset(t, time.Duration(bucket)), nil
}

// Floor returns the start of the bucket containing t.
// Buckets are multiples of granularity counted from midnight of t's day,
// the sub-second part of t is dropped
func Floor(t time.Time, granularity time.Duration) (time.Time, error) {
	return align(t, granularity, util.RoundDown)
}

// Round returns the bucket start nearest to t, halfway points go to the later bucket.
// Rounding up from the last bucket of a day yields the next midnight
func Round(t time.Time, granularity time.Duration) (time.Time, error) {
	return align(t, granularity, util.RoundHalfUp)
}

// Bucket returns the bucket containing t.
// When granularity doesn't divide a day the last bucket of the day ends at midnight
func Bucket(t time.Time, granularity time.Duration) (types.Interval, error) {
	start, err := Floor(t, granularity)
	if err != nil {
		return types.Interval{}, err
	}
	end := start.Add(granularity)
	if next := atDayOffset(start, 24*time.Hour); next.Before(end) {
		end = next
	}
	return types.Interval{Start: start, End: end}, nil
}

// Buckets returns the buckets overlapped by r in order.
// Unlike Touched it restarts the grid at every midnight
func Buckets(r types.Interval, granularity time.Duration) ([]types.Interval, error) {
	if !r.Valid() {
		return nil, errors.Wrapf(ErrInvalidInterval, "%v", r)
	}
	b, err := Bucket(r.Start, granularity)
	if err != nil {
		return nil, err
	}
	buckets := []types.Interval{b}
	for b.End.Before(r.End) {
		b, err = Bucket(b.End, granularity)
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, nil
}
