package timebucket

import (
	"math"
	"time"
)

// DefaultGranularity is the bucket width used when none is configured
const DefaultGranularity = time.Hour

// Seconds converts a (possibly fractional) number of seconds to a duration
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// sinceMidnight returns the whole seconds elapsed on t's wall clock since midnight
func sinceMidnight(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h*3600+m*60+s) * time.Second
}

// atDayOffset returns the wall clock time offset after midnight of t's day
func atDayOffset(t time.Time, offset time.Duration) time.Time {
	y, m, d := t.Date()
	sec := int64(offset / time.Second)
	nsec := int64(offset % time.Second)
	return time.Date(y, m, d, 0, 0, int(sec), int(nsec), t.Location())
}
