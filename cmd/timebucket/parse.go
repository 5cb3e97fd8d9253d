package main

import (
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/martin2250/timebucket/timebucket"
)

// parseTime accepts RFC3339 or unix seconds, times without zone are UTC
func parseTime(s string) (time.Time, error) {
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(sec, 0).UTC(), nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("could not parse time %q", s)
}

func parseSeconds(s string) (time.Duration, error) {
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "could not parse seconds %q", s)
	}
	return timebucket.Seconds(sec), nil
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
