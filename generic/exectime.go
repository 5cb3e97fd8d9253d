package generic

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// FormatExecTime renders d as hours, minutes and seconds, e.g. "1h 2m 3.45s"
func FormatExecTime(d time.Duration) string {
	d = d.Round(10 * time.Millisecond)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute).Seconds()
	return fmt.Sprintf("%dh %dm %.2fs", h, m, s)
}

// LogExecTime logs the time elapsed since start and returns it
func LogExecTime(start time.Time, msg string) time.Duration {
	elapsed := time.Since(start)
	logrus.WithField("elapsed", FormatExecTime(elapsed)).Info(msg)
	return elapsed
}
