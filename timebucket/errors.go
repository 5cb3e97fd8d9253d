package timebucket

import (
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidGranularity is returned when a bucket width or grid step is zero or negative
var ErrInvalidGranularity = errors.New("granularity must be positive")

// ErrInvalidInterval is returned for intervals that end before they start
var ErrInvalidInterval = errors.New("interval ends before it starts")

func checkGranularity(g time.Duration) error {
	if g <= 0 {
		return errors.Wrapf(ErrInvalidGranularity, "got %v", g)
	}
	return nil
}
