package generic

import (
	"sort"

	"github.com/pkg/errors"
)

var ErrLevelsNotSorted = errors.New("levels are not sorted in decreasing order")
var ErrTooFewLevels = errors.New("at least two levels are required")

// PercentageLevelsRoundUp maps x to the smallest level not below it.
// levels must be sorted in decreasing order, values above the second level
// map to the first one and values below all levels map to the last one
func PercentageLevelsRoundUp(x float64, levels []float64) (float64, error) {
	if len(levels) < 2 {
		return 0, errors.Wrapf(ErrTooFewLevels, "got %v", levels)
	}
	if !sort.SliceIsSorted(levels, func(i, j int) bool { return levels[i] > levels[j] }) {
		return 0, errors.Wrapf(ErrLevelsNotSorted, "got %v", levels)
	}

	if x > levels[1] {
		return levels[0], nil
	}
	for i := len(levels) - 1; i >= 0; i-- {
		if levels[i] >= x {
			return levels[i], nil
		}
	}
	return levels[len(levels)-1], nil
}
