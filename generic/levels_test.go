package generic

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 0.00001

var opacityLevels = map[int][]float64{
	3: {1.0, .50, .0},
	4: {1.0, .70, .30, .0},
	5: {1.0, .75, .50, .25, .0},
	6: {1.0, .80, .60, .40, .20, .0},
	7: {1.0, .85, .70, .50, .30, .15, .0},
	8: {1.0, .85, .70, .55, .40, .25, .10, .0},
}

func roundUp(t *testing.T, x float64, levels []float64) float64 {
	t.Helper()
	v, err := PercentageLevelsRoundUp(x, levels)
	require.NoError(t, err)
	return v
}

func TestLevelsExact(t *testing.T) {
	for n, levels := range opacityLevels {
		for _, value := range levels {
			assert.Equal(t, value, roundUp(t, value, levels), "%d levels", n)
		}
	}
}

func TestLevelsBigNumbers(t *testing.T) {
	for n, levels := range opacityLevels {
		for _, value := range []float64{1.0, 2, 10, 200, 1000} {
			assert.Equal(t, 1.0, roundUp(t, value, levels), "%d levels", n)
		}
	}
}

func TestLevelsSmallNumbers(t *testing.T) {
	for n, levels := range opacityLevels {
		for _, value := range []float64{0.0, -1, -2, -100, -1111} {
			assert.Equal(t, 0.0, roundUp(t, value, levels), "%d levels", n)
		}
	}
}

func TestLevelsJustAboveThresholds(t *testing.T) {
	for n, levels := range opacityLevels {
		for i := 1; i < len(levels); i++ {
			assert.Equal(t, levels[i-1], roundUp(t, levels[i]+epsilon, levels), "%d levels", n)
		}
	}
}

func TestLevelsJustBelowThresholds(t *testing.T) {
	for n, levels := range opacityLevels {
		for i := 0; i < len(levels)-1; i++ {
			assert.Equal(t, levels[i], roundUp(t, levels[i]-epsilon, levels), "%d levels", n)
		}
	}
}

func TestLevelsErrors(t *testing.T) {
	_, err := PercentageLevelsRoundUp(0.5, []float64{0, 0.5, 1})
	assert.True(t, errors.Is(err, ErrLevelsNotSorted))

	_, err = PercentageLevelsRoundUp(0.5, []float64{1})
	assert.True(t, errors.Is(err, ErrTooFewLevels))
}
