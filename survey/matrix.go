// Package survey reorders survey answer matrices so that similar answers end up
// next to each other. Rows are users, columns are questions.
package survey

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const defaultTitle = "No title"

var ErrRagged = errors.New("matrix rows have different lengths")
var ErrEmpty = errors.New("matrix has no rows")
var ErrInvalidRange = errors.New("answer range is empty")

type Matrix struct {
	MinValue int
	MaxValue int
	Title    string
	Values   [][]int
}

// New wraps values, which must be a non-empty rectangular matrix
func New(minValue, maxValue int, title string, values [][]int) (Matrix, error) {
	if len(values) == 0 {
		return Matrix{}, ErrEmpty
	}
	for i := range values {
		if len(values[i]) != len(values[0]) {
			return Matrix{}, errors.Wrapf(ErrRagged, "row %d has %d columns, expected %d", i, len(values[i]), len(values[0]))
		}
	}
	if title == "" {
		title = defaultTitle
	}
	return Matrix{
		MinValue: minValue,
		MaxValue: maxValue,
		Title:    title,
		Values:   values,
	}, nil
}

// NewRandom fills a users x questions matrix with answers in [minValue, maxValue]
func NewRandom(minValue, maxValue, questions, users int, rng *rand.Rand) (Matrix, error) {
	if maxValue < minValue {
		return Matrix{}, errors.Wrapf(ErrInvalidRange, "min %d, max %d", minValue, maxValue)
	}
	if users <= 0 || questions <= 0 {
		return Matrix{}, errors.Wrapf(ErrEmpty, "%d users, %d questions", users, questions)
	}
	if rng == nil {
		return Matrix{}, errors.New("no random source")
	}
	values := make([][]int, users)
	for i := range values {
		values[i] = make([]int, questions)
		for j := range values[i] {
			values[i][j] = minValue + rng.Intn(maxValue-minValue+1)
		}
	}
	return Matrix{
		MinValue: minValue,
		MaxValue: maxValue,
		Title:    defaultTitle,
		Values:   values,
	}, nil
}

func (m Matrix) Users() int {
	return len(m.Values)
}

func (m Matrix) Questions() int {
	if len(m.Values) == 0 {
		return 0
	}
	return len(m.Values[0])
}

func (m Matrix) String() string {
	var sb strings.Builder
	sb.WriteString(m.Title)
	for _, row := range m.Values {
		sb.WriteByte('\n')
		for j, v := range row {
			if j != 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}

func (m Matrix) column(j int) []int {
	col := make([]int, len(m.Values))
	for i := range m.Values {
		col[i] = m.Values[i][j]
	}
	return col
}

func (m Matrix) withValues(values [][]int) Matrix {
	m.Values = values
	return m
}

// order returns the indices 0..n-1 sorted by score, equal scores keep their index order
func order(scores []int) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] < scores[idx[b]]
	})
	return idx
}

func (m Matrix) permuteRows(idx []int) Matrix {
	values := make([][]int, len(idx))
	for i, r := range idx {
		values[i] = append([]int(nil), m.Values[r]...)
	}
	return m.withValues(values)
}

func (m Matrix) permuteColumns(idx []int) Matrix {
	values := make([][]int, len(m.Values))
	for i := range m.Values {
		values[i] = make([]int, len(idx))
		for j, c := range idx {
			values[i][j] = m.Values[i][c]
		}
	}
	return m.withValues(values)
}

func pow(x, n int) int {
	r := 1
	for i := 0; i < n; i++ {
		r *= x
	}
	return r
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// rowGoodness is the sum of squares of all answers
func rowGoodness(row []int) int {
	score := 0
	for _, x := range row {
		score += x * x
	}
	return score
}

// colGoodness weights negative answers much harder than positive ones
func colGoodness(col []int) int {
	score := 0
	for _, x := range col {
		score += x
		switch {
		case x > 0:
			score += pow(x, 2)
		case x < 0:
			score += pow(x, 5)
		}
	}
	return score
}

// variation is the sum of absolute differences between neighbouring answers
func variation(values []int) int {
	v := 0
	for i := 0; i+1 < len(values); i++ {
		v += abs(values[i] - values[i+1])
	}
	return v
}

// SortByRowGoodness orders users by increasing row goodness
func (m Matrix) SortByRowGoodness() Matrix {
	scores := make([]int, m.Users())
	for i, row := range m.Values {
		scores[i] = rowGoodness(row)
	}
	return m.permuteRows(order(scores))
}

// SortByColVariance orders questions by increasing variation down the column
func (m Matrix) SortByColVariance() Matrix {
	scores := make([]int, m.Questions())
	for j := range scores {
		scores[j] = variation(m.column(j))
	}
	return m.permuteColumns(order(scores))
}

// SortByColGoodness orders questions by increasing column goodness
func (m Matrix) SortByColGoodness() Matrix {
	scores := make([]int, m.Questions())
	for j := range scores {
		scores[j] = colGoodness(m.column(j))
	}
	return m.permuteColumns(order(scores))
}

// Objective measures how rough the matrix looks, lower is smoother.
// Every cell except the last row and column is compared to its right,
// lower and lower right neighbour
func (m Matrix) Objective() int {
	total := 0
	for i := 0; i+1 < len(m.Values); i++ {
		for j := 0; j+1 < len(m.Values[i]); j++ {
			v := m.Values[i][j]
			total += abs(v-m.Values[i][j+1]) + abs(v-m.Values[i+1][j]) + abs(v-m.Values[i+1][j+1])
		}
	}
	return total
}
