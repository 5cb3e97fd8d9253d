package generic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func addOne(x int) int {
	return x + 1
}

func addHundred(x int) int {
	return x + 100
}

func TestPipe(t *testing.T) {
	mulTen := func(x int) int { return x * 10 }

	tests := []struct {
		name      string
		functions []func(int) int
		zero      int
		want      int
	}{
		{"no functions", nil, 0, 0},
		{"single", []func(int) int{addOne}, 0, 1},
		{"single other", []func(int) int{addHundred}, 0, 100},
		{"two same", []func(int) int{addOne, addOne}, 0, 2},
		{"two different", []func(int) int{addOne, addHundred}, 0, 101},
		{"two swapped", []func(int) int{addHundred, addOne}, 0, 101},
		{"add then multiply", []func(int) int{addOne, mulTen}, 1, 20},
		{"multiply then add", []func(int) int{mulTen, addOne}, 1, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pipe(tt.functions, tt.zero))
		})
	}
}

func TestPipeMany(t *testing.T) {
	functions := make([]func(int) int, 100000)
	for i := range functions {
		functions[i] = addOne
	}
	assert.Equal(t, 100000, Pipe(functions, 0))
}

func TestPipeStrings(t *testing.T) {
	addA := func(s string) string { return s + "a" }
	assert.Equal(t, "aaa", Pipe([]func(string) string{addA, addA, addA}, ""))
	assert.Equal(t, "x", Pipe([]func(string) string{Identity[string]}, "x"))
}

func TestPipeMap(t *testing.T) {
	values := []int{1, 2, 3}
	got := PipeMap([]func(int) int{addOne, addHundred}, values)

	assert.Equal(t, []int{102, 103, 104}, got)
	assert.Equal(t, []int{1, 2, 3}, values)
	assert.Empty(t, PipeMap([]func(int) int{addOne}, nil))
}
