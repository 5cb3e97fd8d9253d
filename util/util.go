package util

import (
	"os"
)

// FileExists checks if file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// FloorDiv divides value by modulo, rounding towards negative infinity
// modulo must be positive
func FloorDiv(value, modulo int64) int64 {
	q := value / modulo
	if value%modulo < 0 {
		q--
	}
	return q
}

// RoundDown rounds down value to the previous multiple of modulo
func RoundDown(value, modulo int64) int64 {
	return FloorDiv(value, modulo) * modulo
}

// RoundHalfUp rounds value to the nearest multiple of modulo,
// values exactly halfway go to the larger multiple
func RoundHalfUp(value, modulo int64) int64 {
	q := FloorDiv(value, modulo)
	// rem >= modulo/2 without losing the half for odd modulo
	if rem := value - q*modulo; rem >= modulo-rem {
		q++
	}
	return q * modulo
}

// IsSubset checks if map a is a subset of map b
func IsSubset(a map[string]string, b map[string]string) bool {
	for ka, va := range a {
		vb, ok := b[ka]
		if !ok || va != vb {
			return false
		}
	}
	return true
}
