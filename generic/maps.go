package generic

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrMissingKey = errors.New("key not in map")

// Merge combines maps into a new one, later maps take priority.
// Keys listed in remove are dropped from the result, keys that aren't present are ignored
func Merge[K comparable, V any](maps []map[K]V, remove ...K) map[K]V {
	merged := make(map[K]V)
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	for _, k := range remove {
		delete(merged, k)
	}
	return merged
}

// KeepKeys returns a copy of m containing only keys
func KeepKeys[K comparable, V any](m map[K]V, keys []K) (map[K]V, error) {
	kept := make(map[K]V, len(keys))
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			return nil, errors.Wrap(ErrMissingKey, fmt.Sprint(k))
		}
		kept[k] = v
	}
	return kept, nil
}
