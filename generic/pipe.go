package generic

// Pipe feeds zero through functions in order and returns the final value
func Pipe[T any](functions []func(T) T, zero T) T {
	result := zero
	for _, f := range functions {
		result = f(result)
	}
	return result
}

// PipeMap applies every function in order to each of the values.
// The input slice is left untouched
func PipeMap[T any](functions []func(T) T, values []T) []T {
	result := make([]T, len(values))
	for i, v := range values {
		result[i] = Pipe(functions, v)
	}
	return result
}

func Identity[T any](x T) T {
	return x
}
