package weighted

import "golang.org/x/exp/constraints"

// Number is any integer or floating point element type accepted by AverageOf.
type Number interface {
	constraints.Integer | constraints.Float
}

// AverageOf widens both sequences to float64 and delegates to Average.
// A nil input stays nil so it is still reported as absent.
func AverageOf[V, W Number](values []V, weights []W) (float64, error) {
	return Average(widen(values), widen(weights))
}

// AverageIntValues is AverageOf for integer values and float weights.
func AverageIntValues(values []int, weights []float64) (float64, error) {
	return AverageOf(values, weights)
}

// AverageIntWeights is AverageOf for float values and integer weights.
func AverageIntWeights(values []float64, weights []int) (float64, error) {
	return AverageOf(values, weights)
}

// AverageInts is AverageOf for integer values and integer weights.
func AverageInts(values, weights []int) (float64, error) {
	return AverageOf(values, weights)
}

func widen[T Number](in []T) []float64 {
	if in == nil {
		return nil
	}
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}
