package weighted

import (
	"fmt"
	"math"
)

// Average returns Σ(values[i]*weights[i]) / Σ(weights[i]).
//
// Both slices must be non-nil, non-empty and of equal length. Every value and
// weight must be finite, no weight may be negative, and at least one weight
// must be positive. Any violation returns an *InvalidInputError and no result.
// Accumulation runs in index order so identical inputs give identical results.
func Average(values, weights []float64) (float64, error) {
	if err := Validate(values, weights); err != nil {
		return 0, err
	}

	if len(values) == 1 {
		return values[0], nil
	}

	sumProduct := 0.0
	sumWeights := 0.0
	for i, v := range values {
		sumProduct += v * weights[i]
		sumWeights += weights[i]
	}

	// Unreachable after Validate; kept as an invariant check.
	if sumWeights == 0 {
		return 0, newInvalidInput(CodeZeroTotalWeight, "total weight cannot be zero")
	}

	return sumProduct / sumWeights, nil
}

// Validate checks values and weights against every precondition of Average
// without computing anything.
func Validate(values, weights []float64) error {
	if err := validateShape(len(values), len(weights), values == nil || weights == nil); err != nil {
		return err
	}

	allZero := true
	for i, v := range values {
		w := weights[i]

		if math.IsNaN(v) || math.IsInf(v, 0) {
			return newInvalidInputWithDetails(CodeNonFiniteValue,
				fmt.Sprintf("values cannot be NaN or infinite (index %d)", i),
				map[string]interface{}{"index": i})
		}

		if math.IsNaN(w) || math.IsInf(w, 0) {
			return newInvalidInputWithDetails(CodeNonFiniteWeight,
				fmt.Sprintf("weights cannot be NaN or infinite (index %d)", i),
				map[string]interface{}{"index": i})
		}

		if w < 0 {
			return newInvalidInputWithDetails(CodeNegativeWeight,
				fmt.Sprintf("weights cannot be negative (index %d)", i),
				map[string]interface{}{"index": i})
		}

		if w != 0 {
			allZero = false
		}
	}

	if allZero {
		return newInvalidInput(CodeZeroTotalWeight, "at least one weight must be non-zero")
	}

	return nil
}

// validateShape covers the absent, empty and length-mismatch rules shared by
// every entry point.
func validateShape(numValues, numWeights int, absent bool) error {
	if absent {
		return newInvalidInput(CodeNilSequence, "values and weights cannot be nil")
	}

	if numValues == 0 || numWeights == 0 {
		return newInvalidInput(CodeEmptySequence, "values and weights cannot be empty")
	}

	if numValues != numWeights {
		return newInvalidInputWithDetails(CodeLengthMismatch,
			fmt.Sprintf("values and weights must have the same length: got %d values and %d weights", numValues, numWeights),
			map[string]interface{}{"values": numValues, "weights": numWeights})
	}

	return nil
}
