package weighted

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageOf(t *testing.T) {
	got, err := AverageOf([]int64{10, 20, 30}, []uint8{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 140.0/6.0, got, 1e-9)

	got, err = AverageOf([]float32{1.5, 2.5}, []int{1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-9)
}

func TestAverageOf_NilStaysAbsent(t *testing.T) {
	_, err := AverageOf([]int(nil), []int{1})
	require.Error(t, err)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, CodeNilSequence, invalid.Code)
}

func TestAverageOf_EmptyIsNotAbsent(t *testing.T) {
	_, err := AverageOf([]int{}, []int{})

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, CodeEmptySequence, invalid.Code)
}

func TestIntegerConvenienceWrappers(t *testing.T) {
	tests := []struct {
		name     string
		compute  func() (float64, error)
		expected float64
	}{
		{
			name:     "int values",
			compute:  func() (float64, error) { return AverageIntValues([]int{10, 20, 30}, []float64{1, 2, 3}) },
			expected: 140.0 / 6.0,
		},
		{
			name:     "int weights",
			compute:  func() (float64, error) { return AverageIntWeights([]float64{10, 20, 30}, []int{1, 1, 1}) },
			expected: 20,
		},
		{
			name:     "ints",
			compute:  func() (float64, error) { return AverageInts([]int{5, 10, 15}, []int{1, 3, 1}) },
			expected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.compute()
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestAverageInts_Invalid(t *testing.T) {
	_, err := AverageInts([]int{10, 20}, []int{0, 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = AverageInts([]int{10, 20}, []int{1, -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
