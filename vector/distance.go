package vector

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidArgument is returned (wrapped) whenever a caller supplies an
// argument outside the valid domain: a bad K, an empty reference set or
// vectors of different dimensionality.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrDimensionMismatch is returned when two vectors have different lengths.
var ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidArgument)

// Euclidean computes the Euclidean (L2) distance between two vectors. It
// returns ErrDimensionMismatch if the vectors have different lengths.
func Euclidean(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector: euclidean %d vs %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	if len(a) == 0 {
		return 0, nil
	}
	return floats.Distance(a, b, 2), nil
}

// CheckDim reports ErrDimensionMismatch when len(v) != dim.
func CheckDim(v []float64, dim int) error {
	if len(v) != dim {
		return fmt.Errorf("vector: got dim %d, want %d: %w", len(v), dim, ErrDimensionMismatch)
	}
	return nil
}
