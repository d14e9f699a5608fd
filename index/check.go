package index

import (
	"fmt"

	"github.com/viant/occupancy-knn/vector"
)

// CheckPoints validates that points are non-empty and share one dimension,
// returning that dimension.
func CheckPoints(points [][]float64) (int, error) {
	if len(points) == 0 {
		return 0, fmt.Errorf("index: no reference points: %w", vector.ErrInvalidArgument)
	}
	dim := len(points[0])
	for j := range points {
		if err := vector.CheckDim(points[j], dim); err != nil {
			return 0, fmt.Errorf("index: point %d: %w", j, err)
		}
	}
	return dim, nil
}

// CheckQuery validates k against n and the query dimension against dim.
func CheckQuery(query []float64, k, n, dim int) error {
	if k <= 0 || k > n {
		return fmt.Errorf("index: k=%d outside [1,%d]: %w", k, n, vector.ErrInvalidArgument)
	}
	return vector.CheckDim(query, dim)
}
