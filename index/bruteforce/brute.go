package bruteforce

import (
	"fmt"
	"sort"

	"github.com/viant/occupancy-knn/index"
	"github.com/viant/occupancy-knn/vector"
)

// Index is a brute-force Euclidean kNN index.
type Index struct {
	points [][]float64
	dim    int
}

// New returns an index built over points.
func New(points [][]float64) (*Index, error) {
	i := &Index{}
	if err := i.Build(points); err != nil {
		return nil, err
	}
	return i, nil
}

// Build validates and stores the points.
func (i *Index) Build(points [][]float64) error {
	dim, err := index.CheckPoints(points)
	if err != nil {
		return fmt.Errorf("bruteforce: %w", err)
	}
	i.points = append([][]float64(nil), points...)
	i.dim = dim
	return nil
}

// Len returns the number of points.
func (i *Index) Len() int { return len(i.points) }

// Query returns the k nearest points by ascending distance.
func (i *Index) Query(query []float64, k int) ([]index.Neighbor, error) {
	if err := index.CheckQuery(query, k, len(i.points), i.dim); err != nil {
		return nil, fmt.Errorf("bruteforce: %w", err)
	}
	all, err := i.Distances(query)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(a, b int) bool { return all[a].Distance < all[b].Distance })
	return all[:k:k], nil
}

// Distances returns the distance from query to every point, in index order.
func (i *Index) Distances(query []float64) ([]index.Neighbor, error) {
	out := make([]index.Neighbor, len(i.points))
	for j, p := range i.points {
		d, err := vector.Euclidean(query, p)
		if err != nil {
			return nil, fmt.Errorf("bruteforce: %w", err)
		}
		out[j] = index.Neighbor{Index: j, Distance: d}
	}
	return out, nil
}

var _ index.Index = (*Index)(nil)
