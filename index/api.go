package index

// Neighbor is a reference point returned by a kNN query. Index is the
// position of the point in the slice passed to Build.
type Neighbor struct {
	Index    int
	Distance float64
}

// Index defines a Euclidean kNN index over a fixed set of points.
type Index interface {
	// Build loads the reference points. All points must share one
	// dimensionality.
	Build(points [][]float64) error

	// Query returns the k nearest points ordered by ascending distance.
	// Implementations fail with vector.ErrInvalidArgument when k is outside
	// [1, Len()] or the query dimension differs from the index.
	Query(query []float64, k int) ([]Neighbor, error)

	// Len returns the number of indexed points.
	Len() int
}
