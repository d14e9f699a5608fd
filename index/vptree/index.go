package vptree

import (
	"fmt"
	"sort"

	"github.com/viant/occupancy-knn/index"
	"gonum.org/v1/gonum/floats"
	gvptree "gonum.org/v1/gonum/spatial/vptree"
)

// defaultEffort is the number of vantage point candidates evaluated per node.
const defaultEffort = 3

// Index implements index.Index with a VP-tree.
type Index struct {
	tree   *gvptree.Tree
	n      int
	dim    int
	effort int
}

// Option configures an Index.
type Option func(*Index)

// WithEffort sets the vantage point selection effort; zero picks the first
// candidate.
func WithEffort(effort int) Option {
	return func(i *Index) { i.effort = effort }
}

// New returns an index built over points.
func New(points [][]float64, opts ...Option) (*Index, error) {
	i := &Index{effort: defaultEffort}
	for _, opt := range opts {
		opt(i)
	}
	if err := i.Build(points); err != nil {
		return nil, err
	}
	return i, nil
}

// point carries its position in the reference set through the tree.
type point struct {
	idx int
	vec []float64
}

// Distance implements gvptree.Comparable.
func (p point) Distance(c gvptree.Comparable) float64 {
	return floats.Distance(p.vec, c.(point).vec, 2)
}

// Build constructs the tree.
func (i *Index) Build(points [][]float64) error {
	dim, err := index.CheckPoints(points)
	if err != nil {
		return fmt.Errorf("vptree: %w", err)
	}
	comparables := make([]gvptree.Comparable, len(points))
	for j, p := range points {
		comparables[j] = point{idx: j, vec: append([]float64(nil), p...)}
	}
	tree, err := gvptree.New(comparables, i.effort, nil)
	if err != nil {
		return fmt.Errorf("vptree: %w", err)
	}
	i.tree, i.n, i.dim = tree, len(points), dim
	return nil
}

// Len returns the number of points.
func (i *Index) Len() int { return i.n }

// Query returns up to k neighbors ordered by (distance, index).
func (i *Index) Query(query []float64, k int) ([]index.Neighbor, error) {
	if err := index.CheckQuery(query, k, i.n, i.dim); err != nil {
		return nil, fmt.Errorf("vptree: %w", err)
	}
	keeper := gvptree.NewNKeeper(k)
	i.tree.NearestSet(keeper, point{idx: -1, vec: query})
	out := make([]index.Neighbor, 0, k)
	for _, c := range keeper.Heap {
		if c.Comparable == nil {
			continue
		}
		out = append(out, index.Neighbor{Index: c.Comparable.(point).idx, Distance: c.Dist})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Distance != out[b].Distance {
			return out[a].Distance < out[b].Distance
		}
		return out[a].Index < out[b].Index
	})
	return out, nil
}

var _ index.Index = (*Index)(nil)
