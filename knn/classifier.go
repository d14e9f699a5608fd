package knn

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/viant/occupancy-knn/dataset"
	"github.com/viant/occupancy-knn/index"
	"github.com/viant/occupancy-knn/index/bruteforce"
	"github.com/viant/occupancy-knn/index/vptree"
)

// ErrInvalidArgument aliases the module-wide sentinel.
var ErrInvalidArgument = dataset.ErrInvalidArgument

// IndexKind selects the neighbor search backing a Classifier.
type IndexKind string

const (
	BruteForce IndexKind = "bruteforce"
	VPTree     IndexKind = "vptree"
)

// Classifier predicts occupancy from a fixed reference dataset. It holds no
// mutable state after New and is safe for concurrent use.
type Classifier struct {
	ref     *dataset.Dataset
	index   index.Index
	kind    IndexKind
	workers int
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithIndex selects the neighbor index; unknown kinds fall back to BruteForce.
func WithIndex(kind IndexKind) Option {
	return func(c *Classifier) { c.kind = kind }
}

// WithWorkers sets the number of goroutines used by PredictBatch and the
// evaluators. Values below 1 use GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Classifier) { c.workers = n }
}

// New builds a classifier over ref.
func New(ref *dataset.Dataset, opts ...Option) (*Classifier, error) {
	if ref == nil || ref.Len() == 0 {
		return nil, fmt.Errorf("knn: empty reference set: %w", ErrInvalidArgument)
	}
	c := &Classifier{ref: ref, kind: BruteForce, workers: 1}
	for _, opt := range opts {
		opt(c)
	}
	if c.workers < 1 {
		c.workers = runtime.GOMAXPROCS(0)
	}
	var err error
	switch c.kind {
	case VPTree:
		c.index, err = vptree.New(ref.Points())
	default:
		c.kind = BruteForce
		c.index, err = bruteforce.New(ref.Points())
	}
	if err != nil {
		return nil, fmt.Errorf("knn: %w", err)
	}
	return c, nil
}

// Reference returns the reference dataset.
func (c *Classifier) Reference() *dataset.Dataset { return c.ref }

// Kind reports the index in use.
func (c *Classifier) Kind() IndexKind { return c.kind }

// Neighbors returns the k nearest reference examples to query.
func (c *Classifier) Neighbors(query []float64, k int) ([]index.Neighbor, error) {
	nbrs, err := c.index.Query(query, k)
	if err != nil {
		return nil, fmt.Errorf("knn: %w", err)
	}
	return nbrs, nil
}

// Predict returns the majority label among the k nearest neighbors.
func (c *Classifier) Predict(query []float64, k int) (dataset.Label, error) {
	nbrs, err := c.Neighbors(query, k)
	if err != nil {
		return dataset.Unoccupied, err
	}
	labels := make([]dataset.Label, len(nbrs))
	for n, nb := range nbrs {
		labels[n] = c.ref.Label(nb.Index)
	}
	return Vote(labels), nil
}

// PredictBatch predicts every query. With more than one worker, queries are
// split into contiguous chunks; the output is identical to a sequential run.
func (c *Classifier) PredictBatch(queries [][]float64, k int) ([]dataset.Label, error) {
	out := make([]dataset.Label, len(queries))
	if len(queries) == 0 {
		return out, nil
	}
	workers := min(c.workers, len(queries))
	chunk := (len(queries) + workers - 1) / workers
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, len(queries))
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				label, err := c.Predict(queries[i], k)
				if err != nil {
					errs[w] = fmt.Errorf("query %d: %w", i, err)
					return
				}
				out[i] = label
			}
		}(w, start, end)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Classify is the stateless form: it predicts the label of query from the
// k nearest examples of ref using a brute-force scan.
func Classify(ref *dataset.Dataset, query []float64, k int) (dataset.Label, error) {
	c, err := New(ref)
	if err != nil {
		return dataset.Unoccupied, err
	}
	return c.Predict(query, k)
}
