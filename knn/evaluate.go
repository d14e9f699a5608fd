package knn

import (
	"fmt"

	"github.com/viant/occupancy-knn/dataset"
)

// Result is the classification error for one K.
type Result struct {
	K     int
	Error float64
}

// OddKs returns the odd integers in [from, to].
func OddKs(from, to int) []int {
	if from < 1 {
		from = 1
	}
	if from%2 == 0 {
		from++
	}
	var ks []int
	for k := from; k <= to; k += 2 {
		ks = append(ks, k)
	}
	return ks
}

// ErrorRate classifies every example of eval against the classifier's
// reference set and returns the fraction of mismatches.
func ErrorRate(c *Classifier, eval *dataset.Dataset, k int) (float64, error) {
	if eval == nil || eval.Len() == 0 {
		return 0, fmt.Errorf("knn: empty evaluation set: %w", ErrInvalidArgument)
	}
	predicted, err := c.PredictBatch(eval.Points(), k)
	if err != nil {
		return 0, err
	}
	mismatches := 0
	for i, p := range predicted {
		if p != eval.Label(i) {
			mismatches++
		}
	}
	return float64(mismatches) / float64(eval.Len()), nil
}

// TrainingError is the leave-nothing-out error of ds against itself: every
// example is its own nearest neighbor candidate.
func TrainingError(ds *dataset.Dataset, k int, opts ...Option) (float64, error) {
	c, err := New(ds, opts...)
	if err != nil {
		return 0, err
	}
	return ErrorRate(c, ds, k)
}

// Sweep computes the error of eval against ref for every K, in the order of
// ks. Passing the same dataset twice yields the training error sweep.
func Sweep(ref, eval *dataset.Dataset, ks []int, opts ...Option) ([]Result, error) {
	c, err := New(ref, opts...)
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(ks))
	for _, k := range ks {
		e, err := ErrorRate(c, eval, k)
		if err != nil {
			return nil, fmt.Errorf("knn: sweep k=%d: %w", k, err)
		}
		results = append(results, Result{K: k, Error: e})
	}
	return results, nil
}

// BestK returns the result with the smallest error, preferring the smaller K
// on ties. ok is false for an empty slice.
func BestK(results []Result) (best Result, ok bool) {
	for i, r := range results {
		if i == 0 || r.Error < best.Error || (r.Error == best.Error && r.K < best.K) {
			best = r
		}
	}
	return best, len(results) > 0
}
