package knn

import (
	"math"

	"github.com/viant/occupancy-knn/dataset"
)

// Confusion counts predictions against true labels, with Occupied as the
// positive class.
type Confusion struct {
	TP, FP, TN, FN int
}

// Total returns the number of classified examples.
func (m Confusion) Total() int { return m.TP + m.FP + m.TN + m.FN }

// Accuracy is the fraction of correct predictions.
func (m Confusion) Accuracy() float64 { return ratio(m.TP+m.TN, m.Total()) }

// ErrorRate is 1 - Accuracy.
func (m Confusion) ErrorRate() float64 { return ratio(m.FP+m.FN, m.Total()) }

// Precision is TP/(TP+FP); NaN when nothing was predicted occupied.
func (m Confusion) Precision() float64 { return ratio(m.TP, m.TP+m.FP) }

// Recall is TP/(TP+FN); NaN when no example is occupied.
func (m Confusion) Recall() float64 { return ratio(m.TP, m.TP+m.FN) }

func ratio(a, b int) float64 {
	if b == 0 {
		return math.NaN()
	}
	return float64(a) / float64(b)
}

// ConfusionMatrix classifies eval with k neighbors and tallies the outcome.
func ConfusionMatrix(c *Classifier, eval *dataset.Dataset, k int) (Confusion, error) {
	var m Confusion
	predicted, err := c.PredictBatch(eval.Points(), k)
	if err != nil {
		return m, err
	}
	for i, p := range predicted {
		actual := eval.Label(i)
		switch {
		case p == dataset.Occupied && actual == dataset.Occupied:
			m.TP++
		case p == dataset.Occupied:
			m.FP++
		case actual == dataset.Occupied:
			m.FN++
		default:
			m.TN++
		}
	}
	return m, nil
}
