package report

import (
	"github.com/viant/occupancy-knn/dataset"
	"gonum.org/v1/gonum/stat"
)

// FeatureCorrelation is the Pearson coefficient of one feature with the label.
type FeatureCorrelation struct {
	Feature string
	R       float64
}

// PairCorrelation is the Pearson coefficient between two features.
type PairCorrelation struct {
	A, B string
	R    float64
}

// Correlations summarises how discriminative each feature is.
type Correlations struct {
	Label []FeatureCorrelation
	Pairs []PairCorrelation
}

// Correlate computes feature/label coefficients and every feature pair
// (upper triangle, in column order). A constant column yields NaN.
func Correlate(ds *dataset.Dataset) Correlations {
	names := ds.Names()
	columns := make([][]float64, len(names))
	for j := range names {
		columns[j] = ds.Column(j)
	}
	labels := ds.LabelValues()

	var out Correlations
	for j, name := range names {
		out.Label = append(out.Label, FeatureCorrelation{Feature: name, R: stat.Correlation(columns[j], labels, nil)})
	}
	for a := 0; a < len(names); a++ {
		for b := a + 1; b < len(names); b++ {
			out.Pairs = append(out.Pairs, PairCorrelation{
				A: names[a], B: names[b],
				R: stat.Correlation(columns[a], columns[b], nil),
			})
		}
	}
	return out
}
