package dataset

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/viant/occupancy-knn/vector"
)

// ErrInvalidArgument is shared with the vector package so errors.Is works
// across the whole module.
var ErrInvalidArgument = vector.ErrInvalidArgument

// Example is a single labeled reading.
type Example struct {
	Features []float64
	Label    Label
}

// Dataset is an ordered, immutable collection of examples that share the
// same feature names. Accessors never expose internal slices for writing.
type Dataset struct {
	names    []string
	features [][]float64
	labels   []Label
}

// Split holds the training and testing sets loaded at startup.
type Split struct {
	Train *Dataset
	Test  *Dataset
}

// New builds a dataset, copying names and examples. Every example must have
// len(names) features and a valid label.
func New(names []string, examples []Example) (*Dataset, error) {
	ds := &Dataset{
		names:    append([]string(nil), names...),
		features: make([][]float64, len(examples)),
		labels:   make([]Label, len(examples)),
	}
	for i, ex := range examples {
		if err := vector.CheckDim(ex.Features, len(names)); err != nil {
			return nil, fmt.Errorf("dataset: example %d: %w", i, err)
		}
		if !ex.Label.Valid() {
			return nil, fmt.Errorf("dataset: example %d: %v: %w", i, ex.Label, ErrInvalidArgument)
		}
		ds.features[i] = append([]float64(nil), ex.Features...)
		ds.labels[i] = ex.Label
	}
	return ds, nil
}

// Len returns the number of examples.
func (d *Dataset) Len() int { return len(d.labels) }

// Dim returns the feature dimensionality.
func (d *Dataset) Dim() int { return len(d.names) }

// Names returns a copy of the feature names.
func (d *Dataset) Names() []string { return append([]string(nil), d.names...) }

// At returns a copy of the i-th example.
func (d *Dataset) At(i int) Example {
	return Example{Features: d.Features(i), Label: d.labels[i]}
}

// Features returns a copy of the i-th feature vector.
func (d *Dataset) Features(i int) []float64 { return append([]float64(nil), d.features[i]...) }

// Label returns the i-th label.
func (d *Dataset) Label(i int) Label { return d.labels[i] }

// Labels returns a copy of the label vector.
func (d *Dataset) Labels() []Label { return append([]Label(nil), d.labels...) }

// LabelValues returns the labels as floats, parallel to Column.
func (d *Dataset) LabelValues() []float64 {
	return lo.Map(d.labels, func(l Label, _ int) float64 { return l.Float() })
}

// Column returns a copy of feature column j.
func (d *Dataset) Column(j int) []float64 {
	return lo.Map(d.features, func(row []float64, _ int) float64 { return row[j] })
}

// Points returns a copy of every feature vector, in dataset order.
func (d *Dataset) Points() [][]float64 {
	return lo.Map(d.features, func(row []float64, _ int) []float64 { return append([]float64(nil), row...) })
}

// ClassCounts counts examples per label.
func (d *Dataset) ClassCounts() map[Label]int { return lo.CountValues(d.labels) }

// Majority returns the most frequent label; ties resolve to the smaller label.
func (d *Dataset) Majority() Label {
	counts := d.ClassCounts()
	best := Labels[0]
	for _, l := range Labels[1:] {
		if counts[l] > counts[best] {
			best = l
		}
	}
	return best
}

// Index returns the column of the named feature or -1.
func (d *Dataset) Index(name string) int { return lo.IndexOf(d.names, name) }

// Select projects the dataset onto the named features, in the given order.
func (d *Dataset) Select(names ...string) (*Dataset, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("dataset: select needs at least one feature: %w", ErrInvalidArgument)
	}
	cols := make([]int, len(names))
	for i, name := range names {
		if cols[i] = d.Index(name); cols[i] < 0 {
			return nil, fmt.Errorf("dataset: unknown feature %q: %w", name, ErrInvalidArgument)
		}
	}
	out := &Dataset{
		names:    append([]string(nil), names...),
		features: make([][]float64, len(d.features)),
		labels:   append([]Label(nil), d.labels...),
	}
	for i, row := range d.features {
		out.features[i] = lo.Map(cols, func(c int, _ int) float64 { return row[c] })
	}
	return out, nil
}
