package knn

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/viant/occupancy-knn/dataset"
)

func build(t *testing.T, names []string, examples ...dataset.Example) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(names, examples)
	if err != nil {
		t.Fatalf("dataset.New failed: %v", err)
	}
	return ds
}

func ex(label dataset.Label, features ...float64) dataset.Example {
	return dataset.Example{Features: features, Label: label}
}

// clusters returns two well separated blobs, unoccupied near the origin and
// occupied near (50,50), with distinct coordinates.
func clusters(t *testing.T, n int, seed int64) *dataset.Dataset {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	examples := make([]dataset.Example, 0, 2*n)
	for i := 0; i < n; i++ {
		examples = append(examples, ex(dataset.Unoccupied, r.Float64()*10, r.Float64()*10))
		examples = append(examples, ex(dataset.Occupied, 50+r.Float64()*10, 50+r.Float64()*10))
	}
	return build(t, []string{"x", "y"}, examples...)
}

func TestClassify_NearestPoint(t *testing.T) {
	ref := build(t, []string{"x", "y"},
		ex(dataset.Unoccupied, 0, 0),
		ex(dataset.Occupied, 10, 10),
	)
	got, err := Classify(ref, []float64{1, 1}, 1)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got != dataset.Unoccupied {
		t.Fatalf("Classify((1,1), k=1) = %v, want unoccupied", got)
	}
}

func TestClassify_KEqualsOneIsNearestLabel(t *testing.T) {
	ds := clusters(t, 20, 3)
	c, err := New(ds)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		q := []float64{r.Float64() * 60, r.Float64() * 60}
		nbrs, err := c.Neighbors(q, 1)
		if err != nil {
			t.Fatalf("Neighbors failed: %v", err)
		}
		got, err := c.Predict(q, 1)
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		if want := ds.Label(nbrs[0].Index); got != want {
			t.Fatalf("Predict(%v, 1) = %v, want nearest label %v", q, got, want)
		}
	}
}

func TestClassify_KEqualsNIsGlobalMajority(t *testing.T) {
	ref := build(t, []string{"x"},
		ex(dataset.Occupied, 0),
		ex(dataset.Occupied, 1),
		ex(dataset.Unoccupied, 100),
	)
	got, err := Classify(ref, []float64{100}, ref.Len())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got != ref.Majority() || got != dataset.Occupied {
		t.Fatalf("Classify(k=N) = %v, want global majority occupied", got)
	}
}

func TestClassify_VoteTieGoesToUnoccupied(t *testing.T) {
	ref := build(t, []string{"x"},
		ex(dataset.Occupied, 1),
		ex(dataset.Unoccupied, 2),
	)
	got, err := Classify(ref, []float64{0}, 2)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got != dataset.Unoccupied {
		t.Fatalf("tied vote = %v, want unoccupied", got)
	}
}

func TestClassify_DistanceTieKeepsDatasetOrder(t *testing.T) {
	// Both points are at distance 1; the first in dataset order wins at k=1.
	ref := build(t, []string{"x"},
		ex(dataset.Occupied, 1),
		ex(dataset.Unoccupied, -1),
	)
	got, err := Classify(ref, []float64{0}, 1)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got != dataset.Occupied {
		t.Fatalf("distance tie = %v, want occupied (first in order)", got)
	}
}

func TestClassify_InvalidArguments(t *testing.T) {
	ref := build(t, []string{"x", "y"},
		ex(dataset.Unoccupied, 0, 0),
		ex(dataset.Occupied, 10, 10),
	)
	cases := map[string]struct {
		query []float64
		k     int
	}{
		"k zero":       {query: []float64{0, 0}, k: 0},
		"k negative":   {query: []float64{0, 0}, k: -3},
		"k above N":    {query: []float64{0, 0}, k: 3},
		"dim mismatch": {query: []float64{0}, k: 1},
	}
	for name, tc := range cases {
		if _, err := Classify(ref, tc.query, tc.k); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("%s: err = %v, want ErrInvalidArgument", name, err)
		}
	}
	empty := build(t, []string{"x"})
	if _, err := Classify(empty, []float64{0}, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("empty reference: err = %v, want ErrInvalidArgument", err)
	}
}

func TestClassifier_VPTreeAgrees(t *testing.T) {
	ds := clusters(t, 40, 9)
	brute, err := New(ds)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	vp, err := New(ds, WithIndex(VPTree))
	if err != nil {
		t.Fatalf("New(vptree) failed: %v", err)
	}
	if vp.Kind() != VPTree {
		t.Fatalf("Kind = %v, want vptree", vp.Kind())
	}
	r := rand.New(rand.NewSource(13))
	for i := 0; i < 40; i++ {
		q := []float64{r.Float64() * 60, r.Float64() * 60}
		for _, k := range []int{1, 3, 7} {
			a, err := brute.Predict(q, k)
			if err != nil {
				t.Fatalf("brute Predict failed: %v", err)
			}
			b, err := vp.Predict(q, k)
			if err != nil {
				t.Fatalf("vptree Predict failed: %v", err)
			}
			if a != b {
				t.Fatalf("Predict(%v, %d): brute %v, vptree %v", q, k, a, b)
			}
		}
	}
}

func TestClassifier_PredictBatchParallel(t *testing.T) {
	ds := clusters(t, 30, 21)
	seq, err := New(ds)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	par, err := New(ds, WithWorkers(4))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	want, err := seq.PredictBatch(ds.Points(), 5)
	if err != nil {
		t.Fatalf("sequential PredictBatch failed: %v", err)
	}
	got, err := par.PredictBatch(ds.Points(), 5)
	if err != nil {
		t.Fatalf("parallel PredictBatch failed: %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PredictBatch[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if _, err := par.PredictBatch([][]float64{{1, 1}, {1}}, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("PredictBatch(bad dim) = %v, want ErrInvalidArgument", err)
	}
}

func TestVote(t *testing.T) {
	u, o := dataset.Unoccupied, dataset.Occupied
	cases := []struct {
		labels []dataset.Label
		want   dataset.Label
	}{
		{labels: []dataset.Label{o}, want: o},
		{labels: []dataset.Label{u, o, o}, want: o},
		{labels: []dataset.Label{o, u, u}, want: u},
		{labels: []dataset.Label{o, u}, want: u},
		{labels: nil, want: u},
	}
	for _, tc := range cases {
		if got := Vote(tc.labels); got != tc.want {
			t.Fatalf("Vote(%v) = %v, want %v", tc.labels, got, tc.want)
		}
	}
}
