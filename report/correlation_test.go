package report

import (
	"math"
	"testing"

	"github.com/viant/occupancy-knn/dataset"
)

func TestCorrelate(t *testing.T) {
	ds, err := dataset.New([]string{"Light", "Noise", "Constant"}, []dataset.Example{
		{Features: []float64{0, 3, 1}, Label: dataset.Unoccupied},
		{Features: []float64{10, 1, 1}, Label: dataset.Occupied},
		{Features: []float64{0, 2, 1}, Label: dataset.Unoccupied},
		{Features: []float64{10, 4, 1}, Label: dataset.Occupied},
	})
	if err != nil {
		t.Fatalf("dataset.New failed: %v", err)
	}
	c := Correlate(ds)
	if len(c.Label) != 3 {
		t.Fatalf("label correlations = %d, want 3", len(c.Label))
	}
	if c.Label[0].Feature != "Light" || math.Abs(c.Label[0].R-1) > 1e-12 {
		t.Fatalf("Light correlation = %+v, want 1", c.Label[0])
	}
	if !math.IsNaN(c.Label[2].R) {
		t.Fatalf("constant column correlation = %v, want NaN", c.Label[2].R)
	}
	if len(c.Pairs) != 3 {
		t.Fatalf("pairs = %d, want 3", len(c.Pairs))
	}
	if p := c.Pairs[0]; p.A != "Light" || p.B != "Noise" {
		t.Fatalf("first pair = %+v, want Light/Noise", p)
	}
	if r := c.Pairs[0].R; r < -1 || r > 1 {
		t.Fatalf("pair correlation out of range: %v", r)
	}
}
