package vector

import (
	"errors"
	"math"
	"testing"
)

func TestEuclidean(t *testing.T) {
	d, err := Euclidean([]float64{0, 0}, []float64{3, 4})
	if err != nil {
		t.Fatalf("Euclidean failed: %v", err)
	}
	if d != 5 {
		t.Fatalf("Euclidean(0,0)-(3,4) = %v, want 5", d)
	}

	d, err = Euclidean([]float64{1.5, -2, 7}, []float64{1.5, -2, 7})
	if err != nil || d != 0 {
		t.Fatalf("Euclidean(x,x) = %v, %v; want 0, nil", d, err)
	}

	d, err = Euclidean([]float64{1, 1}, []float64{0, 0})
	if err != nil || math.Abs(d-math.Sqrt2) > 1e-12 {
		t.Fatalf("Euclidean(1,1)-(0,0) = %v, %v; want sqrt(2)", d, err)
	}
}

func TestEuclidean_DimensionMismatch(t *testing.T) {
	_, err := Euclidean([]float64{1, 2}, []float64{1, 2, 3})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected mismatch to wrap ErrInvalidArgument, got %v", err)
	}
}

func TestCheckDim(t *testing.T) {
	if err := CheckDim([]float64{1, 2}, 2); err != nil {
		t.Fatalf("CheckDim failed: %v", err)
	}
	if err := CheckDim([]float64{1}, 2); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("CheckDim(len 1, 2) = %v, want ErrInvalidArgument", err)
	}
}
