package lassolib

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestTruncatedSVDFullRankRecovery(t *testing.T) {
	data := mat.NewDense(4, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
		2, 1, 0,
	})

	reducer, err := NewTruncatedSVD(data, 3)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	recovered, err := reducer.Recover()
	if err != nil {
		t.Fatalf("recover: %v", err)
	}

	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			if diff := math.Abs(recovered.At(i, j) - data.At(i, j)); diff > 1e-10 {
				t.Fatalf("full-rank recovery off at (%d,%d) by %g", i, j, diff)
			}
		}
	}
}

func TestTruncatedSVDReduceDimensions(t *testing.T) {
	data := mat.NewDense(5, 4, []float64{
		1, 0, 0, 1,
		0, 1, 0, 1,
		0, 0, 1, 1,
		1, 1, 0, 2,
		0, 1, 1, 2,
	})

	reducer, err := NewTruncatedSVD(data, 2)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	scores, err := reducer.Reduce()
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	h, w := scores.Dims()
	if h != 5 || w != 2 {
		t.Fatalf("unexpected score dimensions %dx%d", h, w)
	}

	// the rank-2 reconstruction loses at most the discarded singular values
	recovered, err := reducer.Recover()
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	rh, rw := recovered.Dims()
	if rh != 5 || rw != 4 {
		t.Fatalf("unexpected recovered dimensions %dx%d", rh, rw)
	}
}

func TestTruncatedSVDRejectsBadRank(t *testing.T) {
	data := mat.NewDense(3, 2, nil)
	if _, err := NewTruncatedSVD(data, 0); !errors.Is(err, ErrBadConfig) {
		t.Fatalf("expected ErrBadConfig for rank 0, got %v", err)
	}
	if _, err := NewTruncatedSVD(data, 3); !errors.Is(err, ErrBadConfig) {
		t.Fatalf("expected ErrBadConfig for rank above min dimension, got %v", err)
	}
}
