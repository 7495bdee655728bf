package lassolib

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestSoftThresholdMagnitudeAndSign(t *testing.T) {
	v := mat.NewVecDense(6, []float64{3.5, -2.0, 0.75, -0.75, 0.1, 0})
	threshold := 0.75

	out := SoftThreshold(v, threshold)
	if out.Len() != v.Len() {
		t.Fatalf("length changed: %d vs %d", out.Len(), v.Len())
	}

	for i := 0; i < v.Len(); i++ {
		val := v.AtVec(i)
		want := math.Abs(val) - threshold
		if want < 0 {
			want = 0
		}
		got := out.AtVec(i)
		if math.Abs(math.Abs(got)-want) > 1e-15 {
			t.Fatalf("component %d: |result| = %g, want %g", i, math.Abs(got), want)
		}
		if got != 0 && math.Signbit(got) != math.Signbit(val) {
			t.Fatalf("component %d: sign flipped, input %g result %g", i, val, got)
		}
	}
}

func TestSoftThresholdZeroThresholdIsIdentity(t *testing.T) {
	v := mat.NewVecDense(4, []float64{1.25, -3.0, 0, 42})
	out := SoftThreshold(v, 0)
	for i := 0; i < v.Len(); i++ {
		if out.AtVec(i) != v.AtVec(i) {
			t.Fatalf("component %d changed: %g vs %g", i, out.AtVec(i), v.AtVec(i))
		}
	}
}

func TestSoftThresholdZeroesSmallComponents(t *testing.T) {
	v := mat.NewVecDense(3, []float64{0.5, -0.5, 0.49})
	out := SoftThreshold(v, 0.5)
	for i := 0; i < out.Len(); i++ {
		if out.AtVec(i) != 0 {
			t.Fatalf("component %d not zeroed: %g", i, out.AtVec(i))
		}
	}
}

func TestSoftThresholdDoesNotModifyInput(t *testing.T) {
	v := mat.NewVecDense(2, []float64{2, -2})
	SoftThreshold(v, 1)
	if v.AtVec(0) != 2 || v.AtVec(1) != -2 {
		t.Fatalf("input was modified: %v", v.RawVector().Data)
	}
}
