package lassolib

import (
	"context"
	"errors"
	"testing"
)

func TestFitPathSparsityGrowsWithLambda(t *testing.T) {
	problem := createConditionedProblem()
	lambdas := []float64{0.01, 1, 10, 20}

	pathResult, err := FitPath(context.Background(), problem, lambdas, SolverConfig{})
	if err != nil {
		t.Fatalf("fit path: %v", err)
	}

	rows, cols := pathResult.Sparse.Dims()
	if rows != len(lambdas) || cols != 3 {
		t.Fatalf("unexpected path dimensions %dx%d", rows, cols)
	}

	counts := pathResult.ActiveCounts()
	want := []int{3, 3, 2, 0}
	for k := range want {
		if counts[k] != want[k] {
			t.Fatalf("active counts %v, want %v", counts, want)
		}
	}
	for k := 1; k < len(counts); k++ {
		if counts[k] > counts[k-1] {
			t.Fatalf("active set grew with lambda: %v", counts)
		}
	}

	active := pathResult.ActiveSet(2)
	if len(active) != 2 || active[0] != 1 || active[1] != 2 {
		t.Fatalf("unexpected active set at lambda %g: %v", lambdas[2], active)
	}
}

func TestFitPathRejectsNegativeLambda(t *testing.T) {
	problem := createConditionedProblem()
	_, err := FitPath(context.Background(), problem, []float64{0.1, -0.1}, SolverConfig{})
	if !errors.Is(err, ErrNegativeLambda) {
		t.Fatalf("expected ErrNegativeLambda, got %v", err)
	}
}

func TestFitPathEmptyLambdas(t *testing.T) {
	problem := createConditionedProblem()
	pathResult, err := FitPath(context.Background(), problem, nil, SolverConfig{})
	if err != nil {
		t.Fatalf("fit path: %v", err)
	}
	if len(pathResult.Lambdas) != 0 {
		t.Fatalf("expected empty path, got %d lambdas", len(pathResult.Lambdas))
	}
}

func TestPathFeatureNames(t *testing.T) {
	pathResult := &PathResult{FeatureNames: []string{"intercept"}}
	if name := pathResult.featureName(0); name != "intercept" {
		t.Fatalf("unexpected name %q", name)
	}
	if name := pathResult.featureName(2); name != "f_2" {
		t.Fatalf("unexpected fallback name %q", name)
	}
}
