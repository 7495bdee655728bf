package lassolib

import (
	"context"
	"math"
	"testing"
)

func TestSolveTraceRecordsIterates(t *testing.T) {
	problem := createConditionedProblem()
	maxIter := 25

	trace := NewSolveTrace(maxIter, 3)
	solver, err := NewLassoSolver(LassoParams{
		Design:    problem.Design,
		Response:  problem.Response,
		RegLambda: 0.1,
		Config:    SolverConfig{MaxIter: maxIter},
		Observer:  trace.Observer(),
	})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	result, err := solver.Solve(context.Background())
	if err != nil {
		t.Fatalf("solve: %v", err)
	}

	if trace.Len() != result.Iterations {
		t.Fatalf("trace recorded %d iterations, solver ran %d", trace.Len(), result.Iterations)
	}

	last := result.Iterations - 1
	for j := 0; j < 3; j++ {
		x, err := trace.At(last, TracePrimal, j)
		if err != nil {
			t.Fatalf("trace access: %v", err)
		}
		if x != result.Coefficients.AtVec(j) {
			t.Fatalf("trace primal %d = %g, result %g", j, x, result.Coefficients.AtVec(j))
		}
		z, err := trace.At(last, TraceAuxiliary, j)
		if err != nil {
			t.Fatalf("trace access: %v", err)
		}
		if z != result.Sparse.AtVec(j) {
			t.Fatalf("trace auxiliary %d = %g, result %g", j, z, result.Sparse.AtVec(j))
		}
		l, err := trace.At(last, TraceDual, j)
		if err != nil {
			t.Fatalf("trace access: %v", err)
		}
		if math.IsNaN(l) {
			t.Fatalf("trace dual %d is NaN", j)
		}
	}
}

func TestSolveTraceIgnoresOutOfRangeIterations(t *testing.T) {
	trace := NewSolveTrace(1, 2)
	observer := trace.Observer()

	problem := createConditionedProblem()
	solver, err := NewLassoSolver(LassoParams{
		Design:    problem.Design,
		Response:  problem.Response,
		RegLambda: 0.1,
		Config:    SolverConfig{MaxIter: 5},
		Observer:  observer,
	})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if _, err := solver.Solve(context.Background()); err != nil {
		t.Fatalf("solve: %v", err)
	}

	// the trace is narrower than the problem, so nothing must be recorded
	if trace.Len() != 0 {
		t.Fatalf("expected no recorded iterations, got %d", trace.Len())
	}
}
