package lassolib

import "gorgonia.org/tensor"

// components of a recorded iterate
const (
	TracePrimal    = iota // x
	TraceAuxiliary        // z
	TraceDual             // l
)

//SolveTrace records every ADMM iterate into a dense tensor of shape
//(maxIter, 3, n) for offline inspection of the convergence dynamics.
type SolveTrace struct {
	iterates *tensor.Dense
	maxIter  int
	n        int
	recorded int
}

//NewSolveTrace allocates trace storage for maxIter iterations over n features.
func NewSolveTrace(maxIter, n int) *SolveTrace {
	return &SolveTrace{
		iterates: tensor.New(tensor.WithShape(maxIter, 3, n), tensor.Of(tensor.Float64)),
		maxIter:  maxIter,
		n:        n,
	}
}

//Observer returns a callback suitable for LassoParams.Observer that copies
//each iterate into the trace.
func (trace *SolveTrace) Observer() IterObserver {
	return func(state IterState) {
		if state.Iteration >= trace.maxIter || state.X.Len() != trace.n {
			return
		}
		for j := 0; j < trace.n; j++ {
			HandleError(trace.iterates.SetAt(state.X.AtVec(j), state.Iteration, TracePrimal, j))
			HandleError(trace.iterates.SetAt(state.Z.AtVec(j), state.Iteration, TraceAuxiliary, j))
			HandleError(trace.iterates.SetAt(state.L.AtVec(j), state.Iteration, TraceDual, j))
		}
		if state.Iteration+1 > trace.recorded {
			trace.recorded = state.Iteration + 1
		}
	}
}

//At returns component comp of feature j at iteration iter.
func (trace *SolveTrace) At(iter, comp, j int) (float64, error) {
	value, err := trace.iterates.At(iter, comp, j)
	if err != nil {
		return 0, err
	}
	return value.(float64), nil
}

//Len returns the number of recorded iterations.
func (trace *SolveTrace) Len() int {
	return trace.recorded
}
