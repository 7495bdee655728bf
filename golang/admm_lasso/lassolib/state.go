package lassolib

import "gonum.org/v1/gonum/mat"

//IterState is a snapshot of the ADMM state handed to observers after each
//completed iteration. The vectors are owned by the solver and are only valid
//for the duration of the call; observers that retain them must copy.
type IterState struct {
	Iteration      int
	X              *mat.VecDense
	Z              *mat.VecDense
	L              *mat.VecDense
	Rho            float64
	PrimalResidual float64
	DualResidual   float64
}

//IterObserver receives the solver state after every completed iteration.
//It replaces inline debug printing inside the numeric loop.
type IterObserver func(state IterState)
