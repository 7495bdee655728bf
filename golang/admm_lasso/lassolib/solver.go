package lassolib

import (
	"context"
	"log"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//LassoParams collect arguments required to construct a solver.
type LassoParams struct {
	Design    *mat.Dense
	Response  *mat.Dense // m x 1
	RegLambda float64
	Config    SolverConfig
	Observer  IterObserver
	Verbose   bool
}

//LassoSolver solves the L1-regularized least-squares problem
//
//	min over x of 1/2 |A x - b|^2 + lambda |x|_1
//
//with the Alternating Direction Method of Multipliers. The solver owns the
//problem data and all iteration state; concurrent Solve calls on one
//instance are not safe, independent instances are.
type LassoSolver struct {
	design    *mat.Dense
	response  *mat.VecDense
	regLambda float64
	cfg       SolverConfig
	observer  IterObserver
	verbose   bool

	gram *mat.SymDense // A^T A, computed once
	atb  *mat.VecDense // A^T b, computed once
}

//SolveResult describes the final state of one Solve call.
//Coefficients is the primal vector x. Sparse is the soft-thresholded copy z,
//whose entries are exact zeros where the L1 penalty eliminated a feature;
//the two agree at consensus.
type SolveResult struct {
	Coefficients   *mat.VecDense
	Sparse         *mat.VecDense
	Iterations     int
	PrimalResidual float64
	DualResidual   float64
	Rho            float64
	Converged      bool
}

//NewLassoSolver validates the problem dimensions and precomputes the Gram
//matrix A^T A and the projected response A^T b, both reused on every
//iteration. Returns a ShapeError when the design and the response disagree.
func NewLassoSolver(params LassoParams) (*LassoSolver, error) {
	m, n := params.Design.Dims()
	responseH, responseW := params.Response.Dims()
	if responseH != m || responseW != 1 {
		return nil, &ShapeError{Rows: m, Cols: n, ResponseRows: responseH, ResponseCols: responseW}
	}
	if params.RegLambda < 0 {
		return nil, ErrNegativeLambda
	}
	cfg := params.Config.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	response := mat.NewVecDense(m, nil)
	response.CopyVec(params.Response.ColView(0))

	gram := mat.NewSymDense(n, nil)
	gram.SymOuterK(1, params.Design.T())

	atb := mat.NewVecDense(n, nil)
	atb.MulVec(params.Design.T(), response)

	return &LassoSolver{
		design:    params.Design,
		response:  response,
		regLambda: params.RegLambda,
		cfg:       cfg,
		observer:  params.Observer,
		verbose:   params.Verbose,
		gram:      gram,
		atb:       atb,
	}, nil
}

//RegLambda returns the regularization weight the solver was constructed with.
func (solver *LassoSolver) RegLambda() float64 {
	return solver.regLambda
}

//withLambda returns a solver sharing the precomputed Gram matrix but fitting
//a different regularization weight. Used by FitPath.
func (solver *LassoSolver) withLambda(regLambda float64) *LassoSolver {
	clone := *solver
	clone.regLambda = regLambda
	return &clone
}

//Solve runs the ADMM iteration and returns the final state. Each iteration
//performs, in order: the ridge-regularized primal solve via a Cholesky
//factorization of A^T A + rho*I, the soft-threshold proximal update, the
//scaled dual update, and the penalty growth step. The auxiliary and dual
//vectors start at zero and the run is deterministic for fixed inputs.
//The context is checked between iterations only, never inside a linear solve.
func (solver *LassoSolver) Solve(ctx context.Context) (*SolveResult, error) {
	n := solver.atb.Len()
	cfg := solver.cfg

	x := mat.NewVecDense(n, nil)
	z := mat.NewVecDense(n, nil)
	l := mat.NewVecDense(n, nil)
	zPrev := mat.NewVecDense(n, nil)
	shifted := mat.NewVecDense(n, nil)
	rhs := mat.NewVecDense(n, nil)
	diff := mat.NewVecDense(n, nil)
	regGram := mat.NewSymDense(n, nil)

	rho := cfg.RhoInit
	var chol mat.Cholesky

	result := &SolveResult{Coefficients: x, Sparse: z}
	for iter := 0; iter < cfg.MaxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// x-step: (A^T A + rho*I) x = A^T b + rho*z - l
		regGram.CopySym(solver.gram)
		for j := 0; j < n; j++ {
			regGram.SetSym(j, j, solver.gram.At(j, j)+rho)
		}
		if ok := chol.Factorize(regGram); !ok {
			return nil, &SingularSystemError{Iteration: iter, Rho: rho}
		}
		rhs.CopyVec(solver.atb)
		rhs.AddScaledVec(rhs, rho, z)
		rhs.AddScaledVec(rhs, -1, l)
		if err := chol.SolveVecTo(x, rhs); err != nil {
			return nil, &SingularSystemError{Iteration: iter, Rho: rho}
		}

		// z-step: z = SoftThreshold(x + l/rho, lambda/rho)
		zPrev.CopyVec(z)
		shifted.CopyVec(x)
		shifted.AddScaledVec(shifted, 1/rho, l)
		softThresholdTo(z, shifted, solver.regLambda/rho)

		// l-step: l += rho*(x - z)
		diff.SubVec(x, z)
		l.AddScaledVec(l, rho, diff)

		primal := floats.Norm(diff.RawVector().Data, 2)
		diff.SubVec(z, zPrev)
		dual := rho * floats.Norm(diff.RawVector().Data, 2)

		if !allFinite(x, z, l) {
			return nil, &DivergenceError{Iteration: iter}
		}

		result.Iterations = iter + 1
		result.PrimalResidual = primal
		result.DualResidual = dual
		result.Rho = rho

		if solver.verbose {
			log.Printf("iteration %d rho %g primal %g dual %g", iter, rho, primal, dual)
		}
		if solver.observer != nil {
			solver.observer(IterState{
				Iteration:      iter,
				X:              x,
				Z:              z,
				L:              l,
				Rho:            rho,
				PrimalResidual: primal,
				DualResidual:   dual,
			})
		}

		if cfg.Tolerance > 0 && primal < cfg.Tolerance && dual < cfg.Tolerance {
			result.Converged = true
			break
		}

		rho = math.Min(cfg.RhoMax, rho*cfg.RhoGrowth)
	}

	return result, nil
}

//allFinite reports whether every component of the given vectors is finite.
func allFinite(vectors ...*mat.VecDense) bool {
	for _, v := range vectors {
		for _, val := range v.RawVector().Data {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				return false
			}
		}
	}
	return true
}
