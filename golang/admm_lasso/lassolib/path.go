package lassolib

import (
	"context"
	"log"

	"gonum.org/v1/gonum/mat"
)

//PathResult stores the coefficients of a regularization path, one row per
//regularization weight. Coefficients holds the primal vectors, Sparse holds
//the soft-thresholded copies whose exact zeros mark eliminated features.
type PathResult struct {
	Lambdas      []float64
	Coefficients *mat.Dense
	Sparse       *mat.Dense
	FeatureNames []string
}

//FitPath fits one independent solve per regularization weight over the given
//problem. The Gram matrix is precomputed once and shared by all solves.
//Each solve starts from the same zero state, so the runs are independent and
//the sparsity of the rows is comparable across weights.
func FitPath(ctx context.Context, problem Problem, lambdas []float64, cfg SolverConfig) (*PathResult, error) {
	if _, _, err := problem.validatedDimensions(); err != nil {
		return nil, err
	}
	for _, lambda := range lambdas {
		if lambda < 0 {
			return nil, ErrNegativeLambda
		}
	}
	if len(lambdas) == 0 {
		return &PathResult{}, nil
	}

	base, err := NewLassoSolver(LassoParams{
		Design:    problem.Design,
		Response:  problem.Response,
		RegLambda: lambdas[0],
		Config:    cfg,
	})
	if err != nil {
		return nil, err
	}

	_, n := problem.Design.Dims()
	pathResult := &PathResult{
		Lambdas:      append([]float64(nil), lambdas...),
		Coefficients: mat.NewDense(len(lambdas), n, nil),
		Sparse:       mat.NewDense(len(lambdas), n, nil),
	}

	for k, lambda := range lambdas {
		solveResult, err := base.withLambda(lambda).Solve(ctx)
		if err != nil {
			return nil, err
		}
		pathResult.Coefficients.SetRow(k, solveResult.Coefficients.RawVector().Data)
		pathResult.Sparse.SetRow(k, solveResult.Sparse.RawVector().Data)
		log.Printf("path lambda %g active %d of %d", lambda, countActive(solveResult.Sparse), n)
	}

	return pathResult, nil
}

//ActiveCounts returns for each regularization weight the number of features
//surviving the L1 penalty.
func (pathResult *PathResult) ActiveCounts() []int {
	counts := make([]int, len(pathResult.Lambdas))
	for k := range pathResult.Lambdas {
		counts[k] = len(pathResult.ActiveSet(k))
	}
	return counts
}

//ActiveSet returns the indices of the features with a nonzero sparse
//coefficient at path position k.
func (pathResult *PathResult) ActiveSet(k int) []int {
	_, n := pathResult.Sparse.Dims()
	var active []int
	for j := 0; j < n; j++ {
		if pathResult.Sparse.At(k, j) != 0 {
			active = append(active, j)
		}
	}
	return active
}

//featureName returns the configured name of feature j or a positional one.
func (pathResult *PathResult) featureName(j int) string {
	if j < len(pathResult.FeatureNames) {
		return pathResult.FeatureNames[j]
	}
	return defaultFeatureName(j)
}

func countActive(sparse *mat.VecDense) int {
	count := 0
	for _, v := range sparse.RawVector().Data {
		if v != 0 {
			count++
		}
	}
	return count
}
