package lassolib

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//DimensionalityReducer produces a lower-rank view of a matrix and can
//approximately reconstruct the original from it. A caller may apply it to
//the design matrix before fitting; it shares no state with the solver.
type DimensionalityReducer interface {
	Reduce() (*mat.Dense, error)
	Recover() (*mat.Dense, error)
}

//TruncatedSVD reduces a dense matrix to its top Rank singular directions.
type TruncatedSVD struct {
	Data *mat.Dense
	Rank int

	svd      mat.SVD
	factored bool
}

//NewTruncatedSVD validates the requested rank against the matrix dimensions.
func NewTruncatedSVD(data *mat.Dense, rank int) (*TruncatedSVD, error) {
	m, n := data.Dims()
	limit := m
	if n < m {
		limit = n
	}
	if rank < 1 || rank > limit {
		return nil, fmt.Errorf("%w: rank %d, want 1..%d", ErrBadConfig, rank, limit)
	}
	return &TruncatedSVD{Data: data, Rank: rank}, nil
}

func (reducer *TruncatedSVD) factorize() error {
	if reducer.factored {
		return nil
	}
	if ok := reducer.svd.Factorize(reducer.Data, mat.SVDThin); !ok {
		return ErrSVDFailed
	}
	reducer.factored = true
	return nil
}

//Reduce returns the data projected onto the top Rank singular directions,
//an m x Rank matrix of scores U_k * S_k.
func (reducer *TruncatedSVD) Reduce() (*mat.Dense, error) {
	if err := reducer.factorize(); err != nil {
		return nil, err
	}
	var u mat.Dense
	reducer.svd.UTo(&u)
	values := reducer.svd.Values(nil)

	m, _ := reducer.Data.Dims()
	scores := mat.NewDense(m, reducer.Rank, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < reducer.Rank; j++ {
			scores.Set(i, j, u.At(i, j)*values[j])
		}
	}
	return scores, nil
}

//Recover reconstructs the rank-k approximation U_k * S_k * V_k^T of the
//original matrix.
func (reducer *TruncatedSVD) Recover() (*mat.Dense, error) {
	scores, err := reducer.Reduce()
	if err != nil {
		return nil, err
	}
	var v mat.Dense
	reducer.svd.VTo(&v)

	m, n := reducer.Data.Dims()
	recovered := mat.NewDense(m, n, nil)
	recovered.Mul(scores, v.Slice(0, n, 0, reducer.Rank).T())
	return recovered, nil
}
