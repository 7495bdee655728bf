package lassolib

import (
	"errors"
	"fmt"
	"log"
)

var (
	//ErrBadConfig indicates an invalid solver configuration value.
	ErrBadConfig = errors.New("lassolib: invalid solver configuration")

	//ErrNegativeLambda indicates a negative regularization weight.
	ErrNegativeLambda = errors.New("lassolib: regularization weight must be non-negative")

	//ErrSVDFailed indicates that the singular value decomposition did not converge.
	ErrSVDFailed = errors.New("lassolib: svd factorization failed")
)

//ShapeError reports a dimension mismatch between the design matrix and the response vector.
type ShapeError struct {
	Rows, Cols                 int
	ResponseRows, ResponseCols int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("lassolib: design matrix is %dx%d but the response is %dx%d, want %dx1",
		e.Rows, e.Cols, e.ResponseRows, e.ResponseCols, e.Rows)
}

//SingularSystemError reports a failed factorization of the regularized Gram matrix.
//It is reachable only when the penalty parameter is zero and the Gram matrix is singular.
type SingularSystemError struct {
	Iteration int
	Rho       float64
}

func (e *SingularSystemError) Error() string {
	return fmt.Sprintf("lassolib: gram matrix + %g*I is not positive definite at iteration %d", e.Rho, e.Iteration)
}

//DivergenceError reports a non-finite value in the iteration state.
type DivergenceError struct {
	Iteration int
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("lassolib: iteration state became non-finite at iteration %d", e.Iteration)
}

//HandleError panics on a non-nil error. Intended for the outermost driver layers only,
//the library itself returns errors.
func HandleError(err error) {
	if err != nil {
		log.Panic(err)
	}
}
