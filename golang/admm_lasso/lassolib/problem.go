package lassolib

import (
	"os"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

//Problem bundles the design matrix and the response vector of one LASSO fit.
type Problem struct {
	Design      *mat.Dense
	Response    *mat.Dense // m x 1
	Description *string
}

//SetDescription sets a description used when reporting fit quality.
func (problem *Problem) SetDescription(description string) {
	problem.Description = &description
}

//validatedDimensions checks the consistency of the problem dimensions and
//returns the number of observations and the number of features.
func (problem Problem) validatedDimensions() (m, n int, err error) {
	m, n = problem.Design.Dims()
	responseH, responseW := problem.Response.Dims()
	if responseH != m || responseW != 1 {
		return 0, 0, &ShapeError{Rows: m, Cols: n, ResponseRows: responseH, ResponseCols: responseW}
	}
	return m, n, nil
}

//ReadProblem reads the design matrix and the response vector from npy files
//and unites them into one Problem.
func ReadProblem(designPath, responsePath string) (problem Problem, err error) {
	problem.Design, err = ReadNpy(designPath)
	if err != nil {
		return Problem{}, err
	}
	problem.Response, err = ReadNpy(responsePath)
	if err != nil {
		return Problem{}, err
	}
	problem.Response = asColumn(problem.Response)
	if _, _, err = problem.validatedDimensions(); err != nil {
		return Problem{}, err
	}
	return problem, nil
}

//ReadNpy reads the content of an npy file into a dense matrix.
func ReadNpy(fileName string) (*mat.Dense, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, err
	}

	denseMat := &mat.Dense{}
	if err := r.Read(denseMat); err != nil {
		return nil, err
	}
	return denseMat, nil
}

//WriteNpy writes a dense matrix into an npy file.
func WriteNpy(fileName string, denseMat *mat.Dense) error {
	dst, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() { _ = dst.Close() }()

	return npyio.Write(dst, denseMat)
}

//asColumn reshapes a single-row matrix into a column so that 1-d npy vectors
//can be used as responses directly.
func asColumn(denseMat *mat.Dense) *mat.Dense {
	h, w := denseMat.Dims()
	if h != 1 || w <= 1 {
		return denseMat
	}
	column := mat.NewDense(w, 1, nil)
	for i := 0; i < w; i++ {
		column.Set(i, 0, denseMat.At(0, i))
	}
	return column
}
