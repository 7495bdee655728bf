package lassolib

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//Predict applies fitted coefficients to a design matrix and returns the
//predicted response as an m x 1 matrix.
func Predict(design *mat.Dense, coefficients *mat.VecDense) *mat.Dense {
	m, _ := design.Dims()
	prediction := mat.NewDense(m, 1, nil)
	prediction.Mul(design, coefficients)
	return prediction
}

//Rmse computes the root mean square error between a target and a prediction.
func Rmse(target, prediction *mat.Dense) float64 {
	h, _ := target.Dims()
	sum := 0.0
	for i := 0; i < h; i++ {
		d := target.At(i, 0) - prediction.At(i, 0)
		sum += d * d
	}
	return math.Sqrt(sum / float64(h))
}

//RSquared computes the coefficient of determination 1 - SSE/SST of the given
//coefficients on the problem.
func RSquared(problem Problem, coefficients *mat.VecDense) float64 {
	m, _ := problem.Response.Dims()
	prediction := Predict(problem.Design, coefficients)

	response := make([]float64, m)
	for i := 0; i < m; i++ {
		response[i] = problem.Response.At(i, 0)
	}
	mean := stat.Mean(response, nil)

	sse, sst := 0.0, 0.0
	for i := 0; i < m; i++ {
		residual := response[i] - prediction.At(i, 0)
		sse += residual * residual
		centered := response[i] - mean
		sst += centered * centered
	}
	return 1 - sse/sst
}
