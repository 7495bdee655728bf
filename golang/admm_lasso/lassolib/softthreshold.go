package lassolib

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

//SoftThreshold applies the elementwise shrinkage operator to v:
//each component is shrunk toward zero by t and zeroed when its magnitude
//does not exceed t. The sign is transferred from the input component with
//math.Copysign, so a component shrunk to the boundary never flips sign.
//The input is not modified; t must be non-negative.
func SoftThreshold(v *mat.VecDense, t float64) *mat.VecDense {
	out := mat.NewVecDense(v.Len(), nil)
	softThresholdTo(out, v, t)
	return out
}

//softThresholdTo writes the shrunk copy of v into dst. dst and v may alias.
func softThresholdTo(dst, v *mat.VecDense, t float64) {
	for i := 0; i < v.Len(); i++ {
		val := v.AtVec(i)
		shrunk := math.Abs(val) - t
		if shrunk < 0 {
			shrunk = 0
		}
		dst.SetVec(i, math.Copysign(shrunk, val))
	}
}
