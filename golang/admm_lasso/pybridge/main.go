// SPDX-License-Identifier: Apache-2.0

package main

/*
#cgo CFLAGS: -I.
#include <stdlib.h>
*/
import "C"

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"unsafe"

	"github.com/tarstars/admm_lasso/golang/admm_lasso/lassolib"
	"gonum.org/v1/gonum/mat"
)

var (
	handleMu   sync.Mutex
	nextHandle uint64 = 1
	results           = make(map[uint64]*lassolib.SolveResult)

	lastErrorMu sync.Mutex
	lastError   string

	logSilenceOnce sync.Once
)

func setLastError(err error) {
	lastErrorMu.Lock()
	defer lastErrorMu.Unlock()
	if err != nil {
		lastError = err.Error()
	} else {
		lastError = ""
	}
}

func getLastError() string {
	lastErrorMu.Lock()
	defer lastErrorMu.Unlock()
	return lastError
}

func storeResult(result *lassolib.SolveResult) uint64 {
	handleMu.Lock()
	defer handleMu.Unlock()
	handle := nextHandle
	results[handle] = result
	nextHandle++
	return handle
}

func fetchResult(handle uint64) (*lassolib.SolveResult, error) {
	handleMu.Lock()
	defer handleMu.Unlock()
	result, ok := results[handle]
	if !ok {
		return nil, errors.New("invalid result handle")
	}
	return result, nil
}

func copyFloatSlice(ptr *C.double, length int) ([]float64, error) {
	if length < 0 {
		return nil, errors.New("negative length")
	}
	if length == 0 {
		return nil, nil
	}
	if ptr == nil {
		return nil, errors.New("null pointer for non-empty slice")
	}
	src := unsafe.Slice((*float64)(unsafe.Pointer(ptr)), length)
	dst := make([]float64, length)
	copy(dst, src)
	return dst, nil
}

func sliceFromPtr(ptr *C.double, length int) ([]float64, error) {
	if length < 0 {
		return nil, errors.New("negative length")
	}
	if length == 0 {
		return nil, nil
	}
	if ptr == nil {
		return nil, errors.New("null pointer for non-empty slice")
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(ptr)), length), nil
}

func buildDense(ptr *C.double, rows, cols C.int) (*mat.Dense, error) {
	r := int(rows)
	c := int(cols)
	if r < 0 || c < 0 {
		return nil, errors.New("invalid matrix dimensions")
	}
	if r == 0 || c == 0 {
		return mat.NewDense(r, c, nil), nil
	}
	data, err := copyFloatSlice(ptr, r*c)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(r, c, data), nil
}

func buildConfig(maxIter C.int, rhoInit, rhoMax, rhoGrowth, tolerance C.double) lassolib.SolverConfig {
	return lassolib.SolverConfig{
		MaxIter:   int(maxIter),
		RhoInit:   float64(rhoInit),
		RhoMax:    float64(rhoMax),
		RhoGrowth: float64(rhoGrowth),
		Tolerance: float64(tolerance),
	}
}

func runFit(design, response *mat.Dense, regLambda float64, cfg lassolib.SolverConfig) (*lassolib.SolveResult, error) {
	solver, err := lassolib.NewLassoSolver(lassolib.LassoParams{
		Design:    design,
		Response:  response,
		RegLambda: regLambda,
		Config:    cfg,
	})
	if err != nil {
		return nil, err
	}
	return solver.Solve(context.Background())
}

//export FitLasso
func FitLasso(
	designPtr *C.double,
	rows C.int,
	cols C.int,
	responsePtr *C.double,
	regLambda C.double,
	maxIter C.int,
	rhoInit C.double,
	rhoMax C.double,
	rhoGrowth C.double,
	tolerance C.double,
) C.ulonglong {
	setLastError(nil)
	logSilenceOnce.Do(func() {
		log.SetOutput(io.Discard)
	})

	if rows <= 0 {
		setLastError(errors.New("rows must be positive"))
		return 0
	}

	design, err := buildDense(designPtr, rows, cols)
	if err != nil {
		setLastError(err)
		return 0
	}

	response, err := buildDense(responsePtr, rows, 1)
	if err != nil {
		setLastError(err)
		return 0
	}

	result, err := runFit(design, response, float64(regLambda), buildConfig(maxIter, rhoInit, rhoMax, rhoGrowth, tolerance))
	if err != nil {
		setLastError(err)
		return 0
	}

	return C.ulonglong(storeResult(result))
}

//export GetCoefficients
func GetCoefficients(handle C.ulonglong, outputPtr *C.double, length C.int, sparse C.int) C.int {
	setLastError(nil)
	result, err := fetchResult(uint64(handle))
	if err != nil {
		setLastError(err)
		return 1
	}

	source := result.Coefficients
	if sparse != 0 {
		source = result.Sparse
	}
	if int(length) != source.Len() {
		setLastError(errors.New("output length mismatch"))
		return 2
	}

	outSlice, err := sliceFromPtr(outputPtr, int(length))
	if err != nil {
		setLastError(err)
		return 3
	}
	copy(outSlice, source.RawVector().Data)
	return 0
}

//export GetIterations
func GetIterations(handle C.ulonglong) C.int {
	setLastError(nil)
	result, err := fetchResult(uint64(handle))
	if err != nil {
		setLastError(err)
		return -1
	}
	return C.int(result.Iterations)
}

//export FreeResult
func FreeResult(handle C.ulonglong) {
	handleMu.Lock()
	defer handleMu.Unlock()
	delete(results, uint64(handle))
}

//export FitLassoPath
func FitLassoPath(
	designPtr *C.double,
	rows C.int,
	cols C.int,
	responsePtr *C.double,
	lambdasPtr *C.double,
	nLambdas C.int,
	outputPtr *C.double,
	maxIter C.int,
	rhoInit C.double,
	rhoMax C.double,
	rhoGrowth C.double,
	tolerance C.double,
) C.int {
	setLastError(nil)
	logSilenceOnce.Do(func() {
		log.SetOutput(io.Discard)
	})

	design, err := buildDense(designPtr, rows, cols)
	if err != nil {
		setLastError(err)
		return 1
	}

	response, err := buildDense(responsePtr, rows, 1)
	if err != nil {
		setLastError(err)
		return 2
	}

	lambdas, err := copyFloatSlice(lambdasPtr, int(nLambdas))
	if err != nil {
		setLastError(err)
		return 3
	}

	problem := lassolib.Problem{Design: design, Response: response}
	pathResult, err := lassolib.FitPath(context.Background(), problem, lambdas, buildConfig(maxIter, rhoInit, rhoMax, rhoGrowth, tolerance))
	if err != nil {
		setLastError(err)
		return 4
	}
	if len(lambdas) == 0 {
		return 0
	}

	outSlice, err := sliceFromPtr(outputPtr, int(nLambdas)*int(cols))
	if err != nil {
		setLastError(err)
		return 5
	}
	copy(outSlice, pathResult.Sparse.RawMatrix().Data)
	return 0
}

//export GetLastError
func GetLastError() *C.char {
	errStr := getLastError()
	if errStr == "" {
		return nil
	}
	return C.CString(errStr)
}

//export FreeCString
func FreeCString(str *C.char) {
	if str != nil {
		C.free(unsafe.Pointer(str))
	}
}

func main() {}
