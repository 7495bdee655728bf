package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/tarstars/admm_lasso/golang/admm_lasso/lassolib"
	"gonum.org/v1/gonum/mat"
)

func decodeConfig(srcConfig string, out interface{}) {
	file, err := os.Open(srcConfig)
	lassolib.HandleError(err)
	defer func() { lassolib.HandleError(file.Close()) }()

	decoder := json.NewDecoder(file)
	lassolib.HandleError(decoder.Decode(out))
}

func solverConfig(maxIter int, rhoInit, rhoMax, rhoGrowth, tolerance float64) lassolib.SolverConfig {
	cfg := lassolib.SolverConfig{
		MaxIter:   maxIter,
		RhoInit:   rhoInit,
		RhoMax:    rhoMax,
		RhoGrowth: rhoGrowth,
		Tolerance: tolerance,
	}
	return cfg
}

type FitConfig struct {
	FileNameDesign       string  `json:"filename_design"`
	FileNameResponse     string  `json:"filename_response"`
	FileNameCoefficients string  `json:"filename_coefficients"`
	RegLambda            float64 `json:"reg_lambda"`
	MaxIter              int     `json:"max_iter"`
	RhoInit              float64 `json:"rho_init"`
	RhoMax               float64 `json:"rho_max"`
	RhoGrowth            float64 `json:"rho_growth"`
	Tolerance            float64 `json:"tolerance"`
}

func fit(srcConfig string) {
	var fitConfig FitConfig
	decodeConfig(srcConfig, &fitConfig)

	log.Print("try to load problem <", fitConfig.FileNameDesign, "> <", fitConfig.FileNameResponse, ">")
	problem, err := lassolib.ReadProblem(fitConfig.FileNameDesign, fitConfig.FileNameResponse)
	lassolib.HandleError(err)

	solver, err := lassolib.NewLassoSolver(lassolib.LassoParams{
		Design:    problem.Design,
		Response:  problem.Response,
		RegLambda: fitConfig.RegLambda,
		Config:    solverConfig(fitConfig.MaxIter, fitConfig.RhoInit, fitConfig.RhoMax, fitConfig.RhoGrowth, fitConfig.Tolerance),
		Verbose:   true,
	})
	lassolib.HandleError(err)

	result, err := solver.Solve(context.Background())
	lassolib.HandleError(err)

	log.Print("iterations = ", result.Iterations)
	log.Print("primal residual = ", result.PrimalResidual)
	log.Print("r squared = ", lassolib.RSquared(problem, result.Coefficients))

	n := result.Coefficients.Len()
	coefficients := mat.NewDense(n, 1, nil)
	for j := 0; j < n; j++ {
		coefficients.Set(j, 0, result.Coefficients.AtVec(j))
	}
	lassolib.HandleError(lassolib.WriteNpy(fitConfig.FileNameCoefficients, coefficients))
}

type PathConfig struct {
	FileNameDesign   string    `json:"filename_design"`
	FileNameResponse string    `json:"filename_response"`
	FileNamePath     string    `json:"filename_path"`
	Lambdas          []float64 `json:"lambdas"`
	FeatureNames     []string  `json:"feature_names"`
	FigureType       string    `json:"figure_type"`
	FileNameFigure   string    `json:"filename_figure"`
	MaxIter          int       `json:"max_iter"`
	RhoInit          float64   `json:"rho_init"`
	RhoMax           float64   `json:"rho_max"`
	RhoGrowth        float64   `json:"rho_growth"`
	Tolerance        float64   `json:"tolerance"`
}

func path(srcConfig string) {
	var pathConfig PathConfig
	decodeConfig(srcConfig, &pathConfig)

	problem, err := lassolib.ReadProblem(pathConfig.FileNameDesign, pathConfig.FileNameResponse)
	lassolib.HandleError(err)

	cfg := solverConfig(pathConfig.MaxIter, pathConfig.RhoInit, pathConfig.RhoMax, pathConfig.RhoGrowth, pathConfig.Tolerance)
	pathResult, err := lassolib.FitPath(context.Background(), problem, pathConfig.Lambdas, cfg)
	lassolib.HandleError(err)
	pathResult.FeatureNames = pathConfig.FeatureNames

	lassolib.HandleError(lassolib.WriteNpy(pathConfig.FileNamePath, pathResult.Sparse))

	if pathConfig.FileNameFigure != "" {
		figureType := pathConfig.FigureType
		if figureType == "" {
			figureType = "svg"
		}
		lassolib.HandleError(pathResult.RenderPath(figureType, pathConfig.FileNameFigure))
	}
}

type PredictConfig struct {
	FileNameDesign       string `json:"filename_design"`
	FileNameCoefficients string `json:"filename_coefficients"`
	FileNamePrediction   string `json:"filename_prediction"`
}

func predict(srcConfig string) {
	var predictConfig PredictConfig
	decodeConfig(srcConfig, &predictConfig)

	design, err := lassolib.ReadNpy(predictConfig.FileNameDesign)
	lassolib.HandleError(err)
	loaded, err := lassolib.ReadNpy(predictConfig.FileNameCoefficients)
	lassolib.HandleError(err)

	h, _ := loaded.Dims()
	coefficients := mat.NewVecDense(h, nil)
	for j := 0; j < h; j++ {
		coefficients.SetVec(j, loaded.At(j, 0))
	}

	prediction := lassolib.Predict(design, coefficients)
	lassolib.HandleError(lassolib.WriteNpy(predictConfig.FileNamePrediction, prediction))
}

func main() {
	runMode := flag.String("mode", "fit", "you can select either 'fit', 'path' or 'predict' modes")
	config := flag.String("config", "lasso_config.json", "a config file for the run of the program")
	memprofile := flag.String("memprofile", "", "write memory profile to `file`")

	flag.Parse()

	map[string]func(string){
		"fit":     fit,
		"path":    path,
		"predict": predict,
	}[*runMode](*config)

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		lassolib.HandleError(err)
		defer func() { lassolib.HandleError(f.Close()) }()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal("could not write memory profile: ", err)
		}
	}
}
