// Command biasvariance runs the polynomial degree sweep end to end: simulate
// noisy samples from the ground-truth function, fit one model per degree,
// and write the fitted curves and error curves as an html report.
package main

import (
	"flag"
	"os"

	"github.com/goccy/go-json"
	"github.com/imorona/biasvariance"
	"github.com/imorona/biasvariance/dataset"
	"github.com/rs/zerolog"
)

func main() {
	var (
		nTrain     = flag.Int("n-train", 30, "number of training samples drawn uniformly over the domain")
		nTest      = flag.Int("n-test", 60, "number of test draws before truncation to the domain")
		noiseScale = flag.Float64("noise", 0.2, "gaussian noise scale added to the ground-truth targets")
		sigma      = flag.Float64("sigma", 1.0, "standard deviation of the truncated normal test draw")
		maxDegree  = flag.Int("max-degree", 9, "maximum polynomial degree to sweep")
		lambda     = flag.Float64("lambda", 0.0, "lasso regularization strength, 0 fits plain OLS")
		seed       = flag.Uint64("seed", 42, "random seed for the simulated draws")
		plotPath   = flag.String("out", "bias_variance.html", "output path of the html report")
		modelPath  = flag.String("model-out", "", "optional output path of the fitted model json")
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	src := dataset.NewSource(*seed)
	train := dataset.SimulateUniform(*nTrain, *noiseScale, dataset.DefaultTruth, src)
	test := dataset.SimulateTruncatedNormal(*nTest, *sigma, *noiseScale, dataset.DefaultTruth, src)
	logger.Info().
		Int("n_train", train.Len()).
		Int("n_test", test.Len()).
		Float64("noise", *noiseScale).
		Msg("simulated datasets")

	opt := &biasvariance.Options{
		MaxDegree:    *maxDegree,
		Lambda:       *lambda,
		FitIntercept: true,
	}
	study, err := biasvariance.New(opt)
	if err != nil {
		logger.Fatal().Err(err).Msg("unable to initialize study")
	}

	if err := study.Fit(train, test); err != nil {
		logger.Fatal().Err(err).Msg("unable to fit study")
	}

	for _, fit := range study.Fits() {
		logger.Info().
			Int("degree", fit.Degree).
			Float64("train_rmse", fit.TrainScores.RMSE).
			Float64("test_rmse", fit.TestScores.RMSE).
			Float64("condition", fit.Condition).
			Msg("fit degree")
	}

	best, err := study.BestDegree()
	if err != nil {
		logger.Fatal().Err(err).Msg("unable to determine best degree")
	}
	logger.Info().Int("best_degree", best).Msg("held-out error minimized")

	file, err := os.Create(*plotPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *plotPath).Msg("unable to create report file")
	}
	defer file.Close()

	if err := study.PlotFit(file, nil); err != nil {
		logger.Fatal().Err(err).Msg("unable to render report")
	}
	logger.Info().Str("path", *plotPath).Msg("wrote html report")

	if *modelPath == "" {
		return
	}

	model, err := study.Model()
	if err != nil {
		logger.Fatal().Err(err).Msg("unable to extract model")
	}
	bytes, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("unable to marshal model")
	}
	if err := os.WriteFile(*modelPath, bytes, 0o644); err != nil {
		logger.Fatal().Err(err).Str("path", *modelPath).Msg("unable to write model json")
	}
	logger.Info().Str("path", *modelPath).Msg("wrote model json")
}
