// Package biasvariance demonstrates the bias-variance tradeoff by fitting
// polynomial regressions of increasing degree to noisy synthetic data and
// comparing the training and held-out error curves.
package biasvariance

import (
	"errors"
	"fmt"

	"github.com/imorona/biasvariance/dataset"
	"github.com/imorona/biasvariance/feature"
	"github.com/imorona/biasvariance/stats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrInvalidMaxDegree   = errors.New("max degree must be at least 1")
	ErrUntrainedStudy     = errors.New("study has not been fit yet")
	ErrNoTrainingData     = errors.New("no training data")
	ErrNoTestData         = errors.New("no test data")
	ErrNoOptionsInModel   = errors.New("no options set in model")
	ErrMissingFitsInModel = errors.New("model does not have a fit per degree")
)

// InputName labels the single scalar input of the polynomial expansion.
const InputName = "x"

// Study fits one polynomial model per degree from 1 up to the configured
// maximum and tracks the in-sample and out-of-sample error of each fit.
type Study struct {
	opt *Options

	train *dataset.Dataset
	test  *dataset.Dataset

	fits    []DegreeFit
	trained bool
}

// New creates a new instance of a Study using the provided options. If no
// options are provided a default is used.
func New(opt *Options) (*Study, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if opt.MaxDegree < 1 {
		return nil, fmt.Errorf("got max degree %d, %w", opt.MaxDegree, ErrInvalidMaxDegree)
	}
	return &Study{opt: opt}, nil
}

// NewFromModel creates a new instance of a Study from a pre-existing model.
// This should be generated from a previous study call to Model(). The
// resulting study can predict immediately but holds no training data, so it
// cannot be plotted.
func NewFromModel(model Model) (*Study, error) {
	if model.Options == nil {
		return nil, ErrNoOptionsInModel
	}
	if model.Options.MaxDegree < 1 {
		return nil, fmt.Errorf("got max degree %d, %w", model.Options.MaxDegree, ErrInvalidMaxDegree)
	}
	if len(model.Fits) != model.Options.MaxDegree {
		return nil, fmt.Errorf("model has %d fits for max degree %d, %w", len(model.Fits), model.Options.MaxDegree, ErrMissingFitsInModel)
	}

	s := &Study{
		opt:     model.Options,
		fits:    copyFits(model.Fits),
		trained: true,
	}
	return s, nil
}

// Fit runs the full degree sweep. The training and test inputs are each
// expanded once into a full-width design matrix and every degree consumes a
// column prefix of that expansion, so no feature column is recomputed across
// degrees.
func (s *Study) Fit(train, test *dataset.Dataset) error {
	if train.Len() == 0 {
		return ErrNoTrainingData
	}
	if test.Len() == 0 {
		return ErrNoTestData
	}

	train = train.Copy()
	test = test.Copy()

	trainFeat, err := feature.NewVandermonde(train.X, s.opt.MaxDegree)
	if err != nil {
		return fmt.Errorf("unable to expand training inputs, %w", err)
	}
	testFeat, err := feature.NewVandermonde(test.X, s.opt.MaxDegree)
	if err != nil {
		return fmt.Errorf("unable to expand test inputs, %w", err)
	}

	trainY := mat.NewDense(train.Len(), 1, train.Y)

	fits := make([]DegreeFit, 0, s.opt.MaxDegree)
	for d := 1; d <= s.opt.MaxDegree; d++ {
		fit, err := s.fitDegree(d, trainFeat, testFeat, trainY, train.Y, test.Y)
		if err != nil {
			return err
		}
		fits = append(fits, fit)
	}

	s.train = train
	s.test = test
	s.fits = fits
	s.trained = true
	return nil
}

func (s *Study) fitDegree(d int, trainFeat, testFeat *feature.Vandermonde, trainY mat.Matrix, trainActual, testActual []float64) (DegreeFit, error) {
	xTrain, err := trainFeat.Degree(d)
	if err != nil {
		return DegreeFit{}, fmt.Errorf("unable to slice training features at degree %d, %w", d, err)
	}
	xTest, err := testFeat.Degree(d)
	if err != nil {
		return DegreeFit{}, fmt.Errorf("unable to slice test features at degree %d, %w", d, err)
	}

	mdl, err := s.opt.newModel()
	if err != nil {
		return DegreeFit{}, fmt.Errorf("unable to initialize degree %d model, %w", d, err)
	}
	if err := mdl.Fit(xTrain, trainY); err != nil {
		return DegreeFit{}, fmt.Errorf("unable to fit degree %d model, %w", d, err)
	}

	trainPred, err := mdl.Predict(xTrain)
	if err != nil {
		return DegreeFit{}, fmt.Errorf("unable to predict training values at degree %d, %w", d, err)
	}
	testPred, err := mdl.Predict(xTest)
	if err != nil {
		return DegreeFit{}, fmt.Errorf("unable to predict test values at degree %d, %w", d, err)
	}

	trainScores, err := NewScores(trainPred, trainActual)
	if err != nil {
		return DegreeFit{}, fmt.Errorf("unable to score training fit at degree %d, %w", d, err)
	}
	testScores, err := NewScores(testPred, testActual)
	if err != nil {
		return DegreeFit{}, fmt.Errorf("unable to score test fit at degree %d, %w", d, err)
	}

	cond, err := stats.Condition(xTrain)
	if err != nil {
		return DegreeFit{}, fmt.Errorf("unable to compute condition number at degree %d, %w", d, err)
	}

	return DegreeFit{
		Degree:         d,
		Intercept:      mdl.Intercept(),
		Coef:           mdl.Coef(),
		Condition:      cond,
		TrainScores:    trainScores,
		TestScores:     testScores,
		TrainPredicted: trainPred,
		TestPredicted:  testPred,
	}, nil
}

// Predict applies the fitted degree-d coefficients to arbitrary inputs.
func (s *Study) Predict(x []float64, degree int) ([]float64, error) {
	if !s.trained {
		return nil, ErrUntrainedStudy
	}
	if degree < 1 || degree > len(s.fits) {
		return nil, fmt.Errorf("got degree %d with maximum of %d, %w", degree, len(s.fits), feature.ErrDegreeOutOfRange)
	}

	fit := s.fits[degree-1]
	res := make([]float64, 0, len(x))
	for _, xi := range x {
		val := fit.Intercept
		pow := 1.0
		for _, c := range fit.Coef {
			pow *= xi
			val += c * pow
		}
		res = append(res, val)
	}
	return res, nil
}

// Fits returns the per-degree fit results ordered by degree.
func (s *Study) Fits() []DegreeFit {
	return copyFits(s.fits)
}

// Degrees returns the swept degrees in order.
func (s *Study) Degrees() []int {
	degrees := make([]int, 0, len(s.fits))
	for _, fit := range s.fits {
		degrees = append(degrees, fit.Degree)
	}
	return degrees
}

// TrainErrorCurve returns the training RMSE per degree.
func (s *Study) TrainErrorCurve() []float64 {
	curve := make([]float64, 0, len(s.fits))
	for _, fit := range s.fits {
		curve = append(curve, fit.TrainScores.RMSE)
	}
	return curve
}

// TestErrorCurve returns the held-out RMSE per degree.
func (s *Study) TestErrorCurve() []float64 {
	curve := make([]float64, 0, len(s.fits))
	for _, fit := range s.fits {
		curve = append(curve, fit.TestScores.RMSE)
	}
	return curve
}

// BestDegree returns the degree minimizing the held-out RMSE, the sweet spot
// between underfitting and overfitting.
func (s *Study) BestDegree() (int, error) {
	if !s.trained {
		return 0, ErrUntrainedStudy
	}

	best := s.fits[0]
	for _, fit := range s.fits[1:] {
		if fit.TestScores.RMSE < best.TestScores.RMSE {
			best = fit
		}
	}
	return best.Degree, nil
}

// TrainingData returns the training data used to fit the current study.
func (s *Study) TrainingData() *dataset.Dataset {
	return s.train
}

// TestData returns the held-out data used to evaluate the current study.
func (s *Study) TestData() *dataset.Dataset {
	return s.test
}
