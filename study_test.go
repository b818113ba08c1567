package biasvariance

import (
	"testing"

	"github.com/imorona/biasvariance/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateExampleData(seed uint64, nTrain, nTest int, noiseScale float64) (*dataset.Dataset, *dataset.Dataset) {
	src := dataset.NewSource(seed)
	train := dataset.SimulateUniform(nTrain, noiseScale, dataset.DefaultTruth, src)
	test := dataset.SimulateTruncatedNormal(nTest, 1.0, noiseScale, dataset.DefaultTruth, src)
	return train, test
}

func TestNew(t *testing.T) {
	testData := map[string]struct {
		opt       *Options
		maxDegree int
		err       error
	}{
		"default options": {
			opt:       nil,
			maxDegree: 9,
		},
		"custom options": {
			opt:       &Options{MaxDegree: 4, FitIntercept: true},
			maxDegree: 4,
		},
		"invalid max degree": {
			opt: &Options{MaxDegree: 0},
			err: ErrInvalidMaxDegree,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			s, err := New(td.opt)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.maxDegree, s.opt.MaxDegree)
		})
	}
}

func TestStudyFitErrors(t *testing.T) {
	train, test := generateExampleData(42, 20, 40, 0.2)

	testData := map[string]struct {
		train *dataset.Dataset
		test  *dataset.Dataset
		err   error
	}{
		"no training data": {
			test: test,
			err:  ErrNoTrainingData,
		},
		"no test data": {
			train: train,
			err:   ErrNoTestData,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			s, err := New(nil)
			require.Nil(t, err)
			assert.ErrorIs(t, s.Fit(td.train, td.test), td.err)
		})
	}
}

func TestStudyFitTrainErrorMonotonic(t *testing.T) {
	train, test := generateExampleData(42, 30, 60, 0.2)

	s, err := New(&Options{MaxDegree: 9, FitIntercept: true})
	require.Nil(t, err)
	require.Nil(t, s.Fit(train, test))

	curve := s.TrainErrorCurve()
	require.Len(t, curve, 9)

	// added flexibility can only reduce in-sample error on nested feature
	// prefixes, up to numerical noise from the ill-conditioned high degrees
	for i := 1; i < len(curve); i++ {
		assert.LessOrEqual(t, curve[i], curve[i-1]+1e-8, "degree %d to %d", i, i+1)
	}
}

func TestStudyFitSweetSpot(t *testing.T) {
	train, test := generateExampleData(11, 30, 80, 0.2)

	s, err := New(&Options{MaxDegree: 12, FitIntercept: true})
	require.Nil(t, err)
	require.Nil(t, s.Fit(train, test))

	curve := s.TestErrorCurve()
	require.Len(t, curve, 12)

	best, err := s.BestDegree()
	require.Nil(t, err)

	// underfit at very low degree and overfit at very high degree leave the
	// held-out minimum strictly inside the swept range
	assert.Greater(t, best, 1)
	assert.Less(t, best, 12)
	assert.Less(t, curve[best-1], curve[0])
	assert.Less(t, curve[best-1], curve[len(curve)-1])
}

func TestStudyFitNoiselessLine(t *testing.T) {
	x := dataset.Grid(200)
	y := dataset.Evaluate(func(v float64) float64 { return v }, x)
	ds, err := dataset.New(x, y)
	require.Nil(t, err)

	s, err := New(&Options{MaxDegree: 1, FitIntercept: true})
	require.Nil(t, err)
	require.Nil(t, s.Fit(ds, ds))

	assert.InDelta(t, 0.0, s.TrainErrorCurve()[0], 1e-9)

	fit := s.Fits()[0]
	assert.InDelta(t, 0.0, fit.Intercept, 1e-9)
	assert.InDeltaSlice(t, []float64{1.0}, fit.Coef, 1e-9)
}

func TestStudyFitExactPolynomial(t *testing.T) {
	// y = 2 - x + 0.5x^3 is recovered exactly from degree 3 onward
	truth := func(v float64) float64 { return 2.0 - v + 0.5*v*v*v }
	x := dataset.Grid(50)
	ds, err := dataset.New(x, dataset.Evaluate(truth, x))
	require.Nil(t, err)

	s, err := New(&Options{MaxDegree: 5, FitIntercept: true})
	require.Nil(t, err)
	require.Nil(t, s.Fit(ds, ds))

	curve := s.TrainErrorCurve()
	for d := 3; d <= 5; d++ {
		assert.InDelta(t, 0.0, curve[d-1], 1e-9, "degree %d", d)
	}

	fit := s.Fits()[2]
	assert.InDelta(t, 2.0, fit.Intercept, 1e-9)
	assert.InDeltaSlice(t, []float64{-1.0, 0.0, 0.5}, fit.Coef, 1e-9)
}

func TestStudyPredict(t *testing.T) {
	x := dataset.Grid(100)
	y := dataset.Evaluate(func(v float64) float64 { return 1.0 + 2.0*v }, x)
	ds, err := dataset.New(x, y)
	require.Nil(t, err)

	s, err := New(&Options{MaxDegree: 2, FitIntercept: true})
	require.Nil(t, err)
	require.Nil(t, s.Fit(ds, ds))

	res, err := s.Predict([]float64{0.0, 1.0, -1.0}, 1)
	require.Nil(t, err)
	assert.InDeltaSlice(t, []float64{1.0, 3.0, -1.0}, res, 1e-9)

	_, err = s.Predict([]float64{0.0}, 3)
	assert.Error(t, err)
}

func TestStudyUntrained(t *testing.T) {
	s, err := New(nil)
	require.Nil(t, err)

	_, err = s.BestDegree()
	assert.ErrorIs(t, err, ErrUntrainedStudy)

	_, err = s.Predict([]float64{0.0}, 1)
	assert.ErrorIs(t, err, ErrUntrainedStudy)

	_, err = s.Model()
	assert.ErrorIs(t, err, ErrUntrainedStudy)
}

func TestStudyConditionGrowsWithDegree(t *testing.T) {
	train, test := generateExampleData(42, 40, 80, 0.2)

	s, err := New(&Options{MaxDegree: 9, FitIntercept: true})
	require.Nil(t, err)
	require.Nil(t, s.Fit(train, test))

	fits := s.Fits()
	assert.Greater(t, fits[len(fits)-1].Condition, fits[0].Condition)
}

func TestStudyLassoShrinksCoefficients(t *testing.T) {
	train, test := generateExampleData(42, 40, 80, 0.2)

	ols, err := New(&Options{MaxDegree: 6, FitIntercept: true})
	require.Nil(t, err)
	require.Nil(t, ols.Fit(train, test))

	lasso, err := New(&Options{MaxDegree: 6, Lambda: 5.0, FitIntercept: true})
	require.Nil(t, err)
	require.Nil(t, lasso.Fit(train, test))

	l1 := func(fit DegreeFit) float64 {
		sum := 0.0
		for _, c := range fit.Coef {
			if c < 0 {
				sum -= c
				continue
			}
			sum += c
		}
		return sum
	}

	olsFit := ols.Fits()[5]
	lassoFit := lasso.Fits()[5]
	assert.LessOrEqual(t, l1(lassoFit), l1(olsFit)+1e-6)
}
