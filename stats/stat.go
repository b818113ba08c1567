// Package stats quantifies how ill-conditioned the polynomial design matrices
// become as degree grows. Raw power columns are strongly collinear, which is
// what drives the variance blowup at high degree.
package stats

import (
	"errors"
	"math"

	"github.com/imorona/biasvariance/models"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoMatrix        = errors.New("no input matrix")
	ErrMinimumFeatures = errors.New("need at least 2 features to compute VIF")
	ErrFeatureLen      = errors.New("must have at least 2 points per feature")
)

// Condition returns the 2-norm condition number of the design matrix, the
// ratio of its largest to smallest singular value.
func Condition(x mat.Matrix) (float64, error) {
	if x == nil {
		return 0.0, ErrNoMatrix
	}
	return mat.Cond(x, 2), nil
}

// VarianceInflationFactor computes the VIF for every column of the design
// matrix by regressing it on all remaining columns, 1/(1-R2). A value near 1
// means the column is independent of the rest while large values flag
// collinearity.
func VarianceInflationFactor(x mat.Matrix) ([]float64, error) {
	if x == nil {
		return nil, ErrNoMatrix
	}
	m, n := x.Dims()
	if n < 2 {
		return nil, ErrMinimumFeatures
	}
	if m < 2 {
		return nil, ErrFeatureLen
	}

	vif := make([]float64, n)
	others := mat.NewDense(m, n-1, nil)
	for j := 0; j < n; j++ {
		c := 0
		for k := 0; k < n; k++ {
			if k == j {
				continue
			}
			others.SetCol(c, mat.Col(nil, k, x))
			c++
		}
		target := mat.NewDense(m, 1, mat.Col(nil, j, x))

		model, err := models.NewOLSRegression(nil)
		if err != nil {
			return nil, err
		}
		if err := model.Fit(others, target); err != nil {
			return nil, err
		}
		r2, err := model.Score(others, target)
		if err != nil {
			return nil, err
		}

		if r2 >= 1.0 {
			vif[j] = math.Inf(1)
			continue
		}
		vif[j] = 1.0 / (1.0 - r2)
	}
	return vif, nil
}
