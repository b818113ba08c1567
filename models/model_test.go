package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func testModel(t *testing.T, model Model, x, y mat.Matrix, intercept float64, coef []float64, tol float64) {
	err := model.Fit(x, y)
	require.Nil(t, err)

	assert.InDelta(t, intercept, model.Intercept(), tol)

	c := model.Coef()
	assert.InDeltaSlice(t, coef, c, tol)

	r2, err := model.Score(x, y)
	require.Nil(t, err)
	assert.InDelta(t, 1.0, r2, tol)
}

// lineData builds a design matrix of x values along with targets for
// y = intercept + slope*x
func lineData(xs []float64, intercept, slope float64) (mat.Matrix, mat.Matrix) {
	m := len(xs)
	x := mat.NewDense(m, 1, nil)
	y := mat.NewDense(m, 1, nil)
	for i, xi := range xs {
		x.Set(i, 0, xi)
		y.Set(i, 0, intercept+slope*xi)
	}
	return x, y
}
