package models

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// withIntercept prepends a ones column to the design matrix so the intercept
// is estimated as the first coefficient.
func withIntercept(x mat.Matrix) *mat.Dense {
	m, n := x.Dims()
	aug := mat.NewDense(m, n+1, nil)

	ones := make([]float64, m)
	floats.AddConst(1.0, ones)
	aug.SetCol(0, ones)

	aug.Slice(0, m, 1, n+1).(*mat.Dense).Copy(x)
	return aug
}

// applyCoef computes x*coef returning one predicted value per design row.
func applyCoef(x mat.Matrix, coef []float64) []float64 {
	n := len(coef)
	coefMx := mat.NewDense(n, 1, coef)

	var res mat.Dense
	res.Mul(x, coefMx)
	return mat.Col(nil, 0, &res)
}
