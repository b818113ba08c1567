package biasvariance

import (
	"github.com/imorona/biasvariance/models"
)

// Options configures the degree sweep. Lambda greater than zero swaps the
// per-degree fitter from OLS to lasso coordinate descent, shrinking the
// coefficients to show how regularization tames the variance at high degree.
type Options struct {
	MaxDegree    int     `json:"max_degree"`
	Lambda       float64 `json:"lambda"`
	FitIntercept bool    `json:"fit_intercept"`
}

func NewDefaultOptions() *Options {
	return &Options{
		MaxDegree:    9,
		Lambda:       0.0,
		FitIntercept: true,
	}
}

func (o *Options) newModel() (models.Model, error) {
	if o.Lambda > 0.0 {
		return models.NewLassoRegression(
			&models.LassoOptions{
				Lambda:       o.Lambda,
				Iterations:   1000,
				Tolerance:    1e-6,
				FitIntercept: o.FitIntercept,
			},
		)
	}
	return models.NewOLSRegression(
		&models.OLSOptions{
			FitIntercept: o.FitIntercept,
		},
	)
}
