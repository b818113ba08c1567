package biasvariance

import (
	"fmt"
	"strings"

	"github.com/imorona/biasvariance/feature"
)

// DegreeFit holds a single fitted polynomial model. Coef is ordered by power
// so Coef[k] weighs x^(k+1), matching the feature column ordering shared by
// the training and test design matrices.
type DegreeFit struct {
	Degree    int       `json:"degree"`
	Intercept float64   `json:"intercept"`
	Coef      []float64 `json:"coefficients"`
	Condition float64   `json:"condition_number"`

	TrainScores *Scores `json:"train_scores"`
	TestScores  *Scores `json:"test_scores"`

	TrainPredicted []float64 `json:"-"`
	TestPredicted  []float64 `json:"-"`
}

// Copy clones the fit including the backing arrays of its coefficient,
// prediction, and score fields so callers cannot mutate internal state.
func (f DegreeFit) Copy() DegreeFit {
	cp := f

	cp.Coef = make([]float64, len(f.Coef))
	copy(cp.Coef, f.Coef)
	cp.TrainPredicted = make([]float64, len(f.TrainPredicted))
	copy(cp.TrainPredicted, f.TrainPredicted)
	cp.TestPredicted = make([]float64, len(f.TestPredicted))
	copy(cp.TestPredicted, f.TestPredicted)

	if f.TrainScores != nil {
		scores := *f.TrainScores
		cp.TrainScores = &scores
	}
	if f.TestScores != nil {
		scores := *f.TestScores
		cp.TestScores = &scores
	}
	return cp
}

func copyFits(fits []DegreeFit) []DegreeFit {
	cp := make([]DegreeFit, 0, len(fits))
	for _, fit := range fits {
		cp = append(cp, fit.Copy())
	}
	return cp
}

// ModelEq returns a string representation of the fit model represented as
// y ~ b + m1x1 + m2x2 ...
func (f DegreeFit) ModelEq() string {
	var eq strings.Builder
	eq.WriteString(fmt.Sprintf("y ~ %.3f", f.Intercept))
	for i, label := range feature.Labels(InputName, f.Degree) {
		if i >= len(f.Coef) {
			break
		}
		eq.WriteString(fmt.Sprintf("%+.3f*%s", f.Coef[i], label))
	}
	return eq.String()
}
