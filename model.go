package biasvariance

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Model is a serializeable representation of the study options and per-degree
// fits. This can be used to initialize a new Study for immediate predictions
// skipping the training step.
type Model struct {
	Options *Options    `json:"options"`
	Fits    []DegreeFit `json:"fits"`
}

// Model generates a serializeable representation of the fit options and the
// per-degree coefficients and scores.
func (s *Study) Model() (Model, error) {
	if !s.trained {
		return Model{}, ErrUntrainedStudy
	}

	m := Model{
		Options: s.opt,
		Fits:    copyFits(s.fits),
	}
	return m, nil
}

// TablePrint writes the per-degree error curves and condition numbers as an
// aligned table.
func (m Model) TablePrint(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "DEGREE\tTRAIN RMSE\tTEST RMSE\tR2\tCONDITION"); err != nil {
		return err
	}
	for _, fit := range m.Fits {
		if fit.TrainScores == nil || fit.TestScores == nil {
			continue
		}
		if _, err := fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.4f\t%.3e\n",
			fit.Degree,
			fit.TrainScores.RMSE,
			fit.TestScores.RMSE,
			fit.TestScores.R2,
			fit.Condition,
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}
