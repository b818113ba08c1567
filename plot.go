package biasvariance

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/components"
)

const DefaultGridPoints = 200

// PlotOpts sets the resolution of the evenly spaced grid the fitted curves
// are evaluated over for rendering.
type PlotOpts struct {
	GridPoints int
}

// PlotFit uses the Apache Echarts library to generate an html page showing
// the raw samples, the fitted curve per degree, a small chart per degree, and
// the two error curves against degree.
func (s *Study) PlotFit(w io.Writer, opt *PlotOpts) error {
	if !s.trained {
		return ErrUntrainedStudy
	}
	if s.train == nil {
		return ErrNoTrainingData
	}

	gridPoints := DefaultGridPoints
	if opt != nil && opt.GridPoints > 0 {
		gridPoints = opt.GridPoints
	}

	fitsChart, err := LineFits("Polynomial Fits", s, gridPoints)
	if err != nil {
		return fmt.Errorf("unable to chart fitted curves, %w", err)
	}

	page := components.NewPage()
	page.AddCharts(
		ScatterDataset("Observed Samples", s.train, s.test),
		fitsChart,
		LineErrorCurves(
			"Error vs Degree",
			s.Degrees(),
			s.TrainErrorCurve(),
			s.TestErrorCurve(),
		),
	)

	for _, fit := range s.fits {
		chart, err := lineDegreeFit(s, fit, gridPoints)
		if err != nil {
			return fmt.Errorf("unable to chart degree %d fit, %w", fit.Degree, err)
		}
		page.AddCharts(chart)
	}

	return page.Render(w)
}
