package biasvariance

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/imorona/biasvariance/dataset"
)

// endpoint colors for the degree gradient, low degrees render blue and high
// degrees render red
var (
	colorLow  = [3]int{0x45, 0x75, 0xb4}
	colorHigh = [3]int{0xd7, 0x30, 0x27}
)

// degreeColor linearly interpolates a hex color across the degree index so
// neighboring degrees render with neighboring hues.
func degreeColor(i, n int) string {
	if n <= 1 {
		return fmt.Sprintf("#%02x%02x%02x", colorLow[0], colorLow[1], colorLow[2])
	}
	frac := float64(i) / float64(n-1)
	rgb := make([]int, 3)
	for c := 0; c < 3; c++ {
		rgb[c] = colorLow[c] + int(frac*float64(colorHigh[c]-colorLow[c]))
	}
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

// ScatterDataset generates an echart scatter chart of the raw training and
// test samples.
func ScatterDataset(title string, train, test *dataset.Dataset) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
		charts.WithXAxisOpts(
			opts.XAxis{
				Type: "value",
			},
		),
	)

	scatterData := func(ds *dataset.Dataset) []opts.ScatterData {
		data := make([]opts.ScatterData, 0, ds.Len())
		for i := 0; i < ds.Len(); i++ {
			data = append(data, opts.ScatterData{Value: []interface{}{ds.X[i], ds.Y[i]}})
		}
		return data
	}

	scatter.AddSeries("Train", scatterData(train)).
		AddSeries("Test", scatterData(test))
	return scatter
}

// LineFits generates an echart line chart with one fitted curve per degree
// evaluated over an evenly spaced grid covering the domain.
func LineFits(title string, s *Study, gridPoints int) (*charts.Line, error) {
	grid := dataset.Grid(gridPoints)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)
	line.SetXAxis(grid)

	n := len(s.fits)
	for _, fit := range s.fits {
		predicted, err := s.Predict(grid, fit.Degree)
		if err != nil {
			return nil, fmt.Errorf("unable to predict fit grid at degree %d, %w", fit.Degree, err)
		}

		lineData := make([]opts.LineData, 0, len(predicted))
		for _, val := range predicted {
			lineData = append(lineData, opts.LineData{Value: val})
		}
		line.AddSeries(
			fmt.Sprintf("degree %d", fit.Degree),
			lineData,
			charts.WithLineStyleOpts(
				opts.LineStyle{
					Color: degreeColor(fit.Degree-1, n),
				},
			),
		)
	}
	return line, nil
}

// LineErrorCurves generates an echart line chart of the training and test
// RMSE against degree.
func LineErrorCurves(title string, degrees []int, trainRMSE, testRMSE []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lineData := func(y []float64) []opts.LineData {
		data := make([]opts.LineData, 0, len(y))
		for _, val := range y {
			data = append(data, opts.LineData{Value: val})
		}
		return data
	}

	line.SetXAxis(degrees).
		AddSeries("Train RMSE", lineData(trainRMSE)).
		AddSeries("Test RMSE", lineData(testRMSE))
	return line
}

// lineDegreeFit generates a small chart of a single degree's fitted curve for
// the per-degree grid view.
func lineDegreeFit(s *Study, fit DegreeFit, gridPoints int) (*charts.Line, error) {
	grid := dataset.Grid(gridPoints)
	predicted, err := s.Predict(grid, fit.Degree)
	if err != nil {
		return nil, fmt.Errorf("unable to predict fit grid at degree %d, %w", fit.Degree, err)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(
			opts.Initialization{
				Width:  "400px",
				Height: "300px",
			},
		),
		charts.WithTitleOpts(
			opts.Title{
				Title:    fmt.Sprintf("Degree %d", fit.Degree),
				Subtitle: fmt.Sprintf("train RMSE %.3f, test RMSE %.3f", fit.TrainScores.RMSE, fit.TestScores.RMSE),
			},
		),
	)

	lineData := make([]opts.LineData, 0, len(predicted))
	for _, val := range predicted {
		lineData = append(lineData, opts.LineData{Value: val})
	}
	line.SetXAxis(grid).
		AddSeries(
			fmt.Sprintf("degree %d", fit.Degree),
			lineData,
			charts.WithLineStyleOpts(
				opts.LineStyle{
					Color: degreeColor(fit.Degree-1, len(s.fits)),
				},
			),
		)
	return line, nil
}
