package dataset

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// SimulateUniform draws n training inputs uniformly over the domain and
// produces targets from the ground-truth function plus zero-mean gaussian
// noise scaled by noiseScale.
func SimulateUniform(n int, noiseScale float64, truth TruthFunc, src rand.Source) *Dataset {
	uniform := distuv.Uniform{Min: DomainMin, Max: DomainMax, Src: src}
	noise := distuv.Normal{Mu: 0.0, Sigma: noiseScale, Src: src}

	x := make([]float64, 0, n)
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		xi := uniform.Rand()
		x = append(x, xi)
		y = append(y, truth(xi)+noise.Rand())
	}
	return &Dataset{X: x, Y: y}
}

// SimulateTruncatedNormal draws n values from a zero-mean normal with the
// given sigma and keeps only those falling inside the domain. The kept count
// is an output of the draw, not a parameter, so the resulting dataset is
// usually smaller than n. Targets use an independent noise draw with the same
// noiseScale as the training set.
func SimulateTruncatedNormal(n int, sigma, noiseScale float64, truth TruthFunc, src rand.Source) *Dataset {
	normal := distuv.Normal{Mu: 0.0, Sigma: sigma, Src: src}
	noise := distuv.Normal{Mu: 0.0, Sigma: noiseScale, Src: src}

	x := make([]float64, 0, n)
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		xi := normal.Rand()
		if math.Abs(xi) > DomainMax {
			continue
		}
		x = append(x, xi)
		y = append(y, truth(xi)+noise.Rand())
	}
	return &Dataset{X: x, Y: y}
}
