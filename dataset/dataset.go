// Package dataset generates the synthetic samples used to study the
// bias-variance tradeoff. Targets are a fixed ground-truth function evaluated
// at each input plus independently drawn gaussian noise.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

var (
	ErrMismatchedDataLen = errors.New("input data has different length than targets")
	ErrEmptyDataset      = errors.New("dataset has no samples")
)

// Domain bounds shared by the training and test samples.
const (
	DomainMin = -1.0
	DomainMax = 1.0
)

// TruthFunc is the deterministic ground-truth function used to generate
// noise-free targets.
type TruthFunc func(float64) float64

// DefaultTruth is the ground-truth function used throughout the examples,
// f(x) = cos(1.5*pi*x). It is not a polynomial so every finite degree carries
// some bias.
func DefaultTruth(x float64) float64 {
	return math.Cos(1.5 * math.Pi * x)
}

// NewSource creates a seeded random source so that simulated datasets are
// reproducible. The same source must be shared across the train and test draws
// of one experiment to keep them independent.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed)
}

// Dataset is an ordered pair of parallel input and target sequences.
type Dataset struct {
	X []float64
	Y []float64
}

// New creates a dataset from parallel input and target slices. The slices are
// copied so the dataset is immutable with respect to the caller.
func New(x, y []float64) (*Dataset, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("inputs have length of %d, but targets have a length of %d, %w", len(x), len(y), ErrMismatchedDataLen)
	}
	if len(x) == 0 {
		return nil, ErrEmptyDataset
	}

	xc := make([]float64, len(x))
	copy(xc, x)
	yc := make([]float64, len(y))
	copy(yc, y)

	return &Dataset{X: xc, Y: yc}, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.X)
}

// Copy clones the dataset.
func (d *Dataset) Copy() *Dataset {
	if d == nil {
		return nil
	}
	x := make([]float64, len(d.X))
	copy(x, d.X)
	y := make([]float64, len(d.Y))
	copy(y, d.Y)
	return &Dataset{X: x, Y: y}
}

// Grid returns n evenly spaced points covering the domain inclusive of both
// endpoints.
func Grid(n int) []float64 {
	x := make([]float64, 0, n)
	if n == 1 {
		return append(x, DomainMin)
	}
	step := (DomainMax - DomainMin) / float64(n-1)
	for i := 0; i < n; i++ {
		x = append(x, DomainMin+float64(i)*step)
	}
	return x
}

// Evaluate applies the ground-truth function to every input.
func Evaluate(truth TruthFunc, x []float64) []float64 {
	y := make([]float64, 0, len(x))
	for _, xi := range x {
		y = append(y, truth(xi))
	}
	return y
}
