package feature

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoInputs         = errors.New("no inputs to expand")
	ErrInvalidDegree    = errors.New("degree must be at least 1")
	ErrDegreeOutOfRange = errors.New("degree exceeds the expanded maximum")
)

// Vandermonde holds the full-width polynomial design matrix for a sample.
// Column k stores every input raised to the power k+1 so the degree-d design
// matrix is the first d columns of the full matrix. The matrix is built once
// and every degree consumes a column-range view of it, which keeps the
// per-degree fits over a common expansion without recomputation.
type Vandermonde struct {
	maxDegree int
	full      *mat.Dense
}

// NewVandermonde expands the inputs up to maxDegree.
func NewVandermonde(x []float64, maxDegree int) (*Vandermonde, error) {
	if len(x) == 0 {
		return nil, ErrNoInputs
	}
	if maxDegree < 1 {
		return nil, fmt.Errorf("got degree %d, %w", maxDegree, ErrInvalidDegree)
	}

	m := len(x)
	full := mat.NewDense(m, maxDegree, nil)
	for i, xi := range x {
		pow := 1.0
		for j := 0; j < maxDegree; j++ {
			pow *= xi
			full.Set(i, j, pow)
		}
	}
	return &Vandermonde{
		maxDegree: maxDegree,
		full:      full,
	}, nil
}

// MaxDegree returns the width of the full expansion.
func (v *Vandermonde) MaxDegree() int {
	return v.maxDegree
}

// Rows returns the number of expanded inputs.
func (v *Vandermonde) Rows() int {
	m, _ := v.full.Dims()
	return m
}

// Matrix returns the full maxDegree-wide design matrix.
func (v *Vandermonde) Matrix() *mat.Dense {
	return v.full
}

// Degree returns the design matrix for a degree-d model as a view of the
// first d columns of the full expansion.
func (v *Vandermonde) Degree(d int) (mat.Matrix, error) {
	if d < 1 {
		return nil, fmt.Errorf("got degree %d, %w", d, ErrInvalidDegree)
	}
	if d > v.maxDegree {
		return nil, fmt.Errorf("got degree %d with maximum of %d, %w", d, v.maxDegree, ErrDegreeOutOfRange)
	}
	m, _ := v.full.Dims()
	return v.full.Slice(0, m, 0, d), nil
}
