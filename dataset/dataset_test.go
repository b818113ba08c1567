package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	testData := map[string]struct {
		x   []float64
		y   []float64
		err error
	}{
		"valid": {
			x: []float64{-1.0, 0.0, 1.0},
			y: []float64{1.0, 2.0, 3.0},
		},
		"mismatched lengths": {
			x:   []float64{-1.0, 0.0, 1.0},
			y:   []float64{1.0, 2.0},
			err: ErrMismatchedDataLen,
		},
		"empty": {
			x:   []float64{},
			y:   []float64{},
			err: ErrEmptyDataset,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ds, err := New(td.x, td.y)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.x, ds.X)
			assert.Equal(t, td.y, ds.Y)
			assert.Equal(t, len(td.x), ds.Len())
		})
	}
}

func TestNewCopies(t *testing.T) {
	x := []float64{-0.5, 0.5}
	y := []float64{1.0, 2.0}
	ds, err := New(x, y)
	require.Nil(t, err)

	x[0] = 99.0
	y[0] = 99.0
	assert.Equal(t, -0.5, ds.X[0])
	assert.Equal(t, 1.0, ds.Y[0])
}

func TestCopy(t *testing.T) {
	ds := &Dataset{X: []float64{0.1, 0.2}, Y: []float64{1.0, 2.0}}
	cp := ds.Copy()
	require.NotNil(t, cp)

	cp.X[0] = 99.0
	assert.Equal(t, 0.1, ds.X[0])
	assert.Equal(t, ds.Y, cp.Y)

	var nilDs *Dataset
	assert.Nil(t, nilDs.Copy())
	assert.Equal(t, 0, nilDs.Len())
}

func TestGrid(t *testing.T) {
	testData := map[string]struct {
		n        int
		expected []float64
	}{
		"single point": {
			n:        1,
			expected: []float64{-1.0},
		},
		"two points": {
			n:        2,
			expected: []float64{-1.0, 1.0},
		},
		"five points": {
			n:        5,
			expected: []float64{-1.0, -0.5, 0.0, 0.5, 1.0},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.InDeltaSlice(t, td.expected, Grid(td.n), 1e-12)
		})
	}
}

func TestEvaluate(t *testing.T) {
	x := []float64{-1.0, 0.0, 1.0}
	y := Evaluate(func(v float64) float64 { return 2.0 * v }, x)
	assert.InDeltaSlice(t, []float64{-2.0, 0.0, 2.0}, y, 1e-12)
}
