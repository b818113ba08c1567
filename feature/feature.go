// Package feature expands scalar inputs into polynomial design matrices for
// the per-degree model fits.
package feature

import (
	"fmt"
)

// Poly labels a single polynomial feature column, the input raised to Power.
type Poly struct {
	Name  string `json:"name"`
	Power int    `json:"power"`
}

func NewPoly(name string, power int) Poly {
	return Poly{Name: name, Power: power}
}

func (p Poly) String() string {
	return fmt.Sprintf("poly_%s_%02d", p.Name, p.Power)
}

// Labels returns the coefficient labels for a degree-d model in column order.
func Labels(name string, degree int) []Poly {
	labels := make([]Poly, 0, degree)
	for power := 1; power <= degree; power++ {
		labels = append(labels, NewPoly(name, power))
	}
	return labels
}
