package interpolate

import (
	"fmt"

	"github.com/yorrLorenz/eggprice/pkg/core"
	"gonum.org/v1/gonum/mat"
)

// NewtonPolynomial is an interpolating polynomial in Newton form:
// c0 + c1(x-x0) + c2(x-x0)(x-x1) + ...
type NewtonPolynomial struct {
	Coefficients []float64
	Nodes        []float64
}

// Eval evaluates the polynomial at x by forward accumulation
func (p NewtonPolynomial) Eval(x float64) float64 {
	if len(p.Coefficients) == 0 {
		return 0
	}

	result := p.Coefficients[0]
	prod := 1.0
	for j := 1; j < len(p.Coefficients); j++ {
		prod *= x - p.Nodes[j-1]
		result += p.Coefficients[j] * prod
	}
	return result
}

// NewtonResult holds the Newton estimate and the coefficients it was computed from
type NewtonResult struct {
	Estimate     float64
	Coefficients []float64
	Polynomial   NewtonPolynomial
}

// DividedDifferences builds the n×n divided-difference table of the selection.
// Column 0 holds the values; entry (i, j) is the j-th order difference starting at x[i].
// Entries below the anti-diagonal are left at zero.
func DividedDifferences(selection core.Selection) (*mat.Dense, error) {
	n := selection.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty selection", core.ErrInvalidPointCount)
	}

	xs := selection.Xs()
	table := mat.NewDense(n, n, nil)
	table.SetCol(0, selection.Ys())

	for j := 1; j < n; j++ {
		for i := 0; i < n-j; i++ {
			den := xs[i+j] - xs[i]
			if den == 0 {
				return nil, fmt.Errorf("%w: x[%d] = x[%d] = %g", core.ErrDegenerateInput, i, i+j, xs[i])
			}
			table.Set(i, j, (table.At(i+1, j-1)-table.At(i, j-1))/den)
		}
	}

	return table, nil
}

// Newton evaluates the Newton-form interpolating polynomial through selection at target
func Newton(selection core.Selection, target float64) (NewtonResult, error) {
	table, err := DividedDifferences(selection)
	if err != nil {
		return NewtonResult{}, err
	}

	polynomial := NewtonPolynomial{
		Coefficients: mat.Row(nil, 0, table),
		Nodes:        selection.Xs(),
	}

	return NewtonResult{
		Estimate:     polynomial.Eval(target),
		Coefficients: polynomial.Coefficients,
		Polynomial:   polynomial,
	}, nil
}
