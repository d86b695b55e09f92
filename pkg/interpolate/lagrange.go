package interpolate

import (
	"fmt"

	"github.com/yorrLorenz/eggprice/pkg/core"
	"gonum.org/v1/gonum/floats"
)

// Basis returns the Lagrange basis values L_i(target) of the selection
func Basis(selection core.Selection, target float64) ([]float64, error) {
	n := selection.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty selection", core.ErrInvalidPointCount)
	}

	xs := selection.Xs()
	basis := make([]float64, n)
	for i := range xs {
		li := 1.0
		for j := range xs {
			if i == j {
				continue
			}
			den := xs[i] - xs[j]
			if den == 0 {
				return nil, fmt.Errorf("%w: x[%d] = x[%d] = %g", core.ErrDegenerateInput, i, j, xs[i])
			}
			li *= (target - xs[j]) / den
		}
		basis[i] = li
	}

	return basis, nil
}

// Lagrange evaluates the Lagrange-form interpolating polynomial through selection at target
func Lagrange(selection core.Selection, target float64) (float64, error) {
	basis, err := Basis(selection, target)
	if err != nil {
		return 0, err
	}
	return floats.Dot(selection.Ys(), basis), nil
}
