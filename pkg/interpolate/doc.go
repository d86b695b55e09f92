// Package interpolate selects support points from a weekly series and
// evaluates the interpolating polynomial through them.
//
// Two textbook forms are provided and are expected to agree to rounding:
//
//   - Newton: divided-difference table, coefficients taken from its first row
//     and evaluated by forward accumulation.
//   - Lagrange: direct sum of y_i·L_i over the basis polynomials.
//
// Support points are chosen by a Selector. Expand is the canonical rule:
// walk outwards from the target, always taking the closer neighbour and the
// left one on ties. Window reproduces the older window-then-sort behaviour,
// which agrees with Expand for interior targets but may differ at the edges
// of the series.
package interpolate
