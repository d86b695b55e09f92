package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yorrLorenz/eggprice/pkg/core"
)

var weekly = []float64{
	7.29, 7.23, 7.25, 7.34, 7.56, 7.64, 7.73, 7.87, 7.88, 7.96,
	8.02, 8.10, 8.14, 8.18, 8.19, 8.20, 8.17, 8.14, 8.13, 8.08,
}

func TestNewtonLagrange_ExactFit(t *testing.T) {
	series := newSeries(t, 1, 2, 3, 5, 4)

	selection, err := Select(series, 3, 5)
	require.NoError(t, err)

	newton, err := Newton(selection, 3)
	require.NoError(t, err)
	lagrange, err := Lagrange(selection, 3)
	require.NoError(t, err)

	assert.Equal(t, 3.0, newton.Estimate)
	assert.Equal(t, 3.0, lagrange)
}

func TestNewton_Coefficients(t *testing.T) {
	selection := core.Selection{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 5}, {X: 5, Y: 4}}

	result, err := Newton(selection, 2.5)
	require.NoError(t, err)

	expected := []float64{1, 1, 0, 1.0 / 6, -5.0 / 24}
	require.Len(t, result.Coefficients, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i], result.Coefficients[i], 1e-12, "c[%d]", i)
	}
}

func TestNewton_Linear(t *testing.T) {
	selection := core.Selection{{X: 2, Y: 10}, {X: 4, Y: 20}}

	result, err := Newton(selection, 3)
	require.NoError(t, err)
	assert.InDelta(t, 15, result.Estimate, 1e-12)
	assert.InDelta(t, 25, result.Polynomial.Eval(5), 1e-12)
}

func TestRoundTrip_StoredPoint(t *testing.T) {
	series := newSeries(t, weekly...)

	for week := 1; week <= series.Size(); week++ {
		stored, err := series.At(week)
		require.NoError(t, err)

		for _, n := range []int{2, 3, 5, 8} {
			selection, err := Select(series, stored.X, n)
			require.NoError(t, err)
			require.Contains(t, selection, stored)

			newton, err := Newton(selection, stored.X)
			require.NoError(t, err)
			lagrange, err := Lagrange(selection, stored.X)
			require.NoError(t, err)

			assert.InDelta(t, stored.Y, newton.Estimate, 1e-9, "week %d n %d", week, n)
			assert.InDelta(t, stored.Y, lagrange, 1e-9, "week %d n %d", week, n)
		}
	}
}

func TestCrossCheck(t *testing.T) {
	series := newSeries(t, weekly...)

	for day := 0; day < 7*series.Size(); day++ {
		target := 1 + float64(day)/7
		for n := 2; n <= 8; n++ {
			selection, err := Select(series, target, n)
			require.NoError(t, err)

			newton, err := Newton(selection, target)
			require.NoError(t, err)
			lagrange, err := Lagrange(selection, target)
			require.NoError(t, err)

			require.InDelta(t, newton.Estimate, lagrange, 1e-6, "target %g n %d", target, n)
		}
	}
}

func TestBasis_PartitionOfUnity(t *testing.T) {
	selection := core.Selection{{X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}}

	basis, err := Basis(selection, 4.3)
	require.NoError(t, err)

	sum := 0.0
	for _, l := range basis {
		sum += l
	}
	assert.InDelta(t, 1, sum, 1e-12)
}

func TestDegenerateInput(t *testing.T) {
	selection := core.Selection{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}}

	_, err := Newton(selection, 1.5)
	require.ErrorIs(t, err, core.ErrDegenerateInput)

	_, err = Lagrange(selection, 1.5)
	require.ErrorIs(t, err, core.ErrDegenerateInput)

	// non adjacent duplicate
	selection = core.Selection{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 3}}
	_, err = Newton(selection, 1.5)
	require.ErrorIs(t, err, core.ErrDegenerateInput)
}

func TestEmptySelection(t *testing.T) {
	_, err := Newton(nil, 1)
	require.ErrorIs(t, err, core.ErrInvalidPointCount)

	_, err = Lagrange(core.Selection{}, 1)
	require.ErrorIs(t, err, core.ErrInvalidPointCount)
}

func TestSinglePoint(t *testing.T) {
	selection := core.Selection{{X: 4, Y: 8.5}}

	newton, err := Newton(selection, 10)
	require.NoError(t, err)
	lagrange, err := Lagrange(selection, 10)
	require.NoError(t, err)

	assert.Equal(t, 8.5, newton.Estimate)
	assert.Equal(t, 8.5, lagrange)
	assert.False(t, math.IsNaN(newton.Estimate))
}
