package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yorrLorenz/eggprice/pkg/core"
)

func newSeries(t *testing.T, values ...float64) *core.Series {
	t.Helper()
	series, err := core.NewSeries(values)
	require.NoError(t, err)
	return series
}

func sequence(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i) * 1.5
	}
	return values
}

func TestSelect(t *testing.T) {
	tests := map[string]struct {
		size     int
		target   float64
		n        int
		expected []int
	}{
		"leftmost point":      {size: 3, target: 1, n: 2, expected: []int{1, 2}},
		"tie prefers left":    {size: 5, target: 2.5, n: 2, expected: []int{2, 3}},
		"tie single extra":    {size: 5, target: 2.5, n: 3, expected: []int{1, 2, 3}},
		"exact point":         {size: 5, target: 3, n: 2, expected: []int{2, 3}},
		"interior fraction":   {size: 10, target: 4 + 2.0/7, n: 4, expected: []int{3, 4, 5, 6}},
		"beyond last point":   {size: 5, target: 7.5, n: 3, expected: []int{3, 4, 5}},
		"near right edge":     {size: 5, target: 4.9, n: 4, expected: []int{2, 3, 4, 5}},
		"all points":          {size: 6, target: 2.3, n: 6, expected: []int{1, 2, 3, 4, 5, 6}},
		"close to right node": {size: 8, target: 5 + 5.0/7, n: 3, expected: []int{5, 6, 7}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			series := newSeries(t, sequence(tt.size)...)
			selection, err := Select(series, tt.target, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, selection.Weeks())
		})
	}
}

func TestSelect_TieSingleStep(t *testing.T) {
	series := newSeries(t, sequence(5)...)

	// the first pick at 2.5 is a tie between 2 and 3: left wins
	selection, err := Select(series, 2.5, 2)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, selection.Weeks())

	selection, err = Select(series, 3.5, 3)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4}, selection.Weeks())
}

func TestSelect_InvalidCount(t *testing.T) {
	series := newSeries(t, sequence(10)...)

	for _, selector := range []Selector{Select, SelectWindow} {
		for _, n := range []int{-1, 0, 1, 11} {
			_, err := selector(series, 4, n)
			require.ErrorIs(t, err, core.ErrInvalidPointCount, "n=%d", n)
		}
	}
}

func TestSelect_Postconditions(t *testing.T) {
	series := newSeries(t, sequence(12)...)
	targets := []float64{1, 1 + 3.0/7, 2.5, 6, 6 + 6.0/7, 11.5, 12, 15}

	for name, selector := range selectors {
		t.Run(name, func(t *testing.T) {
			for _, target := range targets {
				for n := 2; n <= series.Size(); n++ {
					selection, err := selector(series, target, n)
					require.NoError(t, err)
					require.Len(t, selection, n)

					for i := 1; i < len(selection); i++ {
						require.Less(t, selection[i-1].X, selection[i].X, "target=%g n=%d", target, n)
					}

					// nothing left out is strictly closer than the farthest selected point
					farthest := 0.0
					for _, o := range selection {
						farthest = max(farthest, core.Distance(o.X, target))
					}
					for _, o := range series.Observations() {
						if core.Distance(o.X, target) < farthest {
							require.Contains(t, selection, o, "target=%g n=%d", target, n)
						}
					}
				}
			}
		})
	}
}

func TestSelectWindow(t *testing.T) {
	series := newSeries(t, sequence(10)...)

	selection, err := SelectWindow(series, 2.5, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, selection.Weeks())

	selection, err = SelectWindow(series, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, selection.Weeks())

	selection, err = SelectWindow(series, 14, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 9, 10}, selection.Weeks())
}

func TestSelectors_AgreeInside(t *testing.T) {
	series := newSeries(t, sequence(40)...)

	for _, target := range []float64{10, 12 + 1.0/7, 20.5, 25 + 4.0/7} {
		for n := 2; n <= 8; n++ {
			expand, err := Select(series, target, n)
			require.NoError(t, err)
			window, err := SelectWindow(series, target, n)
			require.NoError(t, err)
			require.Equal(t, expand, window, "target=%g n=%d", target, n)
		}
	}
}

func TestSelectorByName(t *testing.T) {
	selector, err := SelectorByName("")
	require.NoError(t, err)
	require.NotNil(t, selector)

	_, err = SelectorByName(SelectorWindow)
	require.NoError(t, err)

	_, err = SelectorByName("nearest")
	require.Error(t, err)
}
