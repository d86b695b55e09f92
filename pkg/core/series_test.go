package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeries(t *testing.T) {
	series, err := NewSeries([]float64{7.0, 8.0, 9.0})
	require.NoError(t, err)

	require.Equal(t, 3, series.Size())
	require.Equal(t, 3, series.Capacity())
	assert.Equal(t, []float64{1, 2, 3}, series.Coordinates())
	assert.Equal(t, []float64{7, 8, 9}, series.Values())

	for i := 1; i <= series.Size(); i++ {
		o, err := series.At(i)
		require.NoError(t, err)
		assert.Equal(t, float64(i), o.X)
	}
}

func TestSeries_At(t *testing.T) {
	series, err := NewSeries([]float64{1, 2, 3, 5, 4})
	require.NoError(t, err)

	o, err := series.At(4)
	require.NoError(t, err)
	assert.Equal(t, Observation{X: 4, Y: 5}, o)

	for _, i := range []int{-1, 0, 6} {
		_, err := series.At(i)
		require.ErrorIs(t, err, ErrIndex)
	}
}

func TestSeries_Capacity(t *testing.T) {
	series, err := NewSeries([]float64{1, 2, 3}, WithCapacity(119))
	require.NoError(t, err)

	assert.Equal(t, 3, series.Size())
	assert.Equal(t, 119, series.Capacity())
	assert.Len(t, series.Observations(), 3)

	// absent slots are not reachable
	_, err = series.At(4)
	require.ErrorIs(t, err, ErrIndex)

	_, err = NewSeries([]float64{1, 2, 3}, WithCapacity(2))
	require.ErrorIs(t, err, ErrCapacity)
}

func TestSeries_TooShort(t *testing.T) {
	_, err := NewSeries([]float64{1})
	require.ErrorIs(t, err, ErrInvalidPointCount)

	_, err = NewSeries(nil)
	require.ErrorIs(t, err, ErrInvalidPointCount)
}

func TestSeries_Search(t *testing.T) {
	series, err := NewSeries([]float64{1, 1, 1, 1, 1})
	require.NoError(t, err)

	tests := map[float64]int{
		0.5: 1,
		1:   1,
		1.1: 2,
		2.5: 3,
		5:   5,
		5.2: 6,
	}

	for target, expected := range tests {
		assert.Equal(t, expected, series.Search(target), "target %g", target)
	}
}

func TestSeries_ObservationsAreCopies(t *testing.T) {
	series, err := NewSeries([]float64{1, 2})
	require.NoError(t, err)

	observations := series.Observations()
	observations[0].Y = 100

	o, err := series.At(1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, o.Y)
}

func TestHistoryEntry(t *testing.T) {
	entry := NewHistoryEntry(&Result{
		Coordinate: 3 + 2.0/7,
		Points:     4,
		Newton:     7.254449,
		Lagrange:   7.254451,
	})

	assert.Equal(t, 3.286, entry.Week)
	assert.Equal(t, 7.2544, entry.Newton)
	assert.Equal(t, 7.2545, entry.Lagrange)
	assert.InDelta(t, 0.0001, entry.Discrepancy(), 1e-9)

	assert.True(t, WithPoints(3, 4)(*entry))
	assert.False(t, WithPoints(5)(*entry))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 2.5, Abs(2.5))
	assert.Equal(t, 0.5, Distance(2.0, 2.5))
}
