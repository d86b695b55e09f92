package core

import (
	"fmt"
	"sort"
)

// Series is the read-only store of weekly observations.
// Coordinates are the 1-based position of each value, so the i-th
// observation always sits at X = i. Slots between Size and Capacity
// are absent: they are never returned, selected or evaluated.
type Series struct {
	observations []Observation
	capacity     int
}

// SeriesOption configures a Series at construction time
type SeriesOption func(*Series)

// WithCapacity sets the configured maximum number of weeks of the series
func WithCapacity(capacity int) SeriesOption {
	return func(s *Series) {
		s.capacity = capacity
	}
}

// NewSeries builds a series from the given ordered values
func NewSeries(values []float64, options ...SeriesOption) (*Series, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: a series needs at least 2 values, got %d", ErrInvalidPointCount, len(values))
	}

	series := &Series{
		observations: make([]Observation, len(values)),
		capacity:     len(values),
	}

	for _, option := range options {
		option(series)
	}

	if series.capacity < len(values) {
		return nil, fmt.Errorf("%w: %d values for capacity %d", ErrCapacity, len(values), series.capacity)
	}

	for i, v := range values {
		series.observations[i] = Observation{X: float64(i + 1), Y: v}
	}

	return series, nil
}

// Size returns the number of populated observations (K)
func (s *Series) Size() int {
	return len(s.observations)
}

// Capacity returns the configured maximum number of weeks
func (s *Series) Capacity() int {
	return s.capacity
}

// At returns the observation at the 1-based position i
func (s *Series) At(i int) (Observation, error) {
	if i < 1 || i > len(s.observations) {
		return Observation{}, fmt.Errorf("%w: %d not in [1, %d]", ErrIndex, i, len(s.observations))
	}
	return s.observations[i-1], nil
}

// Search returns the 1-based position of the first observation whose
// coordinate is greater than or equal to x. It returns Size()+1 when
// every coordinate is below x.
func (s *Series) Search(x float64) int {
	return sort.Search(len(s.observations), func(i int) bool {
		return s.observations[i].X >= x
	}) + 1
}

// Observations returns a copy of the populated observations
func (s *Series) Observations() []Observation {
	out := make([]Observation, len(s.observations))
	copy(out, s.observations)
	return out
}

// Coordinates returns the coordinates of the populated observations
func (s *Series) Coordinates() []float64 {
	return Selection(s.observations).Xs()
}

// Values returns the prices of the populated observations
func (s *Series) Values() []float64 {
	return Selection(s.observations).Ys()
}
