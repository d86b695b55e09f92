package core

import "errors"

var (
	// ErrOutOfRange is returned when a date precedes the first week of the series.
	ErrOutOfRange = errors.New("date is before week 1")
	// ErrInvalidPointCount is returned when the requested number of points is outside [2, K].
	ErrInvalidPointCount = errors.New("invalid number of data points")
	// ErrDegenerateInput is returned when two support points share a coordinate.
	ErrDegenerateInput = errors.New("duplicate coordinates in selection")
	// ErrIndex is returned when a series position outside [1, K] is requested.
	ErrIndex = errors.New("series index out of range")
	// ErrCapacity is returned when a series is loaded with more values than its capacity.
	ErrCapacity = errors.New("series capacity exceeded")
)
