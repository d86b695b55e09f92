package core

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is any value the helpers below can operate on
type Number interface {
	constraints.Integer | constraints.Float
}

// Abs returns the absolute value of v
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Distance returns the absolute distance between a and b
func Distance[T Number](a, b T) T {
	return Abs(a - b)
}

// Round rounds v to the given number of decimal places
func Round(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
