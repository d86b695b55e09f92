package core

// Observation is a single point of the series: a week coordinate and its price.
type Observation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Selection is the ordered set of observations used as interpolation support points
type Selection []Observation

// Len returns the number of points in the selection
func (s Selection) Len() int {
	return len(s)
}

// Xs returns the coordinates of the selection
func (s Selection) Xs() []float64 {
	xs := make([]float64, len(s))
	for i, o := range s {
		xs[i] = o.X
	}
	return xs
}

// Ys returns the values of the selection
func (s Selection) Ys() []float64 {
	ys := make([]float64, len(s))
	for i, o := range s {
		ys[i] = o.Y
	}
	return ys
}

// Weeks returns the integer week indices of the selection, used for display
func (s Selection) Weeks() []int {
	weeks := make([]int, len(s))
	for i, o := range s {
		weeks[i] = int(o.X)
	}
	return weeks
}
