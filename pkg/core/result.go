package core

import "time"

// Result is the outcome of a single estimation query
type Result struct {
	Date         time.Time `json:"date"`
	Coordinate   float64   `json:"week"`
	Points       int       `json:"points"`
	Weeks        []int     `json:"weeks"`
	Newton       float64   `json:"newton"`
	Lagrange     float64   `json:"lagrange"`
	Coefficients []float64 `json:"coefficients"`
	Selection    Selection `json:"-"`
}

// Discrepancy returns the absolute difference between the Newton and Lagrange estimates
func (r Result) Discrepancy() float64 {
	return Distance(r.Newton, r.Lagrange)
}
