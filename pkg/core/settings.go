package core

import "time"

// Settings represents the configuration of the estimation engine
type Settings struct {
	BaseDate  time.Time // Monday of week 1
	MaxPoints int       // Configured capacity of the series, 0 means the number of prices
	Prices    []float64 // Weekly prices starting at week 1
	Selector  string    // Neighbor selection strategy name
}
