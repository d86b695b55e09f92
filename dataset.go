package eggprice

import (
	"slices"
	"time"
)

// MaxPoints is the capacity of the bundled series
const MaxPoints = 119

// BaseWeek1Monday is the Monday of week 1 of the bundled series
var BaseWeek1Monday = time.Date(2023, time.August, 21, 0, 0, 0, 0, time.UTC)

// weeklyPrices holds average weekly egg prices from week 1 onward.
// Missing weeks were filled in upstream so the series has no gaps.
var weeklyPrices = []float64{
	7.29, 7.23, 7.25, 7.34, 7.56, 7.64, 7.73, 7.87, 7.88, 7.96,
	8.02, 8.10, 8.14, 8.18, 8.19, 8.20, 8.17, 8.14, 8.13, 8.08,
	8.07, 7.95, 7.95, 7.80, 7.71, 7.46, 7.38, 7.37, 7.37, 7.34,
	7.33, 7.31, 7.26, 7.08, 7.04, 7.11, 7.00, 7.00, 6.91, 6.93,
	7.06, 7.10, 7.02, 7.12, 7.16, 7.29, 7.47, 7.55, 7.71, 7.80,
	7.88, 7.93, 8.00, 8.04, 8.07, 8.12, 8.17, 8.27, 8.29, 8.38,
	8.43, 8.49, 8.46, 8.46, 8.45, 8.47, 8.43, 8.45, 8.40, 8.38,
	8.36, 8.39, 8.31, 8.17, 8.14, 8.04, 7.96, 7.95, 7.96, 8.00,
	8.02, 8.05, 8.07, 8.12, 8.12, 8.14, 8.12, 8.11, 8.09, 8.04,
	8.00, 8.04, 8.01, 8.00, 8.05, 8.00, 8.01, 8.01, 8.05, 8.07,
	8.07, 8.11, 8.17, 8.20, 8.24, 8.24, 8.31, 8.30, 8.32, 8.35,
	8.32, 8.37, 8.35, 8.33, 8.32, 8.33, 8.34, 8.31, 8.29,
}

// WeeklyPrices returns a copy of the bundled weekly prices
func WeeklyPrices() []float64 {
	return slices.Clone(weeklyPrices)
}
