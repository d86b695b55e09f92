// Package calendar maps calendar dates onto the continuous week axis of a weekly series.
//
// Week 1 starts on a reference Monday. Integer coordinates fall on Mondays and
// the fractional part is the day of week divided by seven, so Tuesday of week 3
// is 3 + 1/7 and Sunday of week 3 is 3 + 6/7.
package calendar

import (
	"fmt"
	"time"

	"github.com/yorrLorenz/eggprice/pkg/core"
)

const (
	daysPerWeek   = 7
	secondsPerDay = 24 * 60 * 60
)

// Day truncates t to midnight UTC of its calendar date. Time of day and
// zone offsets do not take part in day arithmetic.
func Day(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from base to d.
// It works on Unix seconds since time.Duration saturates after about 292 years.
func DaysBetween(d, base time.Time) int {
	return int((Day(d).Unix() - Day(base).Unix()) / secondsPerDay)
}

// Coordinate converts d into a week coordinate relative to the Monday base
func Coordinate(d, base time.Time) (float64, error) {
	delta := DaysBetween(d, base)
	if delta < 0 {
		return 0, fmt.Errorf("%w: %s precedes %s", core.ErrOutOfRange,
			d.Format(time.DateOnly), base.Format(time.DateOnly))
	}

	week := delta/daysPerWeek + 1
	day := delta % daysPerWeek

	return float64(week) + float64(day)/daysPerWeek, nil
}

// WeekStart returns the Monday of the given 1-based week
func WeekStart(week int, base time.Time) time.Time {
	return Day(base).AddDate(0, 0, (week-1)*daysPerWeek)
}

// WeekRange returns the Monday and Friday of the given 1-based week
func WeekRange(week int, base time.Time) (start, end time.Time) {
	start = WeekStart(week, base)
	return start, start.AddDate(0, 0, 4)
}
