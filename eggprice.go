// Package eggprice estimates a weekly-sampled price at any calendar date.
//
// A date is mapped onto the week axis of the series, the nearest weekly
// observations are selected and the interpolating polynomial through them is
// evaluated twice, in Newton and in Lagrange form, so both estimates can be
// compared. The CLI and web shells in this module are thin adapters over Estimator.
package eggprice

import (
	"errors"
	"fmt"
	"time"

	"github.com/yorrLorenz/eggprice/pkg/calendar"
	"github.com/yorrLorenz/eggprice/pkg/core"
	"github.com/yorrLorenz/eggprice/pkg/interpolate"
	"github.com/yorrLorenz/eggprice/pkg/logger"
)

// ErrBaseDate is returned by New when the configured base date is not a Monday
var ErrBaseDate = errors.New("base date must be a Monday")

// Estimator is the shared interpolation engine. It is safe for concurrent
// use: the series is built once in New and never mutated.
type Estimator struct {
	series   *core.Series
	base     time.Time
	selector interpolate.Selector
	history  core.HistoryRecorder
	log      logger.Logger
}

// DefaultSettings returns the settings of the bundled egg price series
func DefaultSettings() core.Settings {
	return core.Settings{
		BaseDate:  BaseWeek1Monday,
		MaxPoints: MaxPoints,
		Prices:    WeeklyPrices(),
		Selector:  interpolate.SelectorExpand,
	}
}

// New creates an estimator over the series described by settings
func New(settings core.Settings, options ...Option) (*Estimator, error) {
	if settings.BaseDate.IsZero() || settings.BaseDate.Weekday() != time.Monday {
		return nil, fmt.Errorf("%w: %s", ErrBaseDate, settings.BaseDate.Format(time.DateOnly))
	}

	var seriesOptions []core.SeriesOption
	if settings.MaxPoints > 0 {
		seriesOptions = append(seriesOptions, core.WithCapacity(settings.MaxPoints))
	}

	series, err := core.NewSeries(settings.Prices, seriesOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to load series: %w", err)
	}

	selector, err := interpolate.SelectorByName(settings.Selector)
	if err != nil {
		return nil, err
	}

	estimator := &Estimator{
		series:   series,
		base:     calendar.Day(settings.BaseDate),
		selector: selector,
		log:      DefaultLog,
	}

	for _, option := range options {
		option(estimator)
	}

	estimator.log.WithFields(map[string]any{
		"base_date": estimator.base.Format(time.DateOnly),
		"weeks":     series.Size(),
		"capacity":  series.Capacity(),
	}).Debug("Series loaded")

	return estimator, nil
}

// Series returns the read-only series the estimator interpolates over
func (e *Estimator) Series() *core.Series {
	return e.series
}

// BaseDate returns the Monday of week 1
func (e *Estimator) BaseDate() time.Time {
	return e.base
}

// Coordinate maps date onto the week axis of the series
func (e *Estimator) Coordinate(date time.Time) (float64, error) {
	return calendar.Coordinate(date, e.base)
}

// Estimate interpolates the price at date using the given number of nearest weekly points.
// Successful results are forwarded to the history recorder, if any.
func (e *Estimator) Estimate(date time.Time, points int) (*core.Result, error) {
	target, err := e.Coordinate(date)
	if err != nil {
		return nil, err
	}

	result, err := e.EstimateAt(target, points)
	if err != nil {
		return nil, err
	}
	result.Date = calendar.Day(date)

	e.record(result)

	return result, nil
}

// EstimateAt interpolates the price at a week coordinate
func (e *Estimator) EstimateAt(target float64, points int) (*core.Result, error) {
	if target < 1 {
		return nil, fmt.Errorf("%w: week %g", core.ErrOutOfRange, target)
	}

	selection, err := e.selector(e.series, target, points)
	if err != nil {
		return nil, err
	}

	newton, err := interpolate.Newton(selection, target)
	if err != nil {
		return nil, err
	}

	lagrange, err := interpolate.Lagrange(selection, target)
	if err != nil {
		return nil, err
	}

	result := &core.Result{
		Coordinate:   target,
		Points:       points,
		Weeks:        selection.Weeks(),
		Newton:       newton.Estimate,
		Lagrange:     lagrange,
		Coefficients: newton.Coefficients,
		Selection:    selection,
	}

	e.log.WithFields(map[string]any{
		"week":     target,
		"points":   points,
		"newton":   result.Newton,
		"lagrange": result.Lagrange,
	}).Debug("Price estimated")

	return result, nil
}

func (e *Estimator) record(result *core.Result) {
	if e.history == nil {
		return
	}

	if err := e.history.Record(core.NewHistoryEntry(result)); err != nil {
		e.log.WithError(err).Warn("Failed to record estimate")
	}
}
