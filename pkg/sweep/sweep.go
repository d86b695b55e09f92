// Package sweep estimates prices for every date of a range and exports them as CSV.
package sweep

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/xhit/go-str2duration/v2"
	"github.com/yorrLorenz/eggprice/pkg/calendar"
	"github.com/yorrLorenz/eggprice/pkg/core"
	"github.com/yorrLorenz/eggprice/pkg/logger"
)

const day = 24 * time.Hour

var (
	ErrInvalidStep     = errors.New("step must be a positive whole number of days")
	ErrInvalidInterval = errors.New("end date is before start date")
)

// CSV header names
var csvHeaders = []string{"date", "week", "points", "newton", "lagrange", "difference"}

// Estimator produces one result per date
type Estimator interface {
	Estimate(date time.Time, points int) (*core.Result, error)
}

// Sweeper runs an estimator over a range of dates
type Sweeper struct {
	estimator Estimator
	log       logger.Logger
}

// NewSweeper creates a sweeper for the given estimator
func NewSweeper(estimator Estimator, log logger.Logger) Sweeper {
	return Sweeper{
		estimator: estimator,
		log:       log,
	}
}

// Parameters defines the range covered by a sweep
type Parameters struct {
	Start    time.Time
	End      time.Time
	Step     string
	Progress io.Writer
}

// Option is a function type for configuring sweep parameters
type Option func(*Parameters)

// WithInterval sets the first and last date of the sweep
func WithInterval(start, end time.Time) Option {
	return func(parameters *Parameters) {
		parameters.Start = start
		parameters.End = end
	}
}

// WithDays sweeps the given number of days starting at start
func WithDays(start time.Time, days int) Option {
	return func(parameters *Parameters) {
		parameters.Start = start
		parameters.End = start.AddDate(0, 0, days-1)
	}
}

// WithStep sets the distance between two dates, e.g. "1d" or "1w"
func WithStep(step string) Option {
	return func(parameters *Parameters) {
		parameters.Step = step
	}
}

// WithProgress draws a progress bar on w
func WithProgress(w io.Writer) Option {
	return func(parameters *Parameters) {
		parameters.Progress = w
	}
}

// stepDays parses a duration string into a whole number of days
func stepDays(step string) (int, error) {
	duration, err := str2duration.ParseDuration(step)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidStep, err)
	}
	if duration <= 0 || duration%day != 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidStep, step)
	}
	return int(duration / day), nil
}

// Run estimates the price at every step of the range using the given number of points,
// writing one CSV row per date to out.
func (s Sweeper) Run(ctx context.Context, points int, out io.Writer, options ...Option) ([]*core.Result, error) {
	parameters := &Parameters{
		Step:     "1d",
		Progress: io.Discard,
	}

	for _, option := range options {
		option(parameters)
	}

	start, end := calendar.Day(parameters.Start), calendar.Day(parameters.End)
	if end.Before(start) {
		return nil, ErrInvalidInterval
	}

	step, err := stepDays(parameters.Step)
	if err != nil {
		return nil, err
	}

	count := calendar.DaysBetween(end, start)/step + 1

	s.log.WithFields(map[string]any{
		"start":  start.Format(time.DateOnly),
		"end":    end.Format(time.DateOnly),
		"step":   parameters.Step,
		"points": points,
		"count":  count,
	}).Info("Sweeping date range")

	writer := csv.NewWriter(out)
	if err := writer.Write(csvHeaders); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	progressBar := progressbar.NewOptions64(int64(count),
		progressbar.OptionSetWriter(parameters.Progress),
		progressbar.OptionSetDescription("estimating"),
		progressbar.OptionShowCount(),
	)

	results := make([]*core.Result, 0, count)
	for date := start; !date.After(end); date = date.AddDate(0, 0, step) {
		select {
		case <-ctx.Done():
			writer.Flush()
			return results, ctx.Err()
		default:
		}

		result, err := s.estimator.Estimate(date, points)
		if err != nil {
			return results, fmt.Errorf("failed to estimate %s: %w", date.Format(time.DateOnly), err)
		}

		if err := writer.Write(row(result)); err != nil {
			return results, fmt.Errorf("failed to write CSV row: %w", err)
		}

		results = append(results, result)
		_ = progressBar.Add(1)
	}

	_ = progressBar.Finish()

	writer.Flush()
	if err := writer.Error(); err != nil {
		return results, fmt.Errorf("failed to flush CSV: %w", err)
	}

	s.log.WithField("count", len(results)).Info("Sweep completed")

	return results, nil
}

func row(result *core.Result) []string {
	return []string{
		result.Date.Format(time.DateOnly),
		strconv.FormatFloat(result.Coordinate, 'f', 3, 64),
		strconv.Itoa(result.Points),
		strconv.FormatFloat(result.Newton, 'f', 4, 64),
		strconv.FormatFloat(result.Lagrange, 'f', 4, 64),
		strconv.FormatFloat(result.Discrepancy(), 'e', 2, 64),
	}
}
