package sweep

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yorrLorenz/eggprice/pkg/core"
	"github.com/yorrLorenz/eggprice/pkg/logger"
	"github.com/yorrLorenz/eggprice/pkg/logger/zerolog"
)

type linear struct {
	calls int
}

func (l *linear) Estimate(date time.Time, points int) (*core.Result, error) {
	l.calls++
	week := float64(date.YearDay())
	return &core.Result{Date: date, Coordinate: week, Points: points, Newton: week * 2, Lagrange: week * 2}, nil
}

func quietLog(t *testing.T) logger.Logger {
	t.Helper()
	log, err := zerolog.New(logger.Config{Level: "error", JSON: true}, io.Discard)
	require.NoError(t, err)
	return zerolog.NewAdapter(log)
}

func TestSweeper_Run(t *testing.T) {
	estimator := &linear{}
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 29, 0, 0, 0, 0, time.UTC)

	out := &bytes.Buffer{}
	results, err := NewSweeper(estimator, quietLog(t)).Run(context.Background(), 4, out,
		WithInterval(start, end), WithStep("1w"))
	require.NoError(t, err)
	require.Len(t, results, 5)
	assert.Equal(t, 5, estimator.calls)

	records, err := csv.NewReader(out).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, csvHeaders, records[0])
	assert.Equal(t, []string{"2024-01-08", "8.000", "4", "16.0000", "16.0000", "0.00e+00"}, records[2])
}

func TestSweeper_Days(t *testing.T) {
	start := time.Date(2024, time.March, 1, 15, 30, 0, 0, time.UTC)

	results, err := NewSweeper(&linear{}, quietLog(t)).Run(context.Background(), 3, io.Discard,
		WithDays(start, 10), WithProgress(io.Discard))
	require.NoError(t, err)
	require.Len(t, results, 10)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), results[9].Date)
}

func TestSweeper_InvalidParameters(t *testing.T) {
	sweeper := NewSweeper(&linear{}, quietLog(t))
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	_, err := sweeper.Run(context.Background(), 3, io.Discard, WithInterval(start, start.AddDate(0, 0, -1)))
	require.ErrorIs(t, err, ErrInvalidInterval)

	for _, step := range []string{"12h", "0d", "-1d", "soon"} {
		_, err = sweeper.Run(context.Background(), 3, io.Discard, WithInterval(start, start), WithStep(step))
		require.ErrorIs(t, err, ErrInvalidStep, step)
	}
}

func TestSweeper_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	results, err := NewSweeper(&linear{}, quietLog(t)).Run(ctx, 3, io.Discard, WithDays(start, 30))
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, results)
}

func TestStepDays(t *testing.T) {
	days, err := stepDays("1w")
	require.NoError(t, err)
	assert.Equal(t, 7, days)

	days, err = stepDays("2d")
	require.NoError(t, err)
	assert.Equal(t, 2, days)
}
