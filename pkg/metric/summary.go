// Package metric summarises recorded estimates.
package metric

import (
	"github.com/samber/lo"
	"github.com/yorrLorenz/eggprice/pkg/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a set of history entries
type Summary struct {
	Count           int     // Number of entries
	MeanNewton      float64 // Mean of the Newton estimates
	StdDevNewton    float64 // Sample standard deviation of the Newton estimates
	MinNewton       float64
	MaxNewton       float64
	MeanDiscrepancy float64 // Mean |newton - lagrange|
	MaxDiscrepancy  float64 // Largest |newton - lagrange|
	MeanPoints      float64 // Mean number of support points
}

// Summarize computes summary statistics of the given entries.
// An empty input yields a zero Summary.
func Summarize(entries []core.HistoryEntry) Summary {
	if len(entries) == 0 {
		return Summary{}
	}

	newton := lo.Map(entries, func(e core.HistoryEntry, _ int) float64 {
		return e.Newton
	})
	discrepancy := lo.Map(entries, func(e core.HistoryEntry, _ int) float64 {
		return e.Discrepancy()
	})
	points := lo.Map(entries, func(e core.HistoryEntry, _ int) float64 {
		return float64(e.Points)
	})

	summary := Summary{
		Count:           len(entries),
		MinNewton:       floats.Min(newton),
		MaxNewton:       floats.Max(newton),
		MeanDiscrepancy: stat.Mean(discrepancy, nil),
		MaxDiscrepancy:  floats.Max(discrepancy),
		MeanPoints:      stat.Mean(points, nil),
	}

	if len(newton) > 1 {
		summary.MeanNewton, summary.StdDevNewton = stat.MeanStdDev(newton, nil)
	} else {
		summary.MeanNewton = newton[0]
	}

	return summary
}

// Discrepancies returns |newton - lagrange| of every result
func Discrepancies(results []*core.Result) []float64 {
	return lo.Map(results, func(r *core.Result, _ int) float64 {
		return r.Discrepancy()
	})
}
