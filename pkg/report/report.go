// Package report renders series, results and history as text tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"
	"github.com/yorrLorenz/eggprice/pkg/calendar"
	"github.com/yorrLorenz/eggprice/pkg/core"
	"github.com/yorrLorenz/eggprice/pkg/metric"
)

const rangeLayout = "Jan 02, 2006"

// WeekRow is one line of the data table
type WeekRow struct {
	Week     int
	Range    string
	Price    string
	Selected bool
}

// WeekRows builds the data table rows of series, flagging the selected weeks
func WeekRows(series *core.Series, base time.Time, selected []int) []WeekRow {
	marked := make(map[int]bool, len(selected))
	for _, week := range selected {
		marked[week] = true
	}

	rows := make([]WeekRow, 0, series.Size())
	for _, o := range series.Observations() {
		week := int(o.X)
		start, end := calendar.WeekRange(week, base)
		rows = append(rows, WeekRow{
			Week:     week,
			Range:    fmt.Sprintf("%s - %s", start.Format(rangeLayout), end.Format(rangeLayout)),
			Price:    fmt.Sprintf("%.2f", o.Y),
			Selected: marked[week],
		})
	}
	return rows
}

// DataTable writes the weekly series with the selected weeks marked
func DataTable(w io.Writer, series *core.Series, base time.Time, selected []int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Week", "Range", "Price", ""})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_CENTER,
	})

	for _, row := range WeekRows(series, base, selected) {
		mark := ""
		if row.Selected {
			mark = "*"
		}
		table.Append([]string{strconv.Itoa(row.Week), row.Range, row.Price, mark})
	}

	table.Render()
}

// ResultTable writes a single estimation result
func ResultTable(w io.Writer, result *core.Result) {
	table := tablewriter.NewWriter(w)

	data := [][]string{
		{"Date", result.Date.Format(time.DateOnly)},
		{"Week value", fmt.Sprintf("%.3f", result.Coordinate)},
		{"Points", strconv.Itoa(result.Points)},
		{"Weeks used", joinInts(result.Weeks)},
		{"Newton estimate", fmt.Sprintf("%.4f", result.Newton)},
		{"Lagrange estimate", fmt.Sprintf("%.4f", result.Lagrange)},
		{"Difference", fmt.Sprintf("%.2e", result.Discrepancy())},
	}

	table.AppendBulk(data)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.Render()
}

// CoefficientTable writes the Newton coefficients next to the nodes they multiply
func CoefficientTable(w io.Writer, result *core.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"j", "x_j", "y_j", "c_j"})

	for j, c := range result.Coefficients {
		o := result.Selection[j]
		table.Append([]string{
			strconv.Itoa(j),
			strconv.FormatFloat(o.X, 'f', -1, 64),
			fmt.Sprintf("%.2f", o.Y),
			strconv.FormatFloat(c, 'g', 8, 64),
		})
	}

	table.Render()
}

// HistoryTable writes recorded queries
func HistoryTable(w io.Writer, entries []core.HistoryEntry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Date", "Week", "Points", "Newton", "Lagrange"})

	for _, e := range entries {
		table.Append([]string{
			strconv.FormatInt(e.ID, 10),
			e.Date.Format(time.DateOnly),
			fmt.Sprintf("%.3f", e.Week),
			strconv.Itoa(e.Points),
			fmt.Sprintf("%.4f", e.Newton),
			fmt.Sprintf("%.4f", e.Lagrange),
		})
	}

	table.Render()
}

// SummaryTable writes summary statistics of the history
func SummaryTable(w io.Writer, summary metric.Summary) {
	table := tablewriter.NewWriter(w)

	table.AppendBulk([][]string{
		{"Queries", strconv.Itoa(summary.Count)},
		{"Mean points", fmt.Sprintf("%.1f", summary.MeanPoints)},
		{"Newton mean", fmt.Sprintf("%.4f", summary.MeanNewton)},
		{"Newton std dev", fmt.Sprintf("%.4f", summary.StdDevNewton)},
		{"Newton min/max", fmt.Sprintf("%.4f / %.4f", summary.MinNewton, summary.MaxNewton)},
		{"Mean difference", fmt.Sprintf("%.2e", summary.MeanDiscrepancy)},
		{"Max difference", fmt.Sprintf("%.2e", summary.MaxDiscrepancy)},
	})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.Render()
}

// Histogram writes a text histogram of values
func Histogram(w io.Writer, values []float64, bins int) error {
	if len(values) == 0 {
		_, err := fmt.Fprintln(w, "no values")
		return err
	}

	if constant(values) {
		_, err := fmt.Fprintf(w, "all %d values equal %g\n", len(values), values[0])
		return err
	}

	hist := histogram.Hist(bins, values)
	return histogram.Fprint(w, hist, histogram.Linear(10))
}

func constant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
