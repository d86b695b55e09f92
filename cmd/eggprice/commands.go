package main

import (
	"fmt"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/yorrLorenz/eggprice/pkg/core"
	"github.com/yorrLorenz/eggprice/pkg/metric"
	"github.com/yorrLorenz/eggprice/pkg/report"
	"github.com/yorrLorenz/eggprice/pkg/sweep"
	"github.com/yorrLorenz/eggprice/pkg/web"
)

const dateLayout = time.DateOnly

func buildEstimateCmd() *cobra.Command {
	var (
		date         string
		points       int
		coefficients bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the price at a date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := time.Parse(dateLayout, date)
			if err != nil {
				return fmt.Errorf("invalid date format: %w", err)
			}

			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.estimator.Estimate(day, points)
			if err != nil {
				return err
			}

			report.ResultTable(cmd.OutOrStdout(), result)
			if coefficients {
				report.CoefficientTable(cmd.OutOrStdout(), result)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date to estimate (e.g. 2024-01-17)")
	cmd.Flags().IntVarP(&points, "points", "n", 4, "Number of nearest weekly points")
	cmd.Flags().BoolVar(&coefficients, "coefficients", false, "Print the Newton coefficients")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func buildREPLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Estimate prices interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			return newREPL(a.estimator, cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.Log.Colored).Run()
		},
	}
}

func buildServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the estimation form over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			options := []web.Option{
				web.WithPort(a.cfg.Server.Port),
				web.WithHistory(a.history),
			}
			if cmd.Flags().Changed("port") {
				options = append(options, web.WithPort(port))
			}
			if a.cfg.Server.Debug {
				options = append(options, web.WithDebug())
			}

			server, err := web.NewServer(a.estimator, a.log, options...)
			if err != nil {
				return err
			}
			return server.Start(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port, overrides server.port")

	return cmd
}

func buildTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the weekly price series",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}

			report.DataTable(cmd.OutOrStdout(), a.estimator.Series(), a.estimator.BaseDate(), nil)
			return nil
		},
	}
}

func buildHistoryCmd() *cobra.Command {
	var (
		limit  int
		points []int
		from   string
		to     string
		until  string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print recorded queries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			filters, err := historyFilters(points, from, to, until)
			if err != nil {
				return err
			}

			entries, err := a.history.Entries(filters...)
			if err != nil {
				return err
			}

			shown := entries
			if limit > 0 && len(shown) > limit {
				shown = lo.Subset(shown, -limit, uint(limit))
			}

			report.HistoryTable(cmd.OutOrStdout(), shown)
			report.SummaryTable(cmd.OutOrStdout(), metric.Summarize(entries))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Show only the most recent entries")
	cmd.Flags().IntSliceVarP(&points, "points", "n", nil, "Only queries using these point counts")
	cmd.Flags().StringVar(&from, "from", "", "Only queried dates on or after (e.g. 2023-09-01)")
	cmd.Flags().StringVar(&to, "to", "", "Only queried dates on or before (e.g. 2024-06-30)")
	cmd.Flags().StringVar(&until, "until", "", "Only queries recorded on or before this day")

	return cmd
}

func historyFilters(points []int, from, to, until string) ([]core.HistoryFilter, error) {
	var filters []core.HistoryFilter

	if len(points) > 0 {
		filters = append(filters, core.WithPoints(points...))
	}

	if from != "" || to != "" {
		start, end := time.Time{}, time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
		var err error
		if from != "" {
			if start, err = time.Parse(dateLayout, from); err != nil {
				return nil, fmt.Errorf("invalid from date format: %w", err)
			}
		}
		if to != "" {
			if end, err = time.Parse(dateLayout, to); err != nil {
				return nil, fmt.Errorf("invalid to date format: %w", err)
			}
		}
		filters = append(filters, core.WithDateBetween(start, end))
	}

	if until != "" {
		day, err := time.Parse(dateLayout, until)
		if err != nil {
			return nil, fmt.Errorf("invalid until date format: %w", err)
		}
		// recorded at any time during that day
		filters = append(filters, core.WithCreatedBeforeOrEqual(day.AddDate(0, 0, 1).Add(-time.Nanosecond)))
	}

	return filters, nil
}

func buildSweepCmd() *cobra.Command {
	var (
		startDate  string
		endDate    string
		days       int
		step       string
		points     int
		outputFile string
		bins       int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Estimate every date of a range and export the results as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := time.Parse(dateLayout, startDate)
			if err != nil {
				return fmt.Errorf("invalid start date format: %w", err)
			}

			options := []sweep.Option{sweep.WithStep(step), sweep.WithProgress(os.Stderr)}
			switch {
			case endDate != "" && days > 0:
				return fmt.Errorf("END and DAYS are mutually exclusive")
			case endDate != "":
				end, err := time.Parse(dateLayout, endDate)
				if err != nil {
					return fmt.Errorf("invalid end date format: %w", err)
				}
				options = append(options, sweep.WithInterval(start, end))
			case days > 0:
				options = append(options, sweep.WithDays(start, days))
			default:
				return fmt.Errorf("either END or DAYS must be provided")
			}

			// sweeps are batch exports and are not recorded in the history log
			a, err := newApp(false)
			if err != nil {
				return err
			}

			out, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer out.Close()

			results, err := sweep.NewSweeper(a.estimator, a.log).Run(cmd.Context(), points, out, options...)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n%d estimates written to %s\n", len(results), outputFile)
			fmt.Fprintln(cmd.OutOrStdout(), "|newton - lagrange| distribution:")
			return report.Histogram(cmd.OutOrStdout(), metric.Discrepancies(results), bins)
		},
	}

	cmd.Flags().StringVarP(&startDate, "start", "s", "", "Start date (e.g. 2023-09-01)")
	cmd.Flags().StringVarP(&endDate, "end", "e", "", "End date (e.g. 2024-06-30)")
	cmd.Flags().IntVarP(&days, "days", "d", 0, "Number of days to sweep")
	cmd.Flags().StringVar(&step, "step", "1d", "Distance between dates (e.g. 1d, 1w)")
	cmd.Flags().IntVarP(&points, "points", "n", 4, "Number of nearest weekly points")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path (e.g. ./sweep.csv)")
	cmd.Flags().IntVar(&bins, "bins", 10, "Histogram bins")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
