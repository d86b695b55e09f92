package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/goterm/term"
	"github.com/yorrLorenz/eggprice/pkg/core"
)

const replDateLayout = "01-02-2006"

type estimator interface {
	Estimate(date time.Time, points int) (*core.Result, error)
	Coordinate(date time.Time) (float64, error)
	Series() *core.Series
}

// repl is the interactive prompt: a date, then a point count, then both estimates
type repl struct {
	estimator estimator
	in        *bufio.Scanner
	out       io.Writer
	colored   bool
}

func newREPL(estimator estimator, in io.Reader, out io.Writer, colored bool) *repl {
	return &repl{
		estimator: estimator,
		in:        bufio.NewScanner(in),
		out:       out,
		colored:   colored,
	}
}

func (r *repl) color(f func(string, ...any) string, format string, args ...any) string {
	if r.colored {
		return f(format, args...)
	}
	return fmt.Sprintf(format, args...)
}

// prompt writes label and reads one trimmed line; ok is false once input is exhausted
func (r *repl) prompt(label string) (line string, ok bool) {
	fmt.Fprint(r.out, label)
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

// Run loops until "exit" or end of input
func (r *repl) Run() error {
	size := r.estimator.Series().Size()

	for {
		fmt.Fprintln(r.out, "\n--------------------------------------------")
		line, ok := r.prompt("Enter date (MM-DD-YYYY) or 'exit': ")
		if !ok {
			return r.in.Err()
		}
		if strings.EqualFold(line, "exit") {
			return nil
		}

		date, err := time.Parse(replDateLayout, line)
		if err != nil {
			fmt.Fprintln(r.out, r.color(term.Redf, "invalid date %q, expected MM-DD-YYYY", line))
			continue
		}

		week, err := r.estimator.Coordinate(date)
		if err != nil {
			fmt.Fprintln(r.out, r.color(term.Redf, "%s", err))
			continue
		}
		fmt.Fprintf(r.out, "Week value of entered date: %.3f\n", week)

		points, ok := r.readPoints(size)
		if !ok {
			return r.in.Err()
		}

		result, err := r.estimator.Estimate(date, points)
		if err != nil {
			fmt.Fprintln(r.out, r.color(term.Redf, "%s", err))
			continue
		}

		fmt.Fprintln(r.out, "\n==================== RESULTS ====================")
		fmt.Fprintf(r.out, "Newton estimate   : %s\n", r.color(term.Greenf, "%.4f", result.Newton))
		fmt.Fprintf(r.out, "Lagrange estimate : %s\n", r.color(term.Greenf, "%.4f", result.Lagrange))
		fmt.Fprintln(r.out, "=================================================")
	}
}

// readPoints asks for a point count until one in [2, size] is given
func (r *repl) readPoints(size int) (int, bool) {
	for {
		line, ok := r.prompt(fmt.Sprintf("How many data points to use (2..%d): ", size))
		if !ok {
			return 0, false
		}

		points, err := strconv.Atoi(line)
		if err == nil && points >= 2 && points <= size {
			return points, true
		}
		fmt.Fprintln(r.out, r.color(term.Yellowf, "Invalid number."))
	}
}
