package web

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/yorrLorenz/eggprice/pkg/core"
	"github.com/yorrLorenz/eggprice/pkg/interpolate"
	"github.com/yorrLorenz/eggprice/pkg/report"
	"gonum.org/v1/gonum/floats"
)

// form holds the submitted query, echoed back into the page
type form struct {
	Date   string
	Points string
}

// page is the data rendered by the index template
type page struct {
	Form      form
	Error     string
	Result    *core.Result
	MaxPoints int
	Rows      []report.WeekRow
	History   []core.HistoryEntry
}

// point is a JSON serializable sample of the series or of the Newton curve
type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (s *Server) handleScript(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	fmt.Fprint(w, s.scriptContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		s.log.Error("Failed to write health status: ", err)
	}
}

// handleIndex renders the form page, estimating first when a query is posted
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := page{MaxPoints: s.estimator.Series().Size()}

	switch r.Method {
	case http.MethodGet:
		if last := s.lastResult(); last != nil {
			data.Result = last
			data.Form = form{Date: last.Date.Format(time.DateOnly), Points: strconv.Itoa(last.Points)}
		}
	case http.MethodPost:
		data.Form = form{
			Date:   strings.TrimSpace(r.FormValue("date")),
			Points: strings.TrimSpace(r.FormValue("n_points")),
		}
		result, err := s.estimate(data.Form)
		s.metrics.observe(result, err)
		if err != nil {
			s.log.WithError(err).Debug("Rejected query")
			// rejected queries are shown in the page banner, not as an HTTP error
			data.Error = err.Error()
			break
		}
		s.remember(result)
		data.Result = result
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data.Rows = report.WeekRows(s.estimator.Series(), s.estimator.BaseDate(), s.selectedWeeks())

	if s.history != nil {
		entries, err := s.historyEntries()
		if err != nil {
			s.log.WithError(err).Error("Failed to read history")
		}
		data.History = latest(entries, historyRows)
	}

	var buffer bytes.Buffer
	if err := s.indexHTML.Execute(&buffer, data); err != nil {
		s.log.Error("Template execution failed: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buffer.Bytes()); err != nil {
		s.log.Error("Failed writing page: ", err)
	}
}

func (s *Server) estimate(f form) (*core.Result, error) {
	date, err := time.Parse(time.DateOnly, f.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", f.Date)
	}

	points, err := strconv.Atoi(f.Points)
	if err != nil {
		return nil, fmt.Errorf("invalid number of points %q", f.Points)
	}

	return s.estimator.Estimate(date, points)
}

// handleData returns the series, the last selection and samples of its Newton curve
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	observations := s.estimator.Series().Observations()
	response := map[string]interface{}{
		"observations": observations,
		"selection":    []core.Observation{},
		"curve":        []point{},
		"result":       nil,
	}

	if last := s.lastResult(); last != nil {
		response["selection"] = last.Selection
		response["curve"] = curve(last)
		response["result"] = last
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.log.Error("JSON encoding failed: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// handleHistory exports the history log as CSV
func (s *Server) handleHistory(w http.ResponseWriter, _ *http.Request) {
	if s.history == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	entries, err := s.historyEntries()
	if err != nil {
		s.log.WithError(err).Error("Failed to read history")
		http.Error(w, "Failed to read history", http.StatusInternalServerError)
		return
	}

	buffer := bytes.NewBuffer(nil)
	csvWriter := csv.NewWriter(buffer)

	if err := csvWriter.Write([]string{
		"id", "created_at", "date", "week", "points", "newton", "lagrange",
	}); err != nil {
		s.log.Error("Failed writing CSV header: ", err)
		http.Error(w, "Failed to generate CSV", http.StatusInternalServerError)
		return
	}

	for _, entry := range entries {
		record := []string{
			strconv.FormatInt(entry.ID, 10),
			entry.CreatedAt.Format(time.RFC3339),
			entry.Date.Format(time.DateOnly),
			strconv.FormatFloat(entry.Week, 'f', 3, 64),
			strconv.Itoa(entry.Points),
			strconv.FormatFloat(entry.Newton, 'f', 4, 64),
			strconv.FormatFloat(entry.Lagrange, 'f', 4, 64),
		}
		if err := csvWriter.Write(record); err != nil {
			s.log.Error("Failed writing CSV data: ", err)
			http.Error(w, "Failed to generate CSV", http.StatusInternalServerError)
			return
		}
	}
	csvWriter.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment;filename=history.csv")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buffer.Bytes()); err != nil {
		s.log.Error("Failed writing CSV response: ", err)
	}
}

// curve samples the Newton polynomial of result evenly over the span of its selection
func curve(result *core.Result) []point {
	xs := result.Selection.Xs()
	if len(xs) == 0 {
		return []point{}
	}

	polynomial := interpolate.NewtonPolynomial{
		Coefficients: result.Coefficients,
		Nodes:        xs,
	}

	samples := floats.Span(make([]float64, curveSamples), floats.Min(xs), floats.Max(xs))
	points := make([]point, len(samples))
	for i, x := range samples {
		points[i] = point{X: x, Y: polynomial.Eval(x)}
	}
	return points
}

// latest returns up to n most recent entries, newest first
func latest(entries []core.HistoryEntry, n int) []core.HistoryEntry {
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	out := slices.Clone(entries)
	slices.Reverse(out)
	return out
}
