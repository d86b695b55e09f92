package core

import (
	"slices"
	"time"
)

// HistoryEntry is one recorded estimation query
type HistoryEntry struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Date      time.Time `json:"date"`
	Week      float64   `json:"week"`
	Points    int       `json:"points"`
	Newton    float64   `json:"newton"`
	Lagrange  float64   `json:"lagrange"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryFilter selects history entries
type HistoryFilter func(entry HistoryEntry) bool

// HistoryRecorder consumes estimation results. The estimator only ever
// writes to it; reading back is left to the shells.
type HistoryRecorder interface {
	// Record appends a new entry to the log
	Record(entry *HistoryEntry) error
}

// HistoryStorage is an append-only log of past queries
type HistoryStorage interface {
	HistoryRecorder

	// Entries retrieves entries in recording order based on provided filters
	Entries(filters ...HistoryFilter) ([]HistoryEntry, error)
}

// NewHistoryEntry builds a log entry from an estimation result,
// rounding values the way they are displayed.
func NewHistoryEntry(result *Result) *HistoryEntry {
	return &HistoryEntry{
		Date:     result.Date,
		Week:     Round(result.Coordinate, 3),
		Points:   result.Points,
		Newton:   Round(result.Newton, 4),
		Lagrange: Round(result.Lagrange, 4),
	}
}

// Discrepancy returns the absolute difference between both estimates
func (e HistoryEntry) Discrepancy() float64 {
	return Distance(e.Newton, e.Lagrange)
}

// WithPoints keeps entries estimated with one of the given point counts
func WithPoints(points ...int) HistoryFilter {
	return func(entry HistoryEntry) bool {
		return slices.Contains(points, entry.Points)
	}
}

// WithDateBetween keeps entries whose queried date is within [from, to]
func WithDateBetween(from, to time.Time) HistoryFilter {
	return func(entry HistoryEntry) bool {
		return !entry.Date.Before(from) && !entry.Date.After(to)
	}
}

// WithCreatedBeforeOrEqual keeps entries recorded at or before t
func WithCreatedBeforeOrEqual(t time.Time) HistoryFilter {
	return func(entry HistoryEntry) bool {
		return !entry.CreatedAt.After(t)
	}
}
