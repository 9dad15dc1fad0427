// Package timetable converts a declared monthly series into the canonical
// timestamp/value table consumed by every downstream stage. Timestamps are
// derived from the declared start, anchored to day 1 at 00:00 UTC, one per
// calendar month.
package timetable

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/khuang0/co2-trends/dataset"
)

var (
	ErrInvalidCadence        = errors.New("declared cadence is not monthly")
	ErrLengthMismatch        = errors.New("declared length does not match number of values")
	ErrMissingValue          = errors.New("series contains a missing value")
	ErrNonPositiveValue      = errors.New("series contains a non-positive value")
	ErrNonMonotoneTimestamps = errors.New("derived timestamps are not strictly increasing")
	ErrNoValues              = errors.New("series has no values")
)

// Table is an ordered timestamp/value table. Both slices always have the
// same length and T is strictly increasing at a one calendar month spacing.
// Tables are never mutated after construction.
type Table struct {
	T []time.Time
	Y []float64
}

// New validates the declared series and derives its timestamp column.
// Missing values are fatal; no imputation is performed.
func New(s dataset.Series) (*Table, error) {
	if s.Cadence != dataset.CadenceMonthly {
		return nil, fmt.Errorf("series %q declares cadence %q, %w", s.Name, s.Cadence, ErrInvalidCadence)
	}
	if len(s.Values) == 0 {
		return nil, fmt.Errorf("series %q, %w", s.Name, ErrNoValues)
	}
	if s.N != len(s.Values) {
		return nil, fmt.Errorf("series %q declares %d values but carries %d, %w", s.Name, s.N, len(s.Values), ErrLengthMismatch)
	}

	t := make([]time.Time, len(s.Values))
	y := make([]float64, len(s.Values))
	start := time.Date(s.Start.Year(), s.Start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i, v := range s.Values {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("series %q at index %d, %w", s.Name, i, ErrMissingValue)
		}
		if v <= 0 {
			return nil, fmt.Errorf("series %q at index %d has %f, %w", s.Name, i, v, ErrNonPositiveValue)
		}
		t[i] = start.AddDate(0, i, 0)
		y[i] = v
	}

	for i := 1; i < len(t); i++ {
		if !t[i].After(t[i-1]) {
			return nil, fmt.Errorf("at index %d, %w", i, ErrNonMonotoneTimestamps)
		}
	}

	return &Table{T: t, Y: y}, nil
}

// Len returns the number of rows.
func (tb *Table) Len() int {
	if tb == nil {
		return 0
	}
	return len(tb.T)
}

// StartTime returns the first timestamp or the zero time for an empty table.
func (tb *Table) StartTime() time.Time {
	if tb.Len() == 0 {
		return time.Time{}
	}
	return tb.T[0]
}

// EndTime returns the last timestamp or the zero time for an empty table.
func (tb *Table) EndTime() time.Time {
	if tb.Len() == 0 {
		return time.Time{}
	}
	return tb.T[len(tb.T)-1]
}

// Window returns a copy of the rows with lo <= ts <= hi, both bounds
// inclusive. The result may be empty; callers decide whether that is fatal.
func (tb *Table) Window(lo, hi time.Time) *Table {
	t := make([]time.Time, 0, tb.Len())
	y := make([]float64, 0, tb.Len())
	for i := 0; i < tb.Len(); i++ {
		if tb.T[i].Before(lo) || tb.T[i].After(hi) {
			continue
		}
		t = append(t, tb.T[i])
		y = append(y, tb.Y[i])
	}
	return &Table{T: t, Y: y}
}

// Copy returns a deep copy of the table.
func (tb *Table) Copy() *Table {
	t := make([]time.Time, tb.Len())
	y := make([]float64, tb.Len())
	copy(t, tb.T)
	copy(y, tb.Y)
	return &Table{T: t, Y: y}
}
