// Package seasonal derives the month-by-year matrix and the monthly first
// difference series from a timestamp/value table. Absent cells and the
// undefined first difference are represented as NaN.
package seasonal

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/goccy/go-json"
)

var (
	ErrLenMismatch = errors.New("time and value columns have different lengths")
	ErrNoRows      = errors.New("no rows to aggregate")
)

// MonthYearMatrix maps (month 1..12, year) to the mean value observed in
// that cell. With exactly one observation per month each cell holds that
// single value or NaN when absent.
type MonthYearMatrix struct {
	years []int
	cells [12][]float64
}

// NewMonthYearMatrix accumulates every (ts, y) row into its (month, year)
// cell mean.
func NewMonthYearMatrix(t []time.Time, y []float64) (*MonthYearMatrix, error) {
	if len(t) != len(y) {
		return nil, fmt.Errorf("%d times and %d values, %w", len(t), len(y), ErrLenMismatch)
	}
	if len(t) == 0 {
		return nil, ErrNoRows
	}

	yearSet := make(map[int]struct{})
	for _, ts := range t {
		yearSet[ts.Year()] = struct{}{}
	}
	years := make([]int, 0, len(yearSet))
	for yr := range yearSet {
		years = append(years, yr)
	}
	sort.Ints(years)

	yearIdx := make(map[int]int, len(years))
	for i, yr := range years {
		yearIdx[yr] = i
	}

	m := &MonthYearMatrix{years: years}
	var counts [12][]int
	for i := range m.cells {
		m.cells[i] = make([]float64, len(years))
		counts[i] = make([]int, len(years))
	}

	for i, ts := range t {
		row := int(ts.Month()) - 1
		col := yearIdx[ts.Year()]
		m.cells[row][col] += y[i]
		counts[row][col]++
	}
	for row := range m.cells {
		for col := range m.cells[row] {
			if counts[row][col] == 0 {
				m.cells[row][col] = math.NaN()
				continue
			}
			m.cells[row][col] /= float64(counts[row][col])
		}
	}
	return m, nil
}

// Years returns the years covered by the matrix in ascending order.
func (m *MonthYearMatrix) Years() []int {
	years := make([]int, len(m.years))
	copy(years, m.years)
	return years
}

// Cell returns the mean for a (month, year) cell. Absent cells are NaN.
func (m *MonthYearMatrix) Cell(month time.Month, year int) float64 {
	if month < time.January || month > time.December {
		return math.NaN()
	}
	for col, yr := range m.years {
		if yr == year {
			return m.cells[month-1][col]
		}
	}
	return math.NaN()
}

// YearColumn returns the twelve monthly means for one year, January first.
func (m *MonthYearMatrix) YearColumn(year int) []float64 {
	col := make([]float64, 12)
	for i := range col {
		col[i] = m.Cell(time.Month(i+1), year)
	}
	return col
}

// AnnualMean returns the mean of the twelve cells of one year, NaN if any
// cell is absent.
func (m *MonthYearMatrix) AnnualMean(year int) float64 {
	var sum float64
	for _, v := range m.YearColumn(year) {
		if math.IsNaN(v) {
			return math.NaN()
		}
		sum += v
	}
	return sum / 12.0
}

// DiffSeries is a first difference series. Absent entries are NaN and
// marshal as null.
type DiffSeries []float64

// Diff returns the first difference series: d[i] = y[i] - y[i-1] with the
// first entry NaN. The result has the same length as the input.
func Diff(y []float64) DiffSeries {
	d := make(DiffSeries, len(y))
	if len(y) == 0 {
		return d
	}
	d[0] = math.NaN()
	for i := 1; i < len(y); i++ {
		d[i] = y[i] - y[i-1]
	}
	return d
}

func (d DiffSeries) MarshalJSON() ([]byte, error) {
	vals := make([]*float64, len(d))
	for i := range d {
		if math.IsNaN(d[i]) {
			continue
		}
		v := d[i]
		vals[i] = &v
	}
	return json.Marshal(vals)
}

// MarshalJSON encodes the matrix as its year list plus one twelve-entry
// column per year, with absent cells as null.
func (m *MonthYearMatrix) MarshalJSON() ([]byte, error) {
	type column struct {
		Year   int        `json:"year"`
		Months []*float64 `json:"months"`
	}
	cols := make([]column, 0, len(m.years))
	for _, yr := range m.years {
		vals := m.YearColumn(yr)
		months := make([]*float64, 12)
		for i := range vals {
			if math.IsNaN(vals[i]) {
				continue
			}
			v := vals[i]
			months[i] = &v
		}
		cols = append(cols, column{Year: yr, Months: months})
	}
	return json.Marshal(cols)
}
