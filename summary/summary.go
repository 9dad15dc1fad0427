// Package summary computes descriptive statistics for a value column:
// order statistics with linearly interpolated quartiles, sample moments and
// the count of absent (NaN) entries.
package summary

import (
	"errors"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

var ErrNoPresentValues = errors.New("no present values to summarize")

// Stats describes a value column. Quartiles interpolate between order
// statistics at positions 1 + p*(n-1), the convention used by the reference
// environment. StdDev uses the sample (N-1) denominator.
type Stats struct {
	N      int     `json:"n"`
	Absent int     `json:"absent"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Mean   float64 `json:"mean"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"stddev"`
}

// Describe summarizes a value column, excluding NaN entries from every
// statistic and reporting them as the absent count.
func Describe(y []float64) (Stats, error) {
	present := make([]float64, 0, len(y))
	absent := 0
	for _, v := range y {
		if math.IsNaN(v) {
			absent++
			continue
		}
		present = append(present, v)
	}
	if len(present) == 0 {
		return Stats{}, ErrNoPresentValues
	}

	sort.Float64s(present)
	mean, stddev := stat.MeanStdDev(present, nil)

	return Stats{
		N:      len(y),
		Absent: absent,
		Min:    present[0],
		Q1:     Quantile(present, 0.25),
		Median: Quantile(present, 0.5),
		Mean:   mean,
		Q3:     Quantile(present, 0.75),
		Max:    present[len(present)-1],
		StdDev: stddev,
	}, nil
}

// Quantile interpolates the p-quantile of an ascending sorted slice at
// position 1 + p*(n-1).
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// TimeRange returns the first and last entries of an ordered timestamp
// column, zero times when the column is empty.
func TimeRange(t []time.Time) (time.Time, time.Time) {
	if len(t) == 0 {
		return time.Time{}, time.Time{}
	}
	return t[0], t[len(t)-1]
}
