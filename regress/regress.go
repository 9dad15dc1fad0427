// Package regress fits ordinary least squares lines over date-bounded
// subsets of a timestamp/value table. Timestamps are mapped to days since
// 1970-01-01 UTC, so native slope units are ppm per day; rescaled
// presentations to ppm per month and per year are derived from that.
package regress

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/khuang0/co2-trends/timetable"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrEmptySubset   = errors.New("regression window selects zero rows")
	ErrDegenerateFit = errors.New("regression window selects fewer than two rows")
)

// Rescaling factors from the native ppm/day slope unit.
const (
	DaysPerMonth = 30.4375
	DaysPerYear  = 365.25
)

var epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// DaysSinceEpoch maps a timestamp onto the numeric date axis used for
// fitting: fractional days since 1970-01-01 UTC. Stamps before the epoch map
// to negative values.
func DaysSinceEpoch(t time.Time) float64 {
	return t.Sub(epoch).Hours() / 24.0
}

// Fit is an ordinary least squares line over a date-bounded subset.
// Slope is in ppm per day.
type Fit struct {
	Slope       float64   `json:"slope_ppm_per_day"`
	Intercept   float64   `json:"intercept"`
	N           int       `json:"n"`
	DomainStart time.Time `json:"domain_start"`
	DomainEnd   time.Time `json:"domain_end"`
}

// PerMonth reports the slope rescaled to ppm per mean calendar month.
func (f Fit) PerMonth() float64 { return f.Slope * DaysPerMonth }

// PerYear reports the slope rescaled to ppm per Julian year.
func (f Fit) PerYear() float64 { return f.Slope * DaysPerYear }

// Window fits a least squares line over the rows with lo <= ts <= hi. The
// closed form normal equations are evaluated by gonum's simple linear
// regression.
func Window(tb *timetable.Table, lo, hi time.Time) (Fit, error) {
	sub := tb.Window(lo, hi)
	switch sub.Len() {
	case 0:
		return Fit{}, fmt.Errorf("window [%s, %s], %w",
			lo.Format(time.DateOnly), hi.Format(time.DateOnly), ErrEmptySubset)
	case 1:
		return Fit{}, fmt.Errorf("window [%s, %s], %w",
			lo.Format(time.DateOnly), hi.Format(time.DateOnly), ErrDegenerateFit)
	}

	x := make([]float64, sub.Len())
	for i, ts := range sub.T {
		x[i] = DaysSinceEpoch(ts)
	}
	intercept, slope := stat.LinearRegression(x, sub.Y, nil, false)

	return Fit{
		Slope:       slope,
		Intercept:   intercept,
		N:           sub.Len(),
		DomainStart: sub.StartTime(),
		DomainEnd:   sub.EndTime(),
	}, nil
}

// Diagnostics extends a full-series fit with the goodness-of-fit figures of
// a simple linear model: coefficient of determination, its adjusted form,
// residual standard error and the overall F test.
type Diagnostics struct {
	Fit
	RSquared       float64 `json:"r_squared"`
	AdjRSquared    float64 `json:"adj_r_squared"`
	ResidualStdErr float64 `json:"residual_std_err"`
	FStatistic     float64 `json:"f_statistic"`
	PValue         float64 `json:"p_value"`
}

// Diagnose fits the whole table and reports fit diagnostics. The p-value is
// the upper tail of an F(1, n-2) distribution at the observed statistic.
func Diagnose(tb *timetable.Table) (Diagnostics, error) {
	fit, err := Window(tb, tb.StartTime(), tb.EndTime())
	if err != nil {
		return Diagnostics{}, err
	}

	n := tb.Len()
	var rss float64
	predicted := make([]float64, n)
	for i, ts := range tb.T {
		predicted[i] = fit.Intercept + fit.Slope*DaysSinceEpoch(ts)
		resid := tb.Y[i] - predicted[i]
		rss += resid * resid
	}

	r2 := stat.RSquaredFrom(predicted, tb.Y, nil)
	adj := 1.0 - (1.0-r2)*float64(n-1)/float64(n-2)
	fStat := r2 / (1.0 - r2) * float64(n-2)
	fDist := distuv.F{D1: 1, D2: float64(n - 2)}

	return Diagnostics{
		Fit:            fit,
		RSquared:       r2,
		AdjRSquared:    adj,
		ResidualStdErr: stdErrFromRSS(rss, n),
		FStatistic:     fStat,
		PValue:         fDist.Survival(fStat),
	}, nil
}

func stdErrFromRSS(rss float64, n int) float64 {
	return math.Sqrt(rss / float64(n-2))
}
