package co2trends

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/khuang0/co2-trends/summary"
)

// TablePrint writes the human readable report: summary statistics for the
// historical and forecast value columns, both window slopes in native and
// rescaled units, and the full-series linear fit diagnostics.
func (r *Report) TablePrint(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Mauna Loa CO2 report, %s to %s\n\n",
		r.HistoryStart.Format("2006-01"), r.HistoryEnd.Format("2006-01")); err != nil {
		return err
	}

	if err := statsTable(w, "Historical ppm", r.HistoryStats); err != nil {
		return err
	}
	if err := statsTable(w, "Forecast ppm", r.ForecastStats); err != nil {
		return err
	}

	tbl := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tbl, "Window\tRows\tppm/day\tppm/month\tppm/year\t\n")
	fmt.Fprintf(tbl, "%s to %s\t%d\t%.6f\t%.4f\t%.4f\t\n",
		r.EarlyFit.DomainStart.Format("2006-01"), r.EarlyFit.DomainEnd.Format("2006-01"),
		r.EarlyFit.N, r.EarlyFit.Slope, r.EarlyFit.PerMonth(), r.EarlyFit.PerYear())
	fmt.Fprintf(tbl, "%s to %s\t%d\t%.6f\t%.4f\t%.4f\t\n",
		r.LateFit.DomainStart.Format("2006-01"), r.LateFit.DomainEnd.Format("2006-01"),
		r.LateFit.N, r.LateFit.Slope, r.LateFit.PerMonth(), r.LateFit.PerYear())
	if err := tbl.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "slope ratio late/early: %.2f\n\n", r.LateFit.Slope/r.EarlyFit.Slope)

	d := r.Diagnostics
	fmt.Fprintf(w, "Full series linear fit:\n")
	tbl = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tbl, "intercept\t%.4f\t\n", d.Intercept)
	fmt.Fprintf(tbl, "slope (ppm/day)\t%.6f\t\n", d.Slope)
	fmt.Fprintf(tbl, "slope (ppm/year)\t%.4f\t\n", d.PerYear())
	fmt.Fprintf(tbl, "R-squared\t%.4f\t\n", d.RSquared)
	fmt.Fprintf(tbl, "adj. R-squared\t%.4f\t\n", d.AdjRSquared)
	fmt.Fprintf(tbl, "residual std. error\t%.4f\t\n", d.ResidualStdErr)
	fmt.Fprintf(tbl, "F-statistic\t%.1f\t\n", d.FStatistic)
	fmt.Fprintf(tbl, "p-value\t%.3g\t\n", d.PValue)
	return tbl.Flush()
}

func statsTable(w io.Writer, title string, s summary.Stats) error {
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return err
	}
	tbl := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tbl, "min\tQ1\tmedian\tmean\tQ3\tmax\tsd\tabsent\t\n")
	fmt.Fprintf(tbl, "%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%d\t\n",
		s.Min, s.Q1, s.Median, s.Mean, s.Q3, s.Max, s.StdDev, s.Absent)
	if err := tbl.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// WriteJSON writes the machine readable report.
func (r *Report) WriteJSON(w io.Writer) error {
	bytes, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(bytes)
	return err
}
