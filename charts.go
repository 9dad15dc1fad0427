package co2trends

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/khuang0/co2-trends/regress"
	"github.com/khuang0/co2-trends/seasonal"
	"github.com/khuang0/co2-trends/timetable"
)

const (
	xAxisLabel = "Date"
	yAxisLabel = "CO2 levels ppm"
)

func monthLabels(t []time.Time) []string {
	labels := make([]string, len(t))
	for i, ts := range t {
		labels[i] = ts.Format("2006-01")
	}
	return labels
}

// LineForecast charts the historical points together with the forecast line
// and its upper/lower band over the extended timestamp range.
func LineForecast(tb *timetable.Table, ft *ForecastTable) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "CO2 Forecast"}),
		charts.WithXAxisOpts(opts.XAxis{Name: xAxisLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisLabel}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	historical := make([]opts.LineData, 0, ft.Len())
	forecast := make([]opts.LineData, 0, ft.Len())
	upper := make([]opts.LineData, 0, ft.Len())
	lower := make([]opts.LineData, 0, ft.Len())
	for i := 0; i < ft.Len(); i++ {
		if i < tb.Len() {
			historical = append(historical, opts.LineData{Value: tb.Y[i]})
		} else {
			historical = append(historical, opts.LineData{Value: "-"})
		}
		forecast = append(forecast, opts.LineData{Value: ft.Yhat[i]})
		upper = append(upper, opts.LineData{Value: ft.YhatUpper[i]})
		lower = append(lower, opts.LineData{Value: ft.YhatLower[i]})
	}

	line.SetXAxis(monthLabels(ft.T)).
		AddSeries("Historical", historical,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
		).
		AddSeries("Forecast", forecast).
		AddSeries("Upper", upper,
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.2}),
		).
		AddSeries("Lower", lower)
	return line
}

// LineHistory charts the historical series alone with a hoverable axis
// tooltip.
func LineHistory(tb *timetable.Table) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Mauna Loa Monthly CO2"}),
		charts.WithXAxisOpts(opts.XAxis{Name: xAxisLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisLabel}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	data := make([]opts.LineData, 0, tb.Len())
	for _, v := range tb.Y {
		data = append(data, opts.LineData{Value: v})
	}
	line.SetXAxis(monthLabels(tb.T)).AddSeries("CO2", data)
	return line
}

// ScatterFit charts a regression window as colored points overlaid with the
// red fitted line.
func ScatterFit(title string, tb *timetable.Table, fit regress.Fit, pointColor string) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: xAxisLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisLabel}),
	)

	sub := tb.Window(fit.DomainStart, fit.DomainEnd)
	points := make([]opts.ScatterData, 0, sub.Len())
	fitted := make([]opts.LineData, 0, sub.Len())
	for i := 0; i < sub.Len(); i++ {
		points = append(points, opts.ScatterData{Value: sub.Y[i], SymbolSize: 6})
		fitted = append(fitted, opts.LineData{
			Value: fit.Intercept + fit.Slope*regress.DaysSinceEpoch(sub.T[i]),
		})
	}

	scatter.SetXAxis(monthLabels(sub.T)).
		AddSeries("Observed", points,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: pointColor}),
		)

	fitLine := charts.NewLine()
	fitLine.SetXAxis(monthLabels(sub.T)).
		AddSeries("Fit", fitted,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "red"}),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)
	scatter.Overlap(fitLine)
	return scatter
}

// LineYearOverYear charts one line per year across the twelve months.
func LineYearOverYear(m *seasonal.MonthYearMatrix) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Year-over-Year Monthly CO2"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Month"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisLabel}),
	)

	months := make([]int, 12)
	for i := range months {
		months[i] = i + 1
	}
	line.SetXAxis(months)

	for _, year := range m.Years() {
		data := make([]opts.LineData, 0, 12)
		for _, v := range m.YearColumn(year) {
			if math.IsNaN(v) {
				data = append(data, opts.LineData{Value: "-"})
				continue
			}
			data = append(data, opts.LineData{Value: v})
		}
		line.AddSeries(fmt.Sprintf("%d", year), data)
	}
	return line
}

// LineDiff charts the monthly first difference with a dashed red reference
// at zero.
func LineDiff(t []time.Time, d seasonal.DiffSeries) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Monthly CO2 Difference"}),
		charts.WithXAxisOpts(opts.XAxis{Name: xAxisLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ppm change"}),
	)

	data := make([]opts.LineData, 0, len(d))
	for _, v := range d {
		if math.IsNaN(v) {
			data = append(data, opts.LineData{Value: "-"})
			continue
		}
		data = append(data, opts.LineData{Value: v})
	}

	line.SetXAxis(monthLabels(t)).
		AddSeries("Diff", data,
			charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
				Name:  "zero",
				YAxis: 0,
			}),
			charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
				Symbol: []string{"none", "none"},
				LineStyle: &opts.LineStyle{
					Color: "red",
					Type:  "dashed",
				},
			}),
		)
	return line
}

// RenderCharts writes every chart of the report as a single HTML page.
// Render errors propagate unchanged.
func RenderCharts(w io.Writer, rep *Report) error {
	page := components.NewPage()
	page.AddCharts(
		LineForecast(rep.Series, rep.Forecast),
		LineHistory(rep.Series),
		ScatterFit("CO2 Trend 1959-1964", rep.Series, rep.EarlyFit, "blue"),
		ScatterFit("CO2 Trend 1993-1997", rep.Series, rep.LateFit, "green"),
		LineYearOverYear(rep.Matrix),
		LineDiff(rep.Series.T, rep.Diff),
	)
	return page.Render(w)
}
