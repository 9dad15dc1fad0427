package co2trends

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/khuang0/co2-trends/regress"
	"github.com/khuang0/co2-trends/seasonal"
	"github.com/khuang0/co2-trends/summary"
	"github.com/khuang0/co2-trends/timetable"
)

// DateRange is an inclusive [Lo, Hi] regression window.
type DateRange struct {
	Lo time.Time `json:"lo"`
	Hi time.Time `json:"hi"`
}

// Config holds the recognized pipeline options.
type Config struct {
	HorizonPeriods int
	HorizonFreq    timetable.Frequency
	EarlyWindow    DateRange
	LateWindow     DateRange
}

// DefaultConfig reproduces the report's exercised configuration: a twelve
// month horizon and the 1959-1964 and 1993-1997 regression windows.
func DefaultConfig() Config {
	return Config{
		HorizonPeriods: 12,
		HorizonFreq:    timetable.FreqMonthly,
		EarlyWindow: DateRange{
			Lo: time.Date(1959, time.January, 1, 0, 0, 0, 0, time.UTC),
			Hi: time.Date(1964, time.December, 1, 0, 0, 0, 0, time.UTC),
		},
		LateWindow: DateRange{
			Lo: time.Date(1993, time.January, 1, 0, 0, 0, 0, time.UTC),
			Hi: time.Date(1997, time.December, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// Report aggregates every artifact of one pipeline execution.
type Report struct {
	Series   *timetable.Table `json:"-"`
	Forecast *ForecastTable   `json:"forecast"`

	HistoryStats  summary.Stats `json:"history_stats"`
	HistoryStart  time.Time     `json:"history_start"`
	HistoryEnd    time.Time     `json:"history_end"`
	ForecastStats summary.Stats `json:"forecast_stats"`

	EarlyFit    regress.Fit         `json:"early_fit"`
	LateFit     regress.Fit         `json:"late_fit"`
	Diagnostics regress.Diagnostics `json:"diagnostics"`

	Matrix *seasonal.MonthYearMatrix `json:"month_year_matrix"`
	Diff   seasonal.DiffSeries       `json:"diff"`
}

// Pipeline runs the deterministic sequence of transformations over a
// prepared table. Every stage is a pure function of its inputs; the first
// error aborts the run and no partial artifacts are produced.
type Pipeline struct {
	cfg Config
	fc  Forecaster
	log *slog.Logger
}

// New creates a pipeline with the given configuration and forecaster
// collaborator. A nil logger falls back to slog.Default.
func New(cfg Config, fc Forecaster, log *slog.Logger) (*Pipeline, error) {
	if fc == nil {
		return nil, ErrNilForecaster
	}
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{cfg: cfg, fc: fc, log: log}, nil
}

// Run executes the analysis over the prepared table and returns the full
// report.
func (p *Pipeline) Run(tb *timetable.Table) (*Report, error) {
	rep := &Report{Series: tb}

	histStats, err := summary.Describe(tb.Y)
	if err != nil {
		return nil, fmt.Errorf("summarizing history, %w", err)
	}
	rep.HistoryStats = histStats
	rep.HistoryStart, rep.HistoryEnd = summary.TimeRange(tb.T)
	p.log.Info("summarized history", "component", "summary", "rows", tb.Len())

	horizon, err := tb.Horizon(p.cfg.HorizonPeriods, p.cfg.HorizonFreq)
	if err != nil {
		return nil, fmt.Errorf("building horizon, %w", err)
	}

	if err := p.fc.Fit(tb.T, tb.Y); err != nil {
		return nil, fmt.Errorf("forecaster fit, %w", err)
	}
	forecast, err := p.fc.Predict(horizon)
	if err != nil {
		return nil, fmt.Errorf("forecaster predict, %w", err)
	}
	rep.Forecast = forecast
	p.log.Info("forecast extended", "component", "forecast",
		"history", tb.Len(), "horizon", p.cfg.HorizonPeriods)

	forecastStats, err := summary.Describe(forecast.Yhat)
	if err != nil {
		return nil, fmt.Errorf("summarizing forecast, %w", err)
	}
	rep.ForecastStats = forecastStats

	earlyFit, err := regress.Window(tb, p.cfg.EarlyWindow.Lo, p.cfg.EarlyWindow.Hi)
	if err != nil {
		return nil, fmt.Errorf("early window regression, %w", err)
	}
	rep.EarlyFit = earlyFit

	lateFit, err := regress.Window(tb, p.cfg.LateWindow.Lo, p.cfg.LateWindow.Hi)
	if err != nil {
		return nil, fmt.Errorf("late window regression, %w", err)
	}
	rep.LateFit = lateFit
	p.log.Info("window slopes fit", "component", "regress",
		"early_ppm_per_day", earlyFit.Slope, "late_ppm_per_day", lateFit.Slope)

	diag, err := regress.Diagnose(tb)
	if err != nil {
		return nil, fmt.Errorf("full series diagnostics, %w", err)
	}
	rep.Diagnostics = diag

	matrix, err := seasonal.NewMonthYearMatrix(tb.T, tb.Y)
	if err != nil {
		return nil, fmt.Errorf("month-year aggregation, %w", err)
	}
	rep.Matrix = matrix
	rep.Diff = seasonal.Diff(tb.Y)

	return rep, nil
}
