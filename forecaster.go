// Package co2trends analyzes the bundled monthly Mauna Loa CO2 series:
// it prepares the timestamp/value table, extends it twelve months with an
// additive decomposable forecaster, fits period-restricted trend lines and
// renders descriptive charts and summaries.
package co2trends

import (
	"errors"
	"fmt"
	"time"

	forecaster "github.com/aouyang1/go-forecaster"
	"github.com/aouyang1/go-forecaster/forecast/options"
)

var ErrNilForecaster = errors.New("no forecaster configured")

// ForecastTable is the collaborator's prediction over the historical range
// plus the horizon, ordered by timestamp.
type ForecastTable struct {
	T            []time.Time `json:"ts"`
	Yhat         []float64   `json:"yhat"`
	YhatLower    []float64   `json:"yhat_lower"`
	YhatUpper    []float64   `json:"yhat_upper"`
	Trend        []float64   `json:"trend,omitempty"`
	SeasonalYear []float64   `json:"seasonal_year,omitempty"`
}

// Len returns the number of forecast rows.
func (ft *ForecastTable) Len() int {
	if ft == nil {
		return 0
	}
	return len(ft.T)
}

// Forecaster is the narrow contract the pipeline requires of the external
// additive decomposable forecaster. Implementations must preserve the order
// of the requested timestamps.
type Forecaster interface {
	Fit(t []time.Time, y []float64) error
	Predict(t []time.Time) (*ForecastTable, error)
}

// yearly is the seasonality period for the single additive seasonal
// component. Daily and weekly components are inapplicable at monthly
// cadence and are not configured.
const yearly = time.Duration(365.25 * 24 * float64(time.Hour))

// AdditiveForecaster adapts the go-forecaster library to the pipeline
// contract: linear growth, automatic changepoint detection and one additive
// yearly seasonality. All remaining hyperparameters keep library defaults.
type AdditiveForecaster struct {
	f *forecaster.Forecaster
}

// NewAdditiveForecaster constructs the default forecaster collaborator.
func NewAdditiveForecaster() (*AdditiveForecaster, error) {
	seriesOpt := &options.Options{
		ChangepointOptions: options.ChangepointOptions{
			Auto:         true,
			EnableGrowth: true,
		},
		SeasonalityOptions: options.SeasonalityOptions{
			SeasonalityConfigs: []options.SeasonalityConfig{
				options.NewSeasonalityConfig("yearly", yearly, 4),
			},
		},
	}
	uncertaintyOpt := &options.Options{
		SeasonalityOptions: options.SeasonalityOptions{
			SeasonalityConfigs: []options.SeasonalityConfig{
				options.NewSeasonalityConfig("yearly", yearly, 2),
			},
		},
	}

	opt := &forecaster.Options{
		SeriesOptions: &forecaster.SeriesOptions{
			ForecastOptions: seriesOpt,
		},
		UncertaintyOptions: &forecaster.UncertaintyOptions{
			ForecastOptions: uncertaintyOpt,
			ResidualWindow:  100,
			ResidualZscore:  4.0,
		},
	}

	f, err := forecaster.New(opt)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize additive forecaster, %w", err)
	}
	return &AdditiveForecaster{f: f}, nil
}

// Fit trains the collaborator on the prepared table. Collaborator errors
// surface unchanged.
func (a *AdditiveForecaster) Fit(t []time.Time, y []float64) error {
	if a == nil || a.f == nil {
		return ErrNilForecaster
	}
	return a.f.Fit(t, y)
}

// Predict evaluates the fitted model over the extended timestamp sequence,
// preserving row order and performing no other post-processing.
func (a *AdditiveForecaster) Predict(t []time.Time) (*ForecastTable, error) {
	if a == nil || a.f == nil {
		return nil, ErrNilForecaster
	}

	res, err := a.f.Predict(t)
	if err != nil {
		return nil, err
	}

	ft := &ForecastTable{
		T:            res.T,
		Yhat:         res.Forecast,
		YhatLower:    res.Lower,
		YhatUpper:    res.Upper,
		Trend:        res.SeriesComponents.Trend,
		SeasonalYear: res.SeriesComponents.Seasonality,
	}
	return ft, nil
}
