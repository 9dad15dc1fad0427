// Command co2trends runs the Mauna Loa CO2 analysis over the bundled
// series and writes the text report, the chart page and an optional JSON
// artifact.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pkg/profile"

	co2trends "github.com/khuang0/co2-trends"
	"github.com/khuang0/co2-trends/dataset"
	"github.com/khuang0/co2-trends/timetable"
)

func main() {
	horizon := flag.Int("horizon", 12, "number of future periods to forecast")
	freq := flag.String("freq", string(timetable.FreqMonthly), "horizon frequency: monthly, weekly or daily")
	chartPath := flag.String("charts", "co2_report.html", "chart page output path, empty to skip")
	jsonPath := flag.String("json", "", "JSON report output path, empty to skip")
	profileCPU := flag.Bool("profile", false, "write a CPU profile to the working directory")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *profileCPU {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if err := run(*horizon, *freq, *chartPath, *jsonPath, log); err != nil {
		log.Error("pipeline failed", "error", err)
		os.Exit(1)
	}
}

func run(horizon int, freq, chartPath, jsonPath string, log *slog.Logger) error {
	horizonFreq, err := timetable.ParseFrequency(freq)
	if err != nil {
		return err
	}

	series, err := dataset.MaunaLoa()
	if err != nil {
		return err
	}
	tb, err := timetable.New(series)
	if err != nil {
		return err
	}

	fc, err := co2trends.NewAdditiveForecaster()
	if err != nil {
		return err
	}

	cfg := co2trends.DefaultConfig()
	cfg.HorizonPeriods = horizon
	cfg.HorizonFreq = horizonFreq

	pipeline, err := co2trends.New(cfg, fc, log)
	if err != nil {
		return err
	}
	rep, err := pipeline.Run(tb)
	if err != nil {
		return err
	}

	if err := rep.TablePrint(os.Stdout); err != nil {
		return err
	}

	if chartPath != "" {
		f, err := os.Create(chartPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := co2trends.RenderCharts(f, rep); err != nil {
			return err
		}
		log.Info("charts written", "path", chartPath)
	}

	if jsonPath != "" {
		f, err := os.Create(jsonPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := rep.WriteJSON(f); err != nil {
			return err
		}
		log.Info("json report written", "path", jsonPath)
	}
	return nil
}
