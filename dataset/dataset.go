// Package dataset bundles the monthly Mauna Loa atmospheric CO2 series used
// by the analysis pipeline. The series is embedded at build time so the
// pipeline has no runtime data dependency.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"
)

var (
	ErrMissingHeader = errors.New("dataset is missing its header row")
	ErrBadRecord     = errors.New("dataset record could not be parsed")
)

// CadenceMonthly is the only cadence the bundled series declares. The
// timetable package rejects anything else.
const CadenceMonthly = "monthly"

// Series is a declared univariate series: a start instant, a cadence, a
// declared observation count and the raw values. The declaration is
// validated downstream against the values actually present.
type Series struct {
	Name    string
	Start   time.Time
	Cadence string
	N       int
	Values  []float64
}

//go:embed co2.csv
var co2CSV []byte

// MaunaLoaLength is the declared number of monthly observations in the
// bundled series, January 1959 through December 1997.
const MaunaLoaLength = 468

// MaunaLoa returns the bundled Mauna Loa monthly CO2 series in ppm.
func MaunaLoa() (Series, error) {
	values, start, err := decodeCSV(bytes.NewReader(co2CSV))
	if err != nil {
		return Series{}, fmt.Errorf("unable to decode bundled co2 series, %w", err)
	}
	return Series{
		Name:    "co2",
		Start:   start,
		Cadence: CadenceMonthly,
		N:       MaunaLoaLength,
		Values:  values,
	}, nil
}

// decodeCSV reads year,month,ppm records and returns the values along with
// the stamp of the first record anchored to day 1 at 00:00 UTC.
func decodeCSV(r io.Reader) ([]float64, time.Time, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3

	header, err := cr.Read()
	if err != nil {
		return nil, time.Time{}, ErrMissingHeader
	}
	if header[0] != "year" || header[1] != "month" || header[2] != "ppm" {
		return nil, time.Time{}, fmt.Errorf("unexpected header %v, %w", header, ErrMissingHeader)
	}

	var values []float64
	var start time.Time
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, time.Time{}, err
		}

		year, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("row %d year %q, %w", len(values)+1, rec[0], ErrBadRecord)
		}
		month, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("row %d month %q, %w", len(values)+1, rec[1], ErrBadRecord)
		}
		if month < 1 || month > 12 {
			return nil, time.Time{}, fmt.Errorf("row %d month %d out of range, %w", len(values)+1, month, ErrBadRecord)
		}
		ppm, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("row %d ppm %q, %w", len(values)+1, rec[2], ErrBadRecord)
		}

		if len(values) == 0 {
			start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		}
		values = append(values, ppm)
	}
	return values, start, nil
}
