package timetable

import (
	"math"
	"testing"
	"time"

	"github.com/khuang0/co2-trends/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthlySeries(values ...float64) dataset.Series {
	return dataset.Series{
		Name:    "test",
		Start:   time.Date(1959, time.January, 1, 0, 0, 0, 0, time.UTC),
		Cadence: dataset.CadenceMonthly,
		N:       len(values),
		Values:  values,
	}
}

func TestNew(t *testing.T) {
	testData := map[string]struct {
		series   dataset.Series
		expected *Table
		err      error
	}{
		"invalid cadence": {
			series: dataset.Series{
				Cadence: "weekly",
				N:       1,
				Values:  []float64{315.1},
			},
			err: ErrInvalidCadence,
		},
		"no values": {
			series: dataset.Series{Cadence: dataset.CadenceMonthly},
			err:    ErrNoValues,
		},
		"length mismatch": {
			series: dataset.Series{
				Cadence: dataset.CadenceMonthly,
				N:       3,
				Values:  []float64{315.1, 316.2},
			},
			err: ErrLengthMismatch,
		},
		"missing value": {
			series: monthlySeries(315.1, math.NaN(), 316.2),
			err:    ErrMissingValue,
		},
		"non-positive value": {
			series: monthlySeries(315.1, -2.0),
			err:    ErrNonPositiveValue,
		},
		"valid": {
			series: monthlySeries(315.1, 316.2, 317.3),
			expected: &Table{
				T: []time.Time{
					time.Date(1959, time.January, 1, 0, 0, 0, 0, time.UTC),
					time.Date(1959, time.February, 1, 0, 0, 0, 0, time.UTC),
					time.Date(1959, time.March, 1, 0, 0, 0, 0, time.UTC),
				},
				Y: []float64{315.1, 316.2, 317.3},
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			tb, err := New(td.series)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, tb)
		})
	}
}

func TestNewDerivesFullRange(t *testing.T) {
	values := make([]float64, 468)
	for i := range values {
		values[i] = 300.0 + float64(i)*0.1
	}
	tb, err := New(monthlySeries(values...))
	require.Nil(t, err)

	assert.Equal(t, 468, tb.Len())
	assert.Equal(t, time.Date(1959, time.January, 1, 0, 0, 0, 0, time.UTC), tb.StartTime())
	assert.Equal(t, time.Date(1997, time.December, 1, 0, 0, 0, 0, time.UTC), tb.EndTime())
}

func TestWindow(t *testing.T) {
	tb, err := New(monthlySeries(315.1, 316.2, 317.3, 318.4))
	require.Nil(t, err)

	testData := map[string]struct {
		lo, hi   time.Time
		expected []float64
	}{
		"inclusive bounds": {
			lo:       time.Date(1959, time.February, 1, 0, 0, 0, 0, time.UTC),
			hi:       time.Date(1959, time.March, 1, 0, 0, 0, 0, time.UTC),
			expected: []float64{316.2, 317.3},
		},
		"covers all": {
			lo:       time.Date(1958, time.January, 1, 0, 0, 0, 0, time.UTC),
			hi:       time.Date(1960, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected: []float64{315.1, 316.2, 317.3, 318.4},
		},
		"empty": {
			lo:       time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
			hi:       time.Date(1971, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected: []float64{},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			sub := tb.Window(td.lo, td.hi)
			assert.Equal(t, td.expected, sub.Y)
		})
	}
}

func TestCopy(t *testing.T) {
	tb, err := New(monthlySeries(315.1, 316.2))
	require.Nil(t, err)

	cp := tb.Copy()
	require.Equal(t, tb, cp)

	cp.Y[0] = 0.0
	assert.NotEqual(t, tb.Y[0], cp.Y[0])
}
