package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHorizon(t *testing.T) {
	tb, err := New(monthlySeries(315.1, 316.2, 317.3))
	require.Nil(t, err)

	testData := map[string]struct {
		h        int
		freq     Frequency
		expected []time.Time
		err      error
	}{
		"zero horizon returns history": {
			h:        0,
			freq:     FreqMonthly,
			expected: tb.T,
		},
		"monthly": {
			h:    2,
			freq: FreqMonthly,
			expected: append(append([]time.Time{}, tb.T...),
				time.Date(1959, time.April, 1, 0, 0, 0, 0, time.UTC),
				time.Date(1959, time.May, 1, 0, 0, 0, 0, time.UTC),
			),
		},
		"weekly": {
			h:    1,
			freq: FreqWeekly,
			expected: append(append([]time.Time{}, tb.T...),
				time.Date(1959, time.March, 8, 0, 0, 0, 0, time.UTC),
			),
		},
		"daily": {
			h:    1,
			freq: FreqDaily,
			expected: append(append([]time.Time{}, tb.T...),
				time.Date(1959, time.March, 2, 0, 0, 0, 0, time.UTC),
			),
		},
		"unknown frequency": {
			h:    1,
			freq: Frequency("hourly"),
			err:  ErrUnknownFrequency,
		},
		"unknown frequency with zero horizon": {
			h:    0,
			freq: Frequency("hourly"),
			err:  ErrUnknownFrequency,
		},
		"negative horizon": {
			h:    -1,
			freq: FreqMonthly,
			err:  ErrNegativeHorizon,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			got, err := tb.Horizon(td.h, td.freq)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, got)
		})
	}
}

func TestParseFrequency(t *testing.T) {
	for _, valid := range []string{"monthly", "weekly", "daily"} {
		freq, err := ParseFrequency(valid)
		require.Nil(t, err)
		assert.Equal(t, Frequency(valid), freq)
	}

	_, err := ParseFrequency("hourly")
	assert.ErrorIs(t, err, ErrUnknownFrequency)
}

func TestAddMonthClamped(t *testing.T) {
	testData := map[string]struct {
		in, expected time.Time
	}{
		"day one is inert": {
			in:       time.Date(1959, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(1959, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		"leap year clamp": {
			in:       time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		"non-leap clamp": {
			in:       time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		"december rolls the year": {
			in:       time.Date(1997, time.December, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(1998, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, addMonthClamped(td.in))
		})
	}
}
