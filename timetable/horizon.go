package timetable

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownFrequency = errors.New("unknown horizon frequency")
	ErrNegativeHorizon  = errors.New("horizon must be non-negative")
)

// Frequency is the cadence used to extend a table past its last timestamp.
type Frequency string

const (
	FreqMonthly Frequency = "monthly"
	FreqWeekly  Frequency = "weekly"
	FreqDaily   Frequency = "daily"
)

// ParseFrequency maps a configuration string onto a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FreqMonthly, FreqWeekly, FreqDaily:
		return Frequency(s), nil
	}
	return "", fmt.Errorf("%q, %w", s, ErrUnknownFrequency)
}

// step advances a timestamp by one period. Monthly stepping uses civil
// calendar month arithmetic with end-of-month clamping, e.g. Jan 31 plus
// one month lands on Feb 29 in a leap year and Feb 28 otherwise. The
// pipeline only exercises day-1 stamps so the clamp never triggers there.
func (f Frequency) step(t time.Time) (time.Time, error) {
	switch f {
	case FreqMonthly:
		return addMonthClamped(t), nil
	case FreqWeekly:
		return t.AddDate(0, 0, 7), nil
	case FreqDaily:
		return t.AddDate(0, 0, 1), nil
	}
	return time.Time{}, fmt.Errorf("%q, %w", f, ErrUnknownFrequency)
}

func addMonthClamped(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	// day 0 of the month after next is the last day of the next month
	last := time.Date(year, month+2, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > last {
		day = last
	}
	return time.Date(year, month+1, day, hour, min, sec, t.Nanosecond(), t.Location())
}

// Horizon returns every historical timestamp followed by h future stamps
// spaced by freq, starting one step past the last historical stamp. With
// h == 0 the result is exactly the historical timestamps.
func (tb *Table) Horizon(h int, freq Frequency) ([]time.Time, error) {
	if h < 0 {
		return nil, fmt.Errorf("%d, %w", h, ErrNegativeHorizon)
	}
	if _, err := ParseFrequency(string(freq)); err != nil {
		return nil, err
	}

	t := make([]time.Time, tb.Len(), tb.Len()+h)
	copy(t, tb.T)

	cur := tb.EndTime()
	for i := 0; i < h; i++ {
		next, err := freq.step(cur)
		if err != nil {
			return nil, err
		}
		t = append(t, next)
		cur = next
	}
	return t, nil
}
