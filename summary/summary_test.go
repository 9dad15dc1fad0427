package summary

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantile(t *testing.T) {
	testData := map[string]struct {
		sorted   []float64
		p        float64
		expected float64
	}{
		"empty":            {sorted: nil, p: 0.5, expected: math.NaN()},
		"single":           {sorted: []float64{3}, p: 0.25, expected: 3},
		"even median":      {sorted: []float64{1, 2, 3, 4}, p: 0.5, expected: 2.5},
		"even q1":          {sorted: []float64{1, 2, 3, 4}, p: 0.25, expected: 1.75},
		"even q3":          {sorted: []float64{1, 2, 3, 4}, p: 0.75, expected: 3.25},
		"odd median exact": {sorted: []float64{1, 2, 9}, p: 0.5, expected: 2},
		"min":              {sorted: []float64{1, 2, 9}, p: 0, expected: 1},
		"max":              {sorted: []float64{1, 2, 9}, p: 1, expected: 9},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			got := Quantile(td.sorted, td.p)
			if math.IsNaN(td.expected) {
				assert.True(t, math.IsNaN(got))
				return
			}
			assert.InDelta(t, td.expected, got, 1e-12)
		})
	}
}

func TestDescribe(t *testing.T) {
	t.Run("all absent", func(t *testing.T) {
		_, err := Describe([]float64{math.NaN(), math.NaN()})
		assert.ErrorIs(t, err, ErrNoPresentValues)
	})

	t.Run("excludes absent entries", func(t *testing.T) {
		s, err := Describe([]float64{1, math.NaN(), 2, 3, math.NaN(), 4})
		require.Nil(t, err)

		assert.Equal(t, 6, s.N)
		assert.Equal(t, 2, s.Absent)
		assert.Equal(t, 1.0, s.Min)
		assert.Equal(t, 4.0, s.Max)
		assert.InDelta(t, 2.5, s.Mean, 1e-12)
		assert.InDelta(t, 2.5, s.Median, 1e-12)
		assert.InDelta(t, 1.75, s.Q1, 1e-12)
		assert.InDelta(t, 3.25, s.Q3, 1e-12)
		// sample standard deviation with the N-1 denominator
		assert.InDelta(t, math.Sqrt(5.0/3.0), s.StdDev, 1e-12)
	})
}

func TestTimeRange(t *testing.T) {
	start, end := TimeRange(nil)
	assert.True(t, start.IsZero())
	assert.True(t, end.IsZero())

	stamps := []time.Time{
		time.Date(1959, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1959, time.February, 1, 0, 0, 0, 0, time.UTC),
	}
	start, end = TimeRange(stamps)
	assert.Equal(t, stamps[0], start)
	assert.Equal(t, stamps[1], end)
}
