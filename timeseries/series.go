// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"errors"
	"math"
	"sort"

	"cloud.google.com/go/civil"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Series represents a single dated column of values.
type Series struct {
	Dates  []civil.Date
	Values []float64
	Name   string
}

// NewSeries creates a series with explicit dates.
func NewSeries(dates []civil.Date, values []float64) (*Series, error) {
	if len(dates) != len(values) {
		return nil, errors.New("dates and values must have the same length")
	}
	return &Series{
		Dates:  dates,
		Values: values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return stat.Variance(s.Values, nil)
}

// Std calculates the standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Min(s.Values)
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Max(s.Values)
}

// Median returns the median value of the series.
func (s *Series) Median() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Log applies natural logarithm transformation. Non-positive values become NaN.
func (s *Series) Log() *Series {
	result := make([]float64, len(s.Values))
	for i, v := range s.Values {
		if v > 0 {
			result[i] = math.Log(v)
		} else {
			result[i] = math.NaN()
		}
	}

	dates := make([]civil.Date, len(s.Dates))
	copy(dates, s.Dates)

	return &Series{
		Dates:  dates,
		Values: result,
		Name:   s.Name + "_log",
	}
}

// MovingAverage calculates a trailing moving average with the given window.
// The result is aligned with the input. A value is NaN when its window is
// incomplete or holds a NaN.
func (s *Series) MovingAverage(window int) *Series {
	result := make([]float64, len(s.Values))
	sum, gaps := 0.0, 0
	for i, v := range s.Values {
		if math.IsNaN(v) {
			gaps++
		} else {
			sum += v
		}
		if window > 0 && i >= window {
			if old := s.Values[i-window]; math.IsNaN(old) {
				gaps--
			} else {
				sum -= old
			}
		}

		switch {
		case window <= 0 || i < window-1 || gaps > 0:
			result[i] = math.NaN()
		default:
			result[i] = sum / float64(window)
		}
	}

	dates := make([]civil.Date, len(s.Dates))
	copy(dates, s.Dates)

	return &Series{
		Dates:  dates,
		Values: result,
		Name:   s.Name + "_ma",
	}
}
