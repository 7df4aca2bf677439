package calculator

import (
	"errors"
	"math"
)

// Delta computes the elementwise difference a[i] - b[i] over two columns
// of equal length.
func Delta(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, errors.New("column lengths differ")
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out, nil
}

// RollingMean computes the trailing moving average of values with the
// given window. The window shrinks at the start of the series (minimum
// size 1), so out[0] == values[0] and every row gets a defined mean.
func RollingMean(values []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}
	out := make([]float64, len(values))
	for i := range values {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		sum := 0.0
		for j := start; j <= i; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(i-start+1)
	}
	return out, nil
}

// Mean returns the arithmetic mean of values, or NaN for an empty column.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Max returns the largest value, or NaN for an empty column.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Min returns the smallest value, or NaN for an empty column.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
