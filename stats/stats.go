// Package stats holds the numeric helpers shared by the scoring engines.
package stats

import (
	"errors"
	"math"
)

var ErrEmptySeries = errors.New("empty series")

type Direction int

const (
	Stable Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "stable"
	}
}

func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean of values
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptySeries
	}
	return Sum(values) / float64(len(values)), nil
}

// StdDev returns the population standard deviation of values
func StdDev(values []float64) (float64, error) {
	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}

	var squares float64
	for _, v := range values {
		squares += (v - mean) * (v - mean)
	}

	return math.Sqrt(squares / float64(len(values))), nil
}

// TrendFromDelta classifies a signed change against a threshold. When
// inclusive is set a delta equal to the threshold already counts as a move.
func TrendFromDelta(delta, threshold float64, inclusive bool) Direction {
	if inclusive {
		switch {
		case delta >= threshold:
			return Up
		case delta <= -threshold:
			return Down
		}
		return Stable
	}

	switch {
	case delta > threshold:
		return Up
	case delta < -threshold:
		return Down
	}
	return Stable
}

// Round rounds value half away from zero to the given decimal places
func Round(value float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(value*p) / p
}
