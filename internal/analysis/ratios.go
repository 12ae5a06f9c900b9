// Package analysis estimates Lotka-Volterra ratios from Wa-Tor population series.
//
// The continuum model is dx/dt = dx - cxy for fish and dy/dt = bxy - ay for
// sharks, with fixed point (a/b, d/c). Sharks peak when the fish count passes
// a/b and fish peak when the shark count passes d/c, so reading one series at
// the other's maxima estimates both ratios.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Chunk thresholds as fractions of the series range.
const (
	ChunkStart = 1.0 / 4
	ChunkEnd   = 1.0 / 5
)

// LocalMaxima returns the x values at which y peaks.
//
// To filter noise the y series is split into chunks: a chunk opens once y
// rises above ChunkStart of its range and closes once y falls to ChunkEnd
// of its range or below. For every closed chunk the x at the largest y seen
// inside it is returned. A chunk still open at the end is discarded.
func LocalMaxima(x, y []int) []int {
	n := min(len(x), len(y))
	if n == 0 {
		return nil
	}

	ys := toFloats(y[:n])
	span := floats.Max(ys) - floats.Min(ys)
	start := span * ChunkStart
	end := span * ChunkEnd

	var (
		crit   []int
		inside bool
		yMax   float64
		xCrit  int
	)
	for i := 0; i < n; i++ {
		yi := ys[i]
		switch {
		case inside && yi > end:
			if yi > yMax {
				yMax = yi
				xCrit = x[i]
			}
		case inside:
			crit = append(crit, xCrit)
			inside = false
			yMax = 0
			xCrit = 0
		case yi > start:
			inside = true
		}
	}
	return crit
}

// CriticalPoints estimates (a/b, d/c) from fish and shark count series.
// Either value is NaN when its series has no complete peak.
func CriticalPoints(fish, sharks []int) (ab, dc float64) {
	fishAtSharkPeaks := LocalMaxima(fish, sharks)
	sharksAtFishPeaks := LocalMaxima(sharks, fish)
	return Mean(fishAtSharkPeaks), Mean(sharksAtFishPeaks)
}

// Mean returns the arithmetic mean of values, or NaN when empty.
func Mean(values []int) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return stat.Mean(toFloats(values), nil)
}

// NaNMean averages the non-NaN entries of values, or returns NaN if none.
func NaNMean(values []float64) float64 {
	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return math.NaN()
	}
	return stat.Mean(kept, nil)
}

func toFloats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
