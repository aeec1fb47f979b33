// Package synth generates point sets for benchmarking the clustering engine.
package synth

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// MaxExponent is the largest supported k for 2^k points.
const MaxExponent = 30

// Mode selects how points are laid out.
type Mode string

const (
	// ModeUniform draws points uniformly from [0, 1).
	ModeUniform Mode = "uniform"
	// ModeMonotonic emits 0, 1, 2, ... so every gap ties.
	ModeMonotonic Mode = "monotonic"
)

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeUniform, ModeMonotonic:
		return m, nil
	default:
		return "", fmt.Errorf("synth: unknown mode %q (want %q or %q)", s, ModeUniform, ModeMonotonic)
	}
}

// Generate returns 2^k points. Uniform output is fully determined by seed.
func Generate(k int, mode Mode, seed uint64) ([]float64, error) {
	if k < 0 || k > MaxExponent {
		return nil, fmt.Errorf("synth: exponent %d out of range [0, %d]", k, MaxExponent)
	}
	n := 1 << k
	points := make([]float64, n)

	switch mode {
	case ModeMonotonic:
		for i := range points {
			points[i] = float64(i)
		}
	case ModeUniform:
		// Src stays nil: draws come from quantiles of the seeded PCG stream.
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		dist := distuv.Uniform{Min: 0, Max: 1}
		for i := range points {
			points[i] = dist.Quantile(rng.Float64())
		}
	default:
		return nil, fmt.Errorf("synth: unknown mode %q", mode)
	}
	return points, nil
}
