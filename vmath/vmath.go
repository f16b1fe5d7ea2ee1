package vmath

import "math"

// --- Scalars ---

// Sign returns -1, 0 or 1
func Sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Abs returns |v|
func Abs(v float64) float64 {
	return math.Abs(v)
}

// Sqrt returns the square root, 0 for negative input
func Sqrt(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}

// Clamp limits v to [lo, hi]
func Clamp[T int | int64 | float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundTo rounds v to the nearest multiple of step
func RoundTo(v, step float64) float64 {
	if step == 0 {
		return v
	}
	return math.Round(v/step) * step
}

// Pulse returns a blink alpha oscillating on t, floored at minAlpha
// Used for invulnerability and low-lifetime item blinking
func Pulse(t, freq, minAlpha float64) float64 {
	return math.Max((math.Sin(t*freq)+1)/2, minAlpha)
}

// --- Randomness ---

// FastRand is a xorshift64 generator; not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0,1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
