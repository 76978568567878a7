package gamemath

import "math"

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampFrameDelta bounds a frame delta to [0, max]. Non-finite deltas count as 0.
func ClampFrameDelta(dt, max float64) float64 {
	if math.IsNaN(dt) || dt <= 0 {
		return 0
	}
	if dt > max {
		return max
	}
	return dt
}

// SubSteps splits dt into n equal steps no longer than fixedStep.
// A zero delta yields zero steps.
func SubSteps(dt, fixedStep float64) (n int, step float64) {
	if dt <= 0 || fixedStep <= 0 {
		return 0, 0
	}
	// Absorb float noise so 0.016/0.016 stays a single step.
	n = int(math.Ceil(dt/fixedStep - 1e-9))
	if n < 1 {
		n = 1
	}
	return n, dt / float64(n)
}

// Smoothing converts a rate in 1/s into a lerp factor for a frame of length dt.
func Smoothing(rate, dt float64) float64 {
	if dt <= 0 || rate <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return ClampFloat(speed, -max, max)
}
