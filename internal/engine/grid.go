package engine

// linspace returns n evenly spaced samples from lo to hi inclusive.
// The caller guarantees n >= 2.
func linspace(lo, hi float64, n int) []float64 {
	step := (hi - lo) / float64(n-1)
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = lo + float64(i)*step
	}
	// Pin the endpoint so accumulated float error never shortens the range
	grid[n-1] = hi
	return grid
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
