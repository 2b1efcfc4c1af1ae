package game

// ClampFloat restricts v to [low, high].
func ClampFloat(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
