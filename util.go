package knot

// Clamp current value between low and high
func Clamp(cur, low, high float64) float64 {
	if low > high {
		low, high = high, low
	}
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}

// AtLeast returns cur, or low if cur is smaller
func AtLeast(cur, low int) int {
	if cur < low {
		return low
	}
	return cur
}
